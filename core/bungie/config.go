package bungie

// Config holds configuration for the Bungie.net API client.
type Config struct {
	// BaseURL is the API host. Manifest content paths are resolved against it.
	BaseURL string `mapstructure:"base_url" default:"https://www.bungie.net"`
	// APIKey is sent as X-API-Key on every request.
	APIKey string `mapstructure:"api_key" default:""`
	// Locale selects the manifest language.
	Locale string `mapstructure:"locale" default:"en"`
	// TimeoutSeconds bounds a single request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RequestsPerSecond is the proactive request rate.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"20"`
	// Burst is the number of requests allowed above the steady rate.
	Burst int `mapstructure:"burst" default:"10"`
}

var locales = map[string]bool{
	"en": true, "fr": true, "es": true, "es-mx": true, "de": true, "it": true, "ja": true,
	"pt-br": true, "ru": true, "pl": true, "ko": true, "zh-cht": true, "zh-chs": true,
}

// IsValidLocale checks if the configured locale is served by the manifest.
func (c Config) IsValidLocale() bool {
	return locales[c.Locale]
}
