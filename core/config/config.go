package config

import (
	"reflect"
	"strings"

	"loadout-manager/core/bungie"
	"loadout-manager/core/cache"
	"loadout-manager/core/database"
	"loadout-manager/core/logger"
	"loadout-manager/core/manifest"
	"loadout-manager/core/server"
	"loadout-manager/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage backing the manifest cache.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database backing the manifest cache.
	Database database.Config `mapstructure:"database"`
	// Bungie holds configuration for the Bungie.net API client.
	Bungie bungie.Config `mapstructure:"bungie"`
	// Cache selects the manifest cache backend.
	Cache cache.Config `mapstructure:"cache"`
	// Manifest holds configuration for the manifest coordinator.
	Manifest manifest.Config `mapstructure:"manifest"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. BUNGIE_API_KEY -> bungie.api_key)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set the default, even if empty, so AutomaticEnv picks the key up
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
