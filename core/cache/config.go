package cache

// Config holds configuration for the manifest cache backend.
type Config struct {
	// Driver selects the backend (storage, database, memory, none).
	Driver string `mapstructure:"driver" default:"storage"`
	// Prefix is the object prefix used by the storage driver.
	Prefix string `mapstructure:"prefix" default:"cache"`
}

// Supported values of Config.Driver.
const (
	DriverStorage  = "storage"
	DriverDatabase = "database"
	DriverMemory   = "memory"
	DriverNone     = "none"
)

// IsValidDriver checks if the configured driver is supported.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case DriverStorage, DriverDatabase, DriverMemory, DriverNone:
		return true
	default:
		return false
	}
}
