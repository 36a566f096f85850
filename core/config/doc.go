// Package config provides configuration management for the loadout manager.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port and API key
//   - Storage: S3/MinIO credentials and the cache bucket
//   - Database: MySQL or SQLite connection details
//   - Log: Logging level and format
//   - Bungie: API host, key, locale and request rate
//   - Cache: Manifest cache driver (storage, database, memory, none)
//   - Manifest: Components loaded at startup
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Bungie.Locale)
package config
