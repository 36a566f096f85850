// Package database handles database connections and schema inspection.
//
// It wraps GORM to open MySQL connections in production and SQLite
// (pure Go, modernc.org/sqlite) connections for local runs and tests.
//
// # Connect
//
// Connect picks the dialector from Config.Driver, applies pool settings and
// pings the database before returning.
//
// # Schema Inspection
//
// TableColumns and MissingColumns let the integrity check verify that the
// database-backed manifest cache table has the expected shape.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "manifest_cache_entries", []string{"namespace", "entry_key"})
package database
