package checks

import (
	"context"
	"fmt"

	"loadout-manager/core/cache/sqlstore"
	"loadout-manager/core/database"

	"gorm.io/gorm"
)

// SchemaReport strictly types the result of a cache schema check.
type SchemaReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	Errors         []string `json:"errors"`
}

// CheckSchema verifies the cache entry table carries every expected column.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Table:          sqlstore.TableName,
		Matched:        true,
		MissingColumns: []string{},
		Errors:         []string{},
	}

	missing, err := database.MissingColumns(db, sqlstore.TableName, sqlstore.Columns)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", sqlstore.TableName, err))
		report.Matched = false
		return report, nil
	}
	if len(missing) > 0 {
		report.MissingColumns = missing
		report.Matched = false
	}

	return report, nil
}

// FixSchema migrates the cache entry table.
func FixSchema(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	return sqlstore.New(db).Init(ctx)
}
