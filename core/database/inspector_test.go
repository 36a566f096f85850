package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_entries (namespace TEXT, entry_key TEXT, value BLOB)").Error
	require.NoError(t, err)

	columns, err := TableColumns(db, "test_entries")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "text", colMap["namespace"])
	assert.Equal(t, "text", colMap["entry_key"])
	assert.Equal(t, "blob", colMap["value"])

	// PRAGMA table_info returns an empty result for unknown tables
	cols, err := TableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE test_entries (namespace TEXT, value BLOB)").Error)

	missing, err := MissingColumns(db, "test_entries", []string{"value", "updated_at", "namespace", "entry_key"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"entry_key", "updated_at"}, missing)
}
