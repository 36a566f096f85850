// Package sqlstore implements cache.Store on a gorm connection.
//
// All namespaces share the manifest_cache_entries table, keyed by
// (namespace, entry_key). The table is auto-migrated by Init.
package sqlstore
