// Package checks implements the individual integrity checks.
//
//   - Storage: the cache bucket exists and holds objects for every namespace.
//   - Schema: the cache entry table carries every column the SQL cache writes.
package checks
