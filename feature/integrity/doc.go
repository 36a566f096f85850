// Package integrity provides health checks for the manifest cache.
//
// # Checks Provided
//
//   - Cache: Compares the persisted manifest version with the remote one and lists components missing from the cache.
//   - Storage: Checks that the cache bucket exists and holds objects for the config and manifest namespaces.
//   - Schema: Validates that the SQL cache table carries every expected column.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/cache : Runs the cache check (supports ?fix=true to re-download).
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true to create the bucket).
//   - GET /integrity/schema : Runs the schema check (supports ?fix=true to migrate).
package integrity
