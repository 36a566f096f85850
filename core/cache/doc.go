// Package cache defines the persistent key-value capability used to keep the
// manifest between sessions.
//
// # Store Interface
//
// A Store is organised in namespaces. Callers acquire the namespaces they need with
// Init and can then use them freely:
//
//	store.Init(ctx, "config", "manifest")
//	store.Put(ctx, "config", "manifestVersion", []byte("v1"))
//	keys, _ := store.Keys(ctx, "manifest")
//
// Put is an upsert. Add is an insert and may assume the key is absent; some
// backends reject duplicates. Keys are returned sorted.
//
// # Backends
//
//   - Memory (this package): process-local, used by tests and the "memory" driver.
//   - objectstore: objects in the S3/MinIO bucket behind core/storage.
//   - sqlstore: rows in a gorm-managed table (MySQL, SQLite).
//
// The encoding of values is the caller's concern; stores persist raw bytes.
package cache
