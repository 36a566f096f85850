package cache

import (
	"context"
	"errors"
)

var (
	// ErrKeyExists is returned by Add when the key is already present.
	ErrKeyExists = errors.New("cache key already exists")

	// ErrNamespaceNotInitialized is returned when a namespace is used before Init.
	ErrNamespaceNotInitialized = errors.New("cache namespace not initialized")
)

// Store is a namespaced persistent key-value store.
type Store interface {
	// Init prepares the given namespaces. They are usable once Init returns nil.
	Init(ctx context.Context, namespaces ...string) error
	// Get returns the value stored under key. found is false when the key is absent.
	Get(ctx context.Context, namespace, key string) (value []byte, found bool, err error)
	// Put inserts or replaces the value stored under key.
	Put(ctx context.Context, namespace, key string, value []byte) error
	// Add inserts a value under a key that is expected to be absent.
	Add(ctx context.Context, namespace, key string, value []byte) error
	// Keys lists every key of the namespace in ascending order.
	Keys(ctx context.Context, namespace string) ([]string, error)
	// Clear removes every key of the namespace.
	Clear(ctx context.Context, namespace string) error
}
