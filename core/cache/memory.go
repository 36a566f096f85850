package cache

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Ensure Memory implements the interface.
var _ Store = (*Memory)(nil)

// Memory is an in-process Store.
type Memory struct {
	mu         sync.RWMutex
	namespaces map[string]map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		namespaces: make(map[string]map[string][]byte),
	}
}

// Init creates the namespaces that do not exist yet. Existing data is kept.
func (m *Memory) Init(_ context.Context, namespaces ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ns := range namespaces {
		if _, ok := m.namespaces[ns]; !ok {
			m.namespaces[ns] = make(map[string][]byte)
		}
	}
	return nil
}

// Get returns a copy of the stored value.
func (m *Memory) Get(_ context.Context, namespace, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ns, err := m.namespace(namespace)
	if err != nil {
		return nil, false, err
	}
	v, ok := ns[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Put stores a copy of value under key.
func (m *Memory) Put(_ context.Context, namespace, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ns, err := m.namespace(namespace)
	if err != nil {
		return err
	}
	ns[key] = append([]byte(nil), value...)
	return nil
}

// Add stores value under key and fails with ErrKeyExists if the key is taken.
func (m *Memory) Add(_ context.Context, namespace, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ns, err := m.namespace(namespace)
	if err != nil {
		return err
	}
	if _, ok := ns[key]; ok {
		return fmt.Errorf("%s/%s: %w", namespace, key, ErrKeyExists)
	}
	ns[key] = append([]byte(nil), value...)
	return nil
}

// Keys returns the sorted keys of the namespace.
func (m *Memory) Keys(_ context.Context, namespace string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ns, err := m.namespace(namespace)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(ns))
	for k := range ns {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Clear drops every key of the namespace.
func (m *Memory) Clear(_ context.Context, namespace string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.namespace(namespace); err != nil {
		return err
	}
	m.namespaces[namespace] = make(map[string][]byte)
	return nil
}

// namespace must be called with the lock held.
func (m *Memory) namespace(name string) (map[string][]byte, error) {
	ns, ok := m.namespaces[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNamespaceNotInitialized)
	}
	return ns, nil
}
