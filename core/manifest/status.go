package manifest

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
)

// Status describes the persisted manifest against the remote one.
type Status struct {
	RemoteVersion string            `json:"remote_version"`
	CachedVersion string            `json:"cached_version"`
	LoadedVersion string            `json:"loaded_version"`
	Current       bool              `json:"current"`
	Components    []ComponentStatus `json:"components"`
	Missing       []string          `json:"missing"`
}

// ComponentStatus is the persisted state of one component.
type ComponentStatus struct {
	Name    string `json:"name"`
	Cached  bool   `json:"cached"`
	Entries int    `json:"entries"`
}

// Healthy reports whether the cache is current and holds every component.
func (st *Status) Healthy() bool {
	return st.Current && len(st.Missing) == 0
}

// Status inspects the persistent cache without changing it.
func (s *Service) Status(ctx context.Context) (*Status, error) {
	if s.cache == nil {
		return nil, ErrCacheDisabled
	}
	if err := s.cache.Init(ctx, NamespaceConfig, NamespaceManifest); err != nil {
		return nil, fmt.Errorf("prepare manifest cache: %w", err)
	}

	desc, err := s.remote.FetchManifestDescriptor(ctx)
	if err != nil {
		return nil, remoteError("fetch manifest descriptor", err)
	}

	marker, _, err := s.cache.Get(ctx, NamespaceConfig, VersionKey)
	if err != nil {
		return nil, fmt.Errorf("read manifest version: %w", err)
	}

	st := &Status{
		RemoteVersion: desc.Version,
		CachedVersion: string(marker),
		LoadedVersion: s.Version(),
		Current:       string(marker) == desc.Version,
		Missing:       []string{},
	}

	for _, name := range s.components {
		cs := ComponentStatus{Name: name}
		value, found, err := s.cache.Get(ctx, NamespaceManifest, name)
		if err != nil {
			return nil, fmt.Errorf("read component %s: %w", name, err)
		}
		if found {
			var table Table
			if json.Unmarshal(value, &table) == nil {
				cs.Cached = true
				cs.Entries = len(table)
			}
		}
		if cs.Entries == 0 {
			st.Missing = append(st.Missing, name)
		}
		st.Components = append(st.Components, cs)
	}

	return st, nil
}

// Repair discards the persisted manifest and initialises from the remote.
func (s *Service) Repair(ctx context.Context) (*Store, error) {
	if s.cache == nil {
		return nil, ErrCacheDisabled
	}
	if err := s.cache.Init(ctx, NamespaceConfig, NamespaceManifest); err != nil {
		return nil, fmt.Errorf("prepare manifest cache: %w", err)
	}
	for _, ns := range []string{NamespaceManifest, NamespaceConfig} {
		if err := s.cache.Clear(ctx, ns); err != nil {
			return nil, fmt.Errorf("clear %s: %w", ns, err)
		}
	}
	s.Invalidate()
	return s.Initialize(ctx)
}
