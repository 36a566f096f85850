package manifest

import (
	"context"
	"errors"
	"fmt"

	"loadout-manager/core/manifest"
	"loadout-manager/core/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	// ErrComponentNotLoaded is returned for components absent from the store.
	ErrComponentNotLoaded = errors.New("component not loaded")

	// ErrDefinitionNotFound is returned when a component has no record for a hash.
	ErrDefinitionNotFound = errors.New("definition not found")

	// ErrInvalidHash is returned for a hash that is neither a signed nor an unsigned 32-bit integer.
	ErrInvalidHash = errors.New("invalid content hash")
)

// Source supplies the resident store. *manifest.Service implements it.
type Source interface {
	Store(ctx context.Context) (*manifest.Store, error)
	Version() string
	Invalidate()
}

// Info summarises the resident store.
type Info struct {
	Version    string          `json:"version"`
	Components []ComponentInfo `json:"components"`
}

// ComponentInfo is the entry count of one loaded component.
type ComponentInfo struct {
	Name    string `json:"name"`
	Entries int    `json:"entries"`
}

// Service answers definition queries.
type Service struct {
	source Source
	logger *zap.Logger
}

// NewService creates a new manifest service.
func NewService(source Source, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, logger: logger}
}

// Info returns the version and components of the resident store.
func (s *Service) Info(ctx context.Context) (*Info, error) {
	store, err := s.source.Store(ctx)
	if err != nil {
		return nil, err
	}
	info := &Info{Version: s.source.Version(), Components: []ComponentInfo{}}
	for _, name := range store.Components() {
		info.Components = append(info.Components, ComponentInfo{Name: name, Entries: store.Len(name)})
	}
	return info, nil
}

// Reload drops the resident store and initialises it again.
func (s *Service) Reload(ctx context.Context) (*Info, error) {
	s.source.Invalidate()
	s.logger.Info("Manifest reload requested")
	return s.Info(ctx)
}

// Definition returns the raw record of hash in component. hash may be the
// signed rendering of the content hash.
func (s *Service) Definition(ctx context.Context, component, hash string) (json.RawMessage, error) {
	h, err := utils.ParseHash(hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHash, hash)
	}

	store, err := s.source.Store(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := store.Table(component); !ok {
		return nil, ErrComponentNotLoaded
	}

	raw, ok := store.Raw(component, utils.FormatHash(h))
	if !ok {
		return nil, ErrDefinitionNotFound
	}
	return raw, nil
}
