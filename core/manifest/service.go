package manifest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"loadout-manager/core/cache"
	"loadout-manager/core/destiny"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	// NamespaceConfig holds the version marker.
	NamespaceConfig = "config"
	// NamespaceManifest holds one entry per persisted component.
	NamespaceManifest = "manifest"
	// VersionKey is the config key of the persisted manifest version.
	VersionKey = "manifestVersion"
)

// ErrCacheDisabled is returned by cache maintenance operations when the
// service runs without a persistent cache.
var ErrCacheDisabled = errors.New("manifest cache disabled")

// Descriptor is the remote manifest index.
type Descriptor struct {
	// Version identifies the current content generation.
	Version string
	// ComponentPaths maps a component name to its content locator.
	ComponentPaths map[string]string
}

// ComponentData is the content of one fetched component.
type ComponentData struct {
	ComponentName string
	Data          Table
}

// Remote supplies manifest content.
type Remote interface {
	FetchManifestDescriptor(ctx context.Context) (*Descriptor, error)
	FetchComponent(ctx context.Context, name, locator string) (*ComponentData, error)
}

// Service decides between the persisted manifest and a fresh download and
// keeps the resulting Store resident.
type Service struct {
	remote     Remote
	cache      cache.Store
	components []string
	logger     *zap.Logger

	mu      sync.RWMutex
	store   *Store
	version string
	sf      singleflight.Group
}

// NewService creates a Service. store may be nil to run without persistence.
// An empty component list selects destiny.DefaultComponents.
func NewService(remote Remote, store cache.Store, components []string, logger *zap.Logger) *Service {
	if len(components) == 0 {
		components = destiny.DefaultComponents
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		remote:     remote,
		cache:      store,
		components: components,
		logger:     logger,
	}
}

// Components returns the component names the service loads.
func (s *Service) Components() []string {
	return s.components
}

// Initialize builds a complete Store, from the persisted copy when it is
// current and intact, from the remote otherwise. The new Store becomes the
// resident one only on success.
func (s *Service) Initialize(ctx context.Context) (*Store, error) {
	useCache := s.cache != nil
	if useCache {
		if err := s.cache.Init(ctx, NamespaceConfig, NamespaceManifest); err != nil {
			s.logger.Warn("Manifest cache unavailable, downloading without it", zap.Error(err))
			useCache = false
		}
	}

	desc, err := s.remote.FetchManifestDescriptor(ctx)
	if err != nil {
		return nil, remoteError("fetch manifest descriptor", err)
	}

	var store *Store
	if !useCache {
		store, err = s.fetch(ctx, desc)
	} else {
		store, err = s.loadOrRefresh(ctx, desc)
	}
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.store = store
	s.version = desc.Version
	s.mu.Unlock()

	s.logger.Info("Manifest ready",
		zap.String("version", desc.Version),
		zap.Int("components", len(store.Components())))

	return store, nil
}

// Store returns the resident Store, initialising it on first use.
// Concurrent callers share one initialisation.
func (s *Service) Store(ctx context.Context) (*Store, error) {
	s.mu.RLock()
	store := s.store
	s.mu.RUnlock()
	if store != nil {
		return store, nil
	}

	result, err, _ := s.sf.Do("manifest", func() (interface{}, error) {
		s.mu.RLock()
		store := s.store
		s.mu.RUnlock()
		if store != nil {
			return store, nil
		}
		// Detached from the first caller's cancellation; every waiter shares the result.
		return s.Initialize(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	return result.(*Store), nil
}

// Version returns the version of the resident Store, empty before initialisation.
func (s *Service) Version() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Invalidate drops the resident Store. The next Store call initialises again.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.store = nil
	s.version = ""
	s.mu.Unlock()
}

func (s *Service) loadOrRefresh(ctx context.Context, desc *Descriptor) (*Store, error) {
	marker, found, err := s.cache.Get(ctx, NamespaceConfig, VersionKey)
	if err != nil {
		// An unreadable cache is not written either.
		s.logger.Warn("Failed to read cached manifest version, downloading", zap.Error(err))
		return s.fetch(ctx, desc)
	}

	cached := string(marker)
	switch {
	case !found:
		s.logger.Info("No cached manifest, downloading", zap.String("version", desc.Version))
	case cached != desc.Version:
		s.logger.Info("Cached manifest is stale, downloading",
			zap.String("cached", cached),
			zap.String("version", desc.Version))
	default:
		store, err := s.importCached(ctx)
		if err != nil {
			s.logger.Warn("Cached manifest is corrupted, downloading", zap.Error(err))
			break
		}
		if missing := store.Missing(s.components); len(missing) > 0 {
			s.logger.Warn("Cached manifest is corrupted, downloading", zap.Strings("missing", missing))
			break
		}
		s.logger.Debug("Using cached manifest", zap.String("version", cached))
		return store, nil
	}

	if err := s.cache.Clear(ctx, NamespaceManifest); err != nil {
		s.logger.Warn("Failed to clear manifest cache", zap.Error(err))
	}

	store, err := s.fetch(ctx, desc)
	if err != nil {
		return nil, err
	}
	s.persist(ctx, desc.Version, store)
	return store, nil
}

// fetch downloads every requested component concurrently into a new Store.
func (s *Service) fetch(ctx context.Context, desc *Descriptor) (*Store, error) {
	for _, name := range s.components {
		if _, ok := desc.ComponentPaths[name]; !ok {
			return nil, destiny.NewRemoteError("fetch component "+name,
				fmt.Errorf("not listed in manifest %s", desc.Version))
		}
	}

	store := NewStore(s.logger)
	g, gctx := errgroup.WithContext(ctx)
	for _, name := range s.components {
		locator := desc.ComponentPaths[name]
		g.Go(func() error {
			data, err := s.remote.FetchComponent(gctx, name, locator)
			if err != nil {
				return remoteError("fetch component "+name, err)
			}
			store.Import(name, data.Data)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return store, nil
}

// importCached reads every persisted component concurrently into a new Store.
func (s *Service) importCached(ctx context.Context) (*Store, error) {
	keys, err := s.cache.Keys(ctx, NamespaceManifest)
	if err != nil {
		return nil, fmt.Errorf("list cached components: %w", err)
	}

	store := NewStore(s.logger)
	g, gctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		g.Go(func() error {
			value, found, err := s.cache.Get(gctx, NamespaceManifest, key)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("component %s vanished", key)
			}
			var table Table
			if err := json.Unmarshal(value, &table); err != nil {
				return fmt.Errorf("decode component %s: %w", key, err)
			}
			store.Import(key, table)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return store, nil
}

// persist writes every component, then the version marker. Failures are
// logged only; the marker is skipped when a component could not be written.
func (s *Service) persist(ctx context.Context, version string, store *Store) {
	g, gctx := errgroup.WithContext(ctx)
	for _, name := range store.Components() {
		table, _ := store.Table(name)
		g.Go(func() error {
			value, err := encodeTable(table)
			if err != nil {
				return fmt.Errorf("encode component %s: %w", name, err)
			}
			return s.cache.Add(gctx, NamespaceManifest, name, value)
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Warn("Failed to persist manifest", zap.Error(err))
		return
	}

	if err := s.cache.Put(ctx, NamespaceConfig, VersionKey, []byte(version)); err != nil {
		s.logger.Warn("Failed to persist manifest version", zap.Error(err))
		return
	}
	s.logger.Debug("Manifest persisted", zap.String("version", version))
}

func encodeTable(table Table) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(table); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func remoteError(op string, err error) error {
	if errors.Is(err, destiny.ErrRemoteUnavailable) {
		return err
	}
	return destiny.NewRemoteError(op, err)
}
