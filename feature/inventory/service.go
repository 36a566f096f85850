package inventory

import (
	"context"
	"sync"

	"loadout-manager/core/destiny"
	"loadout-manager/core/manifest"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// ProfileSource fetches account snapshots. *bungie.Client implements it.
type ProfileSource interface {
	FetchProfile(ctx context.Context, ref destiny.AccountRef, components []destiny.ComponentType, token *oauth2.Token) (*destiny.ProfileResponse, error)
}

// DefinitionSource supplies the resident manifest. *manifest.Service implements it.
type DefinitionSource interface {
	Store(ctx context.Context) (*manifest.Store, error)
}

// Service loads inventories per account and keeps one Manager for each.
type Service struct {
	definitions DefinitionSource
	profiles    ProfileSource
	logger      *zap.Logger

	mu       sync.RWMutex
	managers map[destiny.AccountRef]*Manager
}

// NewService creates a new inventory service.
func NewService(definitions DefinitionSource, profiles ProfileSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		definitions: definitions,
		profiles:    profiles,
		logger:      logger,
		managers:    make(map[destiny.AccountRef]*Manager),
	}
}

// Load fetches the account snapshot and assembles it. On failure the
// previously loaded inventory of the account stays in place.
func (s *Service) Load(ctx context.Context, ref destiny.AccountRef, token *oauth2.Token) (*Inventory, error) {
	store, err := s.definitions.Store(ctx)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.profiles.FetchProfile(ctx, ref, destiny.InventoryComponents, token)
	if err != nil {
		return nil, err
	}

	mgr := NewManager(store, s.logger.With(
		zap.Int("membership_type", ref.MembershipType),
		zap.String("membership_id", ref.MembershipID)))
	inv, err := mgr.LoadInventory(snapshot)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.managers[ref] = mgr
	s.mu.Unlock()

	return inv, nil
}

// Manager returns the Manager of a loaded account.
func (s *Service) Manager(ref destiny.AccountRef) (*Manager, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	mgr, ok := s.managers[ref]
	if !ok {
		return nil, ErrInventoryNotLoaded
	}
	return mgr, nil
}
