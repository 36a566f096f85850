package integrity

import (
	"context"
	"errors"
	"fmt"

	"loadout-manager/core/manifest"
	"loadout-manager/core/storage"
	"loadout-manager/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrStorageNotConfigured is returned by storage checks without a storage client.
var ErrStorageNotConfigured = errors.New("storage not configured")

// ManifestInspector reports on and repairs the persisted manifest.
// *manifest.Service implements it.
type ManifestInspector interface {
	Status(ctx context.Context) (*manifest.Status, error)
	Repair(ctx context.Context) (*manifest.Store, error)
}

// Service handles integrity checks.
type Service struct {
	manifest ManifestInspector
	client   storage.Client
	bucket   string
	prefix   string
	logger   *zap.Logger
	db       *gorm.DB
}

// NewService creates a new integrity service. client and db may be nil when
// the corresponding cache driver is not in use.
func NewService(inspector ManifestInspector, client storage.Client, bucket, prefix string, logger *zap.Logger, db *gorm.DB) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		manifest: inspector,
		client:   client,
		bucket:   bucket,
		prefix:   prefix,
		logger:   logger,
		db:       db,
	}
}

// CheckCache compares the persisted manifest with the remote version.
func (s *Service) CheckCache(ctx context.Context) (*manifest.Status, error) {
	return s.manifest.Status(ctx)
}

// RepairCache discards the persisted manifest and downloads it again.
func (s *Service) RepairCache(ctx context.Context) error {
	store, err := s.manifest.Repair(ctx)
	if err != nil {
		return fmt.Errorf("repair manifest cache: %w", err)
	}
	s.logger.Info("Manifest cache repaired", zap.Strings("components", store.Components()))
	return nil
}

// CheckStorage inspects the cache bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, ErrStorageNotConfigured
	}
	return checks.CheckStorage(ctx, s.client, s.bucket, s.prefix,
		[]string{manifest.NamespaceConfig, manifest.NamespaceManifest})
}

// FixStorage creates the cache bucket when it is missing.
func (s *Service) FixStorage(ctx context.Context) error {
	if s.client == nil {
		return ErrStorageNotConfigured
	}
	return checks.FixStorage(ctx, s.client, s.bucket, s.logger)
}

// CheckSchema verifies the SQL cache table.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// FixSchema migrates the SQL cache table.
func (s *Service) FixSchema(ctx context.Context) error {
	return checks.FixSchema(ctx, s.db)
}
