package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loadout-manager/core/cache"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ cache.Store = (*Store)(nil)

// TableName is the table holding every cache entry.
const TableName = "manifest_cache_entries"

// Columns lists the columns the entry table must carry.
var Columns = []string{"namespace", "entry_key", "value", "updated_at"}

// Entry is one cached value.
type Entry struct {
	Namespace string `gorm:"primaryKey;size:64"`
	Key       string `gorm:"column:entry_key;primaryKey;size:191"`
	Value     []byte
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return TableName
}

// Store keeps cache entries in a relational database through gorm.
type Store struct {
	db *gorm.DB
}

// New creates a Store on an open connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Init migrates the entry table. Namespaces are a column and need no setup.
func (s *Store) Init(ctx context.Context, _ ...string) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("migrate %s: %w", TableName, err)
	}
	return nil
}

// Get reads one entry. A missing row is a miss, not an error.
func (s *Store) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	var entry Entry
	err := s.db.WithContext(ctx).
		Where("namespace = ? AND entry_key = ?", namespace, key).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s/%s: %w", namespace, key, err)
	}
	return entry.Value, true, nil
}

// Put upserts the entry.
func (s *Store) Put(ctx context.Context, namespace, key string, value []byte) error {
	entry := Entry{Namespace: namespace, Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", namespace, key, err)
	}
	return nil
}

// Add inserts a new entry and fails with cache.ErrKeyExists on a duplicate.
func (s *Store) Add(ctx context.Context, namespace, key string, value []byte) error {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Entry{Namespace: namespace, Key: key, Value: value})
	if result.Error != nil {
		return fmt.Errorf("add %s/%s: %w", namespace, key, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("add %s/%s: %w", namespace, key, cache.ErrKeyExists)
	}
	return nil
}

// Keys lists the keys of a namespace in sorted order.
func (s *Store) Keys(ctx context.Context, namespace string) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).Model(&Entry{}).
		Where("namespace = ?", namespace).
		Order("entry_key").
		Pluck("entry_key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("keys %s: %w", namespace, err)
	}
	return keys, nil
}

// Clear deletes every entry of a namespace.
func (s *Store) Clear(ctx context.Context, namespace string) error {
	err := s.db.WithContext(ctx).
		Where("namespace = ?", namespace).
		Delete(&Entry{}).Error
	if err != nil {
		return fmt.Errorf("clear %s: %w", namespace, err)
	}
	return nil
}
