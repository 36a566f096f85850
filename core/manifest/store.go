package manifest

import (
	"sort"
	"strconv"
	"sync"

	"loadout-manager/core/destiny"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Table maps a stringified content hash to its raw definition record.
type Table map[string]json.RawMessage

// Store holds the decoded manifest components of one session.
// Tables are imported while the Store is built and only read afterwards.
type Store struct {
	mu     sync.RWMutex
	tables map[string]Table
	logger *zap.Logger

	decoded sync.Map // memoKey -> *T
	warned  sync.Map // component -> struct{}
}

type memoKey struct {
	component string
	hash      string
}

// NewStore creates an empty Store. A nil logger discards output.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		tables: make(map[string]Table),
		logger: logger,
	}
}

// Import registers the table of a component, replacing any previous one.
func (s *Store) Import(component string, table Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[component] = table
}

// Table returns the raw table of a component.
func (s *Store) Table(component string) (Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tables[component]
	return t, ok
}

// Components lists the imported component names in ascending order.
func (s *Store) Components() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of definitions of a component.
func (s *Store) Len(component string) int {
	t, _ := s.Table(component)
	return len(t)
}

// Raw returns the undecoded definition stored under hash.
func (s *Store) Raw(component, hash string) (json.RawMessage, bool) {
	t, ok := s.Table(component)
	if !ok {
		return nil, false
	}
	raw, ok := t[hash]
	return raw, ok
}

// Missing returns the required components that are absent or empty.
func (s *Store) Missing(required []string) []string {
	var missing []string
	for _, name := range required {
		if s.Len(name) == 0 {
			missing = append(missing, name)
		}
	}
	return missing
}

// IsComplete reports whether every required component has at least one definition.
func (s *Store) IsComplete(required []string) bool {
	return len(s.Missing(required)) == 0
}

// InventoryItem returns the item or plug definition with the given hash.
func (s *Store) InventoryItem(hash uint32) (*destiny.InventoryItemDefinition, bool) {
	return lookup[destiny.InventoryItemDefinition](s, destiny.ComponentInventoryItem, hash)
}

// SocketType returns the socket type definition with the given hash.
func (s *Store) SocketType(hash uint32) (*destiny.SocketTypeDefinition, bool) {
	return lookup[destiny.SocketTypeDefinition](s, destiny.ComponentSocketType, hash)
}

// SocketCategory returns the socket category definition with the given hash.
func (s *Store) SocketCategory(hash uint32) (*destiny.SocketCategoryDefinition, bool) {
	return lookup[destiny.SocketCategoryDefinition](s, destiny.ComponentSocketCategory, hash)
}

// DamageType returns the damage type definition with the given hash.
func (s *Store) DamageType(hash uint32) (*destiny.DamageTypeDefinition, bool) {
	return lookup[destiny.DamageTypeDefinition](s, destiny.ComponentDamageType, hash)
}

// EnergyType returns the energy type definition with the given hash.
func (s *Store) EnergyType(hash uint32) (*destiny.EnergyTypeDefinition, bool) {
	return lookup[destiny.EnergyTypeDefinition](s, destiny.ComponentEnergyType, hash)
}

// Stat returns the stat definition with the given hash.
func (s *Store) Stat(hash uint32) (*destiny.StatDefinition, bool) {
	return lookup[destiny.StatDefinition](s, destiny.ComponentStat, hash)
}

// InventoryBucket returns the bucket definition with the given hash.
func (s *Store) InventoryBucket(hash uint32) (*destiny.InventoryBucketDefinition, bool) {
	return lookup[destiny.InventoryBucketDefinition](s, destiny.ComponentInventoryBucket, hash)
}

// lookup decodes a definition on first access and memoises the result.
func lookup[T any](s *Store, component string, hash uint32) (*T, bool) {
	table, ok := s.Table(component)
	if !ok {
		if _, seen := s.warned.LoadOrStore(component, struct{}{}); !seen {
			s.logger.Warn("Manifest component not loaded", zap.String("component", component))
		}
		return nil, false
	}

	key := strconv.FormatUint(uint64(hash), 10)
	mk := memoKey{component: component, hash: key}
	if v, ok := s.decoded.Load(mk); ok {
		return v.(*T), true
	}

	raw, ok := table[key]
	if !ok {
		return nil, false
	}

	def := new(T)
	if err := json.Unmarshal(raw, def); err != nil {
		s.logger.Debug("Failed to decode definition",
			zap.String("component", component),
			zap.String("hash", key),
			zap.Error(err))
		return nil, false
	}

	v, _ := s.decoded.LoadOrStore(mk, def)
	return v.(*T), true
}
