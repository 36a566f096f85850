package inventory

import (
	"errors"
	"sort"
	"strconv"
	"sync"

	"loadout-manager/core/destiny"

	"go.uber.org/zap"
)

var (
	// ErrInventoryNotLoaded is returned by queries issued before LoadInventory.
	ErrInventoryNotLoaded = errors.New("inventory not loaded")

	// ErrInvalidQuery is returned by LookupItems without any filter.
	ErrInvalidQuery = errors.New("at least one of type, sub type, class or slot is required")

	// ErrEmptySnapshot is returned by LoadInventory for a nil snapshot.
	ErrEmptySnapshot = errors.New("empty account snapshot")
)

// Inventory is the ordered item collection built from one snapshot.
type Inventory struct {
	items []*Item
}

// Items returns the items in processing order.
func (inv *Inventory) Items() []*Item {
	return append([]*Item(nil), inv.items...)
}

// Len returns the number of items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// FindByInstanceID returns the item with the given instance id.
func (inv *Inventory) FindByInstanceID(id string) (*Item, bool) {
	if id == "" {
		return nil, false
	}
	for _, it := range inv.items {
		if it.InstanceID() == id {
			return it, true
		}
	}
	return nil, false
}

// FindByHash returns every item with the given content hash.
func (inv *Inventory) FindByHash(hash uint32) []*Item {
	var found []*Item
	for _, it := range inv.items {
		if it.Hash == hash {
			found = append(found, it)
		}
	}
	return found
}

// Manager assembles inventories and answers queries on the last one loaded.
type Manager struct {
	defs   Definitions
	logger *zap.Logger

	mu        sync.RWMutex
	inventory *Inventory
}

// NewManager creates a Manager resolving against defs.
func NewManager(defs Definitions, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		defs:   tracedDefinitions{defs: defs, logger: logger},
		logger: logger,
	}
}

// Inventory returns the last loaded inventory.
func (m *Manager) Inventory() (*Inventory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.inventory == nil {
		return nil, ErrInventoryNotLoaded
	}
	return m.inventory, nil
}

// LoadInventory assembles every section of the snapshot, in the order vault,
// character inventories, character equipment, profile plugs, currency
// lookups. Characters are visited in ascending id order. The returned
// inventory also becomes the one queries run against.
func (m *Manager) LoadInventory(snapshot *destiny.ProfileResponse) (*Inventory, error) {
	if snapshot == nil {
		return nil, ErrEmptySnapshot
	}

	b := &builder{
		defs:      m.defs,
		snapshot:  snapshot,
		hashes:    make(map[uint32]struct{}),
		inventory: &Inventory{},
	}
	b.vault()
	b.characterSection(snapshot.CharacterInventories, SourceCharacterInventory)
	b.characterSection(snapshot.CharacterEquipment, SourceCharacterEquipped)
	b.profilePlugs()
	b.currencies()

	m.mu.Lock()
	m.inventory = b.inventory
	m.mu.Unlock()

	m.logger.Debug("Inventory loaded", zap.Int("items", b.inventory.Len()))
	return b.inventory, nil
}

type builder struct {
	defs      Definitions
	snapshot  *destiny.ProfileResponse
	hashes    map[uint32]struct{}
	inventory *Inventory
}

func (b *builder) add(item *Item) {
	b.inventory.items = append(b.inventory.items, item)
	b.hashes[item.Hash] = struct{}{}
}

func (b *builder) profilePlugSets() *destiny.PlugSetsComponent {
	if b.snapshot.ProfilePlugSets == nil {
		return nil
	}
	return &b.snapshot.ProfilePlugSets.Data
}

func (b *builder) characterPlugSets(characterID string) *destiny.PlugSetsComponent {
	if b.snapshot.CharacterPlugSets == nil {
		return nil
	}
	if ps, ok := b.snapshot.CharacterPlugSets.Data[characterID]; ok {
		return &ps
	}
	return nil
}

func (b *builder) character(characterID string) *destiny.Character {
	if b.snapshot.Characters == nil {
		return nil
	}
	if c, ok := b.snapshot.Characters.Data[characterID]; ok {
		return &c
	}
	return nil
}

func (b *builder) vault() {
	if b.snapshot.ProfileInventory == nil {
		return
	}
	plugSets := b.profilePlugSets()
	for _, raw := range b.snapshot.ProfileInventory.Data.Items {
		item := NewItem(raw.Record(), b.snapshot.ItemComponents, SourceVaulted)
		item.populate(b.defs, plugSets)
		b.add(item)
	}
}

func (b *builder) characterSection(section *destiny.ComponentResponse[map[string]destiny.InventoryComponent], source Source) {
	if section == nil {
		return
	}
	for _, id := range sortedKeys(section.Data) {
		plugSets := b.characterPlugSets(id)
		location := b.character(id)
		for _, raw := range section.Data[id].Items {
			item := NewItem(raw.Record(), b.snapshot.ItemComponents, source)
			item.populate(b.defs, plugSets)
			item.Location = location
			b.add(item)
		}
	}
}

func (b *builder) profilePlugs() {
	plugSets := b.profilePlugSets()
	if plugSets == nil {
		return
	}
	for _, key := range sortedKeys(plugSets.Plugs) {
		for _, entry := range plugSets.Plugs[key] {
			item := NewItem(entry.Record(), nil, SourceProfilePlug)
			item.populate(b.defs, nil)
			b.add(item)
		}
	}
}

func (b *builder) currencies() {
	section := b.snapshot.CharacterCurrencyLookups
	if section == nil {
		return
	}
	for _, id := range sortedKeys(section.Data) {
		location := b.character(id)
		quantities := section.Data[id].ItemQuantities
		for _, key := range sortedKeys(quantities) {
			n, err := strconv.ParseUint(key, 10, 32)
			if err != nil {
				continue
			}
			hash := uint32(n)
			if _, seen := b.hashes[hash]; seen {
				continue
			}
			item := NewItem(destiny.Record{ItemHash: hash}, nil, SourceCurrencyLookup)
			item.populate(b.defs, nil)
			item.Quantity = quantities[key]
			item.Location = location
			b.add(item)
		}
	}
}

// sortedKeys orders numeric keys numerically and the rest lexically after them.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		na, errA := strconv.ParseUint(keys[a], 10, 64)
		nb, errB := strconv.ParseUint(keys[b], 10, 64)
		switch {
		case errA == nil && errB == nil:
			return na < nb
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return keys[a] < keys[b]
		}
	})
	return keys
}
