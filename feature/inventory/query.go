package inventory

import (
	"sort"

	"loadout-manager/core/destiny"
)

// Filter narrows a lookup. Filters apply in the order type, sub type,
// class, slot regardless of argument order.
type Filter struct {
	rank  int
	match func(*Item) bool
}

// ByType matches items of the given type.
func ByType(t destiny.ItemType) Filter {
	return Filter{rank: 0, match: func(i *Item) bool { return i.ItemType == t }}
}

// BySubType matches items of the given sub type.
func BySubType(t destiny.ItemSubType) Filter {
	return Filter{rank: 1, match: func(i *Item) bool { return i.ItemSubType == t }}
}

// ByClass matches items restricted to the given class.
func ByClass(c destiny.ClassType) Filter {
	return Filter{rank: 2, match: func(i *Item) bool { return i.ClassType == c }}
}

// BySlot matches items that go into the given bucket.
func BySlot(slot destiny.BucketHash) Filter {
	return Filter{rank: 3, match: func(i *Item) bool { return i.Slot == slot }}
}

// LookupItems returns the non-ornament items matching every filter, in
// inventory order.
func (m *Manager) LookupItems(filters ...Filter) ([]*Item, error) {
	if len(filters) == 0 {
		return nil, ErrInvalidQuery
	}
	inv, err := m.Inventory()
	if err != nil {
		return nil, err
	}

	ordered := append([]Filter(nil), filters...)
	sort.SliceStable(ordered, func(a, b int) bool { return ordered[a].rank < ordered[b].rank })

	candidates := make([]*Item, 0, len(inv.items))
	for _, it := range inv.items {
		if !it.IsOrnament {
			candidates = append(candidates, it)
		}
	}
	for _, f := range ordered {
		narrowed := candidates[:0:0]
		for _, it := range candidates {
			if f.match(it) {
				narrowed = append(narrowed, it)
			}
		}
		candidates = narrowed
	}
	return candidates, nil
}

// GetAvailableSubclasses returns the subclasses owned for a character class.
func (m *Manager) GetAvailableSubclasses(class destiny.ClassType) ([]*Item, error) {
	return m.LookupItems(ByClass(class), BySlot(destiny.BucketSubclass))
}

// GetModsForItem maps the position of every weapon or armor mod socket of
// item to the owned items whose plug category that socket accepts, unique by
// hash. It returns nil when the item has no sockets.
func (m *Manager) GetModsForItem(item *Item) (map[int][]*Item, error) {
	inv, err := m.Inventory()
	if err != nil {
		return nil, err
	}
	if item == nil || item.Sockets == nil {
		return nil, nil
	}

	mods := make(map[int][]*Item)
	for _, s := range item.Sockets {
		if !s.inCategory(destiny.SocketCategoryWeaponMods) && !s.inCategory(destiny.SocketCategoryArmorMods) {
			continue
		}
		matches := make([]*Item, 0)
		seen := make(map[uint32]struct{})
		for _, category := range s.Whitelist() {
			for _, candidate := range inv.items {
				pc, ok := candidate.PlugCategoryHash()
				if !ok || pc != category {
					continue
				}
				if _, dup := seen[candidate.Hash]; dup {
					continue
				}
				seen[candidate.Hash] = struct{}{}
				matches = append(matches, candidate)
			}
		}
		mods[s.Position] = matches
	}
	return mods, nil
}
