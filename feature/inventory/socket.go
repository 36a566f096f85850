package inventory

import (
	"strconv"

	"loadout-manager/core/destiny"
)

// Socket is one modification slot of an item.
type Socket struct {
	// Position is the index of the socket entry in the item definition.
	Position int `json:"position"`
	// CategoryHash is the socket category, 0 when unresolved.
	CategoryHash destiny.SocketCategoryHash `json:"category_hash,omitempty"`
	// EquippedPlug is the plug currently inserted.
	EquippedPlug *SocketItem `json:"equipped_plug,omitempty"`
	// AvailablePlugs are the plugs the owner can swap in.
	AvailablePlugs []*SocketItem `json:"available_plugs,omitempty"`
	// PotentialPlugs are the plugs the socket's randomized plug set can roll.
	PotentialPlugs []*SocketItem `json:"potential_plugs,omitempty"`

	meta socketMeta
}

type socketMeta struct {
	entry    destiny.SocketEntry
	typeDef  *destiny.SocketTypeDefinition
	category *destiny.SocketCategoryDefinition
	state    *destiny.ItemSocketState
	plugSet  []destiny.PlugSetEntry
}

// Whitelist returns the plug category hashes the socket accepts.
func (s *Socket) Whitelist() []uint32 {
	if s.meta.typeDef == nil {
		return nil
	}
	hashes := make([]uint32, 0, len(s.meta.typeDef.PlugWhitelist))
	for _, w := range s.meta.typeDef.PlugWhitelist {
		hashes = append(hashes, w.CategoryHash)
	}
	return hashes
}

// IsVisible reports whether the live socket state marks the socket visible.
func (s *Socket) IsVisible() bool {
	return s.meta.state != nil && s.meta.state.IsVisible
}

func (s *Socket) inCategory(category destiny.SocketCategoryHash) bool {
	return s.meta.category != nil && s.CategoryHash == category
}

// buildSocket assembles the socket at entry index idx. Lookup misses leave
// the dependent field unset; the socket itself is always returned.
func buildSocket(idx int, entry destiny.SocketEntry, meta *itemMeta, defs Definitions, plugSets *destiny.PlugSetsComponent) *Socket {
	socket := &Socket{
		Position: idx,
		meta:     socketMeta{entry: entry},
	}

	if typeDef, ok := defs.SocketType(entry.SocketTypeHash); ok {
		socket.meta.typeDef = typeDef
		if category, ok := defs.SocketCategory(typeDef.SocketCategoryHash); ok {
			socket.meta.category = category
			socket.CategoryHash = destiny.SocketCategoryHash(category.Hash)
		}
	}

	if idx < len(meta.sockets) {
		state := &meta.sockets[idx]
		socket.meta.state = state
		if state.PlugHash != 0 {
			if plug, ok := defs.InventoryItem(state.PlugHash); ok {
				socket.EquippedPlug = newSocketItem(plug)
			}
		}
		if entries, ok := meta.reusablePlugs[strconv.Itoa(idx)]; ok {
			socket.AvailablePlugs = resolvePlugs(entries, defs)
		}
	}

	if entry.RandomizedPlugSetHash != 0 {
		if entries, ok := plugSets.Entries(entry.RandomizedPlugSetHash); ok {
			socket.meta.plugSet = entries
			socket.PotentialPlugs = resolvePlugs(entries, defs)
		}
	}

	return socket
}

// resolvePlugs projects plug entries, skipping those without a definition.
func resolvePlugs(entries []destiny.PlugSetEntry, defs Definitions) []*SocketItem {
	plugs := make([]*SocketItem, 0, len(entries))
	for _, e := range entries {
		if def, ok := defs.InventoryItem(e.PlugItemHash); ok {
			plugs = append(plugs, newSocketItem(def))
		}
	}
	return plugs
}
