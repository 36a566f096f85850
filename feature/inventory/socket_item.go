package inventory

import (
	"loadout-manager/core/destiny"

	"github.com/goccy/go-json"
)

// SocketItem is the display projection of a plug definition.
type SocketItem struct {
	Hash    uint32
	Name    string
	IconURL string

	definition *destiny.InventoryItemDefinition
}

func newSocketItem(def *destiny.InventoryItemDefinition) *SocketItem {
	return &SocketItem{
		Hash:       def.Hash,
		Name:       def.DisplayProperties.Name,
		IconURL:    destiny.IconURL(def.DisplayProperties.Icon),
		definition: def,
	}
}

// Description returns the plug's description text, empty when it has none.
func (s *SocketItem) Description() string {
	if s.definition == nil {
		return ""
	}
	return s.definition.DisplayProperties.Description
}

func (s *SocketItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Hash        uint32 `json:"hash"`
		Name        string `json:"name"`
		IconURL     string `json:"icon_url,omitempty"`
		Description string `json:"description,omitempty"`
	}{s.Hash, s.Name, s.IconURL, s.Description()})
}
