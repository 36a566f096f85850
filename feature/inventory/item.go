package inventory

import (
	"sort"
	"strconv"

	"loadout-manager/core/destiny"

	"github.com/goccy/go-json"
)

// Item is one assembled inventory item or plug.
type Item struct {
	Hash        uint32              `json:"hash"`
	Name        string              `json:"name,omitempty"`
	IconURL     string              `json:"icon_url,omitempty"`
	ItemType    destiny.ItemType    `json:"item_type"`
	ItemSubType destiny.ItemSubType `json:"item_sub_type"`
	ClassType   destiny.ClassType   `json:"class_type"`
	DamageType  destiny.DamageType  `json:"damage_type"`
	Slot        destiny.BucketHash  `json:"slot,omitempty"`
	IsExotic    bool                `json:"is_exotic"`
	IsOrnament  bool                `json:"is_ornament"`
	IsVaulted   bool                `json:"is_vaulted"`
	Quantity    int                 `json:"quantity"`
	Sockets     []*Socket           `json:"sockets,omitempty"`
	Stats       map[string]int      `json:"stats,omitempty"`
	Location    *destiny.Character  `json:"location,omitempty"`

	meta itemMeta
}

// itemMeta keeps the raw fragments an item was assembled from.
type itemMeta struct {
	source        Source
	record        destiny.Record
	definition    *destiny.InventoryItemDefinition
	instance      *destiny.ItemInstance
	perks         []destiny.Perk
	sockets       []destiny.ItemSocketState
	reusablePlugs map[string][]destiny.PlugSetEntry
	stats         map[string]destiny.Stat
	damageType    *destiny.DamageTypeDefinition
	energyType    *destiny.EnergyTypeDefinition
}

// NewItem captures a raw record and the instance components matching its
// instance id. components may be nil. The item is unresolved until populate.
func NewItem(raw destiny.Record, components *destiny.ItemComponentSet, source Source) *Item {
	item := &Item{
		ClassType:  destiny.ClassUnknown,
		Quantity:   raw.Quantity,
		IsOrnament: source == SourceProfilePlug,
		IsVaulted:  source == SourceVaulted,
		meta: itemMeta{
			source: source,
			record: raw,
		},
	}

	id := raw.ItemInstanceID
	if components == nil || id == "" {
		return item
	}
	if c := components.Instances; c != nil {
		if v, ok := c.Data[id]; ok {
			item.meta.instance = &v
		}
	}
	if c := components.Perks; c != nil {
		if v, ok := c.Data[id]; ok {
			item.meta.perks = v.Perks
		}
	}
	if c := components.Sockets; c != nil {
		if v, ok := c.Data[id]; ok {
			item.meta.sockets = v.Sockets
		}
	}
	if c := components.ReusablePlugs; c != nil {
		if v, ok := c.Data[id]; ok {
			item.meta.reusablePlugs = v.Plugs
		}
	}
	if c := components.Stats; c != nil {
		if v, ok := c.Data[id]; ok {
			item.meta.stats = v.Stats
		}
	}
	return item
}

// populate resolves the item against the manifest. Missing definitions
// leave the dependent fields unset.
func (i *Item) populate(defs Definitions, plugSets *destiny.PlugSetsComponent) {
	i.Hash = i.meta.record.ItemHash
	if i.Hash == 0 {
		i.Hash = i.meta.record.PlugItemHash
	}

	def, ok := defs.InventoryItem(i.Hash)
	if !ok {
		return
	}
	i.meta.definition = def

	i.Name = def.DisplayProperties.Name
	i.IconURL = destiny.IconURL(def.DisplayProperties.Icon)
	i.ItemType = def.ItemType
	i.ItemSubType = def.ItemSubType
	i.ClassType = def.ClassType
	if def.Inventory != nil {
		i.IsExotic = def.Inventory.TierType == destiny.TierTypeExotic
		i.Slot = def.Inventory.BucketTypeHash
	}

	if inst := i.meta.instance; inst != nil {
		i.DamageType = inst.DamageType
		if inst.DamageTypeHash != 0 {
			if dt, ok := defs.DamageType(inst.DamageTypeHash); ok {
				i.meta.damageType = dt
				i.DamageType = dt.EnumValue
			}
		}
		if inst.Energy != nil {
			if et, ok := defs.EnergyType(inst.Energy.EnergyTypeHash); ok {
				i.meta.energyType = et
			}
		}
	}

	if i.meta.stats != nil {
		i.Stats = make(map[string]int, len(i.meta.stats))
		keys := make([]string, 0, len(i.meta.stats))
		for k := range i.meta.stats {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			stat := i.meta.stats[k]
			hash := stat.StatHash
			if hash == 0 {
				n, err := strconv.ParseUint(k, 10, 32)
				if err != nil {
					continue
				}
				hash = uint32(n)
			}
			// distinct stats may share a display name; the later one wins
			if sd, ok := defs.Stat(hash); ok {
				i.Stats[sd.DisplayProperties.Name] = stat.Value
			}
		}
	}

	if def.Sockets != nil {
		for idx, entry := range def.Sockets.SocketEntries {
			i.Sockets = append(i.Sockets, buildSocket(idx, entry, &i.meta, defs, plugSets))
		}
	}
}

// Source returns the snapshot section the item came from.
func (i *Item) Source() Source {
	return i.meta.source
}

// InstanceID returns the instance id, empty for non-instanced items.
func (i *Item) InstanceID() string {
	return i.meta.record.ItemInstanceID
}

// MarshalJSON adds the instance id and source, which key the item routes.
func (i *Item) MarshalJSON() ([]byte, error) {
	type fields Item
	return json.Marshal(struct {
		fields
		InstanceID string `json:"instance_id,omitempty"`
		Source     Source `json:"source"`
	}{fields(*i), i.InstanceID(), i.Source()})
}

// Power returns the primary stat value of an instanced item.
func (i *Item) Power() (int, bool) {
	if i.meta.instance == nil || i.meta.instance.PrimaryStat == nil {
		return 0, false
	}
	return i.meta.instance.PrimaryStat.Value, true
}

// DamageTypeDefinition returns the resolved damage type of the instance.
func (i *Item) DamageTypeDefinition() *destiny.DamageTypeDefinition {
	return i.meta.damageType
}

// AffinityIcon returns the damage type icon, or the energy type icon for
// armor. Empty when neither has one.
func (i *Item) AffinityIcon() string {
	if dt := i.meta.damageType; dt != nil && dt.DisplayProperties.HasIcon {
		return destiny.IconURL(dt.DisplayProperties.Icon)
	}
	if et := i.meta.energyType; et != nil && et.DisplayProperties.HasIcon {
		return destiny.IconURL(et.DisplayProperties.Icon)
	}
	return ""
}

// PlugCategoryHash returns the plug category of items that can be socketed.
func (i *Item) PlugCategoryHash() (uint32, bool) {
	if i.meta.definition == nil || i.meta.definition.Plug == nil {
		return 0, false
	}
	return i.meta.definition.Plug.PlugCategoryHash, true
}

// Perks returns the perks active on the instance.
func (i *Item) Perks() []destiny.Perk {
	return i.meta.perks
}

// IntrinsicTraits returns the visible equipped intrinsic plugs of a weapon.
func (i *Item) IntrinsicTraits() []*SocketItem {
	if i.ItemType != destiny.ItemTypeWeapon {
		return nil
	}
	return i.equippedIn(destiny.SocketCategoryIntrinsicTraits)
}

// PerkSockets returns the perk sockets of a weapon.
func (i *Item) PerkSockets() []*Socket {
	if i.ItemType != destiny.ItemTypeWeapon || i.Sockets == nil {
		return nil
	}
	return i.socketsIn(destiny.SocketCategoryWeaponPerks)
}

// EquippedPerks returns the visible equipped perk plugs of a weapon.
func (i *Item) EquippedPerks() []*SocketItem {
	if i.ItemType != destiny.ItemTypeWeapon {
		return nil
	}
	return i.equippedIn(destiny.SocketCategoryWeaponPerks)
}

// ModSockets returns the mod sockets of a weapon or armor piece.
func (i *Item) ModSockets() []*Socket {
	category, ok := i.modCategory()
	if !ok || i.Sockets == nil {
		return nil
	}
	return i.socketsIn(category)
}

// EquippedMods returns the visible equipped mod plugs of a weapon or armor piece.
func (i *Item) EquippedMods() []*SocketItem {
	category, ok := i.modCategory()
	if !ok {
		return nil
	}
	return i.equippedIn(category)
}

func (i *Item) modCategory() (destiny.SocketCategoryHash, bool) {
	switch i.ItemType {
	case destiny.ItemTypeWeapon:
		return destiny.SocketCategoryWeaponMods, true
	case destiny.ItemTypeArmor:
		return destiny.SocketCategoryArmorMods, true
	default:
		return 0, false
	}
}

func (i *Item) socketsIn(category destiny.SocketCategoryHash) []*Socket {
	sockets := make([]*Socket, 0)
	for _, s := range i.Sockets {
		if s.inCategory(category) {
			sockets = append(sockets, s)
		}
	}
	return sockets
}

func (i *Item) equippedIn(category destiny.SocketCategoryHash) []*SocketItem {
	plugs := make([]*SocketItem, 0)
	for _, s := range i.Sockets {
		if s.inCategory(category) && s.IsVisible() && s.EquippedPlug != nil {
			plugs = append(plugs, s.EquippedPlug)
		}
	}
	return plugs
}
