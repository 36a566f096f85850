package destiny

import "strconv"

// ComponentType selects a section of the profile snapshot.
type ComponentType int

const (
	ComponentProfiles             ComponentType = 100
	ComponentProfileInventories   ComponentType = 102
	ComponentProfileCurrencies    ComponentType = 103
	ComponentCharacters           ComponentType = 200
	ComponentCharacterInventories ComponentType = 201
	ComponentCharacterEquipment   ComponentType = 205
	ComponentItemInstances        ComponentType = 300
	ComponentItemPerks            ComponentType = 302
	ComponentItemStats            ComponentType = 304
	ComponentItemSockets          ComponentType = 305
	ComponentItemReusablePlugs    ComponentType = 310
	ComponentCurrencyLookups      ComponentType = 600
)

// InventoryComponents is the selector set needed to assemble a full inventory.
var InventoryComponents = []ComponentType{
	ComponentProfiles,
	ComponentProfileInventories,
	ComponentCharacters,
	ComponentCharacterInventories,
	ComponentCharacterEquipment,
	ComponentItemInstances,
	ComponentItemPerks,
	ComponentItemStats,
	ComponentItemSockets,
	ComponentItemReusablePlugs,
	ComponentCurrencyLookups,
}

// AccountRef identifies a Destiny account on a platform.
type AccountRef struct {
	MembershipType int    `json:"membershipType"`
	MembershipID   string `json:"membershipId"`
}

// ComponentResponse wraps the data of one snapshot section.
type ComponentResponse[T any] struct {
	Data    T   `json:"data"`
	Privacy int `json:"privacy"`
}

// ProfileResponse is a raw account snapshot. Every section is optional.
type ProfileResponse struct {
	ProfileInventory         *ComponentResponse[InventoryComponent]             `json:"profileInventory,omitempty"`
	ProfilePlugSets          *ComponentResponse[PlugSetsComponent]              `json:"profilePlugSets,omitempty"`
	Characters               *ComponentResponse[map[string]Character]           `json:"characters,omitempty"`
	CharacterInventories     *ComponentResponse[map[string]InventoryComponent]  `json:"characterInventories,omitempty"`
	CharacterEquipment       *ComponentResponse[map[string]InventoryComponent]  `json:"characterEquipment,omitempty"`
	CharacterPlugSets        *ComponentResponse[map[string]PlugSetsComponent]   `json:"characterPlugSets,omitempty"`
	CharacterCurrencyLookups *ComponentResponse[map[string]CurrenciesComponent] `json:"characterCurrencyLookups,omitempty"`
	ItemComponents           *ItemComponentSet                                  `json:"itemComponents,omitempty"`
}

// InventoryComponent is a list of items in a bucket set (vault, character, equipment).
type InventoryComponent struct {
	Items []ItemComponent `json:"items"`
}

// ItemComponent is one owned item as listed in an inventory section.
type ItemComponent struct {
	ItemHash       uint32 `json:"itemHash"`
	ItemInstanceID string `json:"itemInstanceId,omitempty"`
	Quantity       int    `json:"quantity"`
	BucketHash     uint32 `json:"bucketHash"`
	Location       int    `json:"location"`
	State          int    `json:"state"`
}

// Record converts the item component into an assembler input record.
func (c ItemComponent) Record() Record {
	return Record{
		ItemHash:       c.ItemHash,
		ItemInstanceID: c.ItemInstanceID,
		Quantity:       c.Quantity,
	}
}

// PlugSetsComponent maps a plug set hash to its plug options.
type PlugSetsComponent struct {
	Plugs map[string][]PlugSetEntry `json:"plugs"`
}

// Entries returns the plug options of the plug set with the given hash.
func (c *PlugSetsComponent) Entries(plugSetHash uint32) ([]PlugSetEntry, bool) {
	if c == nil || c.Plugs == nil {
		return nil, false
	}
	entries, ok := c.Plugs[strconv.FormatUint(uint64(plugSetHash), 10)]
	return entries, ok
}

// PlugSetEntry is a single plug option of a plug set or reusable plug list.
type PlugSetEntry struct {
	PlugItemHash uint32 `json:"plugItemHash"`
	CanInsert    bool   `json:"canInsert"`
	Enabled      bool   `json:"enabled"`
}

// Record converts the plug entry into an assembler input record.
func (e PlugSetEntry) Record() Record {
	return Record{PlugItemHash: e.PlugItemHash}
}

// CurrenciesComponent holds currency quantities keyed by item hash.
type CurrenciesComponent struct {
	ItemQuantities map[string]int `json:"itemQuantities"`
}

// Character is the summary of one character on the account.
type Character struct {
	CharacterID    string    `json:"characterId"`
	MembershipID   string    `json:"membershipId"`
	MembershipType int       `json:"membershipType"`
	ClassType      ClassType `json:"classType"`
	RaceType       int       `json:"raceType"`
	GenderType     int       `json:"genderType"`
	Light          int       `json:"light"`
	EmblemPath     string    `json:"emblemPath"`
	DateLastPlayed string    `json:"dateLastPlayed"`
}

// ItemComponentSet holds the per-instance collections keyed by item instance id.
type ItemComponentSet struct {
	Instances     *ComponentResponse[map[string]ItemInstance]      `json:"instances,omitempty"`
	Perks         *ComponentResponse[map[string]ItemPerks]         `json:"perks,omitempty"`
	Sockets       *ComponentResponse[map[string]ItemSockets]       `json:"sockets,omitempty"`
	ReusablePlugs *ComponentResponse[map[string]ItemReusablePlugs] `json:"reusablePlugs,omitempty"`
	Stats         *ComponentResponse[map[string]ItemStats]         `json:"stats,omitempty"`
}

// ItemInstance is the per-copy state of an instanced item.
type ItemInstance struct {
	DamageType     DamageType  `json:"damageType"`
	DamageTypeHash uint32      `json:"damageTypeHash"`
	PrimaryStat    *Stat       `json:"primaryStat,omitempty"`
	ItemLevel      int         `json:"itemLevel"`
	Quality        int         `json:"quality"`
	IsEquipped     bool        `json:"isEquipped"`
	CanEquip       bool        `json:"canEquip"`
	Energy         *ItemEnergy `json:"energy,omitempty"`
}

// ItemEnergy is the energy block of armor instances.
type ItemEnergy struct {
	EnergyTypeHash uint32 `json:"energyTypeHash"`
	EnergyType     int    `json:"energyType"`
	EnergyCapacity int    `json:"energyCapacity"`
	EnergyUsed     int    `json:"energyUsed"`
	EnergyUnused   int    `json:"energyUnused"`
}

// Stat is a stat hash and its value.
type Stat struct {
	StatHash uint32 `json:"statHash"`
	Value    int    `json:"value"`
}

// ItemPerks lists the perks active on an instance.
type ItemPerks struct {
	Perks []Perk `json:"perks"`
}

// Perk is one perk on an item instance.
type Perk struct {
	PerkHash uint32 `json:"perkHash"`
	IconPath string `json:"iconPath"`
	IsActive bool   `json:"isActive"`
	Visible  bool   `json:"visible"`
}

// ItemSockets lists the live socket state of an instance, in socket order.
type ItemSockets struct {
	Sockets []ItemSocketState `json:"sockets"`
}

// ItemSocketState is the plug currently inserted into a socket.
type ItemSocketState struct {
	PlugHash  uint32 `json:"plugHash"`
	IsEnabled bool   `json:"isEnabled"`
	IsVisible bool   `json:"isVisible"`
}

// ItemReusablePlugs maps a socket index to the plugs that can be swapped into it.
type ItemReusablePlugs struct {
	Plugs map[string][]PlugSetEntry `json:"plugs"`
}

// ItemStats maps a stat hash to its value on an instance.
type ItemStats struct {
	Stats map[string]Stat `json:"stats"`
}

// Record is the raw input of one assembled entity: an inventory item or a plug.
// At least one of ItemHash or PlugItemHash identifies the content.
type Record struct {
	ItemHash       uint32
	PlugItemHash   uint32
	ItemInstanceID string
	Quantity       int
}
