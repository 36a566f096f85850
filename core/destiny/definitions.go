package destiny

// Manifest component names used by the inventory assembler.
const (
	ComponentInventoryItem   = "DestinyInventoryItemDefinition"
	ComponentSocketType      = "DestinySocketTypeDefinition"
	ComponentSocketCategory  = "DestinySocketCategoryDefinition"
	ComponentDamageType      = "DestinyDamageTypeDefinition"
	ComponentEnergyType      = "DestinyEnergyTypeDefinition"
	ComponentStat            = "DestinyStatDefinition"
	ComponentInventoryBucket = "DestinyInventoryBucketDefinition"
)

// DefaultComponents is the set of manifest components the assembler resolves against.
var DefaultComponents = []string{
	ComponentInventoryItem,
	ComponentSocketType,
	ComponentSocketCategory,
	ComponentDamageType,
	ComponentEnergyType,
	ComponentStat,
	ComponentInventoryBucket,
}

// DisplayProperties is the common display block of every definition.
type DisplayProperties struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	HasIcon     bool   `json:"hasIcon"`
}

// InventoryItemDefinition describes an item or plug.
type InventoryItemDefinition struct {
	Hash              uint32              `json:"hash"`
	Index             int                 `json:"index"`
	Redacted          bool                `json:"redacted"`
	DisplayProperties DisplayProperties   `json:"displayProperties"`
	ItemTypeName      string              `json:"itemTypeDisplayName"`
	ItemType          ItemType            `json:"itemType"`
	ItemSubType       ItemSubType         `json:"itemSubType"`
	ClassType         ClassType           `json:"classType"`
	Inventory         *ItemInventoryBlock `json:"inventory,omitempty"`
	Sockets           *ItemSocketBlock    `json:"sockets,omitempty"`
	Plug              *ItemPlugBlock      `json:"plug,omitempty"`
}

// ItemInventoryBlock holds the inventory placement and rarity of an item.
type ItemInventoryBlock struct {
	TierType       int        `json:"tierType"`
	TierTypeName   string     `json:"tierTypeName"`
	BucketTypeHash BucketHash `json:"bucketTypeHash"`
	MaxStackSize   int        `json:"maxStackSize"`
}

// ItemSocketBlock lists the socket entries of an item definition, in socket order.
type ItemSocketBlock struct {
	SocketEntries []SocketEntry `json:"socketEntries"`
}

// SocketEntry is one socket declared by an item definition.
type SocketEntry struct {
	SocketTypeHash        uint32 `json:"socketTypeHash"`
	SingleInitialItemHash uint32 `json:"singleInitialItemHash"`
	ReusablePlugSetHash   uint32 `json:"reusablePlugSetHash,omitempty"`
	RandomizedPlugSetHash uint32 `json:"randomizedPlugSetHash,omitempty"`
}

// ItemPlugBlock is present on items that can be inserted into sockets.
type ItemPlugBlock struct {
	PlugCategoryHash       uint32 `json:"plugCategoryHash"`
	PlugCategoryIdentifier string `json:"plugCategoryIdentifier"`
}

// SocketTypeDefinition classifies a socket and lists which plug categories fit it.
type SocketTypeDefinition struct {
	Hash               uint32               `json:"hash"`
	SocketCategoryHash uint32               `json:"socketCategoryHash"`
	PlugWhitelist      []PlugWhitelistEntry `json:"plugWhitelist"`
}

// PlugWhitelistEntry names one plug category accepted by a socket type.
type PlugWhitelistEntry struct {
	CategoryHash       uint32 `json:"categoryHash"`
	CategoryIdentifier string `json:"categoryIdentifier"`
}

// SocketCategoryDefinition groups socket types (perks, mods, intrinsic traits, ...).
type SocketCategoryDefinition struct {
	Hash              uint32            `json:"hash"`
	DisplayProperties DisplayProperties `json:"displayProperties"`
	CategoryStyle     int               `json:"categoryStyle"`
}

// DamageTypeDefinition describes a weapon element.
type DamageTypeDefinition struct {
	Hash              uint32            `json:"hash"`
	DisplayProperties DisplayProperties `json:"displayProperties"`
	EnumValue         DamageType        `json:"enumValue"`
}

// EnergyTypeDefinition describes an armor energy affinity.
type EnergyTypeDefinition struct {
	Hash              uint32            `json:"hash"`
	DisplayProperties DisplayProperties `json:"displayProperties"`
	EnumValue         int               `json:"enumValue"`
}

// StatDefinition describes a stat shown on items.
type StatDefinition struct {
	Hash              uint32            `json:"hash"`
	DisplayProperties DisplayProperties `json:"displayProperties"`
}

// InventoryBucketDefinition describes an inventory bucket (slot).
type InventoryBucketDefinition struct {
	Hash              uint32            `json:"hash"`
	DisplayProperties DisplayProperties `json:"displayProperties"`
	Category          int               `json:"category"`
	ItemCount         int               `json:"itemCount"`
}
