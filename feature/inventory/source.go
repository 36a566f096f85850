package inventory

// Source records which snapshot section an item came from.
type Source string

// Snapshot sections, in processing order.
const (
	SourceVaulted            Source = "vaulted"
	SourceCharacterInventory Source = "character inventory"
	SourceCharacterEquipped  Source = "character equipped"
	SourceProfilePlug        Source = "profile plug"
	SourceCurrencyLookup     Source = "currency lookup"
)
