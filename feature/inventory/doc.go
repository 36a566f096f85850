// Package inventory assembles a player's account snapshot into a queryable
// item collection.
//
// # Assembly
//
// NewItem captures one raw record with the instance components keyed by its
// instance id. populate resolves it against the manifest: content hash (item
// hash, else plug hash), display fields, exotic flag, slot, damage and energy
// types, stats keyed by display name, and one Socket per socket entry of the
// definition. A missing definition only leaves the dependent fields unset.
//
// A socket takes its category from the socket type, its equipped plug from
// the live socket state at the same index, its available plugs from the
// reusable plug list at that index, and its potential plugs from the
// randomized plug set of the entry.
//
// # Aggregation
//
// Manager.LoadInventory walks the snapshot sections in a fixed order:
//
//  1. vault ("vaulted")
//  2. character inventories ("character inventory")
//  3. character equipment, when present ("character equipped")
//  4. profile plug sets ("profile plug", flagged as ornaments)
//  5. character currency lookups ("currency lookup"), skipped when an item
//     with the same hash was already added
//
// LookupItems, GetAvailableSubclasses and GetModsForItem query the last
// loaded inventory. Ornaments never appear in lookup results.
//
// # HTTP
//
//	POST /inventory/:membershipType/:membershipId/load
//	GET  /inventory/:membershipType/:membershipId/items?type=&sub_type=&class=&slot=
//	GET  /inventory/:membershipType/:membershipId/items/:instanceId
//	GET  /inventory/:membershipType/:membershipId/items/:instanceId/mods
//	GET  /inventory/:membershipType/:membershipId/subclasses/:class
package inventory
