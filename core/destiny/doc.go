// Package destiny holds the typed records exchanged with the Destiny 2 platform.
//
// The remote API returns loosely shaped JSON. This package pins every section the
// rest of the application reads to an explicit Go type so that lookups and
// optional fields are handled at compile time rather than by probing maps.
//
// # Manifest Definitions
//
// Static content ("the manifest") is split into named components. Each component
// maps a content hash to a definition record. The definitions declared here only
// carry the fields the inventory assembler resolves:
//   - InventoryItemDefinition: display block, classification, inventory and socket blocks
//   - SocketTypeDefinition / SocketCategoryDefinition: socket classification and plug whitelist
//   - DamageTypeDefinition / EnergyTypeDefinition: element affinity
//   - StatDefinition: stat display names
//   - InventoryBucketDefinition: slot names
//
// # Profile Snapshot
//
// ProfileResponse is a single point-in-time account snapshot. Every section is
// optional (nil when the component was not requested or is private).
//
// # Errors
//
// ErrRemoteUnavailable is the only remote failure surfaced to callers. Use
// errors.Is to test for it; RemoteError carries the failed operation.
package destiny
