package manifest

// Config holds configuration for the manifest coordinator.
type Config struct {
	// Components lists the manifest components loaded at startup.
	Components []string `mapstructure:"components" default:"DestinyInventoryItemDefinition,DestinySocketTypeDefinition,DestinySocketCategoryDefinition,DestinyDamageTypeDefinition,DestinyEnergyTypeDefinition,DestinyStatDefinition,DestinyInventoryBucketDefinition"`
}
