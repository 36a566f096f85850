package destiny

import (
	"fmt"
	"strconv"
	"strings"
)

// ItemType is the broad classification of an inventory item definition.
type ItemType int

const (
	ItemTypeNone             ItemType = 0
	ItemTypeCurrency         ItemType = 1
	ItemTypeArmor            ItemType = 2
	ItemTypeWeapon           ItemType = 3
	ItemTypeMessage          ItemType = 7
	ItemTypeEngram           ItemType = 8
	ItemTypeConsumable       ItemType = 9
	ItemTypeExchangeMaterial ItemType = 10
	ItemTypeMissionReward    ItemType = 11
	ItemTypeQuestStep        ItemType = 12
	ItemTypeEmblem           ItemType = 14
	ItemTypeQuest            ItemType = 15
	ItemTypeSubclass         ItemType = 16
	ItemTypeClanBanner       ItemType = 17
	ItemTypeAura             ItemType = 18
	ItemTypeMod              ItemType = 19
	ItemTypeShip             ItemType = 21
	ItemTypeVehicle          ItemType = 22
	ItemTypeEmote            ItemType = 23
	ItemTypeGhost            ItemType = 24
	ItemTypePackage          ItemType = 25
	ItemTypeBounty           ItemType = 26
	ItemTypeWrapper          ItemType = 27
	ItemTypeSeasonalArtifact ItemType = 28
	ItemTypeFinisher         ItemType = 29
	ItemTypePattern          ItemType = 30
)

var itemTypeNames = map[string]ItemType{
	"none":       ItemTypeNone,
	"currency":   ItemTypeCurrency,
	"armor":      ItemTypeArmor,
	"weapon":     ItemTypeWeapon,
	"engram":     ItemTypeEngram,
	"consumable": ItemTypeConsumable,
	"emblem":     ItemTypeEmblem,
	"quest":      ItemTypeQuest,
	"subclass":   ItemTypeSubclass,
	"mod":        ItemTypeMod,
	"ship":       ItemTypeShip,
	"vehicle":    ItemTypeVehicle,
	"emote":      ItemTypeEmote,
	"ghost":      ItemTypeGhost,
	"bounty":     ItemTypeBounty,
	"finisher":   ItemTypeFinisher,
}

// ItemSubType refines ItemType (weapon archetype, armor piece, ...).
type ItemSubType int

const (
	ItemSubTypeNone            ItemSubType = 0
	ItemSubTypeAutoRifle       ItemSubType = 6
	ItemSubTypeShotgun         ItemSubType = 7
	ItemSubTypeMachinegun      ItemSubType = 8
	ItemSubTypeHandCannon      ItemSubType = 9
	ItemSubTypeRocketLauncher  ItemSubType = 10
	ItemSubTypeFusionRifle     ItemSubType = 11
	ItemSubTypeSniperRifle     ItemSubType = 12
	ItemSubTypePulseRifle      ItemSubType = 13
	ItemSubTypeScoutRifle      ItemSubType = 14
	ItemSubTypeSidearm         ItemSubType = 17
	ItemSubTypeSword           ItemSubType = 18
	ItemSubTypeMask            ItemSubType = 19
	ItemSubTypeShader          ItemSubType = 20
	ItemSubTypeOrnament        ItemSubType = 21
	ItemSubTypeLinearFusion    ItemSubType = 22
	ItemSubTypeGrenadeLauncher ItemSubType = 23
	ItemSubTypeSubmachineGun   ItemSubType = 24
	ItemSubTypeTraceRifle      ItemSubType = 25
	ItemSubTypeHelmet          ItemSubType = 26
	ItemSubTypeGauntlets       ItemSubType = 27
	ItemSubTypeChest           ItemSubType = 28
	ItemSubTypeLeg             ItemSubType = 29
	ItemSubTypeClassItem       ItemSubType = 30
	ItemSubTypeBow             ItemSubType = 31
	ItemSubTypeGlaive          ItemSubType = 33
)

var itemSubTypeNames = map[string]ItemSubType{
	"none":             ItemSubTypeNone,
	"auto_rifle":       ItemSubTypeAutoRifle,
	"shotgun":          ItemSubTypeShotgun,
	"machinegun":       ItemSubTypeMachinegun,
	"hand_cannon":      ItemSubTypeHandCannon,
	"rocket_launcher":  ItemSubTypeRocketLauncher,
	"fusion_rifle":     ItemSubTypeFusionRifle,
	"sniper_rifle":     ItemSubTypeSniperRifle,
	"pulse_rifle":      ItemSubTypePulseRifle,
	"scout_rifle":      ItemSubTypeScoutRifle,
	"sidearm":          ItemSubTypeSidearm,
	"sword":            ItemSubTypeSword,
	"linear_fusion":    ItemSubTypeLinearFusion,
	"grenade_launcher": ItemSubTypeGrenadeLauncher,
	"submachine_gun":   ItemSubTypeSubmachineGun,
	"trace_rifle":      ItemSubTypeTraceRifle,
	"helmet":           ItemSubTypeHelmet,
	"gauntlets":        ItemSubTypeGauntlets,
	"chest":            ItemSubTypeChest,
	"leg":              ItemSubTypeLeg,
	"class_item":       ItemSubTypeClassItem,
	"bow":              ItemSubTypeBow,
	"glaive":           ItemSubTypeGlaive,
}

// ClassType is the character class an item is restricted to.
type ClassType int

const (
	ClassTitan   ClassType = 0
	ClassHunter  ClassType = 1
	ClassWarlock ClassType = 2
	ClassUnknown ClassType = 3
)

var classTypeNames = map[string]ClassType{
	"titan":   ClassTitan,
	"hunter":  ClassHunter,
	"warlock": ClassWarlock,
	"unknown": ClassUnknown,
}

func (c ClassType) String() string {
	for name, v := range classTypeNames {
		if v == c {
			return name
		}
	}
	return strconv.Itoa(int(c))
}

// DamageType is the element affinity enum carried on item instances.
type DamageType int

const (
	DamageNone    DamageType = 0
	DamageKinetic DamageType = 1
	DamageArc     DamageType = 2
	DamageThermal DamageType = 3
	DamageVoid    DamageType = 4
	DamageRaid    DamageType = 5
	DamageStasis  DamageType = 6
	DamageStrand  DamageType = 7
)

// BucketHash identifies an inventory bucket, which doubles as an equipment slot.
type BucketHash uint32

const (
	BucketSubclass      BucketHash = 3284755031
	BucketKinetic       BucketHash = 1498876634
	BucketEnergy        BucketHash = 2465295065
	BucketPower         BucketHash = 953998645
	BucketHelmet        BucketHash = 3448274439
	BucketGauntlets     BucketHash = 3551918588
	BucketChest         BucketHash = 14239492
	BucketLeg           BucketHash = 20886954
	BucketClassArmor    BucketHash = 1585787867
	BucketGhost         BucketHash = 4023194814
	BucketVehicle       BucketHash = 2025709351
	BucketShip          BucketHash = 284967655
	BucketEmblem        BucketHash = 4274335291
	BucketConsumables   BucketHash = 1469714392
	BucketModifications BucketHash = 3313201758
)

var bucketNames = map[string]BucketHash{
	"subclass":      BucketSubclass,
	"kinetic":       BucketKinetic,
	"energy":        BucketEnergy,
	"power":         BucketPower,
	"helmet":        BucketHelmet,
	"gauntlets":     BucketGauntlets,
	"chest":         BucketChest,
	"leg":           BucketLeg,
	"class_armor":   BucketClassArmor,
	"ghost":         BucketGhost,
	"vehicle":       BucketVehicle,
	"ship":          BucketShip,
	"emblem":        BucketEmblem,
	"consumables":   BucketConsumables,
	"modifications": BucketModifications,
}

// SocketCategoryHash identifies the well-known socket categories.
type SocketCategoryHash uint32

const (
	SocketCategoryWeaponPerks     SocketCategoryHash = 4241085061
	SocketCategoryWeaponMods      SocketCategoryHash = 2685412949
	SocketCategoryArmorPerks      SocketCategoryHash = 3154740035
	SocketCategoryArmorMods       SocketCategoryHash = 590099826
	SocketCategoryIntrinsicTraits SocketCategoryHash = 3956125808
)

// TierTypeExotic is the inventory tier type of exotic items.
const TierTypeExotic = 6

// ContentHost prefixes every icon path returned by the API.
const ContentHost = "https://www.bungie.net"

// IconURL turns a relative icon path into an absolute URL. Empty paths stay empty.
func IconURL(path string) string {
	if path == "" {
		return ""
	}
	return ContentHost + path
}

// ParseItemType parses a name ("weapon") or a numeric value ("3").
func ParseItemType(s string) (ItemType, error) {
	return parseEnum(s, "item type", itemTypeNames)
}

// ParseItemSubType parses a name ("hand_cannon") or a numeric value ("9").
func ParseItemSubType(s string) (ItemSubType, error) {
	return parseEnum(s, "item sub type", itemSubTypeNames)
}

// ParseClassType parses a name ("hunter") or a numeric value ("1").
func ParseClassType(s string) (ClassType, error) {
	return parseEnum(s, "class type", classTypeNames)
}

// ParseBucket parses a slot name ("subclass") or a raw bucket hash.
func ParseBucket(s string) (BucketHash, error) {
	return parseEnum(s, "slot", bucketNames)
}

func parseEnum[T ~int | ~uint32](s, kind string, names map[string]T) (T, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if v, ok := names[key]; ok {
		return v, nil
	}
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unknown %s %q", kind, s)
	}
	return T(n), nil
}
