package inventory

import (
	"loadout-manager/core/destiny"
)

// fakeDefs is an in-memory Definitions.
type fakeDefs struct {
	items       map[uint32]*destiny.InventoryItemDefinition
	socketTypes map[uint32]*destiny.SocketTypeDefinition
	categories  map[uint32]*destiny.SocketCategoryDefinition
	damageTypes map[uint32]*destiny.DamageTypeDefinition
	energyTypes map[uint32]*destiny.EnergyTypeDefinition
	stats       map[uint32]*destiny.StatDefinition
}

func newFakeDefs() *fakeDefs {
	return &fakeDefs{
		items:       make(map[uint32]*destiny.InventoryItemDefinition),
		socketTypes: make(map[uint32]*destiny.SocketTypeDefinition),
		categories:  make(map[uint32]*destiny.SocketCategoryDefinition),
		damageTypes: make(map[uint32]*destiny.DamageTypeDefinition),
		energyTypes: make(map[uint32]*destiny.EnergyTypeDefinition),
		stats:       make(map[uint32]*destiny.StatDefinition),
	}
}

func get[T any](m map[uint32]*T, hash uint32) (*T, bool) {
	v, ok := m[hash]
	return v, ok
}

func (f *fakeDefs) InventoryItem(h uint32) (*destiny.InventoryItemDefinition, bool) {
	return get(f.items, h)
}

func (f *fakeDefs) SocketType(h uint32) (*destiny.SocketTypeDefinition, bool) {
	return get(f.socketTypes, h)
}

func (f *fakeDefs) SocketCategory(h uint32) (*destiny.SocketCategoryDefinition, bool) {
	return get(f.categories, h)
}

func (f *fakeDefs) DamageType(h uint32) (*destiny.DamageTypeDefinition, bool) {
	return get(f.damageTypes, h)
}

func (f *fakeDefs) EnergyType(h uint32) (*destiny.EnergyTypeDefinition, bool) {
	return get(f.energyTypes, h)
}

func (f *fakeDefs) Stat(h uint32) (*destiny.StatDefinition, bool) {
	return get(f.stats, h)
}

func (f *fakeDefs) addItem(def destiny.InventoryItemDefinition) {
	f.items[def.Hash] = &def
}

func (f *fakeDefs) addPlug(hash uint32, name string, plugCategory uint32) {
	f.addItem(destiny.InventoryItemDefinition{
		Hash:              hash,
		DisplayProperties: destiny.DisplayProperties{Name: name, Icon: "/icons/" + name + ".png", Description: name + " description"},
		ItemType:          destiny.ItemTypeMod,
		ClassType:         destiny.ClassUnknown,
		Plug:              &destiny.ItemPlugBlock{PlugCategoryHash: plugCategory},
	})
}

func (f *fakeDefs) addSocketType(hash uint32, category destiny.SocketCategoryHash, whitelist ...uint32) {
	st := &destiny.SocketTypeDefinition{Hash: hash, SocketCategoryHash: uint32(category)}
	for _, w := range whitelist {
		st.PlugWhitelist = append(st.PlugWhitelist, destiny.PlugWhitelistEntry{CategoryHash: w})
	}
	f.socketTypes[hash] = st
	f.categories[uint32(category)] = &destiny.SocketCategoryDefinition{Hash: uint32(category)}
}

const (
	hashAce        uint32 = 100
	hashHelmet     uint32 = 200
	hashHunterSub  uint32 = 300
	hashTitanSub   uint32 = 301
	hashUnknown    uint32 = 302
	hashOrnament   uint32 = 400
	hashModA       uint32 = 500
	hashModB       uint32 = 501
	hashOtherMod   uint32 = 502
	hashPerk       uint32 = 600
	hashPerkAlt    uint32 = 601
	hashIntrinsic  uint32 = 602
	hashDamageKin  uint32 = 3373582085
	hashEnergyArc  uint32 = 728351493
	hashStatImpact uint32 = 4043523819
	hashStatRange  uint32 = 1240592695

	socketTypePerk      uint32 = 10
	socketTypeMod       uint32 = 11
	socketTypeIntrinsic uint32 = 12
	socketTypeArmorMod  uint32 = 13

	plugSetOrnaments uint32 = 9000
	plugSetRandom    uint32 = 9001

	characterTitan  = "2305843009000000001"
	characterHunter = "2305843009000000002"
)

// newFixtureDefs builds a manifest with one exotic weapon carrying an
// intrinsic, a perk and a mod socket, an armor piece, two subclasses, an
// ornament and three mods.
func newFixtureDefs() *fakeDefs {
	f := newFakeDefs()

	f.addSocketType(socketTypeIntrinsic, destiny.SocketCategoryIntrinsicTraits)
	f.addSocketType(socketTypePerk, destiny.SocketCategoryWeaponPerks)
	f.addSocketType(socketTypeMod, destiny.SocketCategoryWeaponMods, 50)
	f.addSocketType(socketTypeArmorMod, destiny.SocketCategoryArmorMods, 51)

	f.addItem(destiny.InventoryItemDefinition{
		Hash:              hashAce,
		DisplayProperties: destiny.DisplayProperties{Name: "Ace of Spades", Icon: "/common/ace.jpg"},
		ItemType:          destiny.ItemTypeWeapon,
		ItemSubType:       destiny.ItemSubTypeHandCannon,
		ClassType:         destiny.ClassUnknown,
		Inventory:         &destiny.ItemInventoryBlock{TierType: destiny.TierTypeExotic, BucketTypeHash: destiny.BucketKinetic},
		Sockets: &destiny.ItemSocketBlock{SocketEntries: []destiny.SocketEntry{
			{SocketTypeHash: socketTypeIntrinsic},
			{SocketTypeHash: socketTypePerk, RandomizedPlugSetHash: plugSetRandom},
			{SocketTypeHash: socketTypeMod},
		}},
	})
	f.addItem(destiny.InventoryItemDefinition{
		Hash:              hashHelmet,
		DisplayProperties: destiny.DisplayProperties{Name: "Celestial Nighthawk", Icon: "/common/nighthawk.jpg"},
		ItemType:          destiny.ItemTypeArmor,
		ItemSubType:       destiny.ItemSubTypeHelmet,
		ClassType:         destiny.ClassHunter,
		Inventory:         &destiny.ItemInventoryBlock{TierType: destiny.TierTypeExotic, BucketTypeHash: destiny.BucketHelmet},
		Sockets: &destiny.ItemSocketBlock{SocketEntries: []destiny.SocketEntry{
			{SocketTypeHash: socketTypeArmorMod},
		}},
	})
	f.addItem(destiny.InventoryItemDefinition{
		Hash:              hashHunterSub,
		DisplayProperties: destiny.DisplayProperties{Name: "Nightstalker"},
		ItemType:          destiny.ItemTypeSubclass,
		ClassType:         destiny.ClassHunter,
		Inventory:         &destiny.ItemInventoryBlock{BucketTypeHash: destiny.BucketSubclass},
	})
	f.addItem(destiny.InventoryItemDefinition{
		Hash:              hashTitanSub,
		DisplayProperties: destiny.DisplayProperties{Name: "Striker"},
		ItemType:          destiny.ItemTypeSubclass,
		ClassType:         destiny.ClassTitan,
		Inventory:         &destiny.ItemInventoryBlock{BucketTypeHash: destiny.BucketSubclass},
	})

	f.addPlug(hashOrnament, "Ornament", 52)
	f.addPlug(hashModA, "Backup Mag", 50)
	f.addPlug(hashModB, "Freehand Grip", 50)
	f.addPlug(hashOtherMod, "Recovery Mod", 51)
	f.addPlug(hashPerk, "Outlaw", 7)
	f.addPlug(hashPerkAlt, "Rampage", 7)
	f.addPlug(hashIntrinsic, "Adaptive Frame", 8)

	f.damageTypes[hashDamageKin] = &destiny.DamageTypeDefinition{
		Hash:              hashDamageKin,
		DisplayProperties: destiny.DisplayProperties{Name: "Kinetic", Icon: "/img/kinetic.png", HasIcon: true},
		EnumValue:         destiny.DamageKinetic,
	}
	f.energyTypes[hashEnergyArc] = &destiny.EnergyTypeDefinition{
		Hash:              hashEnergyArc,
		DisplayProperties: destiny.DisplayProperties{Name: "Arc", Icon: "/img/arc.png", HasIcon: true},
	}
	f.stats[hashStatImpact] = &destiny.StatDefinition{Hash: hashStatImpact, DisplayProperties: destiny.DisplayProperties{Name: "Impact"}}
	f.stats[hashStatRange] = &destiny.StatDefinition{Hash: hashStatRange, DisplayProperties: destiny.DisplayProperties{Name: "Range"}}

	return f
}

// newFixtureSnapshot builds an account with two characters. The ace sits in
// the vault with live sockets; the hunter subclass is equipped and also
// listed as a currency, next to an uncatalogued currency.
func newFixtureSnapshot() *destiny.ProfileResponse {
	return &destiny.ProfileResponse{
		ProfileInventory: &destiny.ComponentResponse[destiny.InventoryComponent]{Data: destiny.InventoryComponent{Items: []destiny.ItemComponent{
			{ItemHash: hashAce, ItemInstanceID: "ace-1", Quantity: 1},
			{ItemHash: hashModA, Quantity: 1},
			{ItemHash: hashModB, Quantity: 1},
			{ItemHash: hashOtherMod, Quantity: 1},
		}}},
		ProfilePlugSets: &destiny.ComponentResponse[destiny.PlugSetsComponent]{Data: destiny.PlugSetsComponent{Plugs: map[string][]destiny.PlugSetEntry{
			"9000": {{PlugItemHash: hashOrnament, CanInsert: true, Enabled: true}},
		}}},
		Characters: &destiny.ComponentResponse[map[string]destiny.Character]{Data: map[string]destiny.Character{
			characterTitan:  {CharacterID: characterTitan, ClassType: destiny.ClassTitan},
			characterHunter: {CharacterID: characterHunter, ClassType: destiny.ClassHunter},
		}},
		CharacterInventories: &destiny.ComponentResponse[map[string]destiny.InventoryComponent]{Data: map[string]destiny.InventoryComponent{
			characterHunter: {Items: []destiny.ItemComponent{{ItemHash: hashHelmet, ItemInstanceID: "helmet-1", Quantity: 1}}},
			characterTitan:  {Items: []destiny.ItemComponent{{ItemHash: hashTitanSub, ItemInstanceID: "striker-1", Quantity: 1}}},
		}},
		CharacterEquipment: &destiny.ComponentResponse[map[string]destiny.InventoryComponent]{Data: map[string]destiny.InventoryComponent{
			characterHunter: {Items: []destiny.ItemComponent{{ItemHash: hashHunterSub, ItemInstanceID: "nightstalker-1", Quantity: 1}}},
		}},
		CharacterCurrencyLookups: &destiny.ComponentResponse[map[string]destiny.CurrenciesComponent]{Data: map[string]destiny.CurrenciesComponent{
			characterHunter: {ItemQuantities: map[string]int{"300": 1, "302": 5}},
		}},
		ItemComponents: &destiny.ItemComponentSet{
			Instances: &destiny.ComponentResponse[map[string]destiny.ItemInstance]{Data: map[string]destiny.ItemInstance{
				"ace-1":    {DamageType: destiny.DamageKinetic, DamageTypeHash: hashDamageKin, PrimaryStat: &destiny.Stat{StatHash: 1480404414, Value: 1810}},
				"helmet-1": {Energy: &destiny.ItemEnergy{EnergyTypeHash: hashEnergyArc, EnergyCapacity: 10}},
			}},
			Sockets: &destiny.ComponentResponse[map[string]destiny.ItemSockets]{Data: map[string]destiny.ItemSockets{
				"ace-1": {Sockets: []destiny.ItemSocketState{
					{PlugHash: hashIntrinsic, IsEnabled: true, IsVisible: true},
					{PlugHash: hashPerk, IsEnabled: true, IsVisible: true},
					{PlugHash: hashModA, IsEnabled: true, IsVisible: false},
				}},
				"helmet-1": {Sockets: []destiny.ItemSocketState{
					{PlugHash: hashOtherMod, IsEnabled: true, IsVisible: true},
				}},
			}},
			ReusablePlugs: &destiny.ComponentResponse[map[string]destiny.ItemReusablePlugs]{Data: map[string]destiny.ItemReusablePlugs{
				"ace-1": {Plugs: map[string][]destiny.PlugSetEntry{
					"1": {{PlugItemHash: hashPerk}, {PlugItemHash: hashPerkAlt}, {PlugItemHash: 999999}},
				}},
			}},
			Stats: &destiny.ComponentResponse[map[string]destiny.ItemStats]{Data: map[string]destiny.ItemStats{
				"ace-1": {Stats: map[string]destiny.Stat{
					"4043523819": {StatHash: hashStatImpact, Value: 84},
					"1240592695": {StatHash: hashStatRange, Value: 46},
					"1":          {StatHash: 1, Value: 3},
				}},
			}},
		},
	}
}
