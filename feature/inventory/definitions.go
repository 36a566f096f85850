package inventory

import (
	"loadout-manager/core/destiny"

	"go.uber.org/zap"
)

// Definitions resolves manifest references. *manifest.Store implements it.
type Definitions interface {
	InventoryItem(hash uint32) (*destiny.InventoryItemDefinition, bool)
	SocketType(hash uint32) (*destiny.SocketTypeDefinition, bool)
	SocketCategory(hash uint32) (*destiny.SocketCategoryDefinition, bool)
	DamageType(hash uint32) (*destiny.DamageTypeDefinition, bool)
	EnergyType(hash uint32) (*destiny.EnergyTypeDefinition, bool)
	Stat(hash uint32) (*destiny.StatDefinition, bool)
}

// tracedDefinitions logs every lookup miss at debug level.
type tracedDefinitions struct {
	defs   Definitions
	logger *zap.Logger
}

func traced[T any](l *zap.Logger, component string, hash uint32, def *T, ok bool) (*T, bool) {
	if !ok {
		l.Debug("Definition missing", zap.String("component", component), zap.Uint32("hash", hash))
	}
	return def, ok
}

func (t tracedDefinitions) InventoryItem(hash uint32) (*destiny.InventoryItemDefinition, bool) {
	def, ok := t.defs.InventoryItem(hash)
	return traced(t.logger, destiny.ComponentInventoryItem, hash, def, ok)
}

func (t tracedDefinitions) SocketType(hash uint32) (*destiny.SocketTypeDefinition, bool) {
	def, ok := t.defs.SocketType(hash)
	return traced(t.logger, destiny.ComponentSocketType, hash, def, ok)
}

func (t tracedDefinitions) SocketCategory(hash uint32) (*destiny.SocketCategoryDefinition, bool) {
	def, ok := t.defs.SocketCategory(hash)
	return traced(t.logger, destiny.ComponentSocketCategory, hash, def, ok)
}

func (t tracedDefinitions) DamageType(hash uint32) (*destiny.DamageTypeDefinition, bool) {
	def, ok := t.defs.DamageType(hash)
	return traced(t.logger, destiny.ComponentDamageType, hash, def, ok)
}

func (t tracedDefinitions) EnergyType(hash uint32) (*destiny.EnergyTypeDefinition, bool) {
	def, ok := t.defs.EnergyType(hash)
	return traced(t.logger, destiny.ComponentEnergyType, hash, def, ok)
}

func (t tracedDefinitions) Stat(hash uint32) (*destiny.StatDefinition, bool) {
	def, ok := t.defs.Stat(hash)
	return traced(t.logger, destiny.ComponentStat, hash, def, ok)
}
