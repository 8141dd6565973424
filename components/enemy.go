package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	AttackPower int
	OriginX     float64
	// Patrol yields the X offset from OriginX; nil for enemies that stand still.
	Patrol *gween.Sequence
}

var Enemy = donburi.NewComponentType[EnemyData]()
