package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type MeleeAttackData struct {
	IsAttacking bool
	StartedAt   time.Time
	Swing       time.Duration
}

var MeleeAttack = donburi.NewComponentType[MeleeAttackData]()

// CooldownData holds the last use of each weapon slot.
type CooldownData struct {
	Melee   time.Time
	Ranged  time.Time
	Magical time.Time
}

var Cooldown = donburi.NewComponentType[CooldownData]()
