package components

import (
	"time"

	"github.com/automoto/betrothed/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Type       int
	TypeConfig *config.EnemyTypeConfig

	Speed       float64 // Signed; the sign is the facing
	Health      float64
	Damage      float64
	Energy      int
	Toughness   int
	Resistances [3]int // Indexed by weapon.Kind

	Invincible bool
	HurtAt     time.Time
	StunFor    time.Duration
}

var Enemy = donburi.NewComponentType[EnemyData]()
