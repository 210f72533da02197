package components

import (
	"time"

	"github.com/automoto/betrothed/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing  float64 // config.DirectionLeft or config.DirectionRight
	Status  config.StateID
	Running bool

	Invincible    bool
	HurtAt        time.Time
	InvincibleFor time.Duration

	LastSafeX float64 // Last position where player was safely grounded
	LastSafeY float64
}

var Player = donburi.NewComponentType[PlayerData]()
