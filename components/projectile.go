package components

import (
	"github.com/automoto/betrothed/weapon"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Weapon    *weapon.Weapon
	Speed     float64 // Unsigned; Facing gives the direction
	Facing    float64
	StartX    float64 // Range is measured from here
	Replicate bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
