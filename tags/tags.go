package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Terrain    = donburi.NewTag().SetName("Terrain")
	Barrier    = donburi.NewTag().SetName("Barrier")
	Border     = donburi.NewTag().SetName("Border")
	Decoration = donburi.NewTag().SetName("Decoration")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Energy     = donburi.NewTag().SetName("Energy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Particle   = donburi.NewTag().SetName("Particle")
	EndMarker  = donburi.NewTag().SetName("EndMarker")
	MapNode    = donburi.NewTag().SetName("MapNode")
)

// Resolv tags for collision queries
const (
	ResolvSolid      = "solid"
	ResolvBorder     = "border"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvEnergy     = "energy"
	ResolvProjectile = "projectile"
	ResolvEnd        = "end"
)
