package level

import (
	"math"

	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/tags"
	"github.com/yohamta/donburi"
)

// updateProjectiles flies every projectile and drops those past their
// weapon range or inside a solid.
func updateProjectiles(l *Level) {
	var spent []*donburi.Entry
	tags.Projectile.Each(l.world, func(e *donburi.Entry) {
		pr := components.Projectile.Get(e)
		obj := components.Object.Get(e)

		r := obj.Rect()
		r.X += pr.Facing * pr.Speed * l.step
		obj.SetRect(r)

		if math.Abs(r.CenterX()-pr.StartX) > pr.Weapon.Range || len(l.solids(r)) > 0 {
			spent = append(spent, e)
		}
	})
	for _, e := range spent {
		l.remove(e)
	}
}

// traveled is how far the projectile has flown from its start.
func traveled(pr *components.ProjectileData, r float64) float64 {
	return math.Abs(r - pr.StartX)
}
