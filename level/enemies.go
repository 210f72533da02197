package level

import (
	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/tags"
	"github.com/yohamta/donburi"
)

// updateEnemies patrols every enemy and turns it around at borders.
// Enemies ignore gravity and terrain; borders alone bound their walk.
func updateEnemies(l *Level) {
	tags.Enemy.Each(l.world, func(e *donburi.Entry) {
		en := components.Enemy.Get(e)
		obj := components.Object.Get(e)

		if en.Invincible && l.now.Sub(en.HurtAt) >= config.Combat.EnemyHitReact {
			en.Invincible = false
		}

		r := obj.Rect()
		if !stunned(en, l) {
			r.X += en.Speed * l.step
		}
		// Only turn while heading into the border, so an enemy still
		// overlapping it after a turn does not flip back.
		for _, b := range l.query(r, tags.ResolvBorder) {
			center := b.X + b.W/2
			if (en.Speed > 0 && center > r.CenterX()) || (en.Speed < 0 && center < r.CenterX()) {
				en.Speed = -en.Speed
				break
			}
		}
		obj.SetRect(r)
	})
}

func stunned(en *components.EnemyData, l *Level) bool {
	return !en.HurtAt.IsZero() && l.now.Sub(en.HurtAt) < en.StunFor
}
