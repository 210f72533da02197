package level

import (
	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/rules"
	"github.com/automoto/betrothed/tags"
	"github.com/automoto/betrothed/weapon"
	"github.com/yohamta/donburi"
)

// updateCombat resolves player against enemies, then the melee swing, then
// projectiles.
func updateCombat(l *Level) {
	playerVersusEnemies(l)
	meleeVersusEnemies(l)
	projectilesVersusEnemies(l)
}

func playerVersusEnemies(l *Level) {
	p := components.Player.Get(l.player)
	ph := components.Physics.Get(l.player)
	pr := l.PlayerRect()

	for _, e := range l.entries(pr, tags.ResolvEnemy) {
		en := components.Enemy.Get(e)
		if rules.IsStomp(pr, components.Object.Get(e).Rect(), ph.Direction.Y) {
			en.Health -= config.Combat.StompDamage
			ph.Direction.Y = config.Player.JumpHeight / 2
			p.Invincible = true
			p.HurtAt = l.now
			p.InvincibleFor = config.Player.StompInvincibility
			if rules.StompBackfire(l.rng) {
				l.TakeDamage(rules.StompBackfireDamage(en.Damage), rules.Pure)
			}
			continue
		}
		l.TakeDamage(en.Damage, rules.Physical)
	}
}

func meleeVersusEnemies(l *Level) {
	hit, ok := l.meleeRect()
	if !ok {
		return
	}
	w := l.loadout.Selected(weapon.Melee)
	for _, e := range l.entries(hit, tags.ResolvEnemy) {
		en := components.Enemy.Get(e)
		if en.Invincible {
			continue
		}
		l.strike(en, w)
	}
}

// strike applies one hit from w, scaled by the enemy's resistance.
func (l *Level) strike(en *components.EnemyData, w *weapon.Weapon) {
	en.Health -= rules.EffectiveDamage(w.DamageAt(), en.Resistances[w.Kind])
	en.Invincible = true
	en.HurtAt = l.now
	en.StunFor = rules.StunDuration(l.rng, w.Cooldown)
}

type projectileHit struct {
	projectile *donburi.Entry
	enemy      *donburi.Entry
}

// projectilesVersusEnemies lets each projectile damage the first enemy it
// overlaps and then disappear. Projectiles ignore hit invincibility.
func projectilesVersusEnemies(l *Level) {
	var hits []projectileHit
	tags.Projectile.Each(l.world, func(e *donburi.Entry) {
		if enemies := l.entries(components.Object.Get(e).Rect(), tags.ResolvEnemy); len(enemies) > 0 {
			hits = append(hits, projectileHit{projectile: e, enemy: enemies[0]})
		}
	})

	for _, h := range hits {
		pr := *components.Projectile.Get(h.projectile)
		r := components.Object.Get(h.projectile).Rect()
		l.remove(h.projectile)

		en := components.Enemy.Get(h.enemy)
		alive := en.Health > 0
		l.strike(en, pr.Weapon)

		impactor := weapon.ImpactorFor(pr.Weapon)
		if impactor == nil {
			continue
		}
		impactor.OnImpact(weapon.Impact{
			Weapon:    pr.Weapon,
			Killed:    alive && en.Health <= 0,
			Replicate: pr.Replicate,
			X:         r.CenterX(),
			Y:         r.CenterY(),
			Facing:    pr.Facing,
			Traveled:  traveled(&pr, r.CenterX()),
		}, impactSink{l})
	}
}

// impactSink lets weapon effects reach into the level.
type impactSink struct{ l *Level }

func (s impactSink) Heal(amount float64) {
	s.l.host.UpdateHealth(amount, false)
}

func (s impactSink) SpawnReplica(x, y, facing, traveled float64) {
	w := s.l.loadout.Selected(weapon.Magical)
	if w == nil {
		return
	}
	s.l.createProjectile(w, x, y, facing, traveled, false)
}
