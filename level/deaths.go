package level

import (
	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/rules"
	"github.com/automoto/betrothed/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// sweepEnemyDeaths removes enemies with no health left and pays out their
// energy, reduced on farmed levels.
func sweepEnemyDeaths(l *Level) {
	var dead []*donburi.Entry
	tags.Enemy.Each(l.world, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Health <= 0 {
			dead = append(dead, e)
		}
	})
	for _, e := range dead {
		en := components.Enemy.Get(e)
		r := components.Object.Get(e).Rect()
		reward := rules.EnemyReward(en.Energy, en.Toughness, l.farmed)
		name := en.TypeConfig.Name

		l.createParticle(config.ParticleEnemyDeath, r.CenterX(), r.Bottom(), en.Speed < 0)
		l.remove(e)
		l.host.UpdateEnergy(reward, true)

		l.log.WithFields(logrus.Fields{
			"enemy":  name,
			"reward": reward,
		}).Debug("Enemy killed")
	}
}

// checkFallDeath catches a player who fell far below the level. The fall
// costs health and energy, and the player returns to the last safe ground.
func checkFallDeath(l *Level) {
	obj := components.Object.Get(l.player)
	if obj.Y <= config.LevelFlow.FallDeathScreens*float64(config.Screen.Height) {
		return
	}
	p := components.Player.Get(l.player)
	ph := components.Physics.Get(l.player)

	l.TakeDamage(config.Economy.FallDamage, rules.Pure)
	l.host.UpdateEnergy(rules.FallEnergyLoss(l.rng), false)
	l.host.ResetEnergyOverflow()

	r := obj.Rect()
	r.X, r.Y = p.LastSafeX, p.LastSafeY
	obj.SetRect(r)
	ph.Direction.Y = 0
	ph.Jumping = false
	l.centerCamera()

	l.log.WithFields(logrus.Fields{
		"x": r.X,
		"y": r.Y,
	}).Info("Player fell, respawning")
}
