package level

import (
	"time"

	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/tags"
	"github.com/yohamta/donburi"
)

// Pause freezes the simulation at now.
func (l *Level) Pause(now time.Time) {
	if l.paused {
		return
	}
	l.paused = true
	l.pausedAt = now
	l.log.Debug("Paused")
}

// Resume restarts the simulation. Every stored timestamp moves forward by
// the time spent paused, so no timer runs out while the game is frozen.
func (l *Level) Resume(now time.Time) {
	if !l.paused {
		return
	}
	l.paused = false
	d := now.Sub(l.pausedAt)
	if d <= 0 {
		return
	}
	l.shiftTimers(d)
	l.now = l.now.Add(d)
	l.log.WithField("paused_for", d).Debug("Resumed")
}

// Paused reports whether the simulation is frozen.
func (l *Level) Paused() bool { return l.paused }

func (l *Level) shiftTimers(d time.Duration) {
	p := components.Player.Get(l.player)
	shift(&p.HurtAt, d)

	m := components.MeleeAttack.Get(l.player)
	shift(&m.StartedAt, d)

	cd := components.Cooldown.Get(l.player)
	shift(&cd.Melee, d)
	shift(&cd.Ranged, d)
	shift(&cd.Magical, d)

	tags.Enemy.Each(l.world, func(e *donburi.Entry) {
		shift(&components.Enemy.Get(e).HurtAt, d)
	})

	if l.end != nil {
		shift(&components.EndMarker.Get(l.end).ReachedAt, d)
	}
}

// shift moves a set timestamp; unset ones stay zero.
func shift(t *time.Time, d time.Duration) {
	if !t.IsZero() {
		*t = t.Add(d)
	}
}
