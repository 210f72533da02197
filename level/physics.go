package level

import (
	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/geom"
)

// updatePhysics moves the player horizontally and then vertically, resolving
// each axis against terrain and barriers before the next. Resolving X first
// keeps the player from slipping through inside corners.
func updatePhysics(l *Level) {
	p := components.Player.Get(l.player)
	ph := components.Physics.Get(l.player)
	obj := components.Object.Get(l.player)

	r := l.resolveX(obj.Rect(), ph.Direction.X*ph.Speed*l.step)

	wasOnGround := ph.OnGround
	ph.Direction.Y += config.Physics.Gravity * l.step
	r, landed := l.resolveY(r, ph)
	obj.SetRect(r)

	if landed {
		p.LastSafeX, p.LastSafeY = r.X, r.Y
		if !wasOnGround {
			l.createParticle(config.ParticleLand, r.CenterX(), r.Bottom(), p.Facing < 0)
		}
	}
	p.Status = playerStatus(ph)
}

// resolveX moves r by dx and pushes its leading edge back out of any solid.
func (l *Level) resolveX(r geom.Rect, dx float64) geom.Rect {
	if dx == 0 {
		return r
	}
	r.X += dx
	for _, t := range l.solids(r) {
		if dx > 0 {
			r.SetRight(min(r.Right(), t.Left()))
		} else {
			r.SetLeft(max(r.Left(), t.Right()))
		}
	}
	return r
}

// resolveY applies the vertical velocity and lands or bumps the head.
// It reports whether the player came to rest on a solid.
func (l *Level) resolveY(r geom.Rect, ph *components.PhysicsData) (geom.Rect, bool) {
	vy := ph.Direction.Y
	landed := false
	r.Y += vy * l.step
	for _, t := range l.solids(r) {
		if vy >= 0 {
			r.SetBottom(min(r.Bottom(), t.Top()))
			ph.Direction.Y = 0
			ph.OnGround = true
			ph.Jumping = false
			landed = true
		} else {
			r.SetTop(max(r.Top(), t.Bottom()))
			ph.Direction.Y = 0
		}
	}
	if ph.OnGround && (ph.Direction.Y < 0 || ph.Direction.Y > config.Player.OnGroundEpsilon) {
		ph.OnGround = false
	}
	return r, landed
}

func playerStatus(ph *components.PhysicsData) config.StateID {
	switch {
	case ph.Direction.Y < 0:
		return config.Jump
	case ph.Direction.Y > config.Player.OnGroundEpsilon:
		return config.Fall
	case ph.Direction.X != 0:
		return config.Running
	}
	return config.Idle
}
