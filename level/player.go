package level

import (
	"time"

	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/geom"
	"github.com/automoto/betrothed/rules"
	"github.com/automoto/betrothed/weapon"
)

// updatePlayer turns the frame's intent into motion and attacks.
func updatePlayer(l *Level) {
	p := components.Player.Get(l.player)
	ph := components.Physics.Get(l.player)
	in := l.intent

	if p.Invincible && l.now.Sub(p.HurtAt) >= p.InvincibleFor {
		p.Invincible = false
	}

	ph.Direction.X = max(-1, min(1, in.MoveX))
	switch {
	case ph.Direction.X < 0:
		p.Facing = config.DirectionLeft
	case ph.Direction.X > 0:
		p.Facing = config.DirectionRight
	}

	ph.Speed = config.Player.Speed
	p.Running = false
	if in.Run && ph.Direction.X != 0 && l.host.Stamina() > 0 {
		p.Running = true
		ph.Speed = config.Player.RunSpeed
		l.host.UpdateStamina(config.Player.StaminaDrain*l.step, false)
	} else {
		l.host.UpdateStamina(config.Player.StaminaRegen*l.step, true)
	}

	if in.Jump && ph.OnGround {
		ph.Direction.Y = config.Player.JumpHeight
		ph.OnGround = false
		ph.Jumping = true
		r := l.PlayerRect()
		l.createParticle(config.ParticleJump, r.CenterX(), r.Bottom(), p.Facing < 0)
	}

	updateMelee(l, in.Melee)
	if in.Ranged {
		l.shoot(weapon.Ranged)
	}
	if in.Magical {
		l.shoot(weapon.Magical)
	}
	if staff := l.loadout.Selected(weapon.Magical); staff != nil {
		staff.Recharge(config.Combat.MagicRegen * l.dt)
	}
}

func updateMelee(l *Level, pressed bool) {
	m := components.MeleeAttack.Get(l.player)
	if m.IsAttacking && l.now.Sub(m.StartedAt) >= m.Swing {
		m.IsAttacking = false
	}
	if !pressed || m.IsAttacking {
		return
	}
	w := l.loadout.Selected(weapon.Melee)
	if w == nil || w.Melee == nil {
		return
	}
	cd := components.Cooldown.Get(l.player)
	if !ready(cd.Melee, l.now, w.Cooldown) || !w.Consume() {
		return
	}
	cd.Melee = l.now
	m.IsAttacking = true
	m.StartedAt = l.now
	m.Swing = w.Melee.Swing
}

// shoot launches a projectile from the selected weapon of kind k.
func (l *Level) shoot(k weapon.Kind) {
	w := l.loadout.Selected(k)
	if w == nil {
		return
	}
	cd := components.Cooldown.Get(l.player)
	last := &cd.Ranged
	if k == weapon.Magical {
		last = &cd.Magical
	}
	if !ready(*last, l.now, w.Cooldown) || !w.Consume() {
		return
	}
	*last = l.now
	p := components.Player.Get(l.player)
	r := l.PlayerRect()
	l.createProjectile(w, r.CenterX(), r.CenterY(), p.Facing, 0, k == weapon.Magical)
}

// meleeRect returns the area the current swing covers.
func (l *Level) meleeRect() (geom.Rect, bool) {
	m := components.MeleeAttack.Get(l.player)
	w := l.loadout.Selected(weapon.Melee)
	if !m.IsAttacking || w == nil || w.Melee == nil {
		return geom.Rect{}, false
	}
	p := components.Player.Get(l.player)
	r := l.PlayerRect()
	hit := geom.Rect{Y: r.Top() + w.Melee.Offset, W: w.Range, H: w.Melee.Height}
	if p.Facing < 0 {
		hit.X = r.Left() - w.Range
	} else {
		hit.X = r.Right()
	}
	return hit, true
}

// TakeDamage hurts the player. Physical damage is ignored while the player
// is invincible and grants invincibility when it lands; pure damage always
// lands. It reports whether any damage was applied.
func (l *Level) TakeDamage(amount float64, kind rules.DamageKind) bool {
	p := components.Player.Get(l.player)
	if kind == rules.Physical {
		if p.Invincible {
			return false
		}
		p.Invincible = true
		p.HurtAt = l.now
		p.InvincibleFor = config.Player.HurtInvincibility
	}
	l.host.UpdateHealth(amount, true)
	return true
}

func ready(last, now time.Time, cooldown time.Duration) bool {
	return last.IsZero() || now.Sub(last) >= cooldown
}
