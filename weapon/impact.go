package weapon

// ImpactKillHeal heals on a killing blow and sends one replica onward.
const ImpactKillHeal = "kill_heal"

// Impact describes a magical projectile striking an enemy.
type Impact struct {
	Weapon    *Weapon
	Killed    bool
	Replicate bool    // The projectile may still spawn a replica
	X, Y      float64 // Impact point
	Facing    float64
	Traveled  float64 // Distance already covered, counted against Range
}

// ImpactSink is what an impact effect may act on.
type ImpactSink interface {
	Heal(amount float64)
	SpawnReplica(x, y, facing, traveled float64)
}

// Impactor is the per-weapon reaction to a magical hit.
type Impactor interface {
	OnImpact(hit Impact, sink ImpactSink)
}

type killHeal struct{}

func (killHeal) OnImpact(hit Impact, sink ImpactSink) {
	if !hit.Killed {
		return
	}
	sink.Heal(0.05 * float64(hit.Weapon.Level))
	if hit.Replicate {
		sink.SpawnReplica(hit.X, hit.Y, hit.Facing, hit.Traveled)
	}
}

var impactors = map[string]Impactor{
	ImpactKillHeal: killHeal{},
}

// ImpactorFor returns the impact effect of w, or nil when it has none.
func ImpactorFor(w *Weapon) Impactor {
	if w == nil || w.Magical == nil || w.Magical.Impact == "" {
		return nil
	}
	return impactors[w.Magical.Impact]
}
