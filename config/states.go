package config

// StateID is the player's movement status.
type StateID int

const (
	Idle StateID = iota
	Running
	Jump
	Fall
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "run"
	case Jump:
		return "jump"
	case Fall:
		return "fall"
	}
	return "unknown"
}

// ParticleKind names a one-shot visual effect.
type ParticleKind int

const (
	ParticleJump ParticleKind = iota
	ParticleLand
	ParticleEnemyDeath
)
