// Package stats holds the player resource pools that outlive a single level.
package stats

import "github.com/automoto/betrothed/config"

// Snapshot is the serializable form of Pools.
type Snapshot struct {
	Health            float64 `json:"health"`
	MaxHealth         float64 `json:"max_health"`
	Energy            int     `json:"energy"`
	MaxEnergy         int     `json:"max_energy"`
	EnergyOverflow    int     `json:"energy_overflow"`
	MaxEnergyOverflow int     `json:"max_energy_overflow"`
	Stamina           float64 `json:"stamina"`
	MaxStamina        float64 `json:"max_stamina"`
}

// Pools tracks health, energy with its overflow bank, and stamina.
// Every mutator and accessor clamps, so no read can observe an out of
// range value.
type Pools struct {
	s Snapshot
}

// NewPools returns full pools sized from config.
func NewPools() *Pools {
	return FromSnapshot(Snapshot{
		Health:            config.Economy.MaxHealth,
		MaxHealth:         config.Economy.MaxHealth,
		Energy:            0,
		MaxEnergy:         config.Economy.MaxEnergy,
		EnergyOverflow:    0,
		MaxEnergyOverflow: config.Economy.MaxEnergyOverflow,
		Stamina:           config.Economy.MaxStamina,
		MaxStamina:        config.Economy.MaxStamina,
	})
}

// FromSnapshot restores pools, clamping whatever was stored.
func FromSnapshot(s Snapshot) *Pools {
	p := &Pools{s: s}
	p.clamp()
	return p
}

// Snapshot returns a clamped copy of the pools.
func (p *Pools) Snapshot() Snapshot {
	p.clamp()
	return p.s
}

func (p *Pools) clamp() {
	s := &p.s
	s.MaxHealth = max(s.MaxHealth, 0)
	s.Health = clampF(s.Health, 0, s.MaxHealth)
	s.MaxEnergy = max(s.MaxEnergy, 0)
	s.Energy = clampI(s.Energy, 0, s.MaxEnergy)
	s.MaxEnergyOverflow = max(s.MaxEnergyOverflow, 0)
	s.EnergyOverflow = max(s.EnergyOverflow, 0)
	s.MaxStamina = max(s.MaxStamina, 0)
	s.Stamina = clampF(s.Stamina, 0, s.MaxStamina)
}

func (p *Pools) Health() float64 {
	p.clamp()
	return p.s.Health
}

func (p *Pools) MaxHealth() float64 {
	p.clamp()
	return p.s.MaxHealth
}

func (p *Pools) Energy() int {
	p.clamp()
	return p.s.Energy
}

func (p *Pools) MaxEnergy() int {
	p.clamp()
	return p.s.MaxEnergy
}

func (p *Pools) EnergyOverflow() int {
	p.clamp()
	return p.s.EnergyOverflow
}

func (p *Pools) MaxEnergyOverflow() int {
	p.clamp()
	return p.s.MaxEnergyOverflow
}

func (p *Pools) Stamina() float64 {
	p.clamp()
	return p.s.Stamina
}

func (p *Pools) MaxStamina() float64 {
	p.clamp()
	return p.s.MaxStamina
}

// Dead reports whether health is exhausted.
func (p *Pools) Dead() bool { return p.Health() <= 0 }

// Damage removes health, never below zero.
func (p *Pools) Damage(amount float64) {
	if amount <= 0 {
		return
	}
	p.s.Health -= amount
	p.clamp()
}

// Heal adds health, never above the maximum.
func (p *Pools) Heal(amount float64) {
	if amount <= 0 {
		return
	}
	p.s.Health += amount
	p.clamp()
}

// HealFull restores health to the maximum.
func (p *Pools) HealFull() {
	p.s.Health = p.s.MaxHealth
	p.clamp()
}

// UpdateHealth applies amount as damage or healing.
func (p *Pools) UpdateHealth(amount float64, damage bool) {
	if damage {
		p.Damage(amount)
	} else {
		p.Heal(amount)
	}
}

// UpdateEnergy adds or spends energy. Energy added past the maximum is
// banked as overflow; a full overflow bank turns into a full heal and drains
// by its capacity. Spending below the top tenth of the bar empties the bank.
func (p *Pools) UpdateEnergy(amount int, add bool) {
	if amount < 0 {
		amount, add = -amount, !add
	}
	s := &p.s
	if add {
		s.Energy += amount
		if s.Energy > s.MaxEnergy {
			s.EnergyOverflow += s.Energy - s.MaxEnergy
			s.Energy = s.MaxEnergy
		}
		if s.MaxEnergyOverflow > 0 && s.EnergyOverflow >= s.MaxEnergyOverflow {
			s.Health = s.MaxHealth
			s.EnergyOverflow -= s.MaxEnergyOverflow
		}
	} else {
		s.Energy -= amount
		threshold := float64(s.MaxEnergy) - float64(s.MaxEnergy)*config.Economy.OverflowResetShare
		if float64(s.Energy) < threshold {
			s.EnergyOverflow = 0
		}
	}
	p.clamp()
}

// ResetEnergyOverflow empties the overflow bank.
func (p *Pools) ResetEnergyOverflow() {
	p.s.EnergyOverflow = 0
}

// UpdateStamina adds or drains stamina.
func (p *Pools) UpdateStamina(amount float64, add bool) {
	if add {
		p.s.Stamina += amount
	} else {
		p.s.Stamina -= amount
	}
	p.clamp()
}

func clampF(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

func clampI(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
