package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pools(health float64, energy, overflow int) *Pools {
	return FromSnapshot(Snapshot{
		Health:            health,
		MaxHealth:         20,
		Energy:            energy,
		MaxEnergy:         100,
		EnergyOverflow:    overflow,
		MaxEnergyOverflow: 25,
		Stamina:           100,
		MaxStamina:        1800,
	})
}

func TestDamageAndHealClamp(t *testing.T) {
	p := pools(20, 0, 0)
	p.Damage(5)
	assert.Equal(t, 15.0, p.Health())
	p.Damage(100)
	assert.Equal(t, 0.0, p.Health())
	assert.True(t, p.Dead())
	p.Heal(50)
	assert.Equal(t, 20.0, p.Health())
	p.Heal(-3)
	p.Damage(-3)
	assert.Equal(t, 20.0, p.Health())

	p.UpdateHealth(4, true)
	assert.Equal(t, 16.0, p.Health())
	p.UpdateHealth(1, false)
	assert.Equal(t, 17.0, p.Health())
}

func TestOverflowCyclesIntoFullHeal(t *testing.T) {
	p := pools(3, 95, 0)
	p.UpdateEnergy(30, true)
	assert.Equal(t, 100, p.Energy())
	assert.Equal(t, 0, p.EnergyOverflow())
	assert.Equal(t, 20.0, p.Health())
}

func TestOverflowAccumulatesExcess(t *testing.T) {
	tests := []struct {
		name         string
		energy       int
		overflow     int
		add          int
		wantOverflow int
		wantHealed   bool
	}{
		{"below cap", 100, 0, 10, 10, false},
		{"partial fill", 95, 4, 8, 7, false},
		{"exactly cap", 100, 20, 5, 0, true},
		{"past cap", 100, 20, 9, 4, true},
		{"no excess", 50, 3, 10, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pools(5, tt.energy, tt.overflow)
			p.UpdateEnergy(tt.add, true)
			assert.LessOrEqual(t, p.Energy(), p.MaxEnergy())
			assert.Equal(t, tt.wantOverflow, p.EnergyOverflow())
			if tt.wantHealed {
				assert.Equal(t, 20.0, p.Health())
			} else {
				assert.Equal(t, 5.0, p.Health())
			}
		})
	}
}

func TestSpendResetsOverflowBelowTopTenth(t *testing.T) {
	p := pools(20, 100, 12)
	p.UpdateEnergy(10, false)
	assert.Equal(t, 90, p.Energy())
	assert.Equal(t, 12, p.EnergyOverflow(), "90 is not below the 90 threshold")

	p.UpdateEnergy(1, false)
	assert.Equal(t, 89, p.Energy())
	assert.Equal(t, 0, p.EnergyOverflow())

	p.UpdateEnergy(500, false)
	assert.Equal(t, 0, p.Energy())
}

func TestNegativeAmountFlipsDirection(t *testing.T) {
	p := pools(20, 50, 0)
	p.UpdateEnergy(-10, true)
	assert.Equal(t, 40, p.Energy())
}

func TestResetEnergyOverflow(t *testing.T) {
	p := pools(20, 100, 17)
	p.ResetEnergyOverflow()
	assert.Equal(t, 0, p.EnergyOverflow())
}

func TestStamina(t *testing.T) {
	p := pools(20, 0, 0)
	p.UpdateStamina(150, false)
	assert.Equal(t, 0.0, p.Stamina())
	p.UpdateStamina(5000, true)
	assert.Equal(t, 1800.0, p.Stamina())
}

func TestSnapshotClampsStoredValues(t *testing.T) {
	p := FromSnapshot(Snapshot{Health: -4, MaxHealth: 20, Energy: 400, MaxEnergy: 100, EnergyOverflow: -2, Stamina: 9, MaxStamina: 5})
	s := p.Snapshot()
	assert.Equal(t, 0.0, s.Health)
	assert.Equal(t, 100, s.Energy)
	assert.Equal(t, 0, s.EnergyOverflow)
	assert.Equal(t, 5.0, s.Stamina)
}

func TestNewPoolsStartsFull(t *testing.T) {
	p := NewPools()
	assert.Equal(t, p.MaxHealth(), p.Health())
	assert.Equal(t, p.MaxStamina(), p.Stamina())
	assert.Equal(t, 0, p.Energy())
}
