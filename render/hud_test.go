package render

import (
	"testing"

	"github.com/automoto/betrothed/stats"
	"github.com/automoto/betrothed/weapon"
	"github.com/stretchr/testify/assert"
)

func TestHUDBars(t *testing.T) {
	p := stats.NewPools()
	p.UpdateEnergy(50, true)
	p.UpdateHealth(5, true)

	bars := hudBars(p.Snapshot())
	assert.Len(t, bars, 4)
	assert.InDelta(t, 0.75, bars[0].ratio, 1e-9)
	assert.InDelta(t, 0.5, bars[1].ratio, 1e-9)
	assert.Zero(t, bars[2].ratio)
	assert.InDelta(t, 1, bars[3].ratio, 1e-9)

	assert.Zero(t, ratio(3, 0))
}

func TestWeaponLine(t *testing.T) {
	l := weapon.NewLoadout()
	assert.Equal(t, "Iron Knife 250  |  Flint Arrows 50  |  Starter Staff 125/125", weaponLine(l))

	l.Selection[weapon.Ranged] = nil
	assert.Equal(t, "Iron Knife 250  |  Starter Staff 125/125", weaponLine(l))
}
