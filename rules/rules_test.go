package rules

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/automoto/betrothed/geom"
	"github.com/stretchr/testify/assert"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(12345, 67890))
}

func TestEffectiveDamage(t *testing.T) {
	tests := []struct {
		d    float64
		r    int
		want float64
	}{
		{10, 0, 10},
		{10, 1, 8},
		{10, 2, 6},
		{10, 3, 4},
		{10, 4, 2},
		{10, 5, 0},
		{10, 9, 0},
		{10, -1, 10},
		{4.5, 2, 2.7},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, EffectiveDamage(tt.d, tt.r), 1e-9, "d=%v r=%d", tt.d, tt.r)
	}
	assert.Exactly(t, 0.0, EffectiveDamage(10, 5))
}

func TestStunDurationBand(t *testing.T) {
	rng := seeded()
	for _, cd := range []time.Duration{300 * time.Millisecond, 500 * time.Millisecond} {
		for i := 0; i < 200; i++ {
			d := StunDuration(rng, cd)
			assert.GreaterOrEqual(t, d, cd*3/4)
			assert.Less(t, d, cd*3/2)
		}
	}
	slow, fast := time.Duration(0), time.Duration(0)
	for i := 0; i < 500; i++ {
		slow += StunDuration(rng, 800*time.Millisecond)
		fast += StunDuration(rng, 200*time.Millisecond)
	}
	assert.Greater(t, slow, fast)
}

func TestRollToughnessDistribution(t *testing.T) {
	rng := seeded()
	var counts [3]int
	for i := 0; i < 10000; i++ {
		counts[RollToughness(rng)]++
	}
	assert.Greater(t, counts[0], counts[1])
	assert.Greater(t, counts[1], counts[2])
	assert.Positive(t, counts[2])
}

func TestToughen(t *testing.T) {
	assert.Equal(t, 4.0, ToughenHealth(2, 2))
	assert.Equal(t, 2.0, ToughenDamage(2, 0))
	assert.Equal(t, 3.0, ToughenDamage(2, 2))
}

func TestIsStomp(t *testing.T) {
	enemy := geom.Rect{X: 0, Y: 100, W: 44, H: 64} // center y 132
	tests := []struct {
		name   string
		bottom float64
		vy     float64
		want   bool
	}{
		{"landing on top", 110, 5, true},
		{"not falling", 110, 0, false},
		{"rising", 110, -5, false},
		{"feet past center", 140, 5, false},
		{"too far above", 90, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := geom.Rect{X: 0, W: 44, H: 60}
			player.SetBottom(tt.bottom)
			assert.Equal(t, tt.want, IsStomp(player, enemy, tt.vy))
		})
	}
}

func TestStompBackfireRate(t *testing.T) {
	rng := seeded()
	hits := 0
	for i := 0; i < 10000; i++ {
		if StompBackfire(rng) {
			hits++
		}
	}
	assert.InDelta(t, 2500, hits, 300)
	assert.Equal(t, 0.5, StompBackfireDamage(2))
}

func TestEnemyReward(t *testing.T) {
	assert.Equal(t, 5, EnemyReward(3, 2, false))
	assert.Equal(t, 1, EnemyReward(3, 2, true))
	assert.Equal(t, 2, EnemyReward(4, 2, true))
}

func TestFallEnergyLoss(t *testing.T) {
	rng := seeded()
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		n := FallEnergyLoss(rng)
		assert.GreaterOrEqual(t, n, 5)
		assert.LessOrEqual(t, n, 15)
		seen[n] = true
	}
	assert.Len(t, seen, 11)
}

func TestRandomSpeed(t *testing.T) {
	rng := seeded()
	neg, pos := false, false
	for i := 0; i < 200; i++ {
		s := RandomSpeed(rng, 3, 6)
		abs := max(s, -s)
		assert.GreaterOrEqual(t, abs, 3.0)
		assert.LessOrEqual(t, abs, 6.0)
		neg = neg || s < 0
		pos = pos || s > 0
	}
	assert.True(t, neg && pos)
}
