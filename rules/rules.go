// Package rules holds the pure combat and economy formulas.
package rules

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/geom"
)

// DamageKind separates armor-respecting hits from unconditional ones.
type DamageKind int

const (
	// Physical damage is ignored while the target is invincible and makes it invincible.
	Physical DamageKind = iota
	// Pure damage always applies.
	Pure
)

func (k DamageKind) String() string {
	if k == Pure {
		return "pure"
	}
	return "physical"
}

// MaxResistance is the resistance level that grants immunity.
const MaxResistance = 5

// EffectiveDamage scales d down by 20% per resistance level.
func EffectiveDamage(d float64, resistance int) float64 {
	if resistance >= MaxResistance {
		return 0
	}
	if resistance < 0 {
		resistance = 0
	}
	return d * max(0, 1-0.2*float64(resistance))
}

// StunDuration picks how long an enemy stays put after a hit from a weapon
// with the given cooldown. The band is skewed above the cooldown.
func StunDuration(rng *rand.Rand, cooldown time.Duration) time.Duration {
	lo := float64(cooldown) * config.Combat.StunBandLow
	hi := float64(cooldown) * config.Combat.StunBandHigh
	if hi <= lo {
		return time.Duration(lo)
	}
	return time.Duration(lo + rng.Float64()*(hi-lo))
}

// RollToughness draws 0, 1 or 2 using the configured weights.
func RollToughness(rng *rand.Rand) int {
	w := config.Combat.ToughnessWeights
	total := w[0] + w[1] + w[2]
	if total <= 0 {
		return 0
	}
	n := rng.IntN(total)
	for t, weight := range w {
		if n < weight {
			return t
		}
		n -= weight
	}
	return 0
}

// ToughenHealth returns base health raised by toughness.
func ToughenHealth(base float64, toughness int) float64 {
	return base + float64(toughness)
}

// ToughenDamage returns base damage raised by toughness.
func ToughenDamage(base float64, toughness int) float64 {
	return base * (1 + config.Combat.ToughnessDamage*float64(toughness))
}

// IsStomp reports whether a player overlapping an enemy lands on it rather
// than walking into it: the enemy's center must sit below the player's feet
// by less than the stomp margin while the player falls.
func IsStomp(player, enemy geom.Rect, playerVY float64) bool {
	gap := enemy.CenterY() - player.Bottom()
	return gap >= 0 && gap < config.Combat.StompMargin && playerVY > config.Combat.StompMinFall
}

// StompBackfire reports whether a stomp still hurts the player.
func StompBackfire(rng *rand.Rand) bool {
	return rng.Float64() < config.Combat.StompBackfireOdds
}

// StompBackfireDamage is the pure damage taken on a backfired stomp.
func StompBackfireDamage(enemyDamage float64) float64 {
	return enemyDamage * config.Combat.StompBackfireShare
}

// EnemyReward is the energy granted for a kill. Farmed levels pay a third.
func EnemyReward(energy, toughness int, farmed bool) int {
	r := energy + toughness
	if farmed && config.Economy.FarmedRewardDiv > 0 {
		r /= config.Economy.FarmedRewardDiv
	}
	return r
}

// FallEnergyLoss draws the energy lost to a fall.
func FallEnergyLoss(rng *rand.Rand) int {
	lo, hi := config.Economy.FallEnergyLossMin, config.Economy.FallEnergyLossMax
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// RandomSpeed draws an integer speed in [lo, hi] with a random sign.
func RandomSpeed(rng *rand.Rand, lo, hi int) float64 {
	s := lo
	if hi > lo {
		s += rng.IntN(hi - lo + 1)
	}
	if rng.IntN(2) == 0 {
		return -float64(s)
	}
	return float64(s)
}
