// Package weapon holds weapon value objects, the catalog and the player loadout.
package weapon

import (
	"fmt"
	"maps"
	"time"
)

// Kind is the weapon variant tag.
type Kind int

const (
	Melee Kind = iota
	Ranged
	Magical
	KindCount
)

var kindNames = [KindCount]string{"melee", "ranged", "magical"}

func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || k >= KindCount {
		return nil, fmt.Errorf("weapon: invalid kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for i, n := range kindNames {
		if n == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("weapon: unknown kind %q", b)
}

// MeleeStats are the fields only melee weapons carry.
type MeleeStats struct {
	Durability    int           `json:"durability"`
	MaxDurability int           `json:"max_durability"`
	Height        float64       `json:"height"`
	Offset        float64       `json:"offset"` // From the top of the player
	Swing         time.Duration `json:"swing"`  // How long the hit box stays out
}

// ProjectilePack is a finite stack of ammunition.
type ProjectilePack struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RangedStats are the fields only ranged weapons carry.
type RangedStats struct {
	Speed      float64        `json:"speed"`
	Projectile ProjectilePack `json:"projectile"`
}

// MagicalStats are the fields only magical weapons carry.
type MagicalStats struct {
	Speed    float64 `json:"speed"`
	Power    float64 `json:"power"`
	MaxPower float64 `json:"max_power"`
	Cost     float64 `json:"cost"`
	Impact   string  `json:"impact,omitempty"`
}

// Weapon is a data-only value. Exactly one of Melee, Ranged and Magical is
// set, matching Kind.
type Weapon struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Kind        Kind            `json:"kind"`
	Level       int             `json:"level"`
	Damage      map[int]float64 `json:"damage"`
	Cooldown    time.Duration   `json:"cooldown"`
	Range       float64         `json:"range"`
	Melee       *MeleeStats     `json:"melee,omitempty"`
	Ranged      *RangedStats    `json:"ranged,omitempty"`
	Magical     *MagicalStats   `json:"magical,omitempty"`
}

// DamageAt returns the damage for the weapon's current level. Levels missing
// from the table fall back to the closest lower entry.
func (w *Weapon) DamageAt() float64 {
	if d, ok := w.Damage[w.Level]; ok {
		return d
	}
	best, found := 0, false
	for lvl := range w.Damage {
		if lvl <= w.Level && (!found || lvl > best) {
			best, found = lvl, true
		}
	}
	if !found {
		return 0
	}
	return w.Damage[best]
}

// Usable reports whether the weapon has the resource for one more use.
func (w *Weapon) Usable() bool {
	switch w.Kind {
	case Melee:
		return w.Melee != nil && w.Melee.Durability > 0
	case Ranged:
		return w.Ranged != nil && w.Ranged.Projectile.Count > 0
	case Magical:
		return w.Magical != nil && w.Magical.Power >= w.Magical.Cost
	}
	return false
}

// Consume spends the resource for one use. It reports false and changes
// nothing when the weapon is not usable.
func (w *Weapon) Consume() bool {
	if !w.Usable() {
		return false
	}
	switch w.Kind {
	case Melee:
		w.Melee.Durability--
	case Ranged:
		w.Ranged.Projectile.Count--
	case Magical:
		w.Magical.Power -= w.Magical.Cost
	}
	return true
}

// Recharge restores magical power, capped at the maximum.
func (w *Weapon) Recharge(amount float64) {
	if w.Magical == nil {
		return
	}
	w.Magical.Power = min(w.Magical.MaxPower, w.Magical.Power+amount)
}

// Clone returns a deep copy.
func (w *Weapon) Clone() *Weapon {
	if w == nil {
		return nil
	}
	c := *w
	c.Damage = maps.Clone(w.Damage)
	if w.Melee != nil {
		m := *w.Melee
		c.Melee = &m
	}
	if w.Ranged != nil {
		r := *w.Ranged
		c.Ranged = &r
	}
	if w.Magical != nil {
		m := *w.Magical
		c.Magical = &m
	}
	return &c
}

// Validate checks that the per-kind fields match Kind.
func (w *Weapon) Validate() error {
	set := []bool{w.Melee != nil, w.Ranged != nil, w.Magical != nil}
	if w.Kind < 0 || w.Kind >= KindCount {
		return fmt.Errorf("weapon: %s: invalid kind %d", w.ID, int(w.Kind))
	}
	if !set[w.Kind] || countTrue(set) != 1 {
		return fmt.Errorf("weapon: %s: stats do not match kind %s", w.ID, w.Kind)
	}
	if len(w.Damage) == 0 {
		return fmt.Errorf("weapon: %s: empty damage table", w.ID)
	}
	return nil
}

func countTrue(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
