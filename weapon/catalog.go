package weapon

import "time"

// Catalog IDs.
const (
	IDIronKnife    = "iron_knife"
	IDMakeshiftBow = "makeshift_bow"
	IDStarterStaff = "starter_staff"
)

// Projectile pack names.
const FlintArrows = "Flint Arrows"

func IronKnife() *Weapon {
	return &Weapon{
		ID:          IDIronKnife,
		Name:        "Iron Knife",
		Description: "A basic weapon made of iron used to stab enemies to death.",
		Kind:        Melee,
		Level:       1,
		Damage:      map[int]float64{1: 1},
		Cooldown:    400 * time.Millisecond,
		Range:       32,
		Melee: &MeleeStats{
			Durability:    250,
			MaxDurability: 250,
			Height:        48,
			Offset:        32,
			Swing:         250 * time.Millisecond,
		},
	}
}

func MakeshiftBow() *Weapon {
	return &Weapon{
		ID:          IDMakeshiftBow,
		Name:        "Makeshift Bow",
		Description: "A basic bow made from makeshift materials ready to clear enemies out of your way.",
		Kind:        Ranged,
		Level:       1,
		Damage:      map[int]float64{1: 1, 2: 2, 3: 3, 4: 4.5, 5: 6},
		Cooldown:    300 * time.Millisecond,
		Range:       256,
		Ranged: &RangedStats{
			Speed:      12,
			Projectile: ProjectilePack{Name: FlintArrows, Count: 50},
		},
	}
}

func StarterStaff() *Weapon {
	return &Weapon{
		ID:          IDStarterStaff,
		Name:        "Starter Staff",
		Description: "The staff beginners use to learn about magic. Now it's all yours!",
		Kind:        Magical,
		Level:       1,
		Damage:      map[int]float64{1: 1},
		Cooldown:    500 * time.Millisecond,
		Range:       384,
		Magical: &MagicalStats{
			Speed:    9,
			Power:    125,
			MaxPower: 125,
			Cost:     1,
			Impact:   ImpactKillHeal,
		},
	}
}

// ByID builds a fresh catalog weapon.
func ByID(id string) (*Weapon, bool) {
	switch id {
	case IDIronKnife:
		return IronKnife(), true
	case IDMakeshiftBow:
		return MakeshiftBow(), true
	case IDStarterStaff:
		return StarterStaff(), true
	}
	return nil, false
}
