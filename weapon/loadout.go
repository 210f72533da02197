package weapon

import (
	"errors"
	"fmt"
)

// ProjectileTransfer is how many projectiles GiveProjectiles moves at once.
const ProjectileTransfer = 10

var (
	ErrNoSuchItem   = errors.New("weapon: no such inventory item")
	ErrIncompatible = errors.New("weapon: incompatible item")
)

// Loadout is the equipped selection, one slot per kind, plus the inventory.
type Loadout struct {
	Selection map[Kind]*Weapon `json:"selection"`
	Inventory []*Weapon        `json:"inventory"`
}

// NewLoadout returns the starting equipment.
func NewLoadout() *Loadout {
	return &Loadout{
		Selection: map[Kind]*Weapon{
			Melee:   IronKnife(),
			Ranged:  MakeshiftBow(),
			Magical: StarterStaff(),
		},
	}
}

// Selected returns the equipped weapon of kind k, or nil.
func (l *Loadout) Selected(k Kind) *Weapon {
	if l == nil {
		return nil
	}
	return l.Selection[k]
}

// Add appends w to the inventory.
func (l *Loadout) Add(w *Weapon) {
	l.Inventory = append(l.Inventory, w)
}

func (l *Loadout) item(i int) (*Weapon, error) {
	if i < 0 || i >= len(l.Inventory) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchItem, i)
	}
	return l.Inventory[i], nil
}

// Equip swaps inventory item i with the selection slot of its kind.
func (l *Loadout) Equip(i int) error {
	w, err := l.item(i)
	if err != nil {
		return err
	}
	if l.Selection == nil {
		l.Selection = make(map[Kind]*Weapon)
	}
	prev := l.Selection[w.Kind]
	l.Selection[w.Kind] = w
	if prev != nil {
		l.Inventory[i] = prev
	} else {
		l.Inventory = append(l.Inventory[:i], l.Inventory[i+1:]...)
	}
	return nil
}

// MoveToTop moves inventory item i to the front.
func (l *Loadout) MoveToTop(i int) error {
	w, err := l.item(i)
	if err != nil {
		return err
	}
	copy(l.Inventory[1:i+1], l.Inventory[:i])
	l.Inventory[0] = w
	return nil
}

// GiveProjectiles moves up to ProjectileTransfer projectiles from inventory
// bow i to the equipped bow. Both must shoot the same projectile type.
func (l *Loadout) GiveProjectiles(i int) (int, error) {
	src, err := l.item(i)
	if err != nil {
		return 0, err
	}
	dst := l.Selected(Ranged)
	if src.Ranged == nil || dst == nil || dst.Ranged == nil || src.Ranged.Projectile.Name != dst.Ranged.Projectile.Name {
		return 0, ErrIncompatible
	}
	n := min(ProjectileTransfer, src.Ranged.Projectile.Count)
	src.Ranged.Projectile.Count -= n
	dst.Ranged.Projectile.Count += n
	return n, nil
}

// Clone returns a deep copy.
func (l *Loadout) Clone() *Loadout {
	c := &Loadout{Selection: make(map[Kind]*Weapon, len(l.Selection))}
	for k, w := range l.Selection {
		c.Selection[k] = w.Clone()
	}
	for _, w := range l.Inventory {
		c.Inventory = append(c.Inventory, w.Clone())
	}
	return c
}

// Validate checks every weapon and that each selection slot holds its own kind.
func (l *Loadout) Validate() error {
	for k, w := range l.Selection {
		if w == nil {
			continue
		}
		if w.Kind != k {
			return fmt.Errorf("weapon: %s equipped in %s slot", w.ID, k)
		}
		if err := w.Validate(); err != nil {
			return err
		}
	}
	for _, w := range l.Inventory {
		if err := w.Validate(); err != nil {
			return err
		}
	}
	return nil
}
