package weapon

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDamageAt(t *testing.T) {
	bow := MakeshiftBow()
	tests := []struct {
		level int
		want  float64
	}{
		{1, 1}, {4, 4.5}, {5, 6}, {9, 6}, {0, 0},
	}
	for _, tt := range tests {
		bow.Level = tt.level
		assert.Equal(t, tt.want, bow.DamageAt(), "level %d", tt.level)
	}
}

func TestIronKnifeReach(t *testing.T) {
	knife := IronKnife()
	assert.Equal(t, 32.0, knife.Range)
	assert.Equal(t, 48.0, knife.Melee.Height)
	assert.Equal(t, 32.0, knife.Melee.Offset)
}

func TestConsume(t *testing.T) {
	knife := IronKnife()
	require.True(t, knife.Consume())
	assert.Equal(t, 249, knife.Melee.Durability)
	knife.Melee.Durability = 0
	assert.False(t, knife.Consume())
	assert.Equal(t, 0, knife.Melee.Durability)

	bow := MakeshiftBow()
	bow.Ranged.Projectile.Count = 1
	assert.True(t, bow.Consume())
	assert.False(t, bow.Usable())

	staff := StarterStaff()
	staff.Magical.Power = 0.5
	assert.False(t, staff.Consume())
	staff.Recharge(1000)
	assert.Equal(t, 125.0, staff.Magical.Power)
}

func TestCloneIsDeep(t *testing.T) {
	bow := MakeshiftBow()
	c := bow.Clone()
	c.Damage[1] = 99
	c.Ranged.Projectile.Count = 0
	assert.Equal(t, 1.0, bow.Damage[1])
	assert.Equal(t, 50, bow.Ranged.Projectile.Count)
}

func TestValidate(t *testing.T) {
	for _, id := range []string{IDIronKnife, IDMakeshiftBow, IDStarterStaff} {
		w, ok := ByID(id)
		require.True(t, ok)
		assert.NoError(t, w.Validate(), id)
	}
	bad := IronKnife()
	bad.Ranged = &RangedStats{}
	assert.Error(t, bad.Validate())

	bad = IronKnife()
	bad.Kind = Magical
	assert.Error(t, bad.Validate())

	_, ok := ByID("excalibur")
	assert.False(t, ok)
}

func TestKindJSON(t *testing.T) {
	l := NewLoadout()
	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"magical":`)

	var back Loadout
	require.NoError(t, json.Unmarshal(data, &back))
	require.NoError(t, back.Validate())
	assert.Equal(t, IDStarterStaff, back.Selected(Magical).ID)
	assert.Equal(t, 4.5, back.Selected(Ranged).Damage[4])
}

func TestEquipSwapsInPlace(t *testing.T) {
	l := NewLoadout()
	spare := IronKnife()
	spare.Name = "Spare Knife"
	l.Add(MakeshiftBow())
	l.Add(spare)

	require.NoError(t, l.Equip(1))
	assert.Equal(t, "Spare Knife", l.Selected(Melee).Name)
	require.Len(t, l.Inventory, 2)
	assert.Equal(t, "Iron Knife", l.Inventory[1].Name)
	assert.Equal(t, IDMakeshiftBow, l.Inventory[0].ID)

	assert.ErrorIs(t, l.Equip(7), ErrNoSuchItem)
}

func TestEquipIntoEmptySlot(t *testing.T) {
	l := &Loadout{}
	l.Add(StarterStaff())
	require.NoError(t, l.Equip(0))
	assert.Empty(t, l.Inventory)
	assert.Equal(t, IDStarterStaff, l.Selected(Magical).ID)
}

func TestMoveToTop(t *testing.T) {
	l := &Loadout{}
	l.Add(IronKnife())
	l.Add(MakeshiftBow())
	l.Add(StarterStaff())
	require.NoError(t, l.MoveToTop(2))
	ids := []string{l.Inventory[0].ID, l.Inventory[1].ID, l.Inventory[2].ID}
	assert.Equal(t, []string{IDStarterStaff, IDIronKnife, IDMakeshiftBow}, ids)
}

func TestGiveProjectiles(t *testing.T) {
	l := NewLoadout()
	l.Add(MakeshiftBow())
	l.Inventory[0].Ranged.Projectile.Count = 14

	n, err := l.GiveProjectiles(0)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	n, err = l.GiveProjectiles(0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 64, l.Selected(Ranged).Ranged.Projectile.Count)
	assert.Equal(t, 0, l.Inventory[0].Ranged.Projectile.Count)

	l.Add(IronKnife())
	_, err = l.GiveProjectiles(1)
	assert.ErrorIs(t, err, ErrIncompatible)
}

type recordingSink struct {
	healed   float64
	replicas int
}

func (s *recordingSink) Heal(amount float64) { s.healed += amount }
func (s *recordingSink) SpawnReplica(x, y, facing, traveled float64) {
	s.replicas++
}

func TestStarterStaffImpact(t *testing.T) {
	staff := StarterStaff()
	staff.Level = 2
	imp := ImpactorFor(staff)
	require.NotNil(t, imp)

	sink := &recordingSink{}
	imp.OnImpact(Impact{Weapon: staff, Killed: false, Replicate: true}, sink)
	assert.Zero(t, sink.healed)
	assert.Zero(t, sink.replicas)

	imp.OnImpact(Impact{Weapon: staff, Killed: true, Replicate: true}, sink)
	assert.InDelta(t, 0.1, sink.healed, 1e-9)
	assert.Equal(t, 1, sink.replicas)

	imp.OnImpact(Impact{Weapon: staff, Killed: true, Replicate: false}, sink)
	assert.Equal(t, 1, sink.replicas)

	assert.Nil(t, ImpactorFor(IronKnife()))
}
