package game

import (
	"io"
	"testing"
	"time"

	"github.com/automoto/betrothed/clock"
	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/level"
	"github.com/automoto/betrothed/levels"
	"github.com/automoto/betrothed/logger"
	"github.com/automoto/betrothed/save"
	"github.com/automoto/betrothed/weapon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memItems map[string][]byte

func (m memItems) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memItems) SaveItem(key string, data []byte) error {
	m[key] = append([]byte(nil), data...)
	return nil
}

func newGame(t *testing.T, items memItems) *Game {
	t.Helper()
	logger.Log.SetOutput(io.Discard)
	var store Store
	if items != nil {
		store = save.NewStore(items)
	}
	g, err := New(Options{
		FS:       levels.FS,
		Manifest: levels.ManifestPath,
		Store:    store,
		Slot:     "slot0",
		Input:    level.IntentFunc(func() level.Intent { return level.Intent{} }),
		Clock:    clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		Seed:     7,
	})
	require.NoError(t, err)
	return g
}

func TestNewGame(t *testing.T) {
	g := newGame(t, nil)
	assert.Equal(t, StatusWorld, g.Status())
	assert.Nil(t, g.Level())
	assert.Zero(t, g.Unlocked())
	assert.Equal(t, config.Economy.MaxHealth, g.Pools().Health)
	assert.False(t, g.LoadedFromSave())
	assert.ErrorIs(t, g.Save(), ErrNoPersistence)
	assert.ErrorIs(t, g.Continue(), ErrNoPersistence)
}

func TestNewRequiresInput(t *testing.T) {
	_, err := New(Options{FS: levels.FS, Manifest: levels.ManifestPath})
	assert.ErrorIs(t, err, level.ErrNoInput)
}

func TestEnterLevel(t *testing.T) {
	g := newGame(t, nil)

	assert.ErrorIs(t, g.EnterLevel(1), ErrLocked)
	assert.ErrorIs(t, g.EnterLevel(99), ErrNoSuchLevel)
	assert.Equal(t, StatusWorld, g.Status())

	require.NoError(t, g.EnterLevel(0))
	assert.Equal(t, StatusLevel, g.Status())
	require.NotNil(t, g.Level())
	assert.False(t, g.Level().Farmed())
	assert.Equal(t, "chapter-1a", g.Level().Def().ID)

	g.Update(1.0 / 60)
	assert.Equal(t, StatusLevel, g.Status())
}

func TestDeathReturnsToWorld(t *testing.T) {
	g := newGame(t, nil)
	g.UpdateEnergy(41, true)
	require.NoError(t, g.EnterLevel(0))

	g.UpdateHealth(1000, true)
	assert.Equal(t, StatusLevel, g.Status(), "death resolves after the frame")
	g.Update(1.0 / 60)

	assert.Equal(t, StatusWorld, g.Status())
	assert.Nil(t, g.Level())
	p := g.Pools()
	assert.Equal(t, p.MaxHealth, p.Health)
	assert.Equal(t, 20, p.Energy)
	assert.Zero(t, p.EnergyOverflow)
	assert.Zero(t, g.Unlocked())
}

func TestCompletionUnlocks(t *testing.T) {
	g := newGame(t, nil)
	require.NoError(t, g.EnterLevel(0))

	g.CreateWorld(0, 1)
	assert.Equal(t, StatusWorld, g.Status())
	assert.Equal(t, 1, g.Unlocked())

	g.CreateWorld(0, 0)
	assert.Equal(t, 1, g.Unlocked(), "replays never lock levels again")

	require.NoError(t, g.EnterLevel(0))
	assert.True(t, g.Level().Farmed())
	require.NoError(t, g.EnterLevel(1))
	assert.False(t, g.Level().Farmed())
}

func TestSaveAndContinue(t *testing.T) {
	items := memItems{}
	g := newGame(t, items)
	g.UpdateEnergy(30, true)
	g.CreateWorld(0, 1)
	g.loadout.Selected(weapon.Ranged).Ranged.Projectile.Count = 12
	require.NoError(t, g.Save())

	other := newGame(t, items)
	require.NoError(t, other.Continue())
	assert.Equal(t, 1, other.Unlocked())
	assert.Equal(t, 30, other.Pools().Energy)
	assert.Equal(t, 12, other.Loadout().Selected(weapon.Ranged).Ranged.Projectile.Count)
	assert.True(t, other.LoadedFromSave())
	assert.Equal(t, g.rng.Uint64(), other.rng.Uint64())

	require.NoError(t, other.EnterLevel(1))
	assert.True(t, other.Level().Farmed(), "rewards stay reduced after loading")
	other.ClearEnergyRestriction()
	require.NoError(t, other.EnterLevel(1))
	assert.False(t, other.Level().Farmed())
}

func TestContinueWithoutSave(t *testing.T) {
	g := newGame(t, memItems{})
	require.NoError(t, g.Continue())
	assert.False(t, g.LoadedFromSave())
	assert.Zero(t, g.Unlocked())
}

func TestContinueRefusesCorruptSave(t *testing.T) {
	items := memItems{}
	g := newGame(t, items)
	require.NoError(t, g.Save())
	items["slot0"] = append(items["slot0"], ' ')

	assert.ErrorIs(t, newGame(t, items).Continue(), save.ErrCorruptSave)
}

func TestReloadRebuildsRunningLevel(t *testing.T) {
	g := newGame(t, nil)
	require.NoError(t, g.EnterLevel(0))
	before := g.Level()

	require.NoError(t, g.Reload())
	assert.Equal(t, StatusLevel, g.Status())
	assert.NotSame(t, before, g.Level())

	g.CreateWorld(0, 0)
	require.NoError(t, g.Reload())
	assert.Nil(t, g.Level())
}

func TestLeaveLevel(t *testing.T) {
	g := newGame(t, nil)
	g.LeaveLevel()
	assert.Equal(t, StatusWorld, g.Status())

	require.NoError(t, g.EnterLevel(0))
	g.LeaveLevel()
	assert.Equal(t, StatusWorld, g.Status())
	assert.Nil(t, g.Level())
	assert.Zero(t, g.Unlocked())
	assert.Zero(t, g.Current())
}
