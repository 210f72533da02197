// Package game owns everything that outlives a level: the resource pools,
// the loadout, progress through the catalog, the random generator and the
// save slot. It is the level.Host of whatever level is running.
package game

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"time"

	"github.com/automoto/betrothed/clock"
	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/layout"
	"github.com/automoto/betrothed/level"
	"github.com/automoto/betrothed/logger"
	"github.com/automoto/betrothed/save"
	"github.com/automoto/betrothed/stats"
	"github.com/automoto/betrothed/weapon"
	"github.com/sirupsen/logrus"
)

var (
	ErrLocked        = errors.New("game: level is locked")
	ErrNoSuchLevel   = errors.New("game: no such level")
	ErrNoPersistence = errors.New("game: no save store")
)

// Status says which screen the game is on.
type Status int

const (
	StatusWorld Status = iota
	StatusLevel
)

func (s Status) String() string {
	if s == StatusLevel {
		return "level"
	}
	return "world"
}

// Store persists game state in named slots.
type Store interface {
	Save(slot string, st *save.State) error
	Load(slot string) (*save.State, error)
}

// Options configures a Game.
type Options struct {
	FS       fs.FS  // Holds the catalog and the layouts it names
	Manifest string // Catalog path inside FS
	Store    Store  // Nil disables saving
	Slot     string
	Input    level.InputSource
	Clock    clock.Clock
	Seed     uint64 // Seeds a new game's generator, 0 picks one from the clock
}

// Game is the session state. It is not safe for concurrent use.
type Game struct {
	fsys         fs.FS
	manifestPath string
	manifest     *layout.Manifest
	store        Store
	slot         string
	input        level.InputSource
	clock        clock.Clock
	seed         uint64

	pools          *stats.Pools
	loadout        *weapon.Loadout
	src            *rand.PCG
	rng            *rand.Rand
	status         Status
	current        int
	unlocked       int
	loadedFromSave bool

	level *level.Level
	dying bool
}

// New starts a fresh game on the world map.
func New(opts Options) (*Game, error) {
	if opts.FS == nil {
		return nil, errors.New("game: FS is required")
	}
	if opts.Input == nil {
		return nil, level.ErrNoInput
	}
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	m, err := layout.LoadManifest(opts.FS, opts.Manifest)
	if err != nil {
		return nil, err
	}

	g := &Game{
		fsys:         opts.FS,
		manifestPath: opts.Manifest,
		manifest:     m,
		store:        opts.Store,
		slot:         opts.Slot,
		input:        opts.Input,
		clock:        opts.Clock,
		seed:         opts.Seed,
	}
	if err := g.restore(save.NewState()); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) restore(st *save.State) error {
	src, err := st.Source(g.seed)
	if err != nil {
		return err
	}
	g.pools = stats.FromSnapshot(st.Pools)
	g.loadout = st.Loadout
	g.src = src
	g.rng = rand.New(src)
	g.current = st.Level
	g.unlocked = st.Unlocked
	g.loadedFromSave = st.LoadedFromSave
	g.status = StatusWorld
	g.level = nil
	g.dying = false
	return nil
}

// Continue replaces the session with the saved slot. An empty slot keeps
// the fresh game. Rewards stay reduced until the next new level is cleared.
func (g *Game) Continue() error {
	if g.store == nil {
		return ErrNoPersistence
	}
	st, err := g.store.Load(g.slot)
	if errors.Is(err, save.ErrNoSave) {
		logger.Log.WithField("slot", g.slot).Info("No save found, starting a new game")
		return nil
	}
	if err != nil {
		return err
	}
	if err := g.restore(st); err != nil {
		return err
	}
	g.loadedFromSave = true
	if _, ok := g.manifest.Level(g.current); !ok {
		g.current = 0
	}

	logger.Log.WithFields(logrus.Fields{
		"slot":     g.slot,
		"level":    g.current,
		"unlocked": g.unlocked,
	}).Info("Game loaded")
	return nil
}

// State captures the session for the save store.
func (g *Game) State() (*save.State, error) {
	st := &save.State{
		Version:        save.CurrentVersion,
		Pools:          g.pools.Snapshot(),
		Level:          g.current,
		Unlocked:       g.unlocked,
		Loadout:        g.loadout.Clone(),
		LoadedFromSave: g.loadedFromSave,
	}
	if def, ok := g.manifest.Level(g.current); ok {
		st.Part = def.Part
		st.Subpart = def.Subpart
	}
	if err := st.SetSource(g.src); err != nil {
		return nil, err
	}
	return st, nil
}

// Save writes the session to its slot.
func (g *Game) Save() error {
	if g.store == nil {
		return ErrNoPersistence
	}
	st, err := g.State()
	if err != nil {
		return err
	}
	return g.store.Save(g.slot, st)
}

// EnterLevel builds catalog level i and switches to it.
func (g *Game) EnterLevel(i int) error {
	def, ok := g.manifest.Level(i)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoSuchLevel, i)
	}
	if i > g.unlocked {
		return fmt.Errorf("%w: %s", ErrLocked, def.ID)
	}
	layouts, err := layout.Load(g.fsys, def)
	if err != nil {
		return err
	}
	lvl, err := level.New(level.Options{
		Def:      def,
		Layouts:  layouts,
		Index:    i,
		Unlocked: g.unlocked,
		Farmed:   i < g.unlocked || g.loadedFromSave,
		Loadout:  g.loadout,
		Host:     g,
		Input:    g.input,
		Clock:    g.clock,
		Rand:     g.rng,
	})
	if err != nil {
		return err
	}
	g.level = lvl
	g.current = i
	g.status = StatusLevel
	g.dying = false
	return nil
}

// Reload rereads the catalog and rebuilds the running level from disk.
func (g *Game) Reload() error {
	m, err := layout.LoadManifest(g.fsys, g.manifestPath)
	if err != nil {
		return err
	}
	g.manifest = m
	if g.status != StatusLevel {
		return nil
	}
	return g.EnterLevel(g.current)
}

// SetFS points the game at another copy of the catalog, such as the
// directory being edited.
func (g *Game) SetFS(fsys fs.FS) {
	g.fsys = fsys
}

// Update advances the running level by dt seconds.
func (g *Game) Update(dt float64) {
	if g.status != StatusLevel || g.level == nil {
		return
	}
	g.level.Update(dt)
	if g.dying {
		g.die()
	}
}

// die sends the player back to the map with full health and part of their
// energy. Nothing is unlocked.
func (g *Game) die() {
	g.dying = false
	lost := g.pools.Energy() - int(float64(g.pools.Energy())*config.Economy.DeathEnergyKeep)
	g.pools.HealFull()
	g.pools.UpdateEnergy(lost, false)
	g.pools.ResetEnergyOverflow()

	logger.Log.WithFields(logrus.Fields{
		"level":      g.current,
		"energyLost": lost,
	}).Info("Player died")
	g.toWorld()
}

// LeaveLevel abandons the running level. Progress made in it is kept but
// nothing is unlocked.
func (g *Game) LeaveLevel() {
	if g.status != StatusLevel {
		return
	}
	logger.Log.WithField("level", g.current).Info("Level abandoned")
	g.toWorld()
}

func (g *Game) toWorld() {
	g.status = StatusWorld
	g.level = nil
}

// level.Host

func (g *Game) UpdateHealth(amount float64, damage bool) {
	g.pools.UpdateHealth(amount, damage)
	if damage && g.pools.Dead() && g.status == StatusLevel {
		g.dying = true
	}
}

func (g *Game) UpdateEnergy(amount int, add bool) { g.pools.UpdateEnergy(amount, add) }

func (g *Game) ResetEnergyOverflow() { g.pools.ResetEnergyOverflow() }

func (g *Game) UpdateStamina(amount float64, add bool) { g.pools.UpdateStamina(amount, add) }

func (g *Game) Stamina() float64 { return g.pools.Stamina() }

func (g *Game) ClearEnergyRestriction() { g.loadedFromSave = false }

func (g *Game) CreateWorld(current, unlocked int) {
	g.current = current
	if unlocked > g.unlocked {
		g.unlocked = unlocked
		logger.Log.WithField("unlocked", g.unlocked).Info("Level unlocked")
	}
	g.toWorld()
}

func (g *Game) Status() Status { return g.status }
func (g *Game) Level() *level.Level { return g.level }
func (g *Game) Current() int { return g.current }
func (g *Game) Unlocked() int { return g.unlocked }
func (g *Game) Manifest() *layout.Manifest { return g.manifest }
func (g *Game) Loadout() *weapon.Loadout { return g.loadout }
func (g *Game) Pools() stats.Snapshot { return g.pools.Snapshot() }
func (g *Game) LoadedFromSave() bool { return g.loadedFromSave }
func (g *Game) Slot() string { return g.slot }
