// Package level runs one side-scrolling level: tile collision, the player,
// enemies, projectiles, pickups and the transitions out of the level.
package level

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/automoto/betrothed/clock"
	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/geom"
	"github.com/automoto/betrothed/layout"
	"github.com/automoto/betrothed/logger"
	"github.com/automoto/betrothed/weapon"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var (
	ErrNoHost      = errors.New("level: host is required")
	ErrNoInput     = errors.New("level: input source is required")
	ErrNoLoadout   = errors.New("level: loadout is required")
	ErrUnknownCode = errors.New("level: unknown cell code")
)

// Options configures a new Level.
type Options struct {
	Def      layout.LevelDef
	Layouts  layout.Layouts
	Index    int  // Position of the level in the catalog
	Unlocked int  // Highest level index the player may enter
	Farmed   bool // Rewards were already collected here or the game came from a save
	Loadout  *weapon.Loadout
	Host     Host
	Input    InputSource
	Clock    clock.Clock // Defaults to the wall clock
	Rand     *rand.Rand  // Defaults to a time seeded generator

	keepInternal bool // Keep unreachable terrain in the collision space
}

// Level is a running level. It is not safe for concurrent use; the owner
// calls Update and Draw from a single goroutine.
type Level struct {
	def      layout.LevelDef
	layouts  layout.Layouts
	index    int
	unlocked int
	farmed   bool
	loadout  *weapon.Loadout
	host     Host
	input    InputSource
	clock    clock.Clock
	rng      *rand.Rand
	log      *logrus.Entry

	keepInternal bool

	world  donburi.World
	space  *resolv.Space
	probe  *resolv.Object
	layers [][]*donburi.Entry
	player *donburi.Entry
	end    *donburi.Entry

	backdrop *Backdrop
	width    float64
	height   float64
	cameraX  float64
	shift    float64

	now      time.Time
	dt       float64 // Seconds simulated this frame
	step     float64 // dt in 60 Hz frames
	intent   Intent
	paused   bool
	pausedAt time.Time
	done     bool
}

// system is one step of the frame, run in table order.
type system struct {
	name string
	run  func(l *Level)
}

// systems is the frame order. Later steps read what earlier ones wrote.
var systems = []system{
	{"backdrop", updateBackdrop},
	{"particles", updateParticles},
	{"energy", updateEnergy},
	{"enemies", updateEnemies},
	{"end marker", updateEndMarker},
	{"player", updatePlayer},
	{"physics", updatePhysics},
	{"camera", updateCamera},
	{"projectiles", updateProjectiles},
	{"combat", updateCombat},
	{"enemy deaths", sweepEnemyDeaths},
	{"fall death", checkFallDeath},
	{"completion", checkCompletion},
}

// New builds a level from its layouts.
func New(opts Options) (*Level, error) {
	if opts.Host == nil {
		return nil, ErrNoHost
	}
	if opts.Input == nil {
		return nil, ErrNoInput
	}
	if opts.Loadout == nil {
		return nil, ErrNoLoadout
	}
	if opts.Layouts == nil || opts.Layouts[layout.Terrain] == nil {
		return nil, fmt.Errorf("%w: %s has no terrain", layout.ErrMissingLayout, opts.Def.ID)
	}
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}

	size := float64(config.Tiles.Size)
	l := &Level{
		def:          opts.Def,
		layouts:      opts.Layouts,
		index:        opts.Index,
		unlocked:     opts.Unlocked,
		farmed:       opts.Farmed,
		loadout:      opts.Loadout,
		host:         opts.Host,
		input:        opts.Input,
		clock:        opts.Clock,
		rng:          opts.Rand,
		keepInternal: opts.keepInternal,
		world:        donburi.NewWorld(),
		width:        float64(opts.Layouts.Width()) * size,
		height:       float64(opts.Layouts.Height()) * size,
		now:          opts.Clock.Now(),
		log: logger.Log.WithFields(logrus.Fields{
			"level": opts.Def.ID,
			"index": opts.Index,
		}),
	}
	l.space, l.probe = newSpace(l.width, l.height, config.Tiles.Size)

	if err := l.build(); err != nil {
		return nil, fmt.Errorf("level %s: %w", opts.Def.ID, err)
	}
	l.backdrop = newBackdrop(l.def, l.width, l.rng)
	l.centerCamera()

	l.log.WithFields(logrus.Fields{
		"width":  l.width,
		"height": l.height,
		"farmed": l.farmed,
	}).Info("Level started")
	return l, nil
}

// Update advances the simulation by dt seconds. Steps longer than
// config.LevelFlow.MaxStep are simulated as MaxStep.
func (l *Level) Update(dt float64) {
	if l.paused || l.done || dt <= 0 {
		return
	}
	l.dt = min(dt, config.LevelFlow.MaxStep)
	l.step = l.dt * 60
	l.now = l.clock.Now()
	l.intent = l.input.Intent()
	for _, s := range systems {
		s.run(l)
		if l.done {
			return
		}
	}
}

// Def returns the definition the level was built from.
func (l *Level) Def() layout.LevelDef { return l.def }

// Farmed reports whether rewards are reduced in this level.
func (l *Level) Farmed() bool { return l.farmed }

// Done reports whether the level has handed control back to its host.
func (l *Level) Done() bool { return l.done }

// CameraX returns the world x shown at the left screen edge.
func (l *Level) CameraX() float64 { return l.cameraX }

// Shift returns how far the world moved on screen during the last update.
func (l *Level) Shift() float64 { return l.shift }

// Size returns the level extent in pixels.
func (l *Level) Size() (w, h float64) { return l.width, l.height }

// PlayerRect returns the player's collision bounds in world space.
func (l *Level) PlayerRect() geom.Rect {
	return components.Object.Get(l.player).Rect()
}

// Player returns a copy of the player state.
func (l *Level) Player() components.PlayerData {
	return *components.Player.Get(l.player)
}
