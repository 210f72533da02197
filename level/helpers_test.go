package level

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/automoto/betrothed/clock"
	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/layout"
	"github.com/automoto/betrothed/stats"
	"github.com/automoto/betrothed/weapon"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

const frame = 1.0 / 60

type worldCall struct {
	current, unlocked int
}

type fakeHost struct {
	pools   *stats.Pools
	worlds  []worldCall
	saves   int
	saveErr error
	cleared bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{pools: stats.NewPools()}
}

func (h *fakeHost) UpdateHealth(amount float64, damage bool) { h.pools.UpdateHealth(amount, damage) }
func (h *fakeHost) UpdateEnergy(amount int, add bool)        { h.pools.UpdateEnergy(amount, add) }
func (h *fakeHost) ResetEnergyOverflow()                     { h.pools.ResetEnergyOverflow() }
func (h *fakeHost) UpdateStamina(amount float64, add bool)   { h.pools.UpdateStamina(amount, add) }
func (h *fakeHost) Stamina() float64                         { return h.pools.Stamina() }
func (h *fakeHost) ClearEnergyRestriction()                  { h.cleared = true }
func (h *fakeHost) CreateWorld(current, unlocked int) {
	h.worlds = append(h.worlds, worldCall{current, unlocked})
}
func (h *fakeHost) Save() error {
	h.saves++
	return h.saveErr
}

// fixedSource returns the same value on every draw.
type fixedSource uint64

func (s fixedSource) Uint64() uint64 { return uint64(s) }

// script is an input source the test drives directly.
type script struct {
	intent Intent
}

func (s *script) Intent() Intent { return s.intent }

// art turns rows of characters into a grid. Dots are empty, digits are codes.
func art(rows ...string) layout.Grid {
	g := layout.NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			if c != '.' {
				g[y][x] = int(c - '0')
			}
		}
	}
	return g
}

type fixture struct {
	level *Level
	host  *fakeHost
	input *script
	clock *clock.Manual
}

// step advances the clock by one 60 Hz frame and updates.
func (f *fixture) step() {
	f.clock.Advance(time.Second / 60)
	f.level.Update(frame)
}

func (f *fixture) steps(n int) {
	for range n {
		f.step()
	}
}

// flat is a 12 by 4 level with the player standing on solid ground at
// column 2.
func flat() layout.Layouts {
	return layout.Layouts{
		layout.Terrain: art(
			"............",
			"............",
			"000000000000",
			"000000000000",
		),
		layout.Setup: art(
			"............",
			"..0.......1.",
			"............",
			"............",
		),
	}
}

func newFixture(t *testing.T, layouts layout.Layouts, opts ...func(*Options)) *fixture {
	t.Helper()
	f := &fixture{
		host:  newFakeHost(),
		input: &script{},
		clock: clock.NewManual(epoch),
	}
	o := Options{
		Def:      layout.LevelDef{ID: "test", Unlock: 1},
		Layouts:  layouts,
		Loadout:  weapon.NewLoadout(),
		Host:     f.host,
		Input:    f.input,
		Clock:    f.clock,
		Rand:     rand.New(rand.NewPCG(1, 2)),
		Unlocked: 0,
	}
	for _, fn := range opts {
		fn(&o)
	}
	l, err := New(o)
	require.NoError(t, err)
	f.level = l
	return f
}

func count(l *Level, tag donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(tag)).Each(l.world, func(*donburi.Entry) { n++ })
	return n
}

// firstEnemy returns the only or first enemy entry.
func firstEnemy(t *testing.T, l *Level) *donburi.Entry {
	t.Helper()
	e, ok := components.Enemy.First(l.world)
	require.True(t, ok)
	return e
}
