package scenes

import (
	"image/color"
	"slices"
	"sync"

	"github.com/automoto/betrothed/archetypes"
	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/fonts"
	"github.com/automoto/betrothed/layout"
	"github.com/automoto/betrothed/logger"
	"github.com/automoto/betrothed/render"
	"github.com/automoto/betrothed/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const nodeRadius = 18

var (
	mapGround   = color.RGBA{R: 60, G: 110, B: 70, A: 255}
	mapPath     = color.RGBA{R: 200, G: 180, B: 130, A: 255}
	nodeLocked  = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	nodeOpen    = config.Orange
	nodeCleared = config.Green
)

// WorldScene is the level select map.
type WorldScene struct {
	app  *App
	ecs  *ecs.ECS
	once sync.Once
}

func newWorldScene(a *App) *WorldScene {
	return &WorldScene{app: a}
}

func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(mapGround)
	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ws.ecs = ecs.NewECS(donburi.NewWorld())
	spawnMap(ws.ecs.World, ws.app.game.Manifest(), ws.app.game.Current(), ws.app.game.Unlocked())

	ws.ecs.AddSystem(ws.updateCursor)

	ws.ecs.AddRenderer(layerDefault, drawPaths)
	ws.ecs.AddRenderer(layerDefault, drawNodes)
	ws.ecs.AddRenderer(layerDefault, ws.drawHUD)
}

// spawnMap creates a node per catalog level and the cursor.
func spawnMap(w donburi.World, m *layout.Manifest, current, unlocked int) {
	for i, def := range m.Levels {
		e := archetypes.MapNode.Spawn(w)
		x, y := nodePosition(def)
		components.MapNode.SetValue(e, components.MapNodeData{
			Index:  i,
			Name:   def.Name,
			X:      x,
			Y:      y,
			Locked: i > unlocked,
		})
	}
	cursor := archetypes.MapCursor.Spawn(w)
	components.MapCursor.SetValue(cursor, components.MapCursorData{
		Selected: max(0, min(current, unlocked, len(m.Levels)-1)),
		Count:    len(m.Levels),
		Unlocked: unlocked,
	})
}

// nodePosition places a level on the map from its grid node.
func nodePosition(def layout.LevelDef) (float64, float64) {
	size := float64(config.Tiles.Size)
	return (float64(def.Node[0]) + 0.5) * size, (float64(def.Node[1]) + 0.5) * size
}

// moveCursor steps the selection by delta, wrapping around count nodes.
func moveCursor(selected, delta, count int) int {
	if count <= 0 {
		return 0
	}
	return ((selected+delta)%count + count) % count
}

func (ws *WorldScene) updateCursor(e *ecs.ECS) {
	entry, ok := components.MapCursor.First(e.World)
	if !ok {
		return
	}
	c := components.MapCursor.Get(entry)
	in := ws.app.input

	switch {
	case in.JustPressed(config.ActionMoveLeft), in.JustPressed(config.ActionMenuUp):
		c.Selected = moveCursor(c.Selected, -1, c.Count)
		c.Message = ""
	case in.JustPressed(config.ActionMoveRight), in.JustPressed(config.ActionMenuDown):
		c.Selected = moveCursor(c.Selected, 1, c.Count)
		c.Message = ""
	case in.JustPressed(config.ActionMenuSelect), in.JustPressed(config.ActionJump):
		if c.Selected > c.Unlocked {
			c.Message = "Locked"
			return
		}
		if err := ws.app.game.EnterLevel(c.Selected); err != nil {
			logger.Log.WithError(err).Error("Could not enter level")
			c.Message = "Could not load level"
		}
	}
}

// sortedNodes returns the map nodes in catalog order.
func sortedNodes(w donburi.World) []components.MapNodeData {
	var nodes []components.MapNodeData
	tags.MapNode.Each(w, func(e *donburi.Entry) {
		nodes = append(nodes, *components.MapNode.Get(e))
	})
	slices.SortFunc(nodes, func(a, b components.MapNodeData) int {
		return a.Index - b.Index
	})
	return nodes
}

func drawPaths(e *ecs.ECS, screen *ebiten.Image) {
	nodes := sortedNodes(e.World)
	for i := 1; i < len(nodes); i++ {
		a, b := nodes[i-1], nodes[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 6, mapPath, true)
	}
}

func drawNodes(e *ecs.ECS, screen *ebiten.Image) {
	cursor := components.MapCursorData{Selected: -1}
	if entry, ok := components.MapCursor.First(e.World); ok {
		cursor = *components.MapCursor.Get(entry)
	}
	face := fonts.Small.Get()

	for _, n := range sortedNodes(e.World) {
		fill := nodeOpen
		switch {
		case n.Locked:
			fill = nodeLocked
		case n.Index < cursor.Unlocked:
			fill = nodeCleared
		}
		vector.DrawFilledCircle(screen, float32(n.X), float32(n.Y), nodeRadius, fill, true)
		if n.Index == cursor.Selected {
			vector.StrokeCircle(screen, float32(n.X), float32(n.Y), nodeRadius+6, 3, config.White, true)
		}

		w, _ := text.Measure(n.Name, face, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate(n.X-w/2, n.Y+nodeRadius+8)
		op.ColorScale.ScaleWithColor(config.White)
		text.Draw(screen, n.Name, face, op)
	}
}

func (ws *WorldScene) drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	render.DrawHUD(screen, ws.app.game.Pools(), ws.app.game.Loadout(), "World map")

	entry, ok := components.MapCursor.First(e.World)
	if !ok || components.MapCursor.Get(entry).Message == "" {
		return
	}
	msg := components.MapCursor.Get(entry).Message
	face := fonts.Bold.Get()
	w, _ := text.Measure(msg, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(config.Screen.Width)-w)/2, float64(config.Screen.Height)-64)
	op.ColorScale.ScaleWithColor(config.White)
	text.Draw(screen, msg, face, op)
}
