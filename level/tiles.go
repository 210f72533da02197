package level

import (
	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/geom"
	"github.com/automoto/betrothed/layout"
)

// Tile is one filled cell of a category grid.
type Tile struct {
	Category layout.Category
	Code     int
	Col, Row int
	Rect     geom.Rect
}

// visualLayers are the tile categories drawn behind entities, back to front.
var visualLayers = []layout.Category{
	layout.Background, layout.Buildings, layout.Roofs, layout.Roots,
	layout.Terrain, layout.Grass, layout.Trees, layout.Decoration,
}

// BuildTileGroup returns a tile for every filled cell of g. Empty cells are
// skipped; the grid is trusted to be rectangular.
func BuildTileGroup(g layout.Grid, c layout.Category) []Tile {
	size := float64(config.Tiles.Size)
	var out []Tile
	g.Each(func(col, row, code int) {
		r := geom.Rect{X: float64(col) * size, Y: float64(row) * size, W: size, H: size}
		switch c {
		case layout.Barriers:
			r.Y -= config.Tiles.BarrierOffset
		case layout.Trees:
			r.Y -= config.Tiles.TreeOffset
		}
		out = append(out, Tile{Category: c, Code: code, Col: col, Row: row, Rect: r})
	})
	return out
}

// InternalTerrain reports whether the terrain cell at col, row can never be
// touched: all eight neighbours are terrain, or on the bottom row the
// neighbours to the sides and above are.
func InternalTerrain(g layout.Grid, col, row int) bool {
	if !g.Filled(col, row) {
		return false
	}
	filled := func(dx, dy int) bool { return g.Filled(col+dx, row+dy) }
	above := filled(-1, -1) && filled(0, -1) && filled(1, -1)
	sides := filled(-1, 0) && filled(1, 0)
	if row == g.Height()-1 {
		return above && sides
	}
	return above && sides && filled(-1, 1) && filled(0, 1) && filled(1, 1)
}
