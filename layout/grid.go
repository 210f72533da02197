// Package layout loads the per-category cell grids a level is built from.
package layout

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Empty marks a cell with nothing in it.
const Empty = -1

var (
	ErrMissingLayout   = errors.New("layout: missing layout")
	ErrMalformedLayout = errors.New("layout: malformed layout")
)

// Category tags a grid with how its cells are interpreted.
type Category string

const (
	Background Category = "background"
	Barriers   Category = "barriers"
	Borders    Category = "borders"
	Buildings  Category = "buildings"
	Decoration Category = "decoration"
	Enemies    Category = "enemies"
	Energy     Category = "energy"
	Grass      Category = "grass"
	Roofs      Category = "roofs"
	Roots      Category = "roots"
	Setup      Category = "setup"
	Terrain    Category = "terrain"
	Trees      Category = "trees"
)

// Categories lists every category in back-to-front draw order.
var Categories = []Category{
	Background, Buildings, Roofs, Roots, Terrain, Grass, Trees,
	Decoration, Barriers, Borders, Energy, Enemies, Setup,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// Setup layer cell codes.
const (
	SetupPlayer = 0
	SetupEnd    = 1
)

// Grid is a row-major matrix of cell codes.
type Grid [][]int

// NewGrid returns a w x h grid filled with Empty.
func NewGrid(w, h int) Grid {
	g := make(Grid, h)
	for y := range g {
		row := make([]int, w)
		for x := range row {
			row[x] = Empty
		}
		g[y] = row
	}
	return g
}

func (g Grid) Height() int { return len(g) }

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the cell code at column x, row y, or Empty when out of bounds.
func (g Grid) At(x, y int) int {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return Empty
	}
	return g[y][x]
}

// Filled reports whether the cell at x, y holds anything.
func (g Grid) Filled(x, y int) bool {
	return g.At(x, y) != Empty
}

// Each calls fn for every non-empty cell.
func (g Grid) Each(fn func(x, y, code int)) {
	for y, row := range g {
		for x, code := range row {
			if code != Empty {
				fn(x, y, code)
			}
		}
	}
}

// ParseCSV reads a grid of integers. Rows must share one width.
func ParseCSV(r io.Reader) (Grid, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLayout, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedLayout)
	}

	g := make(Grid, len(records))
	for y, rec := range records {
		if len(rec) != len(records[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedLayout, y, len(rec), len(records[0]))
		}
		row := make([]int, len(rec))
		for x, field := range rec {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil || v < Empty {
				return nil, fmt.Errorf("%w: row %d col %d: %q", ErrMalformedLayout, y, x, field)
			}
			row[x] = v
		}
		g[y] = row
	}
	return g, nil
}
