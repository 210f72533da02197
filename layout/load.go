package layout

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/betrothed/logger"
	"github.com/sirupsen/logrus"
)

// Layouts holds one grid per category, all of identical dimensions.
type Layouts map[Category]Grid

// Width returns the level width in cells.
func (l Layouts) Width() int { return l[Terrain].Width() }

// Height returns the level height in cells.
func (l Layouts) Height() int { return l[Terrain].Height() }

// Load reads every grid a level definition names. Categories the definition
// leaves out come back as empty grids; anything unreadable is an error.
func Load(fsys fs.FS, def LevelDef) (Layouts, error) {
	var (
		out Layouts
		err error
	)
	switch def.Format {
	case FormatTMX:
		out, err = LoadTMX(fsys, path.Join(def.Dir, def.Map))
	default:
		out, err = loadCSV(fsys, def)
	}
	if err != nil {
		return nil, err
	}
	if err := out.normalize(); err != nil {
		return nil, fmt.Errorf("layout: %s: %w", def.ID, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"level":  def.ID,
		"format": def.Format,
		"width":  out.Width(),
		"height": out.Height(),
	}).Debug("layout loaded")
	return out, nil
}

func loadCSV(fsys fs.FS, def LevelDef) (Layouts, error) {
	out := make(Layouts, len(def.Layouts))
	for cat, file := range def.Layouts {
		name := path.Join(def.Dir, file)
		f, err := fsys.Open(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s: %v", ErrMissingLayout, def.ID, name, err)
		}
		g, err := ParseCSV(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("layout: %s %s: %w", def.ID, name, err)
		}
		out[cat] = g
	}
	return out, nil
}

// normalize checks shared dimensions and fills absent categories.
func (l Layouts) normalize() error {
	terrain, ok := l[Terrain]
	if !ok || terrain.Height() == 0 {
		return fmt.Errorf("%w: terrain", ErrMissingLayout)
	}
	if _, ok := l[Setup]; !ok {
		return fmt.Errorf("%w: setup", ErrMissingLayout)
	}
	w, h := terrain.Width(), terrain.Height()
	for _, cat := range Categories {
		g, ok := l[cat]
		if !ok {
			l[cat] = NewGrid(w, h)
			continue
		}
		if g.Width() != w || g.Height() != h {
			return fmt.Errorf("%w: %s is %dx%d, terrain is %dx%d", ErrMalformedLayout, cat, g.Width(), g.Height(), w, h)
		}
	}

	players := 0
	l[Setup].Each(func(_, _, code int) {
		if code == SetupPlayer {
			players++
		}
	})
	if players != 1 {
		return fmt.Errorf("%w: setup has %d player spawns, want 1", ErrMalformedLayout, players)
	}
	return nil
}
