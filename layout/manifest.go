package layout

import (
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// Format selects the on-disk encoding of a level's grids.
type Format string

const (
	FormatCSV Format = "csv"
	FormatTMX Format = "tmx"
)

// LevelDef describes one level entry of the catalog.
type LevelDef struct {
	ID        string              `yaml:"id"`
	Name      string              `yaml:"name"`
	Part      int                 `yaml:"part"`
	Subpart   int                 `yaml:"subpart"`
	Node      [2]int              `yaml:"node"`
	Unlock    int                 `yaml:"unlock"`
	Horizon   int                 `yaml:"horizon"`
	Water     bool                `yaml:"water"`
	Mountains bool                `yaml:"mountains"`
	Format    Format              `yaml:"format"`
	Dir       string              `yaml:"dir"`
	Map       string              `yaml:"map"`
	Layouts   map[Category]string `yaml:"layouts"`
}

// Manifest is the level catalog, ordered by progression.
type Manifest struct {
	Levels []LevelDef `yaml:"levels"`
}

// Level returns the definition at index i.
func (m *Manifest) Level(i int) (LevelDef, bool) {
	if i < 0 || i >= len(m.Levels) {
		return LevelDef{}, false
	}
	return m.Levels[i], true
}

// LoadManifest reads and validates the catalog at name inside fsys.
func LoadManifest(fsys fs.FS, name string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("layout: load %s: %w", name, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("layout: unmarshal %s: %w", name, err)
	}
	if len(m.Levels) == 0 {
		return nil, fmt.Errorf("layout: %s lists no levels", name)
	}

	base := path.Dir(name)
	for i := range m.Levels {
		def := &m.Levels[i]
		if def.Format == "" {
			def.Format = FormatCSV
		}
		def.Dir = path.Join(base, def.Dir)
		if err := def.validate(); err != nil {
			return nil, fmt.Errorf("layout: %s level %d: %w", name, i, err)
		}
	}
	return &m, nil
}

func (d LevelDef) validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: level without id", ErrMalformedLayout)
	}
	switch d.Format {
	case FormatCSV:
		for c := range d.Layouts {
			if !c.Valid() {
				return fmt.Errorf("%w: %s: unknown category %q", ErrMalformedLayout, d.ID, c)
			}
		}
		if d.Layouts[Terrain] == "" || d.Layouts[Setup] == "" {
			return fmt.Errorf("%w: %s: terrain and setup are required", ErrMissingLayout, d.ID)
		}
	case FormatTMX:
		if d.Map == "" {
			return fmt.Errorf("%w: %s: tmx level without map", ErrMissingLayout, d.ID)
		}
	default:
		return fmt.Errorf("%w: %s: unknown format %q", ErrMalformedLayout, d.ID, d.Format)
	}
	return nil
}
