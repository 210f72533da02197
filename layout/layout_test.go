package layout_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/betrothed/layout"
	"github.com/automoto/betrothed/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	g, err := layout.ParseCSV(strings.NewReader("-1,0,1\n2, 3 ,-1\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 3, g.At(1, 1))
	assert.Equal(t, layout.Empty, g.At(0, 0))
	assert.Equal(t, layout.Empty, g.At(10, 10))
	assert.True(t, g.Filled(2, 0))

	var cells int
	g.Each(func(x, y, code int) { cells++ })
	assert.Equal(t, 4, cells)
}

func TestParseCSVMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"ragged", "0,1\n0\n"},
		{"not a number", "0,x\n"},
		{"below sentinel", "0,-2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := layout.ParseCSV(strings.NewReader(tt.in))
			assert.ErrorIs(t, err, layout.ErrMalformedLayout)
		})
	}
}

func TestBundledCatalog(t *testing.T) {
	m, err := layout.LoadManifest(levels.FS, levels.ManifestPath)
	require.NoError(t, err)
	require.Len(t, m.Levels, 2)

	first, ok := m.Level(0)
	require.True(t, ok)
	assert.Equal(t, "Chapter I-A", first.Name)
	assert.Equal(t, "chapter1a", first.Dir)

	_, ok = m.Level(5)
	assert.False(t, ok)

	for _, def := range m.Levels {
		l, err := layout.Load(levels.FS, def)
		require.NoError(t, err, def.ID)
		assert.Equal(t, 11, l.Height(), def.ID)
		for _, cat := range layout.Categories {
			require.Contains(t, l, cat)
			assert.Equal(t, l.Width(), l[cat].Width(), "%s %s", def.ID, cat)
		}
	}
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"lv/terrain.csv": {Data: []byte("-1,-1,-1\n0,0,0\n")},
		"lv/setup.csv":   {Data: []byte("0,-1,1\n-1,-1,-1\n")},
		"lv/energy.csv":  {Data: []byte("-1,2\n-1,-1\n")},
	}
}

func TestLoadFillsMissingCategories(t *testing.T) {
	def := layout.LevelDef{ID: "t", Dir: "lv", Layouts: map[layout.Category]string{
		layout.Terrain: "terrain.csv",
		layout.Setup:   "setup.csv",
	}}
	l, err := layout.Load(testFS(), def)
	require.NoError(t, err)
	assert.Equal(t, 3, l.Width())
	assert.Equal(t, layout.Empty, l[layout.Trees].At(1, 1))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		layouts map[layout.Category]string
		want    error
	}{
		{"missing file", map[layout.Category]string{layout.Terrain: "nope.csv", layout.Setup: "setup.csv"}, layout.ErrMissingLayout},
		{"mismatched size", map[layout.Category]string{layout.Terrain: "terrain.csv", layout.Setup: "setup.csv", layout.Energy: "energy.csv"}, layout.ErrMalformedLayout},
		{"no setup", map[layout.Category]string{layout.Terrain: "terrain.csv"}, layout.ErrMissingLayout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := layout.Load(testFS(), layout.LevelDef{ID: "t", Dir: "lv", Layouts: tt.layouts})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadManifestValidation(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.yaml":     {Data: []byte("levels:\n  - id: a\n    layouts:\n      terrain: t.csv\n")},
		"unknown.yaml": {Data: []byte("levels:\n  - id: a\n    layouts:\n      terrain: t.csv\n      setup: s.csv\n      lava: l.csv\n")},
		"empty.yaml":   {Data: []byte("levels: []\n")},
	}
	_, err := layout.LoadManifest(fsys, "bad.yaml")
	assert.ErrorIs(t, err, layout.ErrMissingLayout)

	_, err = layout.LoadManifest(fsys, "unknown.yaml")
	assert.ErrorIs(t, err, layout.ErrMalformedLayout)

	_, err = layout.LoadManifest(fsys, "empty.yaml")
	assert.Error(t, err)

	_, err = layout.LoadManifest(fsys, "missing.yaml")
	assert.Error(t, err)
}

func TestIsLayoutFile(t *testing.T) {
	assert.True(t, layout.IsLayoutFile("levels/a/terrain.CSV"))
	assert.True(t, layout.IsLayoutFile("map.tmx"))
	assert.False(t, layout.IsLayoutFile("notes.txt"))
}
