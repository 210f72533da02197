package layout_test

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/betrothed/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tile 2 of the tileset carries a code override; the others use their ID.
const tmxHeader = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="64" tileheight="64" infinite="0">
 <tileset firstgid="1" name="cells" tilewidth="64" tileheight="64" tilecount="4" columns="4">
  <tile id="2">
   <properties>
    <property name="code" value="7"/>
   </properties>
  </tile>
 </tileset>
`

const tmxLevel = tmxHeader + ` <layer id="1" name="terrain" width="3" height="2">
  <data encoding="csv">
0,0,0,
1,2,3
</data>
 </layer>
 <layer id="2" name="setup" width="3" height="2">
  <data encoding="csv">
1,0,0,
0,0,2
</data>
 </layer>
 <layer id="3" name="notes" width="3" height="2">
  <data encoding="csv">
4,4,4,
4,4,4
</data>
 </layer>
</map>
`

const tmxShortLayer = tmxHeader + ` <layer id="1" name="terrain" width="2" height="2">
  <data encoding="csv">
0,0,
1,1
</data>
 </layer>
</map>
`

func tmxFS() fstest.MapFS {
	return fstest.MapFS{
		"lv/level.tmx": {Data: []byte(tmxLevel)},
		"lv/short.tmx": {Data: []byte(tmxShortLayer)},
	}
}

func TestLoadTMX(t *testing.T) {
	l, err := layout.LoadTMX(tmxFS(), "lv/level.tmx")
	require.NoError(t, err)

	assert.Len(t, l, 2, "only category layers are kept")
	assert.Equal(t, layout.Grid{{-1, -1, -1}, {0, 1, 7}}, l[layout.Terrain])
	assert.Equal(t, layout.Grid{{layout.SetupPlayer, -1, -1}, {-1, -1, layout.SetupEnd}}, l[layout.Setup])
}

func TestLoadTMXLayerSizeMismatch(t *testing.T) {
	_, err := layout.LoadTMX(tmxFS(), "lv/short.tmx")
	assert.ErrorIs(t, err, layout.ErrMalformedLayout)
}

func TestLoadTMXMissingFile(t *testing.T) {
	_, err := layout.LoadTMX(tmxFS(), "lv/nope.tmx")
	assert.ErrorIs(t, err, layout.ErrMissingLayout)
}

func TestLoadWithTMXFormat(t *testing.T) {
	def := layout.LevelDef{ID: "t", Dir: "lv", Format: layout.FormatTMX, Map: "level.tmx"}
	l, err := layout.Load(tmxFS(), def)
	require.NoError(t, err)

	assert.Equal(t, 3, l.Width())
	assert.Equal(t, 2, l.Height())
	for _, cat := range layout.Categories {
		require.Contains(t, l, cat)
		assert.Equal(t, 3, l[cat].Width(), "%s", cat)
	}
	assert.Equal(t, layout.NewGrid(3, 2), l[layout.Enemies])
	assert.Equal(t, 7, l[layout.Terrain].At(2, 1))
}
