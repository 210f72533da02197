package scenes

import (
	"testing"

	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestMoveCursorWraps(t *testing.T) {
	assert.Equal(t, 1, moveCursor(0, 1, 3))
	assert.Equal(t, 0, moveCursor(2, 1, 3))
	assert.Equal(t, 2, moveCursor(0, -1, 3))
	assert.Equal(t, 0, moveCursor(4, 0, 0))
}

func TestSpawnMap(t *testing.T) {
	m := &layout.Manifest{Levels: []layout.LevelDef{
		{ID: "a", Name: "A", Node: [2]int{1, 2}},
		{ID: "b", Name: "B", Node: [2]int{4, 2}},
		{ID: "c", Name: "C", Node: [2]int{6, 3}},
	}}
	w := donburi.NewWorld()
	spawnMap(w, m, 2, 1)

	nodes := sortedNodes(w)
	require.Len(t, nodes, 3)
	assert.Equal(t, "A", nodes[0].Name)
	assert.Equal(t, 96.0, nodes[0].X)
	assert.Equal(t, 160.0, nodes[0].Y)
	assert.False(t, nodes[1].Locked)
	assert.True(t, nodes[2].Locked)

	entry, ok := components.MapCursor.First(w)
	require.True(t, ok)
	c := components.MapCursor.Get(entry)
	assert.Equal(t, 1, c.Selected, "the cursor starts on an open level")
	assert.Equal(t, 3, c.Count)
}
