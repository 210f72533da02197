package main

import (
	"path/filepath"
	"testing"

	"github.com/automoto/betrothed/layout"
	"github.com/stretchr/testify/assert"
)

func TestWatchDirs(t *testing.T) {
	m := &layout.Manifest{Levels: []layout.LevelDef{
		{ID: "a", Dir: "chapter1a"},
		{ID: "b", Dir: "chapter1a"},
		{ID: "c", Dir: "."},
	}}
	assert.Equal(t, []string{"levels", filepath.Join("levels", "chapter1a")}, watchDirs("levels", m))
}
