package layout

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/lafriks/go-tiled"
)

// LoadTMX reads a Tiled map whose tile layers are named after categories.
// A cell's code is its tileset-local ID unless the tileset tile carries a
// "code" property. Layers with other names are ignored.
func LoadTMX(fsys fs.FS, tmxPath string) (Layouts, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("%w: load TMX %s: %v", ErrMissingLayout, tmxPath, err)
	}

	out := make(Layouts)
	for _, layer := range levelMap.Layers {
		cat := Category(layer.Name)
		if !cat.Valid() {
			continue
		}
		if len(layer.Tiles) != levelMap.Width*levelMap.Height {
			return nil, fmt.Errorf("%w: %s layer %s has %d tiles", ErrMalformedLayout, tmxPath, layer.Name, len(layer.Tiles))
		}

		g := NewGrid(levelMap.Width, levelMap.Height)
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				code := int(tile.ID)
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if s := tilesetTile.Properties.GetString("code"); s != "" {
						if v, err := strconv.Atoi(s); err == nil {
							code = v
						}
					}
				}
				g[y][x] = code
			}
		}
		out[cat] = g
	}
	return out, nil
}
