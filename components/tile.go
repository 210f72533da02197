package components

import (
	"github.com/automoto/betrothed/geom"
	"github.com/automoto/betrothed/layout"
	"github.com/yohamta/donburi"
)

type TileData struct {
	Category layout.Category
	Code     int
	Col, Row int
	Rect     geom.Rect // Draw bounds
	Internal bool      // Unreachable terrain, kept out of the collision space
}

var Tile = donburi.NewComponentType[TileData]()
