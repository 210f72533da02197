package components

import "github.com/yohamta/donburi"

// MapNodeData is one level on the world map.
type MapNodeData struct {
	Index  int
	Name   string
	X, Y   float64 // Screen position of the node center
	Locked bool
}

var MapNode = donburi.NewComponentType[MapNodeData]()

// MapCursorData is the world map selection.
type MapCursorData struct {
	Selected int
	Count    int
	Unlocked int
	Message  string
}

var MapCursor = donburi.NewComponentType[MapCursorData]()
