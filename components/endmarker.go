package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type EndMarkerData struct {
	Reached   bool
	ReachedAt time.Time
	Pulse     *gween.Tween
	Scale     float64
}

var EndMarker = donburi.NewComponentType[EndMarkerData]()
