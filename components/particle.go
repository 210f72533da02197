package components

import (
	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/geom"
	"github.com/yohamta/donburi"
)

type ParticleData struct {
	Kind   config.ParticleKind
	Rect   geom.Rect
	Frame  float64
	Frames int
	Rate   float64
	FlipX  bool
}

var Particle = donburi.NewComponentType[ParticleData]()
