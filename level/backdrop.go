package level

import (
	"math/rand/v2"

	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/layout"
)

const (
	cloudMinSpeed = 0.1
	cloudMaxSpeed = 0.4
	cloudSizes    = 3
)

func newBackdrop(def layout.LevelDef, width float64, rng *rand.Rand) *Backdrop {
	cfg := config.Backdrop
	b := &Backdrop{
		Horizon:   float64(def.Horizon * config.Tiles.Size),
		Water:     def.Water,
		Mountains: def.Mountains,
		Width:     width,
		Clouds:    make([]Cloud, cfg.Clouds),
	}
	for i := range b.Clouds {
		b.Clouds[i] = Cloud{
			X:     rng.Float64() * width,
			Y:     cfg.CloudMinY + rng.Float64()*(cfg.CloudMaxY-cfg.CloudMinY),
			Speed: cloudMinSpeed + rng.Float64()*(cloudMaxSpeed-cloudMinSpeed),
			Size:  rng.IntN(cloudSizes),
		}
	}
	return b
}

// updateBackdrop drifts the clouds left, wrapping at the level start.
func updateBackdrop(l *Level) {
	for i := range l.backdrop.Clouds {
		c := &l.backdrop.Clouds[i]
		c.X -= c.Speed * l.step
		if c.X < -float64(config.Tiles.Size)*2 {
			c.X += l.backdrop.Width + float64(config.Tiles.Size)*4
		}
	}
}
