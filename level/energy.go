package level

import (
	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// updateEnergy bobs the pickups and collects those the player touches.
// Farmed levels carry no pickups.
func updateEnergy(l *Level) {
	if l.farmed {
		return
	}
	tags.Energy.Each(l.world, func(e *donburi.Entry) {
		en := components.Energy.Get(e)
		v, finished := en.Bob.Update(float32(l.dt))
		en.Offset = float64(v)
		if finished {
			from, to := float32(0), float32(-bobHeight)
			if en.Rising {
				from, to = to, from
			}
			en.Rising = !en.Rising
			en.Bob = gween.New(from, to, bobSeconds, ease.InOutSine)
		}
	})

	for _, e := range l.entries(l.PlayerRect(), tags.ResolvEnergy) {
		l.host.UpdateEnergy(components.Energy.Get(e).Value, true)
		l.remove(e)
	}
}
