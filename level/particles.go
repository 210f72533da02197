package level

import (
	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/tags"
	"github.com/yohamta/donburi"
)

// updateParticles advances every effect and drops the finished ones.
func updateParticles(l *Level) {
	var finished []*donburi.Entry
	tags.Particle.Each(l.world, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.Frame += p.Rate * l.step
		if int(p.Frame) >= p.Frames {
			finished = append(finished, e)
		}
	})
	for _, e := range finished {
		l.remove(e)
	}
}
