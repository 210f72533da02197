package level

import (
	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/tags"
)

// updateEndMarker marks the goal reached on first touch and pulses it.
func updateEndMarker(l *Level) {
	if l.end == nil {
		return
	}
	m := components.EndMarker.Get(l.end)
	if m.Pulse != nil {
		v, finished := m.Pulse.Update(float32(l.dt))
		m.Scale = float64(v)
		if finished {
			m.Pulse.Reset()
		}
	}
	if m.Reached {
		return
	}
	if len(l.entries(l.PlayerRect(), tags.ResolvEnd)) > 0 {
		m.Reached = true
		m.ReachedAt = l.now
		m.Pulse = newPulse()
		l.log.Info("End reached")
	}
}

// checkCompletion leaves the level once the goal has been reached for
// config.LevelFlow.CompletionDelay.
func checkCompletion(l *Level) {
	if l.end == nil {
		return
	}
	m := components.EndMarker.Get(l.end)
	if !m.Reached || l.now.Sub(m.ReachedAt) < config.LevelFlow.CompletionDelay {
		return
	}
	l.complete()
}

func (l *Level) complete() {
	if l.done {
		return
	}
	l.done = true

	frontier := l.index >= l.unlocked
	if frontier {
		l.host.UpdateHealth(config.Economy.CompletionHeal, false)
		l.host.ClearEnergyRestriction()
	}
	unlocked := max(l.unlocked, l.def.Unlock)
	l.log.WithField("unlocked", unlocked).Info("Level complete")

	l.host.CreateWorld(l.index, unlocked)
	if err := l.host.Save(); err != nil {
		l.log.WithError(err).Error("Failed to save after level completion")
	}
}
