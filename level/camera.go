package level

import (
	"github.com/automoto/betrothed/components"
	"github.com/automoto/betrothed/config"
)

// updateCamera scrolls when the player pushes into the outer dead zone of
// the viewport. While scrolling, the player holds still on screen and the
// world moves instead.
func updateCamera(l *Level) {
	prev := l.cameraX
	ph := components.Physics.Get(l.player)
	r := l.PlayerRect()

	sw := float64(config.Screen.Width)
	zone := sw * config.Camera.DeadZone
	screenX := r.CenterX() - l.cameraX
	switch {
	case screenX < zone && ph.Direction.X < 0:
		l.cameraX = r.CenterX() - zone
	case screenX > sw-zone && ph.Direction.X > 0:
		l.cameraX = r.CenterX() - (sw - zone)
	}
	l.clampCamera()
	l.shift = prev - l.cameraX
}

// centerCamera puts the player in the middle of the screen.
func (l *Level) centerCamera() {
	l.cameraX = l.PlayerRect().CenterX() - float64(config.Screen.Width)/2
	l.clampCamera()
}

func (l *Level) clampCamera() {
	maxX := max(0, l.width-float64(config.Screen.Width))
	l.cameraX = max(0, min(l.cameraX, maxX))
}
