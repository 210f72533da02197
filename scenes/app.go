// Package scenes wires the game session to ebiten: the world map, the
// running level with its pause menu, and layout hot reload.
package scenes

import (
	"github.com/automoto/betrothed/clock"
	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/game"
	"github.com/automoto/betrothed/input"
	"github.com/automoto/betrothed/layout"
	"github.com/automoto/betrothed/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = 0

// Scene is one screen of the app.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// App is the ebiten.Game. It shows the scene matching the session status.
type App struct {
	game    *game.Game
	input   *input.State
	clock   clock.Clock
	watcher *layout.Watcher

	scene  Scene
	status game.Status
}

// NewApp starts on the screen the session is on. watcher may be nil.
func NewApp(g *game.Game, in *input.State, clk clock.Clock, watcher *layout.Watcher) *App {
	a := &App{
		game:    g,
		input:   in,
		clock:   clk,
		watcher: watcher,
	}
	a.sync()
	return a
}

// EnterLevel starts catalog level i.
func (a *App) EnterLevel(i int) error {
	if err := a.game.EnterLevel(i); err != nil {
		return err
	}
	a.sync()
	return nil
}

func (a *App) sync() {
	a.status = a.game.Status()
	if a.status == game.StatusLevel {
		a.scene = newLevelScene(a)
	} else {
		a.scene = newWorldScene(a)
	}
}

func (a *App) Update() error {
	a.input.Update()
	a.hotReload()
	if err := a.scene.Update(); err != nil {
		return err
	}
	if a.game.Status() != a.status {
		a.sync()
	}
	return nil
}

// hotReload rebuilds the current screen when a layout file changed.
func (a *App) hotReload() {
	if a.watcher == nil {
		return
	}
	changed := false
	for drained := false; !drained; {
		select {
		case path := <-a.watcher.Events:
			logger.Log.WithField("path", path).Info("Layout changed")
			changed = true
		case err := <-a.watcher.Errors:
			logger.Log.WithError(err).Warn("Layout watcher error")
		default:
			drained = true
		}
	}
	if !changed {
		return
	}
	if err := a.game.Reload(); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"error": err,
		}).Error("Reload failed, keeping the previous level")
		return
	}
	a.sync()
}

func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

func (a *App) Layout(width, height int) (int, int) {
	return config.Screen.Width, config.Screen.Height
}
