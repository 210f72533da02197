package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/logger"
	"github.com/automoto/betrothed/render"
	"github.com/automoto/betrothed/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LevelScene runs the session's current level with a pause overlay.
type LevelScene struct {
	app      *App
	renderer *render.Renderer
	menu     *ui.PauseMenu
}

func newLevelScene(a *App) *LevelScene {
	s := &LevelScene{
		app:      a,
		renderer: render.NewRenderer(),
	}
	s.menu = ui.NewPauseMenu(s.resume, s.save, s.quit)
	return s
}

func (s *LevelScene) Update() error {
	lvl := s.app.game.Level()
	if lvl == nil {
		return nil
	}

	if s.app.input.JustPressed(config.ActionPause) {
		if lvl.Paused() {
			s.resume()
		} else {
			lvl.Pause(s.app.clock.Now())
			s.menu.SetStatus("")
		}
		return nil
	}
	if lvl.Paused() {
		s.menu.Update()
		return nil
	}

	dt := 1 / float64(ebiten.TPS())
	s.app.game.Update(dt)
	s.renderer.Tick(dt * 60)
	return nil
}

func (s *LevelScene) resume() {
	if lvl := s.app.game.Level(); lvl != nil && lvl.Paused() {
		lvl.Resume(s.app.clock.Now())
	}
}

func (s *LevelScene) save() {
	if err := s.app.game.Save(); err != nil {
		logger.Log.WithError(err).Error("Save failed")
		s.menu.SetStatus("Save failed")
		return
	}
	s.menu.SetStatus("Saved")
}

func (s *LevelScene) quit() {
	s.app.game.LeaveLevel()
}

func (s *LevelScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	lvl := s.app.game.Level()
	if lvl == nil {
		return
	}

	s.renderer.SetTarget(screen)
	lvl.Draw(s.renderer)
	render.DrawHUD(screen, s.app.game.Pools(), s.app.game.Loadout(), lvl.Def().Name)

	if config.Debug.ShowBoxes {
		p := lvl.Player()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f  camera %.0f  %s", ebiten.ActualFPS(), lvl.CameraX(), p.Status),
			8, config.Screen.Height-20)
	}
	if lvl.Paused() {
		s.menu.Draw(screen)
	}
}
