package main

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/betrothed/clock"
	"github.com/automoto/betrothed/config"
	"github.com/automoto/betrothed/game"
	"github.com/automoto/betrothed/input"
	"github.com/automoto/betrothed/layout"
	"github.com/automoto/betrothed/levels"
	"github.com/automoto/betrothed/logger"
	"github.com/automoto/betrothed/render"
	"github.com/automoto/betrothed/save"
	"github.com/automoto/betrothed/scenes"
	"github.com/automoto/betrothed/version"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

const appName = "betrothed"

func main() {
	flag.StringVar(&config.Debug.Slot, "slot", config.Debug.Slot, "save slot to load and write")
	flag.IntVar(&config.Debug.Level, "level", config.Debug.Level, "level index to enter on start, -1 opens the world map")
	flag.StringVar(&config.Debug.WatchDir, "watch", "", "load levels from this directory and reload them on change")
	flag.BoolVar(&config.Debug.ShowBoxes, "debug", false, "draw collision boxes and log at debug level")
	flag.Uint64Var(&config.Debug.Seed, "seed", 0, "random seed for a new game, 0 picks one")
	fresh := flag.Bool("new", false, "start a new game instead of loading the slot")
	flag.Parse()

	if config.Debug.ShowBoxes {
		logger.Log.SetLevel(logrus.DebugLevel)
	}
	logger.Log.WithField("version", version.Current().String()).Info("Starting")

	if err := render.LoadShaders(); err != nil {
		logger.Log.WithError(err).Warn("Could not compile shaders, drawing flat colors")
	}

	var fsys fs.FS = levels.FS
	if config.Debug.WatchDir != "" {
		fsys = os.DirFS(config.Debug.WatchDir)
	}

	var store game.Store
	if s, err := save.Open(appName); err != nil {
		logger.Log.WithError(err).Warn("Could not open save storage, progress will not be kept")
	} else {
		store = s
	}

	in := &input.State{}
	clk := clock.System{}
	g, err := game.New(game.Options{
		FS:       fsys,
		Manifest: levels.ManifestPath,
		Store:    store,
		Slot:     config.Debug.Slot,
		Input:    in,
		Clock:    clk,
		Seed:     config.Debug.Seed,
	})
	if err != nil {
		logger.Log.WithError(err).Fatal("Could not start the game")
	}
	if store != nil && !*fresh {
		if err := g.Continue(); err != nil {
			logger.Log.WithError(err).Error("Could not load the save, starting a new game")
		}
	}

	var watcher *layout.Watcher
	if config.Debug.WatchDir != "" {
		watcher, err = layout.NewWatcher(watchDirs(config.Debug.WatchDir, g.Manifest())...)
		if err != nil {
			logger.Log.WithError(err).Fatal("Could not watch levels")
		}
		defer watcher.Close()
	}

	app := scenes.NewApp(g, in, clk, watcher)
	if config.Debug.Level >= 0 {
		if err := app.EnterLevel(config.Debug.Level); err != nil {
			logger.Log.WithError(err).Fatal("Could not enter level")
		}
	}

	ebiten.SetWindowSize(config.Screen.Width, config.Screen.Height)
	ebiten.SetWindowTitle(config.Screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil {
		logger.Log.WithError(err).Fatal("Game stopped")
	}
}

// watchDirs lists the catalog directory and every level directory in it.
func watchDirs(root string, m *layout.Manifest) []string {
	dirs := []string{root}
	seen := map[string]bool{root: true}
	for _, def := range m.Levels {
		dir := filepath.Join(root, filepath.FromSlash(def.Dir))
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
