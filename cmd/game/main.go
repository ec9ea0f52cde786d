// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"go-card-defense/internal/config"
	"go-card-defense/internal/defs"
	"go-card-defense/internal/event"
	"go-card-defense/internal/level"
	"go-card-defense/internal/logging"
	"go-card-defense/internal/metrics"
	"go-card-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		settingsPath = flag.String("settings", config.DefaultSettingsPath, "balance settings (YAML)")
		dataDir      = flag.String("data", "data", "directory with map, wave, card, enemy and tower files")
		mapName      = flag.String("map", "level1", "map name under <data>/maps")
		difficulty   = flag.String("difficulty", "", "override difficulty: EASY, NORMAL, HARD, NIGHTMARE")
		seed         = flag.Int64("seed", 0, "override the deck seed (0 keeps the settings value)")
		logLevel     = flag.String("log-level", "info", "debug, info, warn or error")
		logDir       = flag.String("log-dir", "", "also write logs to a file in this directory")
		debugAddr    = flag.String("debug-addr", "localhost:6060", "pprof and /metrics listen address, empty to disable")
		skipMenu     = flag.Bool("skip-menu", true, "start the level immediately")
	)
	flag.Parse()

	logger, err := logging.New(logging.Options{Level: *logLevel, Console: true, Dir: *logDir})
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		logger.Fatal("failed to load settings", zap.Error(err))
	}
	if *difficulty != "" {
		settings = settings.WithDifficulty(*difficulty)
		if err := settings.Validate(); err != nil {
			logger.Fatal("invalid difficulty", zap.Error(err))
		}
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	lib, err := defs.LoadLibrary(defs.PathsIn(*dataDir, *mapName), settings)
	if err != nil {
		logger.Fatal("failed to load level data", zap.Error(err))
	}

	collector := metrics.NewCollector()
	if *debugAddr != "" {
		http.Handle("/metrics", collector.Handler())
		go func() {
			logger.Info("debug server listening", zap.String("addr", *debugAddr))
			if err := http.ListenAndServe(*debugAddr, nil); err != nil {
				logger.Error("debug server stopped", zap.Error(err))
			}
		}()
	}

	factory := func() (*level.Level, error) {
		d := event.NewDispatcher()
		collector.Attach(d)
		return level.New(lib, settings, level.WithLogger(logger), level.WithDispatcher(d))
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		ls, err := state.NewLevelState(sm, factory, logger)
		if err != nil {
			logger.Fatal("failed to start level", zap.Error(err))
		}
		sm.SetState(ls)
	} else {
		sm.SetState(state.NewMenuState(sm, factory, logger))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Card Defense")
	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
