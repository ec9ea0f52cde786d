// cmd/simulate/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"go-card-defense/internal/bot"
	"go-card-defense/internal/component"
	"go-card-defense/internal/config"
	"go-card-defense/internal/defs"
	"go-card-defense/internal/event"
	"go-card-defense/internal/level"
	"go-card-defense/internal/logging"
	"go-card-defense/internal/metrics"
)

// Безголовый прогон уровня ботом с фиксированным шагом. Один и тот же seed
// даёт один и тот же результат.
func main() {
	var (
		settingsPath = flag.String("settings", config.DefaultSettingsPath, "balance settings (YAML)")
		dataDir      = flag.String("data", "data", "data directory")
		mapName      = flag.String("map", "level1", "map name under <data>/maps")
		difficulty   = flag.String("difficulty", "", "override difficulty")
		seed         = flag.Int64("seed", 1, "deck and bot seed")
		ticks        = flag.Int("ticks", 30*60*20, "tick limit")
		dt           = flag.Float64("dt", 1.0/30.0, "seconds per tick")
		runs         = flag.Int("runs", 1, "number of runs with consecutive seeds")
		logLevel     = flag.String("log-level", "warn", "debug, info, warn or error")
		dumpMetrics  = flag.Bool("metrics", false, "print Prometheus metrics after the runs")
	)
	flag.Parse()

	logger, err := logging.New(logging.Options{Level: *logLevel})
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
	lib, err := defs.LoadLibrary(defs.PathsIn(*dataDir, *mapName), settings)
	if err != nil {
		logger.Fatal("failed to load level data", zap.Error(err))
	}

	collector := metrics.NewCollector()
	wins := 0
	for i := 0; i < *runs; i++ {
		s := settings
		s.Seed = *seed + int64(i)

		d := event.NewDispatcher()
		collector.Attach(d)
		lv, err := level.New(lib, s, level.WithLogger(logger), level.WithDispatcher(d))
		if err != nil {
			logger.Fatal("failed to build level", zap.Error(err))
		}
		res := bot.Run(lv, bot.New(s.Seed), *dt, *ticks, logger)
		if res.Outcome == component.Won {
			wins++
		}
		fmt.Printf("seed=%d outcome=%s time=%.1fs ticks=%d wave=%d health=%d score=%d gold=%d towers=%d rejected=%d\n",
			s.Seed, res.Outcome, res.GameTime, res.Ticks, res.Wave, res.Health, res.Score, res.Gold, res.Towers, res.Rejected)
	}
	if *runs > 1 {
		fmt.Printf("won %d of %d\n", wins, *runs)
	}

	if *dumpMetrics {
		if err := collector.WriteText(os.Stdout); err != nil {
			logger.Fatal("dump metrics", zap.Error(err))
		}
	}
}
