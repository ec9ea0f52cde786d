// internal/level/level.go
package level

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-card-defense/internal/component"
	"go-card-defense/internal/config"
	"go-card-defense/internal/defs"
	"go-card-defense/internal/economy"
	"go-card-defense/internal/entity"
	"go-card-defense/internal/event"
	"go-card-defense/internal/system"
	"go-card-defense/internal/utils"
	"go-card-defense/pkg/gridmap"
)

// Level — один запуск уровня: карта, реестр, системы и экономика игрока.
// Все изменения происходят либо в Tick, либо в Apply между тиками.
type Level struct {
	ID         string
	Settings   config.Settings
	Library    *defs.Library
	Tiles      *gridmap.TileMap
	Registry   *entity.Registry
	Dispatcher *event.Dispatcher
	Player     *economy.Player

	playerEntity *entity.Entity
	waves        *system.WaveSystem
	combat       *system.CombatSystem
	towers       *system.TowerSystem
	area         *system.AreaAttackSystem
	effects      *system.VisualEffectSystem
	state        *system.StateSystem
	logger       *zap.Logger

	paused      bool
	ended       bool
	turn        int
	turnTimer   float64
	endTurnSoon bool
	ticks       uint64
}

// Option настраивает уровень при создании.
type Option func(*Level)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(lv *Level) { lv.logger = l }
}

// WithDispatcher lets listeners subscribe before the level emits its first events.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(lv *Level) { lv.Dispatcher = d }
}

// New builds a level from loaded definitions. A map whose spawn cannot reach a
// goal is reported as a *defs.ConfigError.
func New(lib *defs.Library, s config.Settings, opts ...Option) (*Level, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	l := &Level{
		ID:       uuid.NewString(),
		Settings: s,
		Library:  lib,
		Registry: entity.NewRegistry(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.Dispatcher == nil {
		l.Dispatcher = event.NewDispatcher()
	}
	l.logger = l.logger.With(zap.String("level", l.ID))

	tiles, err := lib.Map.Build()
	if err != nil {
		return nil, &defs.ConfigError{File: "map", Reason: "invalid map", Err: err}
	}
	l.Tiles = tiles

	paths := make([][]component.Position, 0, len(tiles.Spawns))
	for _, spawn := range tiles.Spawns {
		cells, err := tiles.PathToGoal(spawn)
		if err != nil {
			return nil, &defs.ConfigError{File: "map", Reason: "no path", Err: err}
		}
		path := make([]component.Position, len(cells))
		for i, c := range cells {
			x, y := gridmap.TileCenter(c, s.TileSize)
			path[i] = component.Position{X: x, Y: y}
		}
		paths = append(paths, path)
	}

	health := &component.Health{Current: s.Player.StartingHealth, Max: s.Player.StartingHealth}
	gx, gy := gridmap.TileCenter(tiles.Goals[0], s.TileSize)
	l.playerEntity = &entity.Entity{
		Kind:     entity.KindPlayer,
		Position: component.Position{X: gx, Y: gy},
		Health:   health,
		Shape:    component.Circle{Radius: s.TileSize / 2},
		Player:   &component.Player{},
	}
	l.Registry.Add(l.playerEntity, entity.GroupPlayer)

	deck := economy.NewDeckFromDefs(lib.Cards, utils.NewPRNGService(s.Seed))
	l.Player = economy.NewPlayer(s, deck, health)

	system.NewPlayerSystem(l.Player, l.playerEntity, s.Player.EscapeDamage, l.Dispatcher)
	l.waves = system.NewWaveSystem(lib.Waves, lib.Enemies, paths, s, l.Dispatcher, l.logger)
	l.combat = system.NewCombatSystem(l.Registry, l.Dispatcher, s, l.logger)
	l.towers = system.NewTowerSystem(l.Registry, tiles, l.Dispatcher, s)
	l.area = system.NewAreaAttackSystem(l.Registry, l.Dispatcher)
	l.effects = system.NewVisualEffectSystem()
	l.area.AttachEffects(l.effects)
	l.state = system.NewStateSystem(l.Registry, l.waves, l.Player, l.Dispatcher, s)
	l.Registry.Handle(entity.KindEnemy, system.NewMovementSystem(l.Dispatcher))
	l.Registry.Handle(entity.KindProjectile, system.NewProjectileSystem(l.Dispatcher, s.Combat.HitRadius))

	l.Player.DrawOpeningHand()
	l.turn = 1
	l.Dispatcher.Dispatch(event.Event{Type: event.TurnStarted, Data: l.turn})

	l.logger.Info("level loaded",
		zap.Int("width", tiles.Width),
		zap.Int("height", tiles.Height),
		zap.Int("waves", len(lib.Waves)),
		zap.Int("cards", l.Player.CardCount()),
		zap.Strings("towers", lib.TowerIDs()),
		zap.String("difficulty", s.Difficulty),
		zap.Int64("seed", s.Seed),
	)
	return l, nil
}

// Tick advances the simulation by dt seconds in a fixed order. Nothing happens
// while paused or after the level has ended.
func (l *Level) Tick(dt float64) {
	if l.paused || l.ended {
		return
	}
	dt = utils.Clamp(dt, 0, config.MaxDeltaTime)

	// 1. Граница хода: энергия и добор.
	l.advanceTurn(dt)

	// 2. Волны: таймер между волнами, затем спавн.
	spawnDt := l.state.UpdateWaveTimer(dt)
	for _, e := range l.waves.Update(spawnDt) {
		id := l.Registry.Add(e, entity.GroupEnemies)
		l.Dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{
			ID: uint64(id), DefID: e.Enemy.DefID, Reward: e.Enemy.Reward,
		}})
	}

	// 3. Башни стреляют по времени начала тика.
	l.combat.Update(l.Registry.GameTime)

	// 4. Движение, попадания, уборка.
	l.Registry.UpdateAll(dt)
	l.combat.ResolveImpacts(l.Registry.CheckCollisions(entity.GroupProjectiles, entity.GroupEnemies))
	l.Registry.CleanupDead()
	l.effects.Update(dt)

	// 5. Итог уровня.
	if outcome := l.state.Evaluate(); outcome != component.Running {
		l.ended = true
		l.logger.Info("level ended",
			zap.Stringer("outcome", outcome),
			zap.Int("score", l.Player.Score),
			zap.Int("wave", l.waves.Info().Number),
			zap.Float64("time", l.Registry.GameTime+dt),
		)
	}

	l.Registry.GameTime += dt
	l.ticks++
}

func (l *Level) advanceTurn(dt float64) {
	if l.endTurnSoon {
		l.endTurnSoon = false
		l.turnTimer = 0
		l.nextTurn()
	}
	period := l.Settings.Player.TurnDuration
	if period <= 0 {
		return
	}
	l.turnTimer += dt
	for l.turnTimer+1e-9 >= period {
		l.turnTimer -= period
		l.nextTurn()
	}
}

func (l *Level) nextTurn() {
	l.Player.EndTurn()
	l.turn++
	drawn := l.Player.StartTurn()
	l.logger.Debug("turn started", zap.Int("turn", l.turn), zap.Int("energy", l.Player.Energy), zap.Int("drawn", drawn))
	l.Dispatcher.Dispatch(event.Event{Type: event.TurnStarted, Data: l.turn})
}

func (l *Level) Paused() bool { return l.paused }
func (l *Level) Ended() bool  { return l.ended }
func (l *Level) Turn() int    { return l.turn }

// Outcome — итог уровня, Running пока он идет.
func (l *Level) Outcome() component.Outcome { return l.state.Outcome() }

// Waves returns the wave director's summary.
func (l *Level) Waves() system.WaveInfo { return l.waves.Info() }

// NextWaveIn returns seconds until the next wave starts on its own.
func (l *Level) NextWaveIn() float64 { return l.state.Countdown() }

// UpgradeCost returns the gold needed to upgrade the tower on cell, or false if
// there is no upgradable tower there.
func (l *Level) UpgradeCost(cell gridmap.Cell) (int, bool) {
	t, ok := l.towers.TowerAt(cell)
	if !ok || !l.towers.CanUpgrade(t) {
		return 0, false
	}
	return l.towers.UpgradeCost(t.Tower.UpgradeLevel), true
}
