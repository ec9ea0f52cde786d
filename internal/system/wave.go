// internal/system/wave.go
package system

import (
	"math"

	"go.uber.org/zap"

	"go-card-defense/internal/component"
	"go-card-defense/internal/config"
	"go-card-defense/internal/defs"
	"go-card-defense/internal/entity"
	"go-card-defense/internal/event"
)

// WaveState — состояние директора волн.
type WaveState int

const (
	WaveIdle WaveState = iota
	WaveSpawning
	WaveWaitingForClear
	WaveComplete
)

func (s WaveState) String() string {
	switch s {
	case WaveIdle:
		return "idle"
	case WaveSpawning:
		return "spawning"
	case WaveWaitingForClear:
		return "waiting_for_clear"
	case WaveComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// WaveInfo — сводка для HUD.
type WaveInfo struct {
	Number  int // текущая (или последняя начатая) волна, с 1; 0 — ни одной
	Total   int
	Spawned int
	Size    int
	State   WaveState
}

// WaveSystem спавнит врагов по описаниям волн. Реестр она не читает:
// новые враги возвращаются из Update, а о зачистке сообщает оркестратор.
type WaveSystem struct {
	waves      []defs.WaveDefinition
	enemies    map[string]defs.EnemyDefinition
	paths      [][]component.Position // путь для каждой точки спавна
	enemyCfg   config.EnemySettings
	difficulty config.DifficultySettings
	dispatcher *event.Dispatcher
	logger     *zap.Logger

	state     WaveState
	number    int
	size      int
	spawned   int
	timer     float64
	sequence  []string
	nextSpawn int
}

func NewWaveSystem(
	waves []defs.WaveDefinition,
	enemies map[string]defs.EnemyDefinition,
	paths [][]component.Position,
	s config.Settings,
	d *event.Dispatcher,
	logger *zap.Logger,
) *WaveSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	ws := &WaveSystem{
		waves:      waves,
		enemies:    enemies,
		paths:      paths,
		enemyCfg:   s.Enemy,
		difficulty: s.DifficultyPreset(),
		dispatcher: d,
		logger:     logger,
	}
	if len(waves) == 0 {
		ws.state = WaveComplete
	}
	return ws
}

func (s *WaveSystem) State() WaveState { return s.state }

// NextWave — номер волны, которую можно начать следующей.
func (s *WaveSystem) NextWave() int { return s.number + 1 }

func (s *WaveSystem) Info() WaveInfo {
	return WaveInfo{
		Number:  s.number,
		Total:   len(s.waves),
		Spawned: s.spawned,
		Size:    s.size,
		State:   s.state,
	}
}

// StartWave begins wave n (1-based). Valid only while Idle and only for the
// next configured wave. Otherwise nothing changes and false is returned.
func (s *WaveSystem) StartWave(n int) bool {
	if s.state != WaveIdle || n != s.number+1 || n > len(s.waves) {
		return false
	}
	def := s.waves[n-1]
	s.number = n
	s.size = max(1, int(math.Round(float64(def.Count)*s.difficulty.WaveSizeMultiplier)))
	s.spawned = 0
	s.timer = 0
	s.sequence = def.Sequence()
	if len(s.sequence) == 0 {
		s.sequence = []string{defs.DefaultEnemyID}
	}
	s.state = WaveSpawning

	s.logger.Info("wave started", zap.Int("wave", n), zap.Int("size", s.size))
	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: n, Size: s.size}})
	return true
}

// Update advances the spawn timer and returns the enemies spawned this tick.
// Exactly one enemy spawns per interval; leftover time carries over.
func (s *WaveSystem) Update(dt float64) []*entity.Entity {
	if s.state != WaveSpawning {
		return nil
	}
	interval := s.waves[s.number-1].SpawnInterval
	s.timer += dt

	var spawned []*entity.Entity
	for s.spawned < s.size && s.timer+timeEpsilon >= interval {
		s.timer -= interval
		if e := s.spawn(); e != nil {
			spawned = append(spawned, e)
		}
		s.spawned++
	}
	if s.spawned == s.size {
		s.state = WaveWaitingForClear
		s.timer = 0
	}
	return spawned
}

func (s *WaveSystem) spawn() *entity.Entity {
	id := s.sequence[s.spawned%len(s.sequence)]
	def, ok := s.enemies[id]
	if !ok {
		s.logger.Warn("enemy definition not found", zap.String("enemy", id))
		return nil
	}
	path := s.paths[s.nextSpawn%len(s.paths)]
	s.nextSpawn++

	n := float64(s.number)
	health := int(math.Round(float64(def.Health) * math.Pow(s.enemyCfg.HealthScaling, n) * s.difficulty.EnemyHealthMultiplier))
	health = max(health, 1)
	speed := def.Speed * math.Pow(s.enemyCfg.SpeedScaling, n) * s.difficulty.EnemySpeedMultiplier
	radius := def.Radius
	if radius <= 0 {
		radius = s.enemyCfg.Radius
	}

	return &entity.Entity{
		Kind:     entity.KindEnemy,
		Position: path[0],
		Health:   &component.Health{Current: health, Max: health},
		Shape:    component.Circle{Radius: radius},
		Enemy: &component.Enemy{
			DefID:  def.ID,
			Path:   path,
			Speed:  speed,
			Armor:  def.Armor,
			Reward: def.Reward,
			Wave:   s.number,
		},
	}
}

// MarkCleared is called once no live enemies remain after the wave has fully
// spawned. Returns true if the state changed.
func (s *WaveSystem) MarkCleared() bool {
	if s.state != WaveWaitingForClear {
		return false
	}
	if s.number >= len(s.waves) {
		s.state = WaveComplete
	} else {
		s.state = WaveIdle
	}
	s.logger.Info("wave cleared", zap.Int("wave", s.number), zap.Stringer("next", s.state))
	s.dispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveData{Number: s.number, Size: s.size}})
	return true
}
