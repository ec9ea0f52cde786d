// internal/system/state.go
package system

import (
	"go-card-defense/internal/component"
	"go-card-defense/internal/config"
	"go-card-defense/internal/entity"
	"go-card-defense/internal/event"
	"go-card-defense/internal/utils"
)

// StateSystem ведет паузу между волнами и определяет исход уровня.
type StateSystem struct {
	reg        *entity.Registry
	waves      *WaveSystem
	player     PlayerState
	dispatcher *event.Dispatcher
	cfg        config.WaveSettings

	countdown float64 // до автостарта следующей волны
	outcome   component.Outcome
}

func NewStateSystem(reg *entity.Registry, waves *WaveSystem, player PlayerState, d *event.Dispatcher, s config.Settings) *StateSystem {
	return &StateSystem{
		reg:        reg,
		waves:      waves,
		player:     player,
		dispatcher: d,
		cfg:        s.Wave,
		countdown:  s.Wave.FirstWaveDelay,
	}
}

// Countdown returns seconds left before the next wave starts on its own, or 0
// when waves only start on request.
func (s *StateSystem) Countdown() float64 {
	if !s.cfg.AutoStart || s.countdown < 0 {
		return 0
	}
	return s.countdown
}

// Outcome — текущий итог уровня.
func (s *StateSystem) Outcome() component.Outcome { return s.outcome }

// UpdateWaveTimer counts down while the director is idle and starts the next
// wave when it runs out. Returns the part of dt that belongs to the spawn
// timer: the whole tick normally, only the time after the countdown ended
// when a wave starts mid-tick. Does nothing when auto start is off.
func (s *StateSystem) UpdateWaveTimer(dt float64) float64 {
	if !s.cfg.AutoStart || s.waves.State() != WaveIdle {
		return dt
	}
	s.countdown -= dt
	if s.countdown > timeEpsilon {
		return dt
	}
	overshoot := utils.Clamp(-s.countdown, 0, dt)
	if !s.StartNextWave() {
		return dt
	}
	return overshoot
}

// StartNextWave starts the next wave right away.
func (s *StateSystem) StartNextWave() bool {
	if !s.waves.StartWave(s.waves.NextWave()) {
		return false
	}
	s.countdown = s.cfg.TimeBetweenWaves
	return true
}

// Evaluate marks the wave cleared once no live enemies remain and decides the
// outcome: lost when the player is dead, won when every wave is complete and
// the field is empty. Returns the outcome.
func (s *StateSystem) Evaluate() component.Outcome {
	if s.outcome != component.Running {
		return s.outcome
	}
	liveEnemies := s.reg.CountLive(entity.GroupEnemies)
	if liveEnemies == 0 && s.waves.State() == WaveWaitingForClear {
		s.waves.MarkCleared()
	}

	switch {
	case !s.player.IsAlive():
		s.outcome = component.Lost
	case s.waves.State() == WaveComplete && liveEnemies == 0:
		s.outcome = component.Won
	default:
		return s.outcome
	}
	s.dispatcher.Dispatch(event.Event{Type: event.LevelEnded, Data: s.outcome})
	return s.outcome
}
