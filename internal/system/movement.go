// internal/system/movement.go
package system

import (
	"math"

	"go-card-defense/internal/component"
	"go-card-defense/internal/entity"
	"go-card-defense/internal/event"
	"go-card-defense/internal/utils"
)

// MovementSystem ведет врагов по их путям. Регистрируется в реестре
// как обработчик KindEnemy.
type MovementSystem struct {
	dispatcher *event.Dispatcher
}

func NewMovementSystem(d *event.Dispatcher) *MovementSystem {
	return &MovementSystem{dispatcher: d}
}

// UpdateEntity moves one enemy by speed·dt along its path. Slows active at the
// start of the tick apply for the whole tick, then their timers run down.
func (s *MovementSystem) UpdateEntity(e *entity.Entity, dt float64) {
	enemy := e.Enemy
	if enemy == nil || enemy.Escaped {
		return
	}

	speed := enemy.Speed * SpeedMultiplier(enemy)
	TickSlows(enemy, dt)
	Advance(enemy, speed*dt)
	e.Position = PositionAt(enemy.Path, enemy.Progress)

	if enemy.Progress >= enemy.PathEnd() {
		enemy.Escaped = true
		e.Dead = true
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: event.EnemyData{
			ID:    uint64(e.ID),
			DefID: enemy.DefID,
		}})
	}
}

// Advance moves progress forward by dist pixels along the path. Progress never decreases.
func Advance(enemy *component.Enemy, dist float64) {
	end := enemy.PathEnd()
	for dist > 0 && enemy.Progress < end {
		i := int(math.Floor(enemy.Progress))
		from, to := enemy.Path[i], enemy.Path[i+1]
		segLen := from.DistanceTo(to)
		if segLen == 0 {
			enemy.Progress = float64(i + 1)
			continue
		}
		frac := enemy.Progress - float64(i)
		left := (1 - frac) * segLen
		if dist >= left {
			enemy.Progress = float64(i + 1)
			dist -= left
			continue
		}
		enemy.Progress += dist / segLen
		dist = 0
	}
	enemy.Progress = utils.Clamp(enemy.Progress, 0, end)
}

// PositionAt interpolates the world position for a fractional waypoint index.
func PositionAt(path []component.Position, progress float64) component.Position {
	if len(path) == 0 {
		return component.Position{}
	}
	i := int(math.Floor(progress))
	if i >= len(path)-1 {
		return path[len(path)-1]
	}
	if i < 0 {
		return path[0]
	}
	t := progress - float64(i)
	return component.Position{
		X: utils.Lerp(path[i].X, path[i+1].X, t),
		Y: utils.Lerp(path[i].Y, path[i+1].Y, t),
	}
}
