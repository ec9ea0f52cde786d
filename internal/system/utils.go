// internal/system/utils.go
package system

import (
	"go-card-defense/internal/entity"
	"go-card-defense/internal/event"
)

// timeEpsilon absorbs float drift when many small dt values add up to an interval.
const timeEpsilon = 1e-9

// ArmoredDamage — урон после брони, не меньше нуля.
func ArmoredDamage(damage, armor int) int {
	return max(0, damage-armor)
}

// ApplyDamage наносит урон врагу с учетом брони. При убийстве враг помечается
// мертвым и отправляется EnemyKilled; награду начисляет PlayerSystem в том же
// вызове Dispatch, то есть сразу. Возвращает нанесенный урон и факт убийства.
func ApplyDamage(e *entity.Entity, damage int, d *event.Dispatcher) (int, bool) {
	if e == nil || e.Dead || e.Health == nil || e.Enemy == nil {
		return 0, false
	}

	dealt := min(ArmoredDamage(damage, e.Enemy.Armor), e.Health.Current)
	e.Health.Current -= dealt
	if e.Health.Current > 0 {
		return dealt, false
	}

	e.Health.Current = 0
	e.Dead = true
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{
		ID:     uint64(e.ID),
		DefID:  e.Enemy.DefID,
		Reward: e.Enemy.Reward,
	}})
	return dealt, true
}
