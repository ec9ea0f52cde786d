// internal/system/projectile.go
package system

import (
	"go-card-defense/internal/entity"
	"go-card-defense/internal/event"
	"go-card-defense/internal/utils"
)

// ProjectileSystem управляет полетом снарядов. Попадание разбирает
// CombatSystem.ResolveImpacts после проверки столкновений.
type ProjectileSystem struct {
	dispatcher *event.Dispatcher
	hitRadius  float64
}

func NewProjectileSystem(d *event.Dispatcher, hitRadius float64) *ProjectileSystem {
	return &ProjectileSystem{dispatcher: d, hitRadius: hitRadius}
}

// UpdateEntity moves the projectile toward its captured point. Within hitRadius
// it snaps to the point and waits for impact resolution. Outliving its TTL first
// discards it as a miss.
func (s *ProjectileSystem) UpdateEntity(e *entity.Entity, dt float64) {
	p := e.Projectile
	if p == nil || p.Arrived {
		return
	}

	p.Age += dt
	if p.Age > p.TTL+timeEpsilon {
		e.Dead = true
		s.dispatcher.Dispatch(event.Event{Type: event.ProjectileMissed, Data: uint64(e.ID)})
		return
	}

	x, y, _ := utils.MoveTowards(e.Position.X, e.Position.Y, p.TargetPoint.X, p.TargetPoint.Y, p.Speed*dt)
	e.Position.X, e.Position.Y = x, y
	if e.Position.DistanceTo(p.TargetPoint) <= s.hitRadius {
		e.Position = p.TargetPoint
		p.Arrived = true
	}
}
