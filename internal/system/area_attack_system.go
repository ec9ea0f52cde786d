// internal/system/area_attack_system.go
package system

import (
	"go-card-defense/internal/component"
	"go-card-defense/internal/entity"
	"go-card-defense/internal/event"
)

// AreaAttackSystem наносит урон и замедление по области (эффекты карт).
type AreaAttackSystem struct {
	reg        *entity.Registry
	dispatcher *event.Dispatcher
	effects    *VisualEffectSystem
}

func NewAreaAttackSystem(reg *entity.Registry, d *event.Dispatcher) *AreaAttackSystem {
	return &AreaAttackSystem{reg: reg, dispatcher: d}
}

// AttachEffects makes every area attack leave a ring on the map.
func (s *AreaAttackSystem) AttachEffects(fx *VisualEffectSystem) {
	s.effects = fx
}

func (s *AreaAttackSystem) ring(kind VisualEffectKind, center component.Position, radius float64) {
	if s.effects != nil {
		s.effects.Add(kind, center, radius)
	}
}

// inRange returns live enemies whose centre lies within radius of center.
func (s *AreaAttackSystem) inRange(center component.Position, radius float64) []*entity.Entity {
	var out []*entity.Entity
	for _, e := range s.reg.Live(entity.GroupEnemies) {
		if e.Enemy == nil || e.Enemy.Escaped {
			continue
		}
		if center.DistanceTo(e.Position) <= radius {
			out = append(out, e)
		}
	}
	return out
}

// ApplyAreaDamage damages every enemy in the circle and returns how many were hit.
func (s *AreaAttackSystem) ApplyAreaDamage(center component.Position, radius float64, damage int) int {
	s.ring(EffectBlast, center, radius)
	hit := s.inRange(center, radius)
	for _, e := range hit {
		ApplyDamage(e, damage, s.dispatcher)
	}
	return len(hit)
}

// ApplySlowArea slows every enemy in the circle and returns how many were slowed.
func (s *AreaAttackSystem) ApplySlowArea(center component.Position, radius float64, slow component.SlowSpec) int {
	s.ring(EffectFrost, center, radius)
	hit := s.inRange(center, radius)
	for _, e := range hit {
		ApplySlow(e.Enemy, slow)
	}
	return len(hit)
}
