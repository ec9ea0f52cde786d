// internal/system/visual_effect.go
package system

import "go-card-defense/internal/component"

// VisualEffectKind — вид кольца на карте.
type VisualEffectKind int

const (
	EffectBlast VisualEffectKind = iota
	EffectFrost
)

const visualEffectDuration = 0.4 // секунды

// VisualEffect — расширяющееся кольцо эффекта карты. На игру не влияет.
type VisualEffect struct {
	Kind      VisualEffectKind
	Center    component.Position
	MaxRadius float64
	Duration  float64
	Timer     float64
}

// Radius grows linearly from zero to MaxRadius over the effect's lifetime.
func (v VisualEffect) Radius() float64 {
	if v.Duration <= 0 {
		return v.MaxRadius
	}
	return v.MaxRadius * v.Timer / v.Duration
}

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки area-карт.
type VisualEffectSystem struct {
	effects []VisualEffect
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem() *VisualEffectSystem {
	return &VisualEffectSystem{}
}

func (s *VisualEffectSystem) Add(kind VisualEffectKind, center component.Position, radius float64) {
	s.effects = append(s.effects, VisualEffect{
		Kind:      kind,
		Center:    center,
		MaxRadius: radius,
		Duration:  visualEffectDuration,
	})
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	kept := s.effects[:0]
	for _, fx := range s.effects {
		fx.Timer += deltaTime
		if fx.Timer >= fx.Duration {
			continue
		}
		kept = append(kept, fx)
	}
	s.effects = kept
}

// Effects returns a copy of the active effects.
func (s *VisualEffectSystem) Effects() []VisualEffect {
	if len(s.effects) == 0 {
		return nil
	}
	out := make([]VisualEffect, len(s.effects))
	copy(out, s.effects)
	return out
}
