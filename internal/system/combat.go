// internal/system/combat.go
package system

import (
	"go.uber.org/zap"

	"go-card-defense/internal/component"
	"go-card-defense/internal/config"
	"go-card-defense/internal/entity"
	"go-card-defense/internal/event"
	"go-card-defense/internal/types"
)

// CombatSystem управляет атакой башен и разбором попаданий.
type CombatSystem struct {
	reg        *entity.Registry
	dispatcher *event.Dispatcher
	combat     config.CombatSettings
	maxShots   int // лимит живых снарядов, 0 — без лимита
	logger     *zap.Logger
}

func NewCombatSystem(reg *entity.Registry, d *event.Dispatcher, s config.Settings, logger *zap.Logger) *CombatSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CombatSystem{
		reg:        reg,
		dispatcher: d,
		combat:     s.Combat,
		maxShots:   s.Performance.MaxProjectiles,
		logger:     logger,
	}
}

// Update fires every tower whose cooldown has elapsed at simulation time now
// and that has a target in range. Returns the number of shots.
func (s *CombatSystem) Update(now float64) int {
	enemies := s.reg.Live(entity.GroupEnemies)
	live := s.reg.CountLive(entity.GroupProjectiles)
	fired := 0

	for _, t := range s.reg.Live(entity.GroupTowers) {
		tower := t.Tower
		if tower == nil || tower.FireRate <= 0 {
			continue
		}
		if now-tower.LastShot+timeEpsilon < 1/tower.FireRate {
			continue
		}

		target := SelectTarget(t, enemies)
		if target == nil {
			continue
		}
		if s.maxShots > 0 && live >= s.maxShots {
			// Кулдаун не тратится, башня выстрелит, когда освободится место.
			s.logger.Debug("projectile cap reached", zap.Uint64("tower", uint64(t.ID)))
			continue
		}

		s.fire(t, target)
		tower.LastShot = now
		live++
		fired++
	}
	return fired
}

// SelectTarget picks the live enemy in range closest to the goal
// (greatest progress); ties go to the lowest id.
func SelectTarget(tower *entity.Entity, enemies []*entity.Entity) *entity.Entity {
	var best *entity.Entity
	for _, e := range enemies {
		if e.Dead || e.Enemy == nil || e.Enemy.Escaped {
			continue
		}
		if tower.Position.DistanceTo(e.Position) > tower.Tower.Range {
			continue
		}
		if best == nil || closerToGoal(e, best) {
			best = e
		}
	}
	return best
}

func closerToGoal(a, b *entity.Entity) bool {
	if a.Enemy.Progress != b.Enemy.Progress {
		return a.Enemy.Progress > b.Enemy.Progress
	}
	return a.ID < b.ID
}

func (s *CombatSystem) fire(t, target *entity.Entity) {
	speed := t.Tower.ProjectileSpeed
	if speed <= 0 {
		speed = s.combat.ProjectileSpeed
	}
	proj := &entity.Entity{
		Kind:     entity.KindProjectile,
		Position: t.Position,
		Shape:    component.Circle{Radius: s.combat.HitRadius},
		Projectile: &component.Projectile{
			Source:      t.ID,
			Target:      target.ID,
			Origin:      t.Position,
			TargetPoint: target.Position,
			Damage:      t.Tower.Damage,
			Speed:       speed,
			TTL:         s.combat.ProjectileTTL,
			Slow:        t.Tower.Slow,
		},
	}
	id := s.reg.Add(proj, entity.GroupProjectiles)
	s.dispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: uint64(id)})
}

// ResolveImpacts settles every projectile that arrived this tick. pairs are the
// projectile/enemy overlaps from CheckCollisions. A projectile whose captured
// target is gone misses. Otherwise it hits its target if the target overlaps,
// else the overlapping enemy closest to the goal; with no overlap it misses.
// Every arrived projectile dies.
func (s *CombatSystem) ResolveImpacts(pairs []entity.Pair) {
	overlaps := make(map[types.EntityID][]*entity.Entity)
	for _, p := range pairs {
		overlaps[p.A.ID] = append(overlaps[p.A.ID], p.B)
	}

	for _, e := range s.reg.Live(entity.GroupProjectiles) {
		proj := e.Projectile
		if proj == nil || !proj.Arrived {
			continue
		}
		e.Dead = true

		victim := s.impactVictim(proj, overlaps[e.ID])
		if victim == nil {
			s.dispatcher.Dispatch(event.Event{Type: event.ProjectileMissed, Data: uint64(e.ID)})
			continue
		}
		_, killed := ApplyDamage(victim, proj.Damage, s.dispatcher)
		if !killed && proj.Slow != nil {
			ApplySlow(victim.Enemy, *proj.Slow)
		}
	}
}

// impactVictim picks who takes the hit at the impact point: the original
// target if it overlaps, otherwise the overlapping enemy closest to the goal.
func (s *CombatSystem) impactVictim(proj *component.Projectile, candidates []*entity.Entity) *entity.Entity {
	// Устаревшая цель (убита или удалена до попадания) — всегда промах,
	// даже если в точке попадания стоит другой враг.
	if _, ok := s.reg.Lookup(proj.Target); !ok {
		return nil
	}
	var best *entity.Entity
	for _, c := range candidates {
		if c.Dead || c.Enemy == nil {
			continue
		}
		if c.ID == proj.Target {
			return c
		}
		if best == nil || closerToGoal(c, best) {
			best = c
		}
	}
	return best
}
