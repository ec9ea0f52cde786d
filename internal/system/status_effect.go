// internal/system/status_effect.go
package system

import "go-card-defense/internal/component"

// ApplySlow adds a slow to the enemy. Existing slows keep their own timers.
func ApplySlow(enemy *component.Enemy, spec component.SlowSpec) {
	if spec.Duration <= 0 || spec.Intensity <= 0 {
		return
	}
	enemy.Slows = append(enemy.Slows, component.SlowEffect{
		Remaining: spec.Duration,
		Intensity: min(spec.Intensity, 1),
	})
}

// SpeedMultiplier — побеждает самое сильное замедление, они не складываются.
func SpeedMultiplier(enemy *component.Enemy) float64 {
	strongest := 0.0
	for _, s := range enemy.Slows {
		strongest = max(strongest, s.Intensity)
	}
	return 1 - strongest
}

// TickSlows уменьшает таймеры и убирает истекшие эффекты.
func TickSlows(enemy *component.Enemy, dt float64) {
	kept := enemy.Slows[:0]
	for _, s := range enemy.Slows {
		s.Remaining -= dt
		if s.Remaining > timeEpsilon {
			kept = append(kept, s)
		}
	}
	enemy.Slows = kept
}
