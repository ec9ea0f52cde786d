// internal/component/projectile.go
package component

import "go-card-defense/internal/types"

// Projectile представляет летящий снаряд.
// Летит в точку, где была цель в момент выстрела, и не доворачивает.
type Projectile struct {
	Source      types.EntityID
	Target      types.EntityID // слабая ссылка, проверяется через реестр
	Origin      Position
	TargetPoint Position
	Damage      int
	Speed       float64
	TTL         float64
	Age         float64
	Arrived     bool
	Slow        *SlowSpec
}
