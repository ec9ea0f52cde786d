// component/tower.go
package component

import (
	"math"

	"go-card-defense/pkg/gridmap"
)

// NeverFired is the LastShot value of a tower that has not fired yet,
// so the first cooldown check always passes.
var NeverFired = math.Inf(-1)

type Tower struct {
	DefID           string       // ID из towers.json
	Slot            gridmap.Cell // Клетка, на которой стоит башня
	Damage          int
	Range           float64
	FireRate        float64 // Выстрелов в секунду
	LastShot        float64 // Время последнего выстрела в секундах симуляции
	ProjectileSpeed float64
	UpgradeLevel    int
	Slow            *SlowSpec // Замедление при попадании, если есть
}
