// component/movement.go
package component

import "math"

// Position — компонент позиции в мировых координатах
type Position struct {
	X, Y float64
}

// DistanceTo returns the euclidean distance between two positions.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Circle — ограничивающая окружность для столкновений, центр в Position сущности.
type Circle struct {
	Radius float64
}

// Overlaps reports whether two circles centred at a and b intersect or touch.
func Overlaps(a Position, ca Circle, b Position, cb Circle) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	r := ca.Radius + cb.Radius
	return dx*dx+dy*dy <= r*r
}
