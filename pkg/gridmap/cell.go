// pkg/gridmap/cell.go
package gridmap

import "math"

// Cell — координата клетки сетки (столбец X, строка Y).
type Cell struct {
	X, Y int
}

// NeighborDirections — порядок обхода соседей: N, E, S, W.
// Порядок фиксирован, от него зависит детерминизм поиска пути.
var NeighborDirections = []Cell{
	{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0},
}

// Add возвращает сумму двух клеток
func (c Cell) Add(other Cell) Cell {
	return Cell{X: c.X + other.X, Y: c.Y + other.Y}
}

// Distance — манхэттенское расстояние между клетками
func (c Cell) Distance(to Cell) int {
	return abs(c.X-to.X) + abs(c.Y-to.Y)
}

// TileCenter converts a cell to the world position of its center.
func TileCenter(c Cell, tileSize float64) (x, y float64) {
	return (float64(c.X) + 0.5) * tileSize, (float64(c.Y) + 0.5) * tileSize
}

// CellAt converts a world position to the cell containing it.
func CellAt(x, y, tileSize float64) Cell {
	return Cell{X: int(math.Floor(x / tileSize)), Y: int(math.Floor(y / tileSize))}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
