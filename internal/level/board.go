// internal/level/board.go
package level

import (
	"fmt"

	"go-card-defense/internal/component"
	"go-card-defense/internal/economy"
	"go-card-defense/internal/input"
	"go-card-defense/pkg/gridmap"
)

var (
	_ economy.Board = (*Level)(nil)
	_ input.View    = (*Level)(nil)
)

func (l *Level) IsValidTowerPosition(cell gridmap.Cell) bool {
	return l.Tiles.IsValidTowerPosition(cell.X, cell.Y)
}

// PlaceTower builds the named tower ("" is the default tower) on cell.
func (l *Level) PlaceTower(towerID string, cell gridmap.Cell) error {
	def, ok := l.Library.Tower(towerID)
	if !ok {
		return fmt.Errorf("unknown tower %q", towerID)
	}
	_, err := l.towers.Build(def, cell)
	return err
}

func (l *Level) cellCenter(cell gridmap.Cell) component.Position {
	x, y := gridmap.TileCenter(cell, l.Settings.TileSize)
	return component.Position{X: x, Y: y}
}

func (l *Level) DamageArea(cell gridmap.Cell, radius float64, damage int) int {
	return l.area.ApplyAreaDamage(l.cellCenter(cell), radius, damage)
}

func (l *Level) SlowArea(cell gridmap.Cell, radius float64, slow component.SlowSpec) int {
	return l.area.ApplySlowArea(l.cellCenter(cell), radius, slow)
}

func (l *Level) HandSize() int { return l.Player.Hand.Len() }

func (l *Level) NeedsTarget(handIndex int) bool {
	card, ok := l.Player.Hand.At(handIndex)
	return ok && card.NeedsTarget()
}

func (l *Level) HasTower(cell gridmap.Cell) bool {
	_, ok := l.towers.TowerAt(cell)
	return ok
}
