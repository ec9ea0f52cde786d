// internal/system/tower.go
package system

import (
	"errors"
	"fmt"
	"math"

	"go-card-defense/internal/component"
	"go-card-defense/internal/config"
	"go-card-defense/internal/defs"
	"go-card-defense/internal/entity"
	"go-card-defense/internal/event"
	"go-card-defense/pkg/gridmap"
)

var (
	ErrSlotUnavailable  = errors.New("system: tower slot is not available")
	ErrMaxLevel         = errors.New("system: tower is at max level")
	ErrNotATower        = errors.New("system: entity is not a tower")
	ErrInsufficientGold = errors.New("system: insufficient gold")
)

// TowerSystem строит и улучшает башни.
type TowerSystem struct {
	reg        *entity.Registry
	tiles      *gridmap.TileMap
	dispatcher *event.Dispatcher
	tileSize   float64
	cfg        config.TowerSettings
}

func NewTowerSystem(reg *entity.Registry, tiles *gridmap.TileMap, d *event.Dispatcher, s config.Settings) *TowerSystem {
	return &TowerSystem{reg: reg, tiles: tiles, dispatcher: d, tileSize: s.TileSize, cfg: s.Tower}
}

// Build places a tower on a free slot. The slot is occupied only on success.
func (s *TowerSystem) Build(def defs.TowerDefinition, cell gridmap.Cell) (*entity.Entity, error) {
	if !s.tiles.Occupy(cell.X, cell.Y) {
		return nil, fmt.Errorf("build %s at (%d,%d): %w", def.ID, cell.X, cell.Y, ErrSlotUnavailable)
	}
	x, y := gridmap.TileCenter(cell, s.tileSize)
	radius := def.Radius
	if radius <= 0 {
		radius = s.cfg.Radius
	}
	health := max(def.Health, 1)

	e := &entity.Entity{
		Kind:     entity.KindTower,
		Position: component.Position{X: x, Y: y},
		Health:   &component.Health{Current: health, Max: health},
		Shape:    component.Circle{Radius: radius},
		Tower: &component.Tower{
			DefID:           def.ID,
			Slot:            cell,
			Damage:          def.Damage,
			Range:           def.Range,
			FireRate:        def.FireRate,
			LastShot:        component.NeverFired,
			ProjectileSpeed: def.ProjectileSpeed,
			Slow:            def.Slow,
		},
	}
	id := s.reg.Add(e, entity.GroupTowers)
	s.dispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{
		ID: uint64(id), DefID: def.ID, X: cell.X, Y: cell.Y,
	}})
	return e, nil
}

// TowerAt returns the live tower standing on cell.
func (s *TowerSystem) TowerAt(cell gridmap.Cell) (*entity.Entity, bool) {
	if !s.tiles.IsOccupied(cell.X, cell.Y) {
		return nil, false
	}
	for _, t := range s.reg.Live(entity.GroupTowers) {
		if t.Tower != nil && t.Tower.Slot == cell {
			return t, true
		}
	}
	return nil, false
}

// UpgradeCost — цена перехода с уровня level на следующий.
func (s *TowerSystem) UpgradeCost(level int) int {
	return int(math.Round(float64(s.cfg.UpgradeBaseCost) * math.Pow(s.cfg.UpgradeCostMultiplier, float64(level))))
}

// CanUpgrade reports whether the tower is below the max level.
func (s *TowerSystem) CanUpgrade(t *entity.Entity) bool {
	return t != nil && t.Tower != nil && t.Tower.UpgradeLevel < s.cfg.MaxUpgradeLevel
}

// Upgrade raises the tower one level, paying through spend. spend returns false
// when the player cannot afford the cost; then nothing changes.
func (s *TowerSystem) Upgrade(t *entity.Entity, spend func(cost int) bool) error {
	if t == nil || t.Tower == nil {
		return ErrNotATower
	}
	if !s.CanUpgrade(t) {
		return ErrMaxLevel
	}
	tower := t.Tower
	cost := s.UpgradeCost(tower.UpgradeLevel)
	if !spend(cost) {
		return fmt.Errorf("upgrade costs %d gold: %w", cost, ErrInsufficientGold)
	}
	tower.UpgradeLevel++
	tower.Damage = int(math.Round(float64(tower.Damage) * s.cfg.UpgradeDamageMultiplier))
	tower.Range *= s.cfg.UpgradeRangeMultiplier
	s.dispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerData{
		ID: uint64(t.ID), DefID: tower.DefID, X: tower.Slot.X, Y: tower.Slot.Y, Level: tower.UpgradeLevel,
	}})
	return nil
}
