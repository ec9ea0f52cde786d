// internal/defs/towers.go
package defs

import "go-card-defense/internal/component"

// DefaultTowerID is the tower built when a card does not name one.
const DefaultTowerID = "TOWER_BASIC"

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Damage          int                 `json:"damage"`
	Range           float64             `json:"range"`
	FireRate        float64             `json:"fire_rate"` // Shots per second
	ProjectileSpeed float64             `json:"projectile_speed"`
	GoldCost        int                 `json:"gold_cost"` // Cost of direct placement without a card
	Health          int                 `json:"health"`
	Radius          float64             `json:"radius"`
	Slow            *component.SlowSpec `json:"slow,omitempty"`
}
