// internal/defs/enemies.go
package defs

// DefaultEnemyID is used by waves that do not name their enemies.
const DefaultEnemyID = "DEFAULT_ENEMY"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Health int     `json:"health"`
	Speed  float64 `json:"speed"`
	Armor  int     `json:"armor"`
	Reward int     `json:"reward"`
	Radius float64 `json:"radius"`
}
