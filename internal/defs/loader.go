// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go-card-defense/pkg/gridmap"
)

// ConfigError is returned for any missing or malformed data file.
type ConfigError struct {
	File   string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config %s: %s: %v", e.File, e.Reason, e.Err)
	}
	return fmt.Sprintf("config %s: %s", e.File, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(file, reason string, err error) error {
	return &ConfigError{File: file, Reason: reason, Err: err}
}

// readJSON reads path and unmarshals it into v.
func readJSON(path string, v any) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return configErr(path, "failed to read file", err)
	}
	if err := json.Unmarshal(file, v); err != nil {
		return configErr(path, "failed to unmarshal", err)
	}
	return nil
}

// LoadMap reads a map file and builds the tile map from it.
func LoadMap(path string) (*MapDefinition, *gridmap.TileMap, error) {
	var def MapDefinition
	if err := readJSON(path, &def); err != nil {
		return nil, nil, err
	}
	tm, err := def.Build()
	if err != nil {
		return nil, nil, configErr(path, "invalid map", err)
	}
	return &def, tm, nil
}

// Build validates the definition and precomputes its paths.
func (d *MapDefinition) Build() (*gridmap.TileMap, error) {
	return gridmap.New(d.Width, d.Height, d.Tiles, cells(d.SpawnPoints), cells(d.TowerSlots), cells(d.GoalPoints))
}

func cells(points []Point) []gridmap.Cell {
	out := make([]gridmap.Cell, len(points))
	for i, p := range points {
		out[i] = gridmap.Cell{X: p.X, Y: p.Y}
	}
	return out
}

func points(cs []gridmap.Cell) []Point {
	out := make([]Point, len(cs))
	for i, c := range cs {
		out[i] = Point{X: c.X, Y: c.Y}
	}
	return out
}

// SaveMap writes a tile map in the same schema LoadMap reads.
func SaveMap(path string, tm *gridmap.TileMap) error {
	def := MapDefinition{
		Width:       tm.Width,
		Height:      tm.Height,
		Tiles:       tm.Codes(),
		SpawnPoints: points(tm.Spawns),
		TowerSlots:  points(tm.Slots),
		GoalPoints:  points(tm.Goals),
	}
	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal map: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write map file: %w", err)
	}
	return nil
}

// LoadWaves reads the wave list. A wave without a count takes the sum of its
// groups; a wave without groups spawns DefaultEnemyID.
func LoadWaves(path string) ([]WaveDefinition, error) {
	var waves []WaveDefinition
	if err := readJSON(path, &waves); err != nil {
		return nil, err
	}
	if len(waves) == 0 {
		return nil, configErr(path, "no waves defined", nil)
	}
	for i := range waves {
		if err := normalizeWave(&waves[i]); err != nil {
			return nil, configErr(path, fmt.Sprintf("wave %d", i+1), err)
		}
	}
	return waves, nil
}

func normalizeWave(w *WaveDefinition) error {
	sum := 0
	for _, g := range w.Enemies {
		if g.Count <= 0 {
			return fmt.Errorf("group %q has non-positive count %d", g.EnemyID, g.Count)
		}
		sum += g.Count
	}
	switch {
	case len(w.Enemies) == 0 && w.Count <= 0:
		return errors.New("wave has no enemies")
	case len(w.Enemies) == 0:
		w.Enemies = []WaveGroup{{EnemyID: DefaultEnemyID, Count: w.Count}}
	case w.Count == 0:
		w.Count = sum
	case w.Count != sum:
		return fmt.Errorf("count %d does not match composition total %d", w.Count, sum)
	}
	if w.SpawnInterval < 0 {
		return fmt.Errorf("negative spawn_interval %v", w.SpawnInterval)
	}
	return nil
}

// LoadCards reads card definitions and checks their type and effect.
func LoadCards(path string) ([]CardDefinition, error) {
	var cards []CardDefinition
	if err := readJSON(path, &cards); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for i := range cards {
		c := &cards[i]
		if c.ID == "" {
			return nil, configErr(path, fmt.Sprintf("card %d has no id", i), nil)
		}
		if seen[c.ID] {
			return nil, configErr(path, fmt.Sprintf("duplicate card id %q", c.ID), nil)
		}
		seen[c.ID] = true
		if err := validateCard(c); err != nil {
			return nil, configErr(path, fmt.Sprintf("card %q", c.ID), err)
		}
	}
	return cards, nil
}

func validateCard(c *CardDefinition) error {
	ct, ok := ParseCardType(c.Type)
	if !ok {
		return fmt.Errorf("unknown card type %q", c.Type)
	}
	c.Type = string(ct)
	if c.Cost < 0 {
		return fmt.Errorf("negative cost %d", c.Cost)
	}
	if c.Copies < 0 {
		return fmt.Errorf("negative copies %d", c.Copies)
	}
	e := c.Effect
	switch e.Kind {
	case EffectPlaceTower:
		if ct != CardBuilding {
			return errors.New("place_tower requires a Building card")
		}
	case EffectDamageArea:
		if e.Damage <= 0 || e.Radius <= 0 {
			return errors.New("damage_area needs positive damage and radius")
		}
	case EffectSlowArea:
		if e.Intensity <= 0 || e.Intensity > 1 || e.Duration <= 0 || e.Radius <= 0 {
			return errors.New("slow_area needs intensity in (0,1], positive duration and radius")
		}
	case EffectGainEnergy, EffectHeal:
		if e.Amount <= 0 {
			return fmt.Errorf("%s needs a positive amount", e.Kind)
		}
	case EffectDrawCards:
		if e.Count <= 0 {
			return errors.New("draw_cards needs a positive count")
		}
	default:
		return fmt.Errorf("unknown effect kind %q", e.Kind)
	}
	if ct == CardBuilding && e.Kind != EffectPlaceTower {
		return errors.New("Building cards must place a tower")
	}
	return nil
}

// LoadEnemies reads the enemy configuration file.
func LoadEnemies(path string) (map[string]EnemyDefinition, error) {
	var enemyDefs []EnemyDefinition
	if err := readJSON(path, &enemyDefs); err != nil {
		return nil, err
	}
	lib := make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		if def.ID == "" || def.Health <= 0 || def.Speed <= 0 || def.Armor < 0 || def.Reward < 0 {
			return nil, configErr(path, fmt.Sprintf("invalid enemy %q", def.ID), nil)
		}
		lib[def.ID] = def
	}
	return lib, nil
}

// LoadTowers reads the tower configuration file.
func LoadTowers(path string) (map[string]TowerDefinition, error) {
	var towerDefs []TowerDefinition
	if err := readJSON(path, &towerDefs); err != nil {
		return nil, err
	}
	lib := make(map[string]TowerDefinition, len(towerDefs))
	for _, def := range towerDefs {
		if def.ID == "" || def.Damage < 0 || def.Range <= 0 || def.FireRate <= 0 || def.GoldCost < 0 {
			return nil, configErr(path, fmt.Sprintf("invalid tower %q", def.ID), nil)
		}
		if def.Slow != nil && (def.Slow.Intensity <= 0 || def.Slow.Intensity > 1 || def.Slow.Duration <= 0) {
			return nil, configErr(path, fmt.Sprintf("tower %q has invalid slow", def.ID), nil)
		}
		lib[def.ID] = def
	}
	return lib, nil
}
