// internal/defs/library.go
package defs

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"

	"go-card-defense/internal/config"
)

// Paths — расположение файлов данных уровня. Пустой путь означает
// значения по умолчанию (кроме карты, она обязательна).
type Paths struct {
	Map     string
	Waves   string
	Cards   string
	Enemies string
	Towers  string
}

// PathsIn lays out the data directory: dir/maps/<mapName>.json plus optional
// waves.json, cards.json, enemies.json and towers.json next to it. Optional files
// that do not exist are left empty so their defaults apply.
func PathsIn(dir, mapName string) Paths {
	optional := func(name string) string {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return ""
		}
		return path
	}
	return Paths{
		Map:     filepath.Join(dir, "maps", mapName+".json"),
		Waves:   optional("waves.json"),
		Cards:   optional("cards.json"),
		Enemies: optional("enemies.json"),
		Towers:  optional("towers.json"),
	}
}

// Library bundles every definition a level needs. It is read-only after load.
type Library struct {
	Map     *MapDefinition
	Waves   []WaveDefinition
	Cards   []CardDefinition
	Enemies map[string]EnemyDefinition
	Towers  map[string]TowerDefinition
}

// LoadLibrary reads all data files and fills gaps with defaults derived from settings.
func LoadLibrary(p Paths, s config.Settings) (*Library, error) {
	if p.Map == "" {
		return nil, configErr("", "map path is required", nil)
	}
	mapDef, _, err := LoadMap(p.Map)
	if err != nil {
		return nil, err
	}
	lib := &Library{Map: mapDef}

	if p.Enemies != "" {
		if lib.Enemies, err = LoadEnemies(p.Enemies); err != nil {
			return nil, err
		}
	} else {
		lib.Enemies = make(map[string]EnemyDefinition)
	}
	if _, ok := lib.Enemies[DefaultEnemyID]; !ok {
		lib.Enemies[DefaultEnemyID] = DefaultEnemy(s)
	}

	if p.Towers != "" {
		if lib.Towers, err = LoadTowers(p.Towers); err != nil {
			return nil, err
		}
	} else {
		lib.Towers = make(map[string]TowerDefinition)
	}
	if _, ok := lib.Towers[DefaultTowerID]; !ok {
		lib.Towers[DefaultTowerID] = DefaultTower(s)
	}

	if p.Waves != "" {
		if lib.Waves, err = LoadWaves(p.Waves); err != nil {
			return nil, err
		}
	} else {
		lib.Waves = GenerateWaves(s)
	}
	if s.Wave.MaxWaves > 0 && len(lib.Waves) > s.Wave.MaxWaves {
		lib.Waves = lib.Waves[:s.Wave.MaxWaves]
	}
	for i := range lib.Waves {
		if lib.Waves[i].SpawnInterval == 0 {
			lib.Waves[i].SpawnInterval = s.Wave.TimeBetweenEnemies
		}
	}

	if p.Cards != "" {
		if lib.Cards, err = LoadCards(p.Cards); err != nil {
			return nil, err
		}
	} else {
		lib.Cards = StarterCards(s)
	}

	if err := lib.validate(p); err != nil {
		return nil, err
	}
	return lib, nil
}

// validate checks cross references between files.
func (l *Library) validate(p Paths) error {
	for i, w := range l.Waves {
		for _, g := range w.Enemies {
			if _, ok := l.Enemies[g.EnemyID]; !ok {
				return configErr(p.Waves, fmt.Sprintf("wave %d references unknown enemy %q", i+1, g.EnemyID), nil)
			}
		}
	}
	for _, c := range l.Cards {
		if c.Effect.Kind != EffectPlaceTower {
			continue
		}
		id := c.Effect.Tower
		if id == "" {
			id = DefaultTowerID
		}
		if _, ok := l.Towers[id]; !ok {
			return configErr(p.Cards, fmt.Sprintf("card %q references unknown tower %q", c.ID, id), nil)
		}
	}
	return nil
}

// Tower returns the definition for id, falling back to the default tower for "".
func (l *Library) Tower(id string) (TowerDefinition, bool) {
	if id == "" {
		id = DefaultTowerID
	}
	def, ok := l.Towers[id]
	return def, ok
}

// TowerIDs returns tower ids in sorted order.
func (l *Library) TowerIDs() []string {
	ids := make([]string, 0, len(l.Towers))
	for id := range l.Towers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DefaultEnemy builds the enemy used by generated waves.
func DefaultEnemy(s config.Settings) EnemyDefinition {
	return EnemyDefinition{
		ID:     DefaultEnemyID,
		Name:   "Grunt",
		Health: s.Enemy.BaseHealth,
		Speed:  s.Enemy.BaseSpeed,
		Armor:  s.Enemy.BaseArmor,
		Reward: s.Enemy.BaseReward,
		Radius: s.Enemy.Radius,
	}
}

// DefaultTower builds the basic tower placed by starter cards.
func DefaultTower(s config.Settings) TowerDefinition {
	return TowerDefinition{
		ID:              DefaultTowerID,
		Name:            "Basic Tower",
		Damage:          s.Tower.BaseDamage,
		Range:           s.Tower.BaseRange,
		FireRate:        s.Tower.BaseFireRate,
		ProjectileSpeed: s.Combat.ProjectileSpeed,
		GoldCost:        s.Tower.UpgradeBaseCost,
		Health:          100,
		Radius:          s.Tower.Radius,
	}
}

// GenerateWaves builds max_waves waves of the default enemy, each
// wave_scaling times larger than the previous one.
func GenerateWaves(s config.Settings) []WaveDefinition {
	waves := make([]WaveDefinition, 0, s.Wave.MaxWaves)
	for n := 0; n < s.Wave.MaxWaves; n++ {
		count := int(math.Round(float64(s.Wave.EnemiesPerWave) * math.Pow(s.Wave.WaveScaling, float64(n))))
		if count < 1 {
			count = 1
		}
		waves = append(waves, WaveDefinition{
			Enemies:       []WaveGroup{{EnemyID: DefaultEnemyID, Count: count}},
			Count:         count,
			SpawnInterval: s.Wave.TimeBetweenEnemies,
		})
	}
	return waves
}

// StarterCards returns the default card set. Copies add up to starting_deck_size.
func StarterCards(s config.Settings) []CardDefinition {
	cards := []CardDefinition{
		{
			ID: "BASIC_TOWER", Name: "Basic Tower", Cost: s.Tower.BaseCost, Type: string(CardBuilding),
			Description: "Build a basic tower on an empty slot.",
			Effect:      EffectDef{Kind: EffectPlaceTower, Tower: DefaultTowerID},
		},
		{
			ID: "FIREBALL", Name: "Fireball", Cost: 2, Type: string(CardAttack),
			Description: "Deal 30 damage to enemies in an area.",
			Effect:      EffectDef{Kind: EffectDamageArea, Damage: 30, Radius: 2 * s.TileSize},
		},
		{
			ID: "FROST", Name: "Frost", Cost: 1, Type: string(CardUtility),
			Description: "Slow enemies in an area by half for 3 seconds.",
			Effect:      EffectDef{Kind: EffectSlowArea, Intensity: 0.5, Duration: 3, Radius: 2 * s.TileSize},
		},
		{
			ID: "FOCUS", Name: "Focus", Cost: 0, Type: string(CardUtility),
			Description: "Gain 2 energy.",
			Effect:      EffectDef{Kind: EffectGainEnergy, Amount: 2},
		},
	}
	// Башни — половина колоды, остальное делится между заклинаниями.
	size := s.Player.StartingDeckSize
	towers := (size + 1) / 2
	rest := size - towers
	fire := (rest + 1) / 2
	frost := rest - fire
	focus := 0
	if frost > 1 {
		focus = 1
		frost--
	}
	copies := []int{towers, fire, frost, focus}
	out := cards[:0]
	for i, c := range cards {
		if copies[i] == 0 {
			continue
		}
		c.Copies = copies[i]
		out = append(out, c)
	}
	return out
}
