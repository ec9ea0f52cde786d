// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	HUDHeight    = 120

	// MaxDeltaTime caps a single tick so a stall never turns into a large jump.
	MaxDeltaTime = 1.0 / 30.0

	DefaultSettingsPath = "data/settings.yaml"
)

var (
	BackgroundColor  = color.RGBA{32, 32, 48, 255}
	GrassColor       = color.RGBA{34, 139, 34, 255}
	StoneColor       = color.RGBA{128, 128, 128, 255}
	WaterColor       = color.RGBA{0, 100, 200, 255}
	PathColor        = color.RGBA{139, 69, 19, 255}
	SpawnColor       = color.RGBA{255, 128, 128, 255}
	GoalColor        = color.RGBA{128, 255, 128, 255}
	SlotColor        = color.RGBA{200, 200, 50, 255}
	EnemyColor       = color.RGBA{255, 64, 64, 255}
	SlowedEnemyColor = color.RGBA{120, 160, 255, 255}
	TowerColor       = color.RGBA{64, 255, 64, 255}
	ProjectileColor  = color.RGBA{255, 255, 128, 255}
	HealthBarColor   = color.RGBA{255, 64, 64, 255}
	EnergyBarColor   = color.RGBA{64, 64, 255, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	PanelColor       = color.RGBA{48, 48, 64, 230}
	PanelBorderColor = color.RGBA{96, 96, 128, 255}
	WaveTextColor    = color.RGBA{80, 160, 255, 255}
	BossWaveColor    = color.RGBA{230, 40, 40, 255}
	CardColor        = color.RGBA{70, 60, 40, 255}
	SelectedColor    = color.RGBA{255, 215, 0, 255}
)

// Settings — the single immutable balance configuration of a level.
// Built once at load and passed by value to every system.
type Settings struct {
	Seed         int64                         `yaml:"seed"`
	Difficulty   string                        `yaml:"difficulty"`
	TileSize     float64                       `yaml:"tile_size"`
	Player       PlayerSettings                `yaml:"player"`
	Tower        TowerSettings                 `yaml:"tower"`
	Enemy        EnemySettings                 `yaml:"enemy"`
	Wave         WaveSettings                  `yaml:"wave"`
	Combat       CombatSettings                `yaml:"combat"`
	Performance  PerformanceSettings           `yaml:"performance"`
	Difficulties map[string]DifficultySettings `yaml:"difficulties"`
}

type PlayerSettings struct {
	StartingHealth       int     `yaml:"starting_health"`
	StartingEnergy       int     `yaml:"starting_energy"`
	MaxEnergy            int     `yaml:"max_energy"`
	EnergyPerTurn        int     `yaml:"energy_per_turn"`
	CardsPerTurn         int     `yaml:"cards_per_turn"`
	MaxHandSize          int     `yaml:"max_hand_size"`
	StartingDeckSize     int     `yaml:"starting_deck_size"`
	OpeningHand          int     `yaml:"opening_hand"`
	StartingGold         int     `yaml:"starting_gold"`
	EscapeDamage         int     `yaml:"escape_damage"`
	TurnDuration         float64 `yaml:"turn_duration"` // seconds; 0 — turns end only on request
	DiscardHandOnTurnEnd bool    `yaml:"discard_hand_on_turn_end"`
}

type TowerSettings struct {
	BaseCost                int     `yaml:"base_cost"`
	UpgradeBaseCost         int     `yaml:"upgrade_base_cost"`
	UpgradeCostMultiplier   float64 `yaml:"upgrade_cost_multiplier"`
	MaxUpgradeLevel         int     `yaml:"max_upgrade_level"`
	UpgradeDamageMultiplier float64 `yaml:"upgrade_damage_multiplier"`
	UpgradeRangeMultiplier  float64 `yaml:"upgrade_range_multiplier"`
	BaseDamage              int     `yaml:"base_damage"`
	BaseRange               float64 `yaml:"base_range"`
	BaseFireRate            float64 `yaml:"base_fire_rate"`
	Radius                  float64 `yaml:"radius"`
}

type EnemySettings struct {
	BaseHealth    int     `yaml:"base_health"`
	BaseSpeed     float64 `yaml:"base_speed"`
	BaseReward    int     `yaml:"base_reward"`
	BaseArmor     int     `yaml:"base_armor"`
	HealthScaling float64 `yaml:"health_scaling"`
	SpeedScaling  float64 `yaml:"speed_scaling"`
	Radius        float64 `yaml:"radius"`
}

type WaveSettings struct {
	EnemiesPerWave     int     `yaml:"enemies_per_wave"`
	WaveScaling        float64 `yaml:"wave_scaling"`
	TimeBetweenEnemies float64 `yaml:"time_between_enemies"`
	TimeBetweenWaves   float64 `yaml:"time_between_waves"`
	FirstWaveDelay     float64 `yaml:"first_wave_delay"`
	MaxWaves           int     `yaml:"max_waves"`
	AutoStart          bool    `yaml:"auto_start"`
}

type CombatSettings struct {
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	HitRadius       float64 `yaml:"hit_radius"`
	ProjectileTTL   float64 `yaml:"projectile_ttl"`
}

type PerformanceSettings struct {
	MaxProjectiles int `yaml:"max_projectiles"`
}

type DifficultySettings struct {
	EnemyHealthMultiplier       float64 `yaml:"enemy_health_multiplier"`
	EnemySpeedMultiplier        float64 `yaml:"enemy_speed_multiplier"`
	WaveSizeMultiplier          float64 `yaml:"wave_size_multiplier"`
	StartingResourcesMultiplier float64 `yaml:"starting_resources_multiplier"`
}

// Default возвращает базовый баланс игры.
func Default() Settings {
	return Settings{
		Seed:       1,
		Difficulty: "NORMAL",
		TileSize:   32,
		Player: PlayerSettings{
			StartingHealth:   20,
			StartingEnergy:   3,
			MaxEnergy:        10,
			EnergyPerTurn:    1,
			CardsPerTurn:     2,
			MaxHandSize:      7,
			StartingDeckSize: 15,
			OpeningHand:      5,
			StartingGold:     0,
			EscapeDamage:     1,
			TurnDuration:     0,
		},
		Tower: TowerSettings{
			BaseCost:                2,
			UpgradeBaseCost:         20,
			UpgradeCostMultiplier:   1.5,
			MaxUpgradeLevel:         3,
			UpgradeDamageMultiplier: 1.25,
			UpgradeRangeMultiplier:  1.1,
			BaseDamage:              10,
			BaseRange:               100,
			BaseFireRate:            1.0,
			Radius:                  12,
		},
		Enemy: EnemySettings{
			BaseHealth:    50,
			BaseSpeed:     30,
			BaseReward:    10,
			BaseArmor:     0,
			HealthScaling: 1.2,
			SpeedScaling:  1.05,
			Radius:        10,
		},
		Wave: WaveSettings{
			EnemiesPerWave:     10,
			WaveScaling:        1.3,
			TimeBetweenEnemies: 1.0,
			TimeBetweenWaves:   10.0,
			FirstWaveDelay:     5.0,
			MaxWaves:           20,
			AutoStart:          true,
		},
		Combat: CombatSettings{
			ProjectileSpeed: 200,
			HitRadius:       8,
			ProjectileTTL:   3.0,
		},
		Performance: PerformanceSettings{
			MaxProjectiles: 100,
		},
		Difficulties: map[string]DifficultySettings{
			"EASY":      {EnemyHealthMultiplier: 0.7, EnemySpeedMultiplier: 0.8, WaveSizeMultiplier: 0.8, StartingResourcesMultiplier: 1.5},
			"NORMAL":    {EnemyHealthMultiplier: 1.0, EnemySpeedMultiplier: 1.0, WaveSizeMultiplier: 1.0, StartingResourcesMultiplier: 1.0},
			"HARD":      {EnemyHealthMultiplier: 1.3, EnemySpeedMultiplier: 1.2, WaveSizeMultiplier: 1.2, StartingResourcesMultiplier: 0.8},
			"NIGHTMARE": {EnemyHealthMultiplier: 1.6, EnemySpeedMultiplier: 1.4, WaveSizeMultiplier: 1.5, StartingResourcesMultiplier: 0.6},
		},
	}
}

// Load читает YAML поверх значений по умолчанию.
// Пустой путь — только значения по умолчанию.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return s, nil
}

// Validate checks that the balance values are usable by the simulation.
func (s Settings) Validate() error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, errors.New(msg))
		}
	}

	check(s.TileSize > 0, "tile_size must be positive")
	check(s.Player.StartingHealth > 0, "player.starting_health must be positive")
	check(s.Player.MaxEnergy >= 0, "player.max_energy must not be negative")
	check(s.Player.StartingEnergy >= 0 && s.Player.StartingEnergy <= s.Player.MaxEnergy,
		"player.starting_energy must be within [0, max_energy]")
	check(s.Player.MaxHandSize > 0, "player.max_hand_size must be positive")
	check(s.Player.EscapeDamage >= 0, "player.escape_damage must not be negative")
	check(s.Player.TurnDuration >= 0, "player.turn_duration must not be negative")
	check(s.Tower.MaxUpgradeLevel >= 0, "tower.max_upgrade_level must not be negative")
	check(s.Enemy.HealthScaling > 0 && s.Enemy.SpeedScaling > 0, "enemy scaling must be positive")
	check(s.Wave.TimeBetweenEnemies > 0, "wave.time_between_enemies must be positive")
	check(s.Wave.TimeBetweenWaves >= 0, "wave.time_between_waves must not be negative")
	check(s.Combat.ProjectileSpeed > 0, "combat.projectile_speed must be positive")
	check(s.Combat.HitRadius > 0, "combat.hit_radius must be positive")
	check(s.Combat.ProjectileTTL > 0, "combat.projectile_ttl must be positive")
	if _, ok := s.Difficulties[strings.ToUpper(s.Difficulty)]; !ok {
		errs = append(errs, fmt.Errorf("unknown difficulty %q", s.Difficulty))
	}
	return errors.Join(errs...)
}

// DifficultyPreset возвращает множители выбранной сложности (NORMAL, если не найдена).
func (s Settings) DifficultyPreset() DifficultySettings {
	if d, ok := s.Difficulties[strings.ToUpper(s.Difficulty)]; ok {
		return d
	}
	return DifficultySettings{1, 1, 1, 1}
}

// WithDifficulty returns a copy using the named preset.
func (s Settings) WithDifficulty(name string) Settings {
	s.Difficulty = strings.ToUpper(name)
	return s
}
