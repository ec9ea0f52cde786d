package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-card-defense/internal/config"
	"go-card-defense/pkg/gridmap"
)

const testMap = `{
  "width": 5, "height": 3,
  "tiles": [[0,5,0,5,0],[3,1,1,1,4],[0,0,0,0,0]],
  "spawn_points": [{"x":0,"y":1}],
  "tower_slots": [{"x":1,"y":0},{"x":3,"y":0}],
  "goal_points": [{"x":4,"y":1}]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMap(t *testing.T) {
	def, tm, err := LoadMap(writeFile(t, "map.json", testMap))
	require.NoError(t, err)
	assert.Equal(t, 5, def.Width)
	assert.True(t, tm.IsValidTowerPosition(3, 0))

	path, err := tm.PathToGoal(gridmap.Cell{X: 0, Y: 1})
	require.NoError(t, err)
	assert.Len(t, path, 5)
}

func TestLoadMap_Errors(t *testing.T) {
	var cfgErr *ConfigError

	_, _, err := LoadMap(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorAs(t, err, &cfgErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, _, err = LoadMap(writeFile(t, "bad.json", `{"width": 5,`))
	require.ErrorAs(t, err, &cfgErr)

	blocked := `{"width":3,"height":1,"tiles":[[3,2,4]]}`
	_, _, err = LoadMap(writeFile(t, "blocked.json", blocked))
	require.ErrorAs(t, err, &cfgErr)
	var noPath *gridmap.NoPathError
	assert.ErrorAs(t, err, &noPath)
}

func TestSaveMap(t *testing.T) {
	_, tm, err := LoadMap(writeFile(t, "map.json", testMap))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "saved.json")
	require.NoError(t, SaveMap(out, tm))

	_, again, err := LoadMap(out)
	require.NoError(t, err)
	assert.Equal(t, tm.Codes(), again.Codes())
	assert.Equal(t, tm.Slots, again.Slots)
	assert.Equal(t, tm.Spawns, again.Spawns)
}

func TestLoadWaves(t *testing.T) {
	path := writeFile(t, "waves.json", `[
	  {"enemies":[{"enemy":"A","count":2},{"enemy":"B","count":1}],"spawn_interval":0.5},
	  {"count":4,"spawn_interval":1}
	]`)
	waves, err := LoadWaves(path)
	require.NoError(t, err)
	require.Len(t, waves, 2)

	assert.Equal(t, 3, waves[0].Count)
	assert.Equal(t, []string{"A", "A", "B"}, waves[0].Sequence())
	assert.Equal(t, []WaveGroup{{EnemyID: DefaultEnemyID, Count: 4}}, waves[1].Enemies)
}

func TestLoadWaves_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty list":     `[]`,
		"no enemies":     `[{"spawn_interval":1}]`,
		"count mismatch": `[{"enemies":[{"enemy":"A","count":2}],"count":3,"spawn_interval":1}]`,
		"zero group":     `[{"enemies":[{"enemy":"A","count":0}],"spawn_interval":1}]`,
		"negative delay": `[{"count":1,"spawn_interval":-1}]`,
		"malformed":      `{"count":1}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadWaves(writeFile(t, "waves.json", body))
			var cfgErr *ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestLoadCards(t *testing.T) {
	path := writeFile(t, "cards.json", `[
	  {"id":"T","name":"Tower","cost":2,"type":"building","effect":{"kind":"place_tower","tower":"TOWER_BASIC"}},
	  {"id":"F","name":"Fire","cost":1,"type":"Attack","effect":{"kind":"damage_area","damage":10,"radius":32}}
	]`)
	cards, err := LoadCards(path)
	require.NoError(t, err)
	assert.Equal(t, string(CardBuilding), cards[0].Type, "type is normalized")

	bad := map[string]string{
		"unknown type":     `[{"id":"X","type":"Spell","effect":{"kind":"heal","amount":1}}]`,
		"unknown effect":   `[{"id":"X","type":"Utility","effect":{"kind":"teleport"}}]`,
		"building no slot": `[{"id":"X","type":"Building","effect":{"kind":"heal","amount":1}}]`,
		"tower not built":  `[{"id":"X","type":"Attack","effect":{"kind":"place_tower"}}]`,
		"duplicate":        `[{"id":"X","type":"Utility","effect":{"kind":"heal","amount":1}},{"id":"X","type":"Utility","effect":{"kind":"heal","amount":1}}]`,
		"negative cost":    `[{"id":"X","cost":-1,"type":"Utility","effect":{"kind":"heal","amount":1}}]`,
	}
	for name, body := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCards(writeFile(t, "cards.json", body))
			var cfgErr *ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestLoadLibrary_Defaults(t *testing.T) {
	s := config.Default()
	lib, err := LoadLibrary(Paths{Map: writeFile(t, "map.json", testMap)}, s)
	require.NoError(t, err)

	assert.Contains(t, lib.Enemies, DefaultEnemyID)
	assert.Contains(t, lib.Towers, DefaultTowerID)
	assert.Len(t, lib.Waves, s.Wave.MaxWaves)

	total := 0
	for _, c := range lib.Cards {
		total += c.Copies
	}
	assert.Equal(t, s.Player.StartingDeckSize, total)
}

func TestLoadLibrary_UnknownReferences(t *testing.T) {
	s := config.Default()
	mapPath := writeFile(t, "map.json", testMap)

	_, err := LoadLibrary(Paths{
		Map:   mapPath,
		Waves: writeFile(t, "waves.json", `[{"enemies":[{"enemy":"GHOST","count":1}],"spawn_interval":1}]`),
	}, s)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Reason, "GHOST")

	_, err = LoadLibrary(Paths{
		Map:   mapPath,
		Cards: writeFile(t, "cards.json", `[{"id":"T","type":"Building","effect":{"kind":"place_tower","tower":"CANNON"}}]`),
	}, s)
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Reason, "CANNON")

	_, err = LoadLibrary(Paths{}, s)
	assert.ErrorAs(t, err, &cfgErr)
}

func TestGenerateWaves(t *testing.T) {
	s := config.Default()
	s.Wave.MaxWaves = 3
	waves := GenerateWaves(s)
	require.Len(t, waves, 3)
	assert.Equal(t, 10, waves[0].Count)
	assert.Equal(t, 13, waves[1].Count)
	assert.Equal(t, 17, waves[2].Count)
	assert.Equal(t, s.Wave.TimeBetweenEnemies, waves[2].SpawnInterval)
}

func TestPathsIn(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cards.json"), []byte("[]"), 0o644))

	p := PathsIn(dir, "level1")
	assert.Equal(t, filepath.Join(dir, "maps", "level1.json"), p.Map)
	assert.Equal(t, filepath.Join(dir, "cards.json"), p.Cards)
	assert.Empty(t, p.Waves)
	assert.Empty(t, p.Enemies)
	assert.Empty(t, p.Towers)
}

func TestLoadLibrary_ShippedData(t *testing.T) {
	lib, err := LoadLibrary(PathsIn(filepath.Join("..", "..", "data"), "level1"), config.Default())
	require.NoError(t, err)

	assert.Len(t, lib.Waves, 10)
	assert.Contains(t, lib.Enemies, "BRUTE")
	assert.Contains(t, lib.Towers, "TOWER_FROST")
	total := 0
	for _, c := range lib.Cards {
		total += c.Copies
	}
	assert.Equal(t, 17, total)

	tiles, err := lib.Map.Build()
	require.NoError(t, err)
	assert.Len(t, tiles.Slots, 20)
	path, err := tiles.PathToGoal(tiles.Spawns[0])
	require.NoError(t, err)
	assert.Equal(t, tiles.Goals[0], path[len(path)-1])
}
