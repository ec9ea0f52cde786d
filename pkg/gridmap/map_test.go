package gridmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 5x3, path along the middle row, slots above it.
func newTestMap(t *testing.T) *TileMap {
	t.Helper()
	tiles := [][]int{
		{0, 5, 0, 5, 2},
		{3, 1, 1, 1, 4},
		{0, 0, 6, 0, 0},
	}
	tm, err := New(5, 3, tiles, []Cell{{0, 1}}, []Cell{{1, 0}, {3, 0}}, []Cell{{4, 1}})
	require.NoError(t, err)
	return tm
}

func TestTileMap_TileOutOfBounds(t *testing.T) {
	tm := newTestMap(t)

	kind, err := tm.Tile(2, 1)
	require.NoError(t, err)
	assert.Equal(t, Path, kind)

	for _, c := range []Cell{{-1, 0}, {5, 0}, {0, 3}, {0, -1}} {
		_, err := tm.Tile(c.X, c.Y)
		assert.True(t, errors.Is(err, ErrOutOfBounds), "cell %v", c)
	}
}

func TestTileMap_TowerSlots(t *testing.T) {
	tm := newTestMap(t)

	assert.True(t, tm.IsValidTowerPosition(1, 0))
	assert.True(t, tm.IsValidTowerPosition(3, 0))
	assert.False(t, tm.IsValidTowerPosition(2, 1), "path tile is not a slot")
	assert.False(t, tm.IsValidTowerPosition(9, 9), "out of bounds is never valid")

	require.True(t, tm.Occupy(1, 0))
	assert.False(t, tm.IsValidTowerPosition(1, 0))
	assert.False(t, tm.Occupy(1, 0), "slot can be occupied only once")
	assert.True(t, tm.IsOccupied(1, 0))
	assert.True(t, tm.IsValidTowerPosition(3, 0), "other slots stay free")
}

func TestTileMap_PathToGoal(t *testing.T) {
	tm := newTestMap(t)

	path, err := tm.PathToGoal(Cell{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []Cell{{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}}, path)

	path[0] = Cell{99, 99}
	again, _ := tm.PathToGoal(Cell{0, 1})
	assert.Equal(t, Cell{0, 1}, again[0], "returned path must be a copy")

	_, err = tm.PathToGoal(Cell{2, 2})
	assert.ErrorIs(t, err, ErrNotSpawn)
}

func TestTileMap_DeterministicPath(t *testing.T) {
	// Two equally short routes around a water tile; the search must always pick the same one.
	tiles := [][]int{
		{1, 1, 1},
		{3, 2, 4},
		{1, 1, 1},
	}
	var first []Cell
	for i := 0; i < 10; i++ {
		tm, err := New(3, 3, tiles, nil, nil, nil)
		require.NoError(t, err)
		path, err := tm.PathToGoal(Cell{0, 1})
		require.NoError(t, err)
		if first == nil {
			first = path
			continue
		}
		assert.Equal(t, first, path)
	}
	assert.Equal(t, []Cell{{0, 1}, {0, 0}, {1, 0}, {2, 0}, {2, 1}}, first)
}

func TestTileMap_NoPath(t *testing.T) {
	tiles := [][]int{
		{3, 1, 2, 1, 4},
	}
	_, err := New(5, 1, tiles, nil, nil, nil)
	var noPath *NoPathError
	require.ErrorAs(t, err, &noPath)
	assert.Equal(t, Cell{0, 0}, noPath.Spawn)
}

func TestTileMap_InvalidGrid(t *testing.T) {
	cases := map[string]struct {
		w, h  int
		tiles [][]int
	}{
		"zero width":   {0, 1, [][]int{{}}},
		"row count":    {2, 2, [][]int{{3, 4}}},
		"row length":   {2, 1, [][]int{{3}}},
		"unknown code": {2, 1, [][]int{{3, 42}}},
		"no goal":      {2, 1, [][]int{{3, 1}}},
		"no spawn":     {2, 1, [][]int{{1, 4}}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(tc.w, tc.h, tc.tiles, nil, nil, nil)
			assert.Error(t, err)
		})
	}
}

func TestCellConversions(t *testing.T) {
	x, y := TileCenter(Cell{2, 3}, 32)
	assert.Equal(t, 80.0, x)
	assert.Equal(t, 112.0, y)
	assert.Equal(t, Cell{2, 3}, CellAt(x, y, 32))
	assert.Equal(t, Cell{-1, 0}, CellAt(-0.5, 1, 32))
}
