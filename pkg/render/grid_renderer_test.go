package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-card-defense/internal/config"
	"go-card-defense/pkg/gridmap"
)

func TestTileColor(t *testing.T) {
	assert.Equal(t, config.PathColor, TileColor(gridmap.Path))
	assert.Equal(t, config.SlotColor, TileColor(gridmap.TowerSlot))
	assert.Equal(t, config.GrassColor, TileColor(gridmap.Kind(99)))
}

func TestScreenToCell(t *testing.T) {
	tiles, err := gridmap.New(3, 1, [][]int{{3, 1, 4}}, nil, nil, nil)
	if !assert.NoError(t, err) {
		return
	}
	r := &GridRenderer{tiles: tiles, tileSize: 32}

	c, ok := r.ScreenToCell(40, 10)
	assert.True(t, ok)
	assert.Equal(t, gridmap.Cell{X: 1, Y: 0}, c)

	_, ok = r.ScreenToCell(40, 40)
	assert.False(t, ok, "below the map")
	_, ok = r.ScreenToCell(-1, 0)
	assert.False(t, ok)
}

func TestTowerLevelColor(t *testing.T) {
	assert.Equal(t, config.TowerColor, TowerLevelColor(0))
	assert.Equal(t, DarkenColor(config.TowerColor), TowerLevelColor(1))
	assert.Equal(t, TowerLevelColor(2), TowerLevelColor(3))
}
