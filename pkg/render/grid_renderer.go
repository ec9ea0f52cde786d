package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-card-defense/internal/config"
	"go-card-defense/internal/level"
	"go-card-defense/internal/system"
	"go-card-defense/pkg/gridmap"
)

// Highlight — подсветка клетки под курсором при выборе цели.
type Highlight struct {
	Show   bool
	Cell   gridmap.Cell
	Valid  bool
	Radius float64 // радиус действия карты или башни; 0 — только клетка
}

// GridRenderer рисует карту уровня и динамические сущности из снимка.
type GridRenderer struct {
	tiles    *gridmap.TileMap
	tileSize float64
	fontFace font.Face
	mapImage *ebiten.Image // Предрендеренная карта
	Debug    bool
}

func NewGridRenderer(tiles *gridmap.TileMap, tileSize float64, face font.Face) *GridRenderer {
	r := &GridRenderer{
		tiles:    tiles,
		tileSize: tileSize,
		fontFace: face,
	}
	r.RenderMapImage()
	return r
}

// TileColor — цвет заливки клетки по её типу.
func TileColor(k gridmap.Kind) color.RGBA {
	switch k {
	case gridmap.Path:
		return config.PathColor
	case gridmap.Water:
		return config.WaterColor
	case gridmap.Spawn:
		return config.SpawnColor
	case gridmap.Goal:
		return config.GoalColor
	case gridmap.TowerSlot:
		return config.SlotColor
	case gridmap.Stone:
		return config.StoneColor
	default:
		return config.GrassColor
	}
}

// RenderMapImage создаёт предрендеренное изображение карты
func (r *GridRenderer) RenderMapImage() {
	w := int(float64(r.tiles.Width) * r.tileSize)
	h := int(float64(r.tiles.Height) * r.tileSize)
	if r.mapImage == nil {
		r.mapImage = ebiten.NewImage(w, h)
	}
	r.mapImage.Clear()

	ts := float32(r.tileSize)
	for y := 0; y < r.tiles.Height; y++ {
		for x := 0; x < r.tiles.Width; x++ {
			kind, _ := r.tiles.Tile(x, y)
			px, py := float32(x)*ts, float32(y)*ts
			vector.DrawFilledRect(r.mapImage, px, py, ts, ts, TileColor(kind), false)
			vector.StrokeRect(r.mapImage, px, py, ts, ts, 1, color.RGBA{0, 0, 0, 40}, false)
		}
	}
}

// ScreenToCell переводит координаты экрана в клетку карты.
func (r *GridRenderer) ScreenToCell(x, y int) (gridmap.Cell, bool) {
	c := gridmap.CellAt(float64(x), float64(y), r.tileSize)
	ok := c.X >= 0 && c.Y >= 0 && c.X < r.tiles.Width && c.Y < r.tiles.Height
	return c, ok
}

func (r *GridRenderer) Draw(screen *ebiten.Image, snap *level.Snapshot, hl Highlight) {
	screen.DrawImage(r.mapImage, nil)

	for _, t := range snap.Towers {
		x, y := float32(t.Position.X), float32(t.Position.Y)
		vector.DrawFilledCircle(screen, x, y, float32(t.Radius), TowerLevelColor(t.Level), true)
		vector.StrokeCircle(screen, x, y, float32(t.Radius), 2, color.Black, true)
		if t.Level > 0 {
			text.Draw(screen, fmt.Sprint(t.Level), r.fontFace, int(x)-3, int(y)+4, color.White)
		}
		if hl.Show && hl.Cell == t.Cell {
			vector.StrokeCircle(screen, x, y, float32(t.Range), 1, config.TextLightColor, true)
		}
	}

	for _, e := range snap.Enemies {
		x, y := float32(e.Position.X), float32(e.Position.Y)
		c := config.EnemyColor
		if e.Slowed {
			c = config.SlowedEnemyColor
		}
		vector.DrawFilledCircle(screen, x, y, float32(e.Radius), c, true)
		r.drawHealthBar(screen, x, y-float32(e.Radius)-6, float32(e.Radius)*2, e.Health, e.Max)
	}

	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), 3, config.ProjectileColor, true)
	}

	for _, fx := range snap.Effects {
		c := color.RGBA{255, 140, 40, 200}
		if fx.Kind == system.EffectFrost {
			c = color.RGBA{140, 200, 255, 200}
		}
		vector.StrokeCircle(screen, float32(fx.Center.X), float32(fx.Center.Y), float32(fx.Radius()), 3, c, true)
	}

	if hl.Show {
		r.drawHighlight(screen, hl)
	}
	if r.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("t=%.2f enemies=%d shots=%d", snap.GameTime, len(snap.Enemies), len(snap.Projectiles)), 4, 4)
	}
}

func (r *GridRenderer) drawHealthBar(screen *ebiten.Image, cx, y, width float32, health, max int) {
	if max <= 0 || health >= max {
		return
	}
	x := cx - width/2
	vector.DrawFilledRect(screen, x, y, width, 3, color.Black, false)
	vector.DrawFilledRect(screen, x, y, width*float32(health)/float32(max), 3, config.HealthBarColor, false)
}

func (r *GridRenderer) drawHighlight(screen *ebiten.Image, hl Highlight) {
	c := color.RGBA{255, 255, 255, 200}
	if !hl.Valid {
		c = color.RGBA{255, 60, 60, 200}
	}
	ts := float32(r.tileSize)
	vector.StrokeRect(screen, float32(hl.Cell.X)*ts, float32(hl.Cell.Y)*ts, ts, ts, 2, c, false)
	if hl.Radius > 0 {
		cx, cy := gridmap.TileCenter(hl.Cell, r.tileSize)
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(hl.Radius), 1, c, true)
	}
}
