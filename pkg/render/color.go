// pkg/render/color.go
package render

import (
	"image/color"

	"go-card-defense/internal/config"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// TowerLevelColor darkens the tower colour one step per upgrade level, then
// stays at the darkest shade.
func TowerLevelColor(level int) color.RGBA {
	c := config.TowerColor
	for i := 0; i < level && i < 2; i++ {
		c = DarkenColor(c)
	}
	return c
}
