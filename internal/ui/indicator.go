// internal/ui/indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	pipRadius  = 7
	pipSpacing = 4
)

// EnergyIndicator рисует энергию ряд кружков: заполненные — доступная энергия.
type EnergyIndicator struct {
	X, Y  float32
	Color color.Color
}

func NewEnergyIndicator(x, y float32, c color.Color) *EnergyIndicator {
	return &EnergyIndicator{X: x, Y: y, Color: c}
}

// Draw отрисовывает индикатор
func (i *EnergyIndicator) Draw(screen *ebiten.Image, face font.Face, energy, maxEnergy int) {
	for j := 0; j < maxEnergy; j++ {
		cx := i.X + pipRadius + float32(j*(pipRadius*2+pipSpacing))
		cy := i.Y + pipRadius
		if j < energy {
			vector.DrawFilledCircle(screen, cx, cy, pipRadius, i.Color, true)
		} else {
			vector.DrawFilledCircle(screen, cx, cy, pipRadius, color.Black, true)
		}
		vector.StrokeCircle(screen, cx, cy, pipRadius, 1, color.White, true)
	}
	label := fmt.Sprintf("Energy %d/%d", energy, maxEnergy)
	text.Draw(screen, label, face, int(i.X), int(i.Y)-4, color.White)
}
