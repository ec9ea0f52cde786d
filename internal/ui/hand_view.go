// internal/ui/hand_view.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-card-defense/internal/config"
	"go-card-defense/internal/economy"
)

const (
	CardWidth   = 80
	CardHeight  = 88
	CardSpacing = 6
)

// HandView раскладывает карты руки в ряд внутри HUD.
type HandView struct {
	X, Y int
}

func NewHandView(x, y int) *HandView {
	return &HandView{X: x, Y: y}
}

// CardRect — прямоугольник i-й карты.
func (h *HandView) CardRect(i int) image.Rectangle {
	x := h.X + i*(CardWidth+CardSpacing)
	return image.Rect(x, h.Y, x+CardWidth, h.Y+CardHeight)
}

// HitTest returns the index of the card under the point, or -1.
func (h *HandView) HitTest(x, y, handSize int) int {
	pt := image.Pt(x, y)
	for i := 0; i < handSize; i++ {
		if pt.In(h.CardRect(i)) {
			return i
		}
	}
	return -1
}

// Draw рисует руку; selected = -1, если карта не выбрана.
func (h *HandView) Draw(screen *ebiten.Image, face font.Face, hand []economy.Card, selected, energy, cursorX, cursorY int) {
	hovered := h.HitTest(cursorX, cursorY, len(hand))
	for i, card := range hand {
		r := h.CardRect(i)
		FillRect(screen, r, config.CardColor)
		border := color.Color(config.PanelBorderColor)
		if i == selected {
			border = config.SelectedColor
		}
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, border, true)

		costColor := color.Color(config.EnergyBarColor)
		if card.Cost > energy {
			costColor = color.RGBA{120, 120, 120, 255}
		}
		vector.DrawFilledCircle(screen, float32(r.Min.X+12), float32(r.Min.Y+12), 9, costColor, true)
		text.Draw(screen, fmt.Sprint(card.Cost), face, r.Min.X+9, r.Min.Y+17, color.White)
		text.Draw(screen, fmt.Sprint(i+1), face, r.Max.X-12, r.Min.Y+17, config.TextLightColor)
		text.Draw(screen, clip(card.Name, 10), face, r.Min.X+6, r.Min.Y+42, config.TextLightColor)
		text.Draw(screen, string(card.Type), face, r.Min.X+6, r.Min.Y+60, config.TextLightColor)
	}
	if hovered >= 0 {
		h.drawTooltip(screen, face, hand[hovered], h.CardRect(hovered))
	}
}

func (h *HandView) drawTooltip(screen *ebiten.Image, face font.Face, card economy.Card, anchor image.Rectangle) {
	lines := strings.Split(card.Tooltip(), "\n")
	width := 0
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}
	height := len(lines)*16 + 8
	r := image.Rect(anchor.Min.X, anchor.Min.Y-height-6, anchor.Min.X+width+16, anchor.Min.Y-6)
	if r.Max.X > config.ScreenWidth {
		r = r.Sub(image.Pt(r.Max.X-config.ScreenWidth, 0))
	}
	FillRect(screen, r, config.PanelColor)
	for i, l := range lines {
		text.Draw(screen, l, face, r.Min.X+8, r.Min.Y+18+i*16, config.TextLightColor)
	}
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "."
}
