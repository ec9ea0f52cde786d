// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-card-defense/internal/config"
	"go-card-defense/internal/level"
	"go-card-defense/pkg/gridmap"
)

const (
	panelWidth     = 260
	panelHeight    = 130
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
)

// InfoPanel displays information about the selected tower and offers an upgrade.
type InfoPanel struct {
	IsVisible     bool
	Target        gridmap.Cell
	UpgradeButton *Button

	currentY float64
	targetY  float64
	hiddenY  float64
	shownY   float64
}

// NewInfoPanel creates a new information panel that slides up from bottomY.
func NewInfoPanel(bottomY int) *InfoPanel {
	hidden := float64(bottomY)
	return &InfoPanel{
		UpgradeButton: NewButton(image.Rectangle{}, "Upgrade"),
		currentY:      hidden,
		targetY:       hidden,
		hiddenY:       hidden,
		shownY:        hidden - panelHeight,
	}
}

func (p *InfoPanel) SetTarget(cell gridmap.Cell) {
	p.Target = cell
	p.IsVisible = true
	p.targetY = p.shownY
}

func (p *InfoPanel) Hide() {
	p.targetY = p.hiddenY
}

// Rect — текущий прямоугольник панели на экране.
func (p *InfoPanel) Rect() image.Rectangle {
	x := config.ScreenWidth - panelWidth - panelMargin
	return image.Rect(x, int(p.currentY), x+panelWidth, int(p.currentY)+panelHeight-panelMargin)
}

// Contains reports whether a click lands on the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && image.Pt(x, y).In(p.Rect())
}

// Update анимирует выезд панели.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= p.hiddenY {
		p.IsVisible = false
	}
}

// UpgradeClicked reports a click on the enabled upgrade button.
func (p *InfoPanel) UpgradeClicked(x, y int) bool {
	return p.IsVisible && p.UpgradeButton.Clicked(x, y)
}

// Draw рисует сведения о башне. cost/ok — цена улучшения и доступно ли оно вообще.
func (p *InfoPanel) Draw(screen *ebiten.Image, face font.Face, tower *level.TowerView, cost int, ok bool, gold int, cursorX, cursorY int) {
	if !p.IsVisible {
		return
	}
	r := p.Rect()
	FillRect(screen, r, color.RGBA{R: 25, G: 35, B: 45, A: 230})
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, color.RGBA{R: 70, G: 130, B: 180, A: 255}, true)

	x, y := r.Min.X+12, r.Min.Y+20
	if tower == nil {
		text.Draw(screen, "Empty slot", face, x, y, config.TextLightColor)
		return
	}
	text.Draw(screen, fmt.Sprintf("%s  lvl %d", tower.DefID, tower.Level), face, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Range: %.0f", tower.Range), face, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Cell: %d,%d", tower.Cell.X, tower.Cell.Y), face, x, y, config.TextLightColor)

	p.UpgradeButton.Rect = image.Rect(r.Min.X+12, r.Max.Y-40, r.Max.X-12, r.Max.Y-10)
	switch {
	case !ok:
		p.UpgradeButton.Text = "Max level"
		p.UpgradeButton.Disabled = true
	default:
		p.UpgradeButton.Text = fmt.Sprintf("Upgrade (%d gold)", cost)
		p.UpgradeButton.Disabled = gold < cost
	}
	p.UpgradeButton.Draw(screen, face, cursorX, cursorY)
}
