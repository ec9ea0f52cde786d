// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-card-defense/internal/config"
	"go-card-defense/internal/system"
)

// WaveIndicator отображает номер текущей волны римскими цифрами и отсчёт до следующей.
type WaveIndicator struct {
	X, Y         int
	Color        color.Color
	OutlineColor color.Color
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        config.WaveTextColor,
		OutlineColor: color.White,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Caption — строка состояния под номером волны.
func Caption(info system.WaveInfo, nextIn float64) string {
	switch info.State {
	case system.WaveSpawning:
		return fmt.Sprintf("spawning %d/%d", info.Spawned, info.Size)
	case system.WaveWaitingForClear:
		return "clear the field"
	case system.WaveComplete:
		return "all waves sent"
	}
	if info.Number >= info.Total {
		return ""
	}
	if nextIn > 0 {
		return fmt.Sprintf("next wave in %.0fs", nextIn)
	}
	return "press N to call the next wave"
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, info system.WaveInfo, nextIn float64) {
	title := toRoman(info.Number)
	if title == "" {
		title = "-"
	}
	title = fmt.Sprintf("%s / %s", title, toRoman(info.Total))

	// Каждая десятая волна — босс-волна
	textColor := i.Color
	if info.Number > 0 && info.Number%10 == 0 {
		textColor = config.BossWaveColor
	}

	bounds := text.BoundString(face, title)
	x := i.X - bounds.Dx()/2
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, title, face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, title, face, x, i.Y, textColor)

	if caption := Caption(info, nextIn); caption != "" {
		cb := text.BoundString(face, caption)
		text.Draw(screen, caption, face, i.X-cb.Dx()/2, i.Y+18, config.TextLightColor)
	}
}
