// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"go-card-defense/internal/config"
)

// MenuState — стартовый экран: Space запускает уровень.
type MenuState struct {
	sm      *StateMachine
	factory LevelFactory
	logger  *zap.Logger
	err     error
}

func NewMenuState(sm *StateMachine, factory LevelFactory, logger *zap.Logger) *MenuState {
	return &MenuState{sm: sm, factory: factory, logger: logger}
}

func (m *MenuState) Enter() {}
func (m *MenuState) Exit()  {}

func (m *MenuState) Update(deltaTime float64) error {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return nil
	}
	ls, err := NewLevelState(m.sm, m.factory, m.logger)
	if err != nil {
		m.logger.Error("failed to start level", zap.Error(err))
		m.err = err
		return nil
	}
	m.sm.SetState(ls)
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	text.Draw(screen, "CARD DEFENSE", face, config.ScreenWidth/2-42, config.ScreenHeight/2-20, config.TextLightColor)
	text.Draw(screen, "press SPACE to start", face, config.ScreenWidth/2-70, config.ScreenHeight/2+10, config.TextLightColor)
	if m.err != nil {
		text.Draw(screen, m.err.Error(), face, 20, config.ScreenHeight-30, color.RGBA{255, 120, 120, 255})
	}
}
