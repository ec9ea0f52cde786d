// internal/state/pause_state.go
package state

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-card-defense/internal/config"
	"go-card-defense/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженный уровень под затемнением. Уровень при этом
// стоит на паузе и не тикает.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *LevelState
}

func NewPauseState(sm *StateMachine, prev *LevelState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prev,
	}
}

func (s *PauseState) Enter() {}
func (s *PauseState) Exit()  {}

func (s *PauseState) Update(deltaTime float64) error {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previousState.pauseButton.IsClicked(x, y)
	}
	if unpause {
		s.previousState.Resume()
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	ui.FillRect(screen, image.Rect(0, 0, config.ScreenWidth, config.ScreenHeight), color.RGBA{0, 0, 0, 128})
	const pauseText = "PAUSED"
	face := basicfont.Face7x13
	b := text.BoundString(face, pauseText)
	text.Draw(screen, pauseText, face, (config.ScreenWidth-b.Dx())/2, config.ScreenHeight/2, color.White)
}
