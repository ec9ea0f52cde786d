// internal/state/result_state.go
package state

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"go-card-defense/internal/component"
	"go-card-defense/internal/config"
	"go-card-defense/internal/ui"
)

// ResultState показывает итог уровня поверх последнего кадра. R — заново.
type ResultState struct {
	sm     *StateMachine
	level  *LevelState
	logger *zap.Logger
}

func NewResultState(sm *StateMachine, ls *LevelState, logger *zap.Logger) *ResultState {
	return &ResultState{sm: sm, level: ls, logger: logger}
}

func (r *ResultState) Enter() {
	snap := r.level.snap
	r.logger.Info("level result",
		zap.Stringer("outcome", snap.Outcome),
		zap.Int("score", snap.Score),
		zap.Int("wave", snap.Wave.Number),
	)
}

func (r *ResultState) Exit() {}

func (r *ResultState) Update(deltaTime float64) error {
	if !inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return nil
	}
	if err := r.level.Restart(); err != nil {
		r.logger.Error("restart failed", zap.Error(err))
		return nil
	}
	r.sm.SetState(r.level)
	return nil
}

func (r *ResultState) Draw(screen *ebiten.Image) {
	r.level.Draw(screen)
	ui.FillRect(screen, image.Rect(0, 0, config.ScreenWidth, config.ScreenHeight), color.RGBA{0, 0, 0, 150})

	snap := r.level.snap
	title := "DEFEAT"
	if snap.Outcome == component.Won {
		title = "VICTORY"
	}
	face := basicfont.Face7x13
	lines := []string{
		title,
		fmt.Sprintf("score %d  gold %d", snap.Score, snap.Gold),
		fmt.Sprintf("wave %d of %d", snap.Wave.Number, snap.Wave.Total),
		"press R to play again",
	}
	for i, l := range lines {
		b := text.BoundString(face, l)
		text.Draw(screen, l, face, (config.ScreenWidth-b.Dx())/2, config.ScreenHeight/2-30+i*20, color.White)
	}
}
