// internal/state/level_state.go
package state

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-card-defense/internal/config"
	"go-card-defense/internal/defs"
	"go-card-defense/internal/input"
	"go-card-defense/internal/level"
	"go-card-defense/internal/ui"
	"go-card-defense/pkg/render"
)

// LevelFactory builds a fresh level; used for the first start and restarts.
type LevelFactory func() (*level.Level, error)

const messageTTL = 2.5 // секунды показа сообщения об отказе

var handKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// LevelState — идущий уровень: ввод, тик симуляции и отрисовка.
type LevelState struct {
	sm      *StateMachine
	factory LevelFactory
	level   *level.Level
	logger  *zap.Logger

	ctrl     *input.Controller
	renderer *render.GridRenderer
	face     font.Face
	snap     level.Snapshot

	hand          *ui.HandView
	health        *ui.PlayerHealthIndicator
	energy        *ui.EnergyIndicator
	wave          *ui.WaveIndicator
	pauseButton   *ui.PauseButton
	endTurnButton *ui.Button
	waveButton    *ui.Button
	infoPanel     *ui.InfoPanel

	message    string
	messageTTL float64
	cursorX    int
	cursorY    int
}

func NewLevelState(sm *StateMachine, factory LevelFactory, logger *zap.Logger) (*LevelState, error) {
	lv, err := factory()
	if err != nil {
		return nil, err
	}
	face := basicfont.Face7x13
	hudTop := config.ScreenHeight - config.HUDHeight

	s := &LevelState{
		sm:            sm,
		factory:       factory,
		level:         lv,
		logger:        logger,
		ctrl:          input.NewController(""),
		renderer:      render.NewGridRenderer(lv.Tiles, lv.Settings.TileSize, face),
		face:          face,
		hand:          ui.NewHandView(250, hudTop+22),
		health:        ui.NewPlayerHealthIndicator(12, float32(hudTop+22)),
		energy:        ui.NewEnergyIndicator(12, float32(hudTop+82), config.EnergyBarColor),
		wave:          ui.NewWaveIndicator(config.ScreenWidth/2, 20),
		pauseButton:   ui.NewPauseButton(float32(config.ScreenWidth-30), 30, 10, config.TextLightColor, config.GoalColor),
		endTurnButton: ui.NewButton(image.Rect(config.ScreenWidth-150, hudTop+70, config.ScreenWidth-80, hudTop+100), "End turn"),
		waveButton:    ui.NewButton(image.Rect(config.ScreenWidth-75, hudTop+70, config.ScreenWidth-10, hudTop+100), "Wave"),
		infoPanel:     ui.NewInfoPanel(hudTop),
	}
	s.snap = lv.Snapshot()
	return s, nil
}

// Level exposes the running level, mainly for the pause overlay and tests.
func (s *LevelState) Level() *level.Level { return s.level }

func (s *LevelState) Enter() {}
func (s *LevelState) Exit()  {}

func (s *LevelState) Update(deltaTime float64) error {
	s.cursorX, s.cursorY = ebiten.CursorPosition()
	s.readInput()

	if s.apply() {
		return nil
	}

	s.level.Tick(deltaTime)
	s.snap = s.level.Snapshot()
	s.ctrl.HandChanged(s.level)
	s.infoPanel.Update()
	if s.messageTTL > 0 {
		s.messageTTL -= deltaTime
	}

	if s.level.Ended() {
		s.sm.SetState(NewResultState(s.sm, s, s.logger))
	}
	return nil
}

// apply drains queued intents into the level. Returns true when the level
// was paused and the pause overlay took over.
func (s *LevelState) apply() bool {
	for _, in := range s.ctrl.Drain() {
		res := s.level.Apply(in)
		if !res.OK {
			s.flash(res.Reason)
			continue
		}
		if _, ok := in.(input.TogglePause); ok && s.level.Paused() {
			s.pauseButton.SetPaused(true)
			s.snap = s.level.Snapshot()
			s.sm.SetState(NewPauseState(s.sm, s))
			return true
		}
	}
	return false
}

// Resume снимает паузу; вызывается из PauseState.
func (s *LevelState) Resume() {
	if s.level.Paused() {
		s.level.Apply(input.TogglePause{})
	}
	s.pauseButton.SetPaused(false)
	s.sm.SetState(s)
}

// Restart replaces the level with a fresh one from the factory.
func (s *LevelState) Restart() error {
	lv, err := s.factory()
	if err != nil {
		return fmt.Errorf("restart level: %w", err)
	}
	s.level = lv
	s.ctrl = input.NewController("")
	s.renderer = render.NewGridRenderer(lv.Tiles, lv.Settings.TileSize, s.face)
	s.infoPanel.Hide()
	s.pauseButton.SetPaused(false)
	s.snap = lv.Snapshot()
	s.logger.Info("level restarted", zap.String("level", lv.ID))
	return nil
}

func (s *LevelState) flash(msg string) {
	s.message = msg
	s.messageTTL = messageTTL
}

func (s *LevelState) readInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.ctrl.Do(input.ActionPause)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyE):
		s.ctrl.Do(input.ActionEndTurn)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		s.ctrl.Do(input.ActionNextWave)
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		s.ctrl.Do(input.ActionPlaceMode)
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		s.ctrl.Do(input.ActionUpgrade)
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		s.renderer.Debug = !s.renderer.Debug
	}
	for i, k := range handKeys {
		if inpututil.IsKeyJustPressed(k) {
			s.ctrl.SelectCard(i, s.level)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.ctrl.Do(input.ActionCancel)
		s.infoPanel.Hide()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.handleClick(s.cursorX, s.cursorY)
	}
}

// handleClick: сначала элементы HUD, потом карта.
func (s *LevelState) handleClick(x, y int) {
	switch {
	case s.pauseButton.IsClicked(x, y):
		s.ctrl.Do(input.ActionPause)
		return
	case s.endTurnButton.Clicked(x, y):
		s.ctrl.Do(input.ActionEndTurn)
		return
	case s.waveButton.Clicked(x, y):
		s.ctrl.Do(input.ActionNextWave)
		return
	case s.infoPanel.UpgradeClicked(x, y):
		s.ctrl.Do(input.ActionUpgrade)
		return
	case s.infoPanel.Contains(x, y):
		return
	}
	if i := s.hand.HitTest(x, y, len(s.snap.Hand)); i >= 0 {
		s.ctrl.SelectCard(i, s.level)
		return
	}
	if y >= config.ScreenHeight-config.HUDHeight {
		return
	}
	cell, ok := s.renderer.ScreenToCell(x, y)
	if !ok {
		return
	}
	s.ctrl.ClickCell(cell, s.level)
	if s.ctrl.Focus != nil {
		s.infoPanel.SetTarget(*s.ctrl.Focus)
	} else {
		s.infoPanel.Hide()
	}
}

func (s *LevelState) highlight() render.Highlight {
	cell, ok := s.renderer.ScreenToCell(s.cursorX, s.cursorY)
	if !ok || s.cursorY >= config.ScreenHeight-config.HUDHeight {
		if s.ctrl.Focus != nil {
			return render.Highlight{Show: true, Cell: *s.ctrl.Focus, Valid: true}
		}
		return render.Highlight{}
	}
	hl := render.Highlight{Show: true, Cell: cell, Valid: true}
	switch {
	case s.ctrl.Selected >= 0 && s.ctrl.Selected < len(s.snap.Hand):
		card := s.snap.Hand[s.ctrl.Selected]
		hl.Radius = card.Effect.Radius
		if card.Effect.Kind == defs.EffectPlaceTower {
			hl.Valid = s.level.IsValidTowerPosition(cell)
			if def, ok := s.level.Library.Tower(card.Effect.Tower); ok {
				hl.Radius = def.Range
			}
		}
	case s.ctrl.Placing:
		hl.Valid = s.level.IsValidTowerPosition(cell)
		if def, ok := s.level.Library.Tower(s.ctrl.TowerID); ok {
			hl.Radius = def.Range
		}
	case s.ctrl.Focus != nil:
		hl.Cell = *s.ctrl.Focus
	default:
		hl.Show = s.level.HasTower(cell)
	}
	return hl
}

func (s *LevelState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.renderer.Draw(screen, &s.snap, s.highlight())
	s.drawHUD(screen)
}

func (s *LevelState) drawHUD(screen *ebiten.Image) {
	snap := &s.snap
	hudTop := config.ScreenHeight - config.HUDHeight

	s.wave.Draw(screen, s.face, snap.Wave, snap.NextWaveIn)
	s.pauseButton.Draw(screen)

	if s.ctrl.Focus != nil {
		var tower *level.TowerView
		for i := range snap.Towers {
			if snap.Towers[i].Cell == *s.ctrl.Focus {
				tower = &snap.Towers[i]
			}
		}
		cost, ok := s.level.UpgradeCost(*s.ctrl.Focus)
		s.infoPanel.Draw(screen, s.face, tower, cost, ok, snap.Gold, s.cursorX, s.cursorY)
	}

	ui.FillRect(screen, image.Rect(0, hudTop, config.ScreenWidth, config.ScreenHeight), config.PanelColor)
	s.health.Draw(screen, s.face, snap.Health, snap.MaxHealth)
	s.energy.Draw(screen, s.face, snap.Energy, snap.MaxEnergy)
	s.hand.Draw(screen, s.face, snap.Hand, s.ctrl.Selected, snap.Energy, s.cursorX, s.cursorY)

	right := config.ScreenWidth - 150
	text.Draw(screen, fmt.Sprintf("Gold %d  Score %d", snap.Gold, snap.Score), s.face, right, hudTop+20, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Turn %d", snap.Turn), s.face, right, hudTop+38, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Deck %d  Discard %d", snap.DeckSize, snap.DiscardSize), s.face, right, hudTop+56, config.TextLightColor)
	s.endTurnButton.Draw(screen, s.face, s.cursorX, s.cursorY)
	s.waveButton.Draw(screen, s.face, s.cursorX, s.cursorY)

	switch {
	case s.ctrl.Placing:
		text.Draw(screen, "Build mode: click a free slot (T to cancel)", s.face, 12, hudTop-10, config.SelectedColor)
	case s.ctrl.Targeting():
		text.Draw(screen, "Pick a cell for the card (right click to cancel)", s.face, 12, hudTop-10, config.SelectedColor)
	}
	if s.messageTTL > 0 {
		text.Draw(screen, s.message, s.face, 12, hudTop-26, color.RGBA{255, 120, 120, 255})
	}
}
