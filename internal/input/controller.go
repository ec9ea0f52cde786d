// internal/input/controller.go
package input

import "go-card-defense/pkg/gridmap"

// Action — команда, уже снятая с клавиатуры или кнопки HUD.
type Action int

const (
	ActionPause Action = iota
	ActionEndTurn
	ActionNextWave
	ActionPlaceMode
	ActionUpgrade
	ActionCancel
)

// View is what the controller needs to know about the level to decode clicks.
type View interface {
	HandSize() int
	NeedsTarget(handIndex int) bool
	HasTower(cell gridmap.Cell) bool
}

// Controller переводит клики и клавиши в намерения. Хранит только выбор
// игрока между кадрами; сам уровень не трогает.
type Controller struct {
	Queue

	// Selected — индекс карты, ждущей цели, или -1.
	Selected int
	// Placing — режим прямой постройки башни за золото.
	Placing bool
	TowerID string
	// Focus — клетка выбранной башни.
	Focus *gridmap.Cell
}

func NewController(towerID string) *Controller {
	return &Controller{Selected: -1, TowerID: towerID}
}

// Targeting reports whether the next map click is spent on a card or a build.
func (c *Controller) Targeting() bool {
	return c.Selected >= 0 || c.Placing
}

// SelectCard plays an untargeted card at once; a targeted card waits for a
// map click. Selecting the waiting card again cancels it.
func (c *Controller) SelectCard(i int, v View) {
	if i < 0 || i >= v.HandSize() {
		return
	}
	if !v.NeedsTarget(i) {
		c.Selected = -1
		c.Push(PlayCard{HandIndex: i})
		return
	}
	if c.Selected == i {
		c.Selected = -1
		return
	}
	c.Selected = i
	c.Placing = false
}

// ClickCell handles a left click on a map cell.
func (c *Controller) ClickCell(cell gridmap.Cell, v View) {
	switch {
	case c.Selected >= 0:
		target := cell
		c.Push(PlayCard{HandIndex: c.Selected, Target: &target})
		c.Selected = -1
	case c.Placing:
		c.Push(PlaceTower{TowerID: c.TowerID, Target: cell})
		c.Placing = false
	case v.HasTower(cell):
		focus := cell
		c.Focus = &focus
	default:
		c.Focus = nil
	}
}

func (c *Controller) Do(a Action) {
	switch a {
	case ActionPause:
		c.Push(TogglePause{})
	case ActionEndTurn:
		c.Push(EndTurn{})
	case ActionNextWave:
		c.Push(StartNextWave{})
	case ActionPlaceMode:
		c.Placing = !c.Placing
		c.Selected = -1
	case ActionUpgrade:
		if c.Focus != nil {
			c.Push(UpgradeTower{Target: *c.Focus})
		}
	case ActionCancel:
		c.Selected = -1
		c.Placing = false
		c.Focus = nil
	}
}

// HandChanged drops a card selection that no longer points into the hand.
func (c *Controller) HandChanged(v View) {
	if c.Selected >= v.HandSize() || (c.Selected >= 0 && !v.NeedsTarget(c.Selected)) {
		c.Selected = -1
	}
}
