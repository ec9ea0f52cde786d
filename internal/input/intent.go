// internal/input/intent.go
package input

import (
	"fmt"

	"go-card-defense/pkg/gridmap"
)

// Intent — решение игрока, уже разобранное из сырого ввода.
// Применяется к уровню между тиками.
type Intent interface {
	fmt.Stringer
	intent()
}

// TogglePause ставит или снимает паузу.
type TogglePause struct{}

// PlayCard plays the hand card at HandIndex. Target is nil for untargeted cards.
type PlayCard struct {
	HandIndex int
	Target    *gridmap.Cell
}

// PlaceTower builds a tower for gold, without a card.
type PlaceTower struct {
	TowerID string
	Target  gridmap.Cell
}

// UpgradeTower upgrades the tower standing on Target.
type UpgradeTower struct {
	Target gridmap.Cell
}

// EndTurn ends the current turn at the next tick.
type EndTurn struct{}

// StartNextWave starts the next wave without waiting for the countdown.
type StartNextWave struct{}

func (TogglePause) intent()   {}
func (PlayCard) intent()      {}
func (PlaceTower) intent()    {}
func (UpgradeTower) intent()  {}
func (EndTurn) intent()       {}
func (StartNextWave) intent() {}

func (TogglePause) String() string { return "toggle_pause" }

func (i PlayCard) String() string {
	if i.Target == nil {
		return fmt.Sprintf("play_card(%d)", i.HandIndex)
	}
	return fmt.Sprintf("play_card(%d @ %d,%d)", i.HandIndex, i.Target.X, i.Target.Y)
}

func (i PlaceTower) String() string {
	return fmt.Sprintf("place_tower(%s @ %d,%d)", i.TowerID, i.Target.X, i.Target.Y)
}

func (i UpgradeTower) String() string {
	return fmt.Sprintf("upgrade_tower(%d,%d)", i.Target.X, i.Target.Y)
}

func (EndTurn) String() string       { return "end_turn" }
func (StartNextWave) String() string { return "start_next_wave" }

// Queue collects intents from the input layer until the driver applies them.
type Queue struct {
	pending []Intent
}

func (q *Queue) Push(i Intent) {
	q.pending = append(q.pending, i)
}

// Drain returns queued intents in arrival order and empties the queue.
func (q *Queue) Drain() []Intent {
	out := q.pending
	q.pending = nil
	return out
}

func (q *Queue) Len() int { return len(q.pending) }
