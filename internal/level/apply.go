// internal/level/apply.go
package level

import (
	"fmt"

	"go.uber.org/zap"

	"go-card-defense/internal/event"
	"go-card-defense/internal/input"
)

// Result — итог применения намерения. Отклонение не считается ошибкой.
type Result struct {
	OK     bool
	Reason string
}

func accepted() Result { return Result{OK: true} }

func rejected(format string, args ...any) Result {
	return Result{Reason: fmt.Sprintf(format, args...)}
}

// Apply applies one player intent between ticks. Once the level has ended every
// intent is rejected; while paused only TogglePause is accepted.
func (l *Level) Apply(in input.Intent) Result {
	res := l.apply(in)
	if !res.OK {
		l.logger.Debug("intent rejected", zap.Stringer("intent", in), zap.String("reason", res.Reason))
	}
	return res
}

func (l *Level) apply(in input.Intent) Result {
	if l.ended {
		return rejected("level has ended")
	}
	if _, ok := in.(input.TogglePause); ok {
		l.paused = !l.paused
		l.logger.Info("pause toggled", zap.Bool("paused", l.paused))
		return accepted()
	}
	if l.paused {
		return rejected("level is paused")
	}

	switch in := in.(type) {
	case input.PlayCard:
		card, err := l.Player.PlayCard(in.HandIndex, l, in.Target)
		if err != nil {
			return rejected("%v", err)
		}
		l.Dispatcher.Dispatch(event.Event{Type: event.CardPlayed, Data: event.CardData{CardID: card.ID, Cost: card.Cost}})
		return accepted()

	case input.PlaceTower:
		def, ok := l.Library.Tower(in.TowerID)
		if !ok {
			return rejected("unknown tower %q", in.TowerID)
		}
		if !l.IsValidTowerPosition(in.Target) {
			return rejected("cell (%d,%d) is not a free tower slot", in.Target.X, in.Target.Y)
		}
		if !l.Player.SpendGold(def.GoldCost) {
			return rejected("%s costs %d gold, have %d", def.ID, def.GoldCost, l.Player.Gold)
		}
		if _, err := l.towers.Build(def, in.Target); err != nil {
			l.Player.Gold += def.GoldCost
			return rejected("%v", err)
		}
		return accepted()

	case input.UpgradeTower:
		t, ok := l.towers.TowerAt(in.Target)
		if !ok {
			return rejected("no tower at (%d,%d)", in.Target.X, in.Target.Y)
		}
		if err := l.towers.Upgrade(t, l.Player.SpendGold); err != nil {
			return rejected("%v", err)
		}
		return accepted()

	case input.EndTurn:
		if l.endTurnSoon {
			return rejected("turn is already ending")
		}
		l.endTurnSoon = true
		return accepted()

	case input.StartNextWave:
		if !l.state.StartNextWave() {
			return rejected("wave %d cannot start now", l.waves.NextWave())
		}
		return accepted()
	}
	return rejected("unknown intent %v", in)
}
