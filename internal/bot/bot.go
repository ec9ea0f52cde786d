// internal/bot/bot.go
package bot

import (
	"go.uber.org/zap"

	"go-card-defense/internal/component"
	"go-card-defense/internal/defs"
	"go-card-defense/internal/input"
	"go-card-defense/internal/level"
	"go-card-defense/internal/system"
	"go-card-defense/internal/utils"
	"go-card-defense/pkg/gridmap"
)

// Bot — простой игрок для безголовых прогонов. Все решения зависят только
// от снимка уровня и собственного генератора, поэтому прогон воспроизводим.
type Bot struct {
	rng *utils.PRNGService
	// TurnEvery — как часто (в секундах игры) бот сам завершает ход,
	// если ходы не ограничены по времени.
	TurnEvery float64
	lastEnd   float64
}

func New(seed int64) *Bot {
	return &Bot{rng: utils.NewPRNGService(seed), TurnEvery: 5}
}

// Decide returns the intents to apply before the next tick. At most one card
// is played per call so hand indices stay valid.
func (b *Bot) Decide(lv *level.Level) []input.Intent {
	snap := lv.Snapshot()
	if snap.Outcome != component.Running || snap.Paused {
		return nil
	}
	var out []input.Intent

	manual := !lv.Settings.Wave.AutoStart
	if snap.Wave.State == system.WaveIdle && snap.Wave.Number < snap.Wave.Total && (manual || snap.NextWaveIn <= 0) {
		out = append(out, input.StartNextWave{})
	}

	if play, ok := b.pickCard(lv, &snap); ok {
		out = append(out, play)
	} else if lv.Settings.Player.TurnDuration <= 0 && snap.GameTime-b.lastEnd >= b.TurnEvery {
		b.lastEnd = snap.GameTime
		out = append(out, input.EndTurn{})
	}

	for _, t := range snap.Towers {
		if cost, ok := lv.UpgradeCost(t.Cell); ok && cost <= snap.Gold {
			out = append(out, input.UpgradeTower{Target: t.Cell})
			break
		}
	}
	return out
}

func (b *Bot) pickCard(lv *level.Level, snap *level.Snapshot) (input.Intent, bool) {
	for i, card := range snap.Hand {
		if card.Cost > snap.Energy {
			continue
		}
		switch card.Effect.Kind {
		case defs.EffectPlaceTower:
			if cell, ok := b.freeSlot(lv); ok {
				return input.PlayCard{HandIndex: i, Target: &cell}, true
			}
		case defs.EffectDamageArea, defs.EffectSlowArea:
			if cell, ok := LeadEnemyCell(snap, lv.Settings.TileSize); ok {
				return input.PlayCard{HandIndex: i, Target: &cell}, true
			}
		case defs.EffectHeal:
			if snap.Health < snap.MaxHealth {
				return input.PlayCard{HandIndex: i}, true
			}
		default:
			return input.PlayCard{HandIndex: i}, true
		}
	}
	return nil, false
}

// freeSlot picks a random free tower slot.
func (b *Bot) freeSlot(lv *level.Level) (gridmap.Cell, bool) {
	var free []gridmap.Cell
	for _, c := range lv.Tiles.Slots {
		if lv.IsValidTowerPosition(c) {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return gridmap.Cell{}, false
	}
	return free[b.rng.Intn(len(free))], true
}

// LeadEnemyCell returns the cell of the enemy closest to a goal.
func LeadEnemyCell(snap *level.Snapshot, tileSize float64) (gridmap.Cell, bool) {
	var lead *level.EnemyView
	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		if lead == nil || e.Progress > lead.Progress || (e.Progress == lead.Progress && e.ID < lead.ID) {
			lead = e
		}
	}
	if lead == nil {
		return gridmap.Cell{}, false
	}
	return gridmap.CellAt(lead.Position.X, lead.Position.Y, tileSize), true
}

// Result — итог безголового прогона.
type Result struct {
	Outcome  component.Outcome
	Ticks    int
	GameTime float64
	Wave     int
	Health   int
	Score    int
	Gold     int
	Towers   int
	Rejected int
}

// Run drives lv with the bot at a fixed dt until the level ends or maxTicks pass.
func Run(lv *level.Level, b *Bot, dt float64, maxTicks int, logger *zap.Logger) Result {
	var res Result
	for res.Ticks < maxTicks && !lv.Ended() {
		for _, in := range b.Decide(lv) {
			if r := lv.Apply(in); !r.OK {
				res.Rejected++
				logger.Debug("bot intent rejected", zap.Stringer("intent", in), zap.String("reason", r.Reason))
			}
		}
		lv.Tick(dt)
		res.Ticks++
	}
	snap := lv.Snapshot()
	res.Outcome = snap.Outcome
	res.GameTime = snap.GameTime
	res.Wave = snap.Wave.Number
	res.Health = snap.Health
	res.Score = snap.Score
	res.Gold = snap.Gold
	res.Towers = len(snap.Towers)
	return res
}
