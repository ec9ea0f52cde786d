// internal/level/snapshot.go
package level

import (
	"go-card-defense/internal/component"
	"go-card-defense/internal/economy"
	"go-card-defense/internal/entity"
	"go-card-defense/internal/system"
	"go-card-defense/internal/types"
	"go-card-defense/pkg/gridmap"
)

// EnemyView — враг глазами рендерера.
type EnemyView struct {
	ID       types.EntityID
	DefID    string
	Position component.Position
	Radius   float64
	Health   int
	Max      int
	Progress float64
	Slowed   bool
}

type TowerView struct {
	ID       types.EntityID
	DefID    string
	Cell     gridmap.Cell
	Position component.Position
	Radius   float64
	Range    float64
	Level    int
}

type ProjectileView struct {
	ID       types.EntityID
	Position component.Position
}

// Snapshot is a read-only copy of everything a renderer draws. It shares no
// mutable state with the level.
type Snapshot struct {
	GameTime    float64
	Paused      bool
	Outcome     component.Outcome
	Turn        int
	Wave        system.WaveInfo
	NextWaveIn  float64
	Health      int
	MaxHealth   int
	Energy      int
	MaxEnergy   int
	Gold        int
	Score       int
	Hand        []economy.Card
	DeckSize    int
	DiscardSize int
	Enemies     []EnemyView
	Towers      []TowerView
	Projectiles []ProjectileView
	Effects     []system.VisualEffect
}

// Snapshot copies the current state for rendering.
func (l *Level) Snapshot() Snapshot {
	p := l.Player
	s := Snapshot{
		GameTime:    l.Registry.GameTime,
		Paused:      l.paused,
		Outcome:     l.Outcome(),
		Turn:        l.turn,
		Wave:        l.waves.Info(),
		NextWaveIn:  l.state.Countdown(),
		Health:      p.Health.Current,
		MaxHealth:   p.Health.Max,
		Energy:      p.Energy,
		MaxEnergy:   p.MaxEnergy,
		Gold:        p.Gold,
		Score:       p.Score,
		Hand:        p.Hand.Cards(),
		DeckSize:    p.Deck.Len(),
		DiscardSize: p.Deck.DiscardLen(),
		Effects:     l.effects.Effects(),
	}
	for _, e := range l.Registry.Live(entity.GroupEnemies) {
		s.Enemies = append(s.Enemies, EnemyView{
			ID:       e.ID,
			DefID:    e.Enemy.DefID,
			Position: e.Position,
			Radius:   e.Shape.Radius,
			Health:   e.Health.Current,
			Max:      e.Health.Max,
			Progress: e.Enemy.Progress,
			Slowed:   len(e.Enemy.Slows) > 0,
		})
	}
	for _, e := range l.Registry.Live(entity.GroupTowers) {
		s.Towers = append(s.Towers, TowerView{
			ID:       e.ID,
			DefID:    e.Tower.DefID,
			Cell:     e.Tower.Slot,
			Position: e.Position,
			Radius:   e.Shape.Radius,
			Range:    e.Tower.Range,
			Level:    e.Tower.UpgradeLevel,
		})
	}
	for _, e := range l.Registry.Live(entity.GroupProjectiles) {
		s.Projectiles = append(s.Projectiles, ProjectileView{ID: e.ID, Position: e.Position})
	}
	return s
}
