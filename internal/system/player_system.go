// internal/system/player_system.go
package system

import (
	"go-card-defense/internal/entity"
	"go-card-defense/internal/event"
)

// PlayerState is the part of the player the simulation changes.
type PlayerState interface {
	AddReward(n int)
	TakeDamage(n int)
	IsAlive() bool
}

// PlayerSystem отвечает за награду за убийства и урон от прорвавшихся врагов.
type PlayerSystem struct {
	player       PlayerState
	entity       *entity.Entity // сущность игрока в реестре, может быть nil
	escapeDamage int
}

func NewPlayerSystem(player PlayerState, playerEntity *entity.Entity, escapeDamage int, d *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{player: player, entity: playerEntity, escapeDamage: escapeDamage}
	d.Subscribe(event.EnemyKilled, s)
	d.Subscribe(event.EnemyEscaped, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyData); ok {
			s.player.AddReward(data.Reward)
		}
	case event.EnemyEscaped:
		s.player.TakeDamage(s.escapeDamage)
		if s.entity != nil && s.entity.Player != nil {
			s.entity.Player.Escapes++
		}
	}
}
