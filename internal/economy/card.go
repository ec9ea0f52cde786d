// internal/economy/card.go
package economy

import (
	"errors"
	"fmt"
	"strings"

	"go-card-defense/internal/component"
	"go-card-defense/internal/defs"
	"go-card-defense/pkg/gridmap"
)

var (
	ErrInsufficientEnergy = errors.New("economy: insufficient energy")
	ErrInvalidTarget      = errors.New("economy: invalid target")
	ErrEffectFailed       = errors.New("economy: card effect failed")
	ErrNoSuchCard         = errors.New("economy: no card at hand index")
)

// Board is the part of the level card effects act on.
type Board interface {
	IsValidTowerPosition(cell gridmap.Cell) bool
	PlaceTower(towerID string, cell gridmap.Cell) error
	// DamageArea and SlowArea return how many enemies were affected.
	DamageArea(cell gridmap.Cell, radius float64, damage int) int
	SlowArea(cell gridmap.Cell, radius float64, slow component.SlowSpec) int
}

// Context — то, что нужно карте для розыгрыша.
type Context struct {
	Player *Player
	Board  Board
}

// Card — неизменяемое описание карты в колоде.
type Card struct {
	ID          string
	Name        string
	Cost        int
	Type        defs.CardType
	Description string
	Effect      defs.EffectDef
}

// NewCard builds a card from its definition. Definitions are validated by the loader.
func NewCard(def defs.CardDefinition) Card {
	ct, _ := defs.ParseCardType(def.Type)
	return Card{
		ID:          def.ID,
		Name:        def.Name,
		Cost:        def.Cost,
		Type:        ct,
		Description: def.Description,
		Effect:      def.Effect,
	}
}

// Tooltip returns the text shown when hovering the card.
func (c Card) Tooltip() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d)\n%s", c.Name, c.Cost, c.Type)
	if c.Description != "" {
		b.WriteString("\n")
		b.WriteString(c.Description)
	}
	return b.String()
}

// NeedsTarget reports whether the card must be played onto a cell.
func (c Card) NeedsTarget() bool {
	switch c.Effect.Kind {
	case defs.EffectPlaceTower, defs.EffectDamageArea, defs.EffectSlowArea:
		return true
	}
	return false
}

func (c Card) check(ctx Context, target *gridmap.Cell) error {
	if ctx.Player == nil || c.Cost > ctx.Player.Energy {
		return ErrInsufficientEnergy
	}
	if c.NeedsTarget() && target == nil {
		return ErrInvalidTarget
	}
	if c.Type == defs.CardBuilding {
		if ctx.Board == nil || !ctx.Board.IsValidTowerPosition(*target) {
			return ErrInvalidTarget
		}
	}
	return nil
}

// CanPlay — хватает энергии и цель подходит.
func (c Card) CanPlay(ctx Context, target *gridmap.Cell) bool {
	return c.check(ctx, target) == nil
}

// Play deducts the cost and applies the effect. If the effect fails the
// player's energy is restored to exactly what it was.
func (c Card) Play(ctx Context, target *gridmap.Cell) error {
	if err := c.check(ctx, target); err != nil {
		return err
	}
	p := ctx.Player
	prev := p.Energy
	if !p.SpendEnergy(c.Cost) {
		return ErrInsufficientEnergy
	}
	if err := c.apply(ctx, target); err != nil {
		p.Energy = prev
		return fmt.Errorf("%w: %s: %v", ErrEffectFailed, c.ID, err)
	}
	return nil
}

func (c Card) apply(ctx Context, target *gridmap.Cell) error {
	e := c.Effect
	switch e.Kind {
	case defs.EffectPlaceTower:
		return ctx.Board.PlaceTower(e.Tower, *target)
	case defs.EffectDamageArea:
		if ctx.Board == nil {
			return errors.New("no board")
		}
		ctx.Board.DamageArea(*target, e.Radius, e.Damage)
	case defs.EffectSlowArea:
		if ctx.Board == nil {
			return errors.New("no board")
		}
		ctx.Board.SlowArea(*target, e.Radius, component.SlowSpec{Duration: e.Duration, Intensity: e.Intensity})
	case defs.EffectGainEnergy:
		ctx.Player.GainEnergy(e.Amount)
	case defs.EffectDrawCards:
		ctx.Player.DrawCards(e.Count)
	case defs.EffectHeal:
		ctx.Player.Heal(e.Amount)
	default:
		return fmt.Errorf("unknown effect %q", e.Kind)
	}
	return nil
}
