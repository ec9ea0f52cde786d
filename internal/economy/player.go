// internal/economy/player.go
package economy

import (
	"math"

	"go-card-defense/internal/component"
	"go-card-defense/internal/config"
	"go-card-defense/internal/utils"
	"go-card-defense/pkg/gridmap"
)

// Player — ресурсы игрока: здоровье, энергия, золото, колода и рука.
type Player struct {
	Health    *component.Health // общий с сущностью игрока в реестре
	Energy    int
	MaxEnergy int
	Gold      int
	Score     int
	Hand      *Hand
	Deck      *Deck

	cfg config.PlayerSettings
}

// NewPlayer applies the difficulty's starting-resources multiplier to energy and gold.
// health may be nil, in which case a new one is created.
func NewPlayer(s config.Settings, deck *Deck, health *component.Health) *Player {
	mult := s.DifficultyPreset().StartingResourcesMultiplier
	if health == nil {
		health = &component.Health{Current: s.Player.StartingHealth, Max: s.Player.StartingHealth}
	}
	p := &Player{
		Health:    health,
		MaxEnergy: s.Player.MaxEnergy,
		Gold:      int(math.Round(float64(s.Player.StartingGold) * mult)),
		Hand:      NewHand(s.Player.MaxHandSize),
		Deck:      deck,
		cfg:       s.Player,
	}
	p.Energy = min(int(math.Round(float64(s.Player.StartingEnergy)*mult)), p.MaxEnergy)
	return p
}

// DrawOpeningHand shuffles the deck and draws opening_hand cards.
func (p *Player) DrawOpeningHand() int {
	p.Deck.Shuffle()
	return p.DrawCards(p.cfg.OpeningHand)
}

// StartTurn grants energy_per_turn energy and draws cards_per_turn cards.
func (p *Player) StartTurn() int {
	p.GainEnergy(p.cfg.EnergyPerTurn)
	return p.DrawCards(p.cfg.CardsPerTurn)
}

// EndTurn discards the hand if the settings ask for it.
func (p *Player) EndTurn() {
	if p.cfg.DiscardHandOnTurnEnd {
		p.DiscardHand()
	}
}

// DrawCards draws up to n cards and returns how many reached the hand.
// A card the full hand refuses goes to the discard pile.
func (p *Player) DrawCards(n int) int {
	drawn := 0
	for i := 0; i < n; i++ {
		c, ok := p.Deck.Draw()
		if !ok {
			break
		}
		if !p.Hand.AddCard(c) {
			p.Deck.Discard(c)
			continue
		}
		drawn++
	}
	return drawn
}

// DiscardHand moves every card in hand to the discard pile.
func (p *Player) DiscardHand() {
	for _, c := range p.Hand.Clear() {
		p.Deck.Discard(c)
	}
}

// PlayCard plays the hand card at index i against the board. A played card
// goes to the discard pile.
func (p *Player) PlayCard(i int, board Board, target *gridmap.Cell) (Card, error) {
	c, err := p.Hand.PlayCard(i, Context{Player: p, Board: board}, target)
	if err != nil {
		return Card{}, err
	}
	p.Deck.Discard(c)
	return c, nil
}

// SpendEnergy returns false and changes nothing if energy is short.
func (p *Player) SpendEnergy(n int) bool {
	if n < 0 || n > p.Energy {
		return false
	}
	p.Energy -= n
	return true
}

// GainEnergy adds energy up to the maximum.
func (p *Player) GainEnergy(n int) {
	p.Energy = utils.ClampInt(p.Energy+n, 0, p.MaxEnergy)
}

// SpendGold returns false and changes nothing if gold is short.
func (p *Player) SpendGold(n int) bool {
	if n < 0 || n > p.Gold {
		return false
	}
	p.Gold -= n
	return true
}

// AddReward credits a kill reward to both gold and score.
func (p *Player) AddReward(n int) {
	p.Gold += n
	p.Score += n
}

// TakeDamage reduces health, never below zero.
func (p *Player) TakeDamage(n int) {
	p.Health.Current = max(0, p.Health.Current-n)
}

// Heal restores health up to the maximum.
func (p *Player) Heal(n int) {
	p.Health.Current = min(p.Health.Max, p.Health.Current+n)
}

func (p *Player) IsAlive() bool { return p.Health.Alive() }

// CardCount is the number of cards across deck, discard and hand.
func (p *Player) CardCount() int {
	return p.Deck.Len() + p.Deck.DiscardLen() + p.Hand.Len()
}
