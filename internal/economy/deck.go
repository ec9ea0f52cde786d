// internal/economy/deck.go
package economy

import (
	"go-card-defense/internal/config"
	"go-card-defense/internal/defs"
	"go-card-defense/internal/utils"
)

// Deck — стопка добора и сброс. Карты только перемещаются между
// колодой, рукой и сбросом, их общее число не меняется.
type Deck struct {
	cards   []Card // cards[0] — верх колоды
	discard []Card
	rng     *utils.PRNGService
}

func NewDeck(cards []Card, rng *utils.PRNGService) *Deck {
	d := &Deck{rng: rng}
	d.cards = append(d.cards, cards...)
	return d
}

// NewDeckFromDefs adds Copies of every definition (at least one) in file order.
func NewDeckFromDefs(cardDefs []defs.CardDefinition, rng *utils.PRNGService) *Deck {
	var cards []Card
	for _, def := range cardDefs {
		n := def.Copies
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			cards = append(cards, NewCard(def))
		}
	}
	return NewDeck(cards, rng)
}

// NewStarterDeck builds the default deck of starting_deck_size cards.
func NewStarterDeck(s config.Settings, rng *utils.PRNGService) *Deck {
	return NewDeckFromDefs(defs.StarterCards(s), rng)
}

// Shuffle перемешивает стопку добора.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw takes the top card. An empty deck is refilled from the discard pile first;
// if both are empty nothing is drawn.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 && !d.ReshuffleFromDiscard() {
		return Card{}, false
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

// Discard кладет карту в сброс.
func (d *Deck) Discard(c Card) {
	d.discard = append(d.discard, c)
}

// ReshuffleFromDiscard moves the discard pile under the deck and shuffles.
func (d *Deck) ReshuffleFromDiscard() bool {
	if len(d.discard) == 0 {
		return false
	}
	d.cards = append(d.cards, d.discard...)
	d.discard = nil
	d.Shuffle()
	return true
}

// AddCard puts a card at the bottom of the deck.
func (d *Deck) AddCard(c Card) {
	d.cards = append(d.cards, c)
}

// RemoveCard removes the first card with the given id from the deck.
func (d *Deck) RemoveCard(id string) bool {
	for i, c := range d.cards {
		if c.ID == id {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Deck) Len() int        { return len(d.cards) }
func (d *Deck) DiscardLen() int { return len(d.discard) }

// Cards returns a copy of the draw pile, top first.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}
