// internal/economy/hand.go
package economy

import "go-card-defense/pkg/gridmap"

// Hand — карты на руке, не больше MaxSize.
type Hand struct {
	MaxSize int
	cards   []Card
}

func NewHand(maxSize int) *Hand {
	return &Hand{MaxSize: maxSize}
}

// AddCard returns false when the hand is full.
func (h *Hand) AddCard(c Card) bool {
	if h.IsFull() {
		return false
	}
	h.cards = append(h.cards, c)
	return true
}

func (h *Hand) IsFull() bool { return len(h.cards) >= h.MaxSize }
func (h *Hand) Len() int     { return len(h.cards) }

// Cards returns a copy in insertion order.
func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

// At returns the card at index i.
func (h *Hand) At(i int) (Card, bool) {
	if i < 0 || i >= len(h.cards) {
		return Card{}, false
	}
	return h.cards[i], true
}

// RemoveAt removes and returns the card at index i.
func (h *Hand) RemoveAt(i int) (Card, bool) {
	c, ok := h.At(i)
	if !ok {
		return Card{}, false
	}
	h.cards = append(h.cards[:i], h.cards[i+1:]...)
	return c, true
}

func (h *Hand) insertAt(i int, c Card) {
	h.cards = append(h.cards, Card{})
	copy(h.cards[i+1:], h.cards[i:])
	h.cards[i] = c
}

// PlayCard plays the card at index i. The card leaves the hand only if the
// play succeeds; on failure the hand is unchanged.
func (h *Hand) PlayCard(i int, ctx Context, target *gridmap.Cell) (Card, error) {
	c, ok := h.RemoveAt(i)
	if !ok {
		return Card{}, ErrNoSuchCard
	}
	if err := c.Play(ctx, target); err != nil {
		h.insertAt(i, c)
		return Card{}, err
	}
	return c, nil
}

// Clear empties the hand and returns what it held.
func (h *Hand) Clear() []Card {
	out := h.cards
	h.cards = nil
	return out
}
