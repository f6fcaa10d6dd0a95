package deck

import (
	"math/rand"
)

// Deck represents a shuffled, consumable deck of 52 playing cards.
// A deck is created fresh for every hand and discarded after settlement.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a new standard 52-card deck shuffled with the given RNG.
// The RNG is required so callers control determinism.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}

	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	d.Shuffle()
	return d
}

// NewOrderedDeck creates an unshuffled deck for deterministic tests.
// Cards deal in suit-major order starting with 2♠.
func NewOrderedDeck() *Deck {
	d := &Deck{cards: make([]Card, 0, 52)}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	return d
}

// NewStackedDeck creates a deck that deals the given cards in order.
// Intended for tests that need exact board and hole card control.
func NewStackedDeck(cards ...Card) *Deck {
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked}
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle() {
	if d.rng == nil {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DealN deals up to n cards
func (d *Deck) DealN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		card, ok := d.Deal()
		if !ok {
			break
		}
		cards = append(cards, card)
	}
	return cards
}

// Burn discards the top card before a community reveal
func (d *Deck) Burn() {
	if len(d.cards) > 0 {
		d.cards = d.cards[1:]
	}
}

// Remaining returns the number of cards left
func (d *Deck) Remaining() int {
	return len(d.cards)
}
