package deck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(1)))
	require.Equal(t, 52, d.Remaining())

	seen := make(map[Card]bool)
	for {
		card, ok := d.Deal()
		if !ok {
			break
		}
		assert.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
	}
	assert.Len(t, seen, 52)
}

func TestDeckShuffleIsDeterministicPerSeed(t *testing.T) {
	a := NewDeck(rand.New(rand.NewSource(42)))
	b := NewDeck(rand.New(rand.NewSource(42)))

	for a.Remaining() > 0 {
		ca, _ := a.Deal()
		cb, _ := b.Deal()
		require.Equal(t, ca, cb)
	}
}

func TestDealN(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(7)))

	cards := d.DealN(2)
	assert.Len(t, cards, 2)
	assert.Equal(t, 50, d.Remaining())

	// Asking for more than remaining returns what is left
	d.DealN(49)
	cards = d.DealN(5)
	assert.Len(t, cards, 1)
	assert.Equal(t, 0, d.Remaining())

	_, ok := d.Deal()
	assert.False(t, ok)
}

func TestBurn(t *testing.T) {
	d := NewStackedDeck(MustParseCards("A♠ K♠ Q♠")...)

	d.Burn()
	card, ok := d.Deal()
	require.True(t, ok)
	assert.Equal(t, MustParseCard("K♠"), card)
	assert.Equal(t, 1, d.Remaining())
}

func TestStackedDeckDealsInOrder(t *testing.T) {
	want := MustParseCards("7♦ 2♣ A♥")
	d := NewStackedDeck(want...)

	for _, expected := range want {
		card, ok := d.Deal()
		require.True(t, ok)
		assert.Equal(t, expected, card)
	}
}

func TestNewDeckRequiresRNG(t *testing.T) {
	assert.Panics(t, func() { NewDeck(nil) })
}
