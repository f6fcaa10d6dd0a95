package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feltworks/holdem/internal/deck"
	"github.com/feltworks/holdem/internal/evaluator"
	"github.com/feltworks/holdem/internal/game"
)

func TestRendererHandStart(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.OnEvent(game.HandStartEvent{
		HandNumber: 7,
		Players:    []string{"alice", "bob"},
		Dealer:     "alice",
		SmallBlind: 5,
		BigBlind:   10,
	})

	out := buf.String()
	assert.Contains(t, out, "Hand #7")
	assert.Contains(t, out, "$5/$10")
	assert.Contains(t, out, "alice")
}

func TestRendererStreetAndActions(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.OnEvent(game.StreetChangeEvent{
		Street: game.Flop,
		Board:  deck.MustParseCards("A♠ K♥ 2♦"),
		Pot:    30,
	})
	r.OnEvent(game.PlayerActionEvent{
		Player:   "bob",
		Action:   game.Raise,
		Amount:   20,
		Street:   game.Flop,
		PotAfter: 50,
	})

	out := buf.String()
	assert.Contains(t, out, "FLOP")
	assert.Contains(t, out, "A♠")
	assert.Contains(t, out, "bob: raises $20")
}

func TestRendererSettlement(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	winner := game.NewPlayer("carol", 100, nil)
	r.OnEvent(game.HandSettledEvent{
		HandNumber: 1,
		Pot:        60,
		Payouts: []game.Payout{
			{Player: winner, Amount: 60, Showdown: true, Result: evaluator.Result{Category: evaluator.Flush}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "carol wins $60")
	assert.Contains(t, out, "Flush")
}

func TestRenderCardsStylesEverySuit(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})

	out := r.RenderCards(deck.MustParseCards("A♠ A♥ A♦ A♣"))
	for _, glyph := range []string{"A♠", "A♥", "A♦", "A♣"} {
		assert.Contains(t, out, glyph)
	}
}
