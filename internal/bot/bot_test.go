package bot

import (
	"io"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/feltworks/holdem/internal/deck"
	"github.com/feltworks/holdem/internal/game"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func mustCards(t *testing.T, strs ...string) []deck.Card {
	t.Helper()
	return deck.MustParseCards(strings.Join(strs, " "))
}

func view(hole []string, board []string, callAmount int) game.GameView {
	return game.GameView{
		Pot:            100,
		CommunityCards: board,
		CurrentBet:     callAmount,
		CallAmount:     callAmount,
		MinRaise:       10,
		BigBlind:       10,
		SmallBlind:     5,
		HoleCards:      hole,
		Chips:          500,
	}
}

func TestFoldBot(t *testing.T) {
	b := NewFoldBot(testLogger())

	action, _ := b.GetAction(view(nil, nil, 0))
	assert.Equal(t, game.Check, action)

	action, _ = b.GetAction(view(nil, nil, 20))
	assert.Equal(t, game.Fold, action)
}

func TestCallBot(t *testing.T) {
	b := NewCallBot(testLogger())

	action, _ := b.GetAction(view(nil, nil, 0))
	assert.Equal(t, game.Check, action)

	action, _ = b.GetAction(view(nil, nil, 20))
	assert.Equal(t, game.Call, action)
}

func TestRandBotOnlyPicksLegalActions(t *testing.T) {
	b := NewRandBot(rand.New(rand.NewSource(3)), testLogger())

	for i := 0; i < 200; i++ {
		callAmount := 0
		if i%2 == 1 {
			callAmount = 30
		}
		v := view([]string{"A♠", "K♠"}, nil, callAmount)

		action, amount := b.GetAction(v)
		switch action {
		case game.Check:
			assert.Zero(t, callAmount)
		case game.Call:
			assert.NotZero(t, callAmount)
		case game.Raise:
			assert.GreaterOrEqual(t, amount, v.MinRaise)
			assert.LessOrEqual(t, amount, v.Pot)
		case game.Fold:
		default:
			t.Fatalf("unexpected action %s", action)
		}
	}
}

func TestTagBotFoldsWeakHandsToBets(t *testing.T) {
	b := NewTagBot(rand.New(rand.NewSource(1)), testLogger())

	// Offsuit junk facing a large bet
	action, _ := b.GetAction(view([]string{"7♦", "2♣"}, nil, 200))
	assert.Equal(t, game.Fold, action)
}

func TestTagBotValueBetsStrongHands(t *testing.T) {
	b := NewTagBot(rand.New(rand.NewSource(1)), testLogger())

	// Flopped royal flush, no bet to call: always a value bet
	v := view([]string{"A♠", "K♠"}, []string{"Q♠", "J♠", "T♠"}, 0)
	action, amount := b.GetAction(v)
	assert.Equal(t, game.Raise, action)
	assert.GreaterOrEqual(t, amount, v.MinRaise)
}

func TestTagBotCallsWithMediumHandAndGoodOdds(t *testing.T) {
	b := NewTagBot(rand.New(rand.NewSource(1)), testLogger())

	// Top pair on the flop facing a small bet
	action, _ := b.GetAction(view([]string{"A♥", "9♦"}, []string{"A♦", "7♣", "2♠"}, 20))
	assert.Equal(t, game.Call, action)
}

func TestManiacBotNeverChecksQuietlyForever(t *testing.T) {
	b := NewManiacBot(rand.New(rand.NewSource(5)), testLogger())

	raised := false
	for i := 0; i < 50; i++ {
		action, _ := b.GetAction(view([]string{"7♦", "2♣"}, nil, 0))
		if action == game.Raise || action == game.AllIn {
			raised = true
		}
		assert.NotEqual(t, game.Fold, action)
	}
	assert.True(t, raised, "a maniac should bet at least once in 50 spots")
}

func TestPreflopStrengthOrdering(t *testing.T) {
	aces := preflopStrength(mustCards(t, "A♠", "A♥"))
	suitedConnector := preflopStrength(mustCards(t, "9♠", "8♠"))
	junk := preflopStrength(mustCards(t, "7♦", "2♣"))

	assert.Greater(t, aces, suitedConnector)
	assert.Greater(t, suitedConnector, junk)
}

func TestHandStrengthUsesEvaluatorWhenHandIsComplete(t *testing.T) {
	royal := handStrength(view([]string{"A♠", "K♠"}, []string{"Q♠", "J♠", "T♠"}, 0))
	junk := handStrength(view([]string{"7♦", "2♣"}, []string{"9♠", "J♥", "4♦"}, 0))

	assert.Greater(t, royal, junk)
	assert.LessOrEqual(t, royal, 1.0)
}

func TestPotOdds(t *testing.T) {
	assert.True(t, math.IsInf(potOdds(view(nil, nil, 0)), 1))
	assert.InDelta(t, 5.0, potOdds(view(nil, nil, 20)), 0.001)
}
