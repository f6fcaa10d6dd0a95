package game

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(players []*Player, opts ...Option) *Game {
	logger := log.New(io.Discard)
	opts = append([]Option{
		WithRNG(rand.New(rand.NewSource(42))),
		WithLogger(logger),
	}, opts...)
	return NewGame(players, 5, 10, opts...)
}

func totalChips(players []*Player) int {
	total := 0
	for _, p := range players {
		total += p.Chips
	}
	return total
}

func TestHeadsUpDealerPostsSmallBlind(t *testing.T) {
	players := newTable(100, passiveAgent{}, passiveAgent{})
	g := newTestGame(players)

	firstToAct := g.postBlinds()

	// Heads-up: the dealer posts the small blind and acts first preflop
	assert.Equal(t, 5, players[0].CurrentBet)
	assert.Equal(t, 10, players[1].CurrentBet)
	assert.Equal(t, 0, firstToAct)
	assert.Equal(t, 15, g.pot)
}

func TestThreeHandedBlindsAndFirstToAct(t *testing.T) {
	players := newTable(100, passiveAgent{}, passiveAgent{}, passiveAgent{})
	g := newTestGame(players)

	firstToAct := g.postBlinds()

	// Dealer is seat 0: seats 1 and 2 post, action starts back at the dealer
	assert.Equal(t, 0, players[0].CurrentBet)
	assert.Equal(t, 5, players[1].CurrentBet)
	assert.Equal(t, 10, players[2].CurrentBet)
	assert.Equal(t, 0, firstToAct)
}

func TestEarlyExitAwardsPotWithoutShowdown(t *testing.T) {
	players := newTable(100, passiveAgent{}, foldingAgent{}, foldingAgent{})
	g := newTestGame(players)

	recorder := &eventRecorder{}
	g.EventBus().Subscribe(recorder)

	payouts, err := g.PlayHand()
	require.NoError(t, err)

	// Seat 0 called the blind, then both blinds folded: the pot holds the
	// call plus both blinds and goes to seat 0 with no cards shown.
	require.Len(t, payouts, 1)
	assert.Equal(t, players[0], payouts[0].Player)
	assert.Equal(t, 25, payouts[0].Amount)
	assert.False(t, payouts[0].Showdown)

	// No streets past preflop were dealt
	assert.Empty(t, recorder.ofType(EventTypeStreetChange))
	settled := recorder.ofType(EventTypeHandSettled)
	require.Len(t, settled, 1)
	assert.Equal(t, 25, settled[0].(HandSettledEvent).Pot)
}

func TestPassiveHandReachesShowdown(t *testing.T) {
	players := newTable(100, passiveAgent{}, passiveAgent{}, passiveAgent{})
	g := newTestGame(players)

	recorder := &eventRecorder{}
	g.EventBus().Subscribe(recorder)

	payouts, err := g.PlayHand()
	require.NoError(t, err)
	require.NotEmpty(t, payouts)

	// Flop, turn and river were all dealt
	streets := recorder.ofType(EventTypeStreetChange)
	require.Len(t, streets, 3)
	assert.Len(t, streets[0].(StreetChangeEvent).Board, 3)
	assert.Len(t, streets[1].(StreetChangeEvent).Board, 4)
	assert.Len(t, streets[2].(StreetChangeEvent).Board, 5)

	for _, payout := range payouts {
		assert.True(t, payout.Showdown)
	}
}

func TestChipConservationAcrossHands(t *testing.T) {
	players := newTable(100, passiveAgent{}, passiveAgent{}, passiveAgent{}, passiveAgent{})
	g := newTestGame(players)

	before := totalChips(players)
	for i := 0; i < 20; i++ {
		_, err := g.PlayHand()
		require.NoError(t, err)
		assert.Equal(t, before, totalChips(g.Players()), "hand %d leaked chips", i+1)
		assert.Equal(t, 0, g.Pot())
	}
}

func TestPotMatchesPublishedActionTotals(t *testing.T) {
	players := newTable(100,
		&scriptedAgent{actions: []scriptedAction{{Raise, 20}}},
		passiveAgent{},
		passiveAgent{},
	)
	g := newTestGame(players)

	recorder := &eventRecorder{}
	g.EventBus().Subscribe(recorder)

	_, err := g.PlayHand()
	require.NoError(t, err)

	// Blinds plus every published wager must equal the settled pot
	wagered := g.smallBlind + g.bigBlind
	for _, e := range recorder.ofType(EventTypePlayerAction) {
		wagered += e.(PlayerActionEvent).Amount
	}
	settled := recorder.ofType(EventTypeHandSettled)
	require.Len(t, settled, 1)
	assert.Equal(t, wagered, settled[0].(HandSettledEvent).Pot)
}

func TestDealerButtonRotates(t *testing.T) {
	players := newTable(100, passiveAgent{}, passiveAgent{}, passiveAgent{})
	g := newTestGame(players)

	recorder := &eventRecorder{}
	g.EventBus().Subscribe(recorder)

	for i := 0; i < 3; i++ {
		_, err := g.PlayHand()
		require.NoError(t, err)
	}

	starts := recorder.ofType(EventTypeHandStart)
	require.Len(t, starts, 3)
	assert.Equal(t, "alice", starts[0].(HandStartEvent).Dealer)
	assert.Equal(t, "bob", starts[1].(HandStartEvent).Dealer)
	assert.Equal(t, "carol", starts[2].(HandStartEvent).Dealer)
}

func TestEliminationHappensAfterSettlement(t *testing.T) {
	players := []*Player{
		NewPlayer("alice", 0, passiveAgent{}),
		NewPlayer("bob", 100, passiveAgent{}),
		NewPlayer("carol", 100, passiveAgent{}),
	}
	g := newTestGame(players)

	g.eliminate()

	require.Len(t, g.Players(), 2)
	assert.Equal(t, "bob", g.Players()[0].Name)
	assert.Equal(t, "carol", g.Players()[1].Name)
	assert.Equal(t, 0, g.Players()[0].Position)
	assert.Equal(t, 1, g.Players()[1].Position)
}

func TestRunStopsWhenOnePlayerHasAllChips(t *testing.T) {
	players := newTable(50, passiveAgent{}, foldingAgent{})
	g := newTestGame(players)

	// The folder bleeds blinds every hand until busted
	g.Run(1000)

	require.Len(t, g.Players(), 1)
	assert.Equal(t, "alice", g.Players()[0].Name)
	assert.Equal(t, 100, g.Players()[0].Chips)
}

func TestPlayHandRequiresTwoPlayers(t *testing.T) {
	players := newTable(100, passiveAgent{})
	g := newTestGame(players)

	_, err := g.PlayHand()
	assert.Error(t, err)
}
