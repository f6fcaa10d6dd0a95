package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/feltworks/holdem/internal/deck"
)

// Game sequences complete hands for a table of players: blinds, four
// betting streets, settlement, elimination and button rotation. All play
// is single-threaded and turn-based; exactly one agent decision runs at a
// time and the engine blocks until it returns.
type Game struct {
	players    []*Player
	dealer     int
	smallBlind int
	bigBlind   int
	handNumber int

	pot   int
	board []deck.Card
	// sidePots exists in the model but is never populated: only one pot
	// is tracked, so multi-depth all-in hands are not side-pot correct.
	sidePots []int

	rng    *rand.Rand
	logger *log.Logger
	bus    EventBus
}

// Option configures a Game
type Option func(*Game)

// WithRNG sets the shuffle source; a fixed seed makes hands reproducible
func WithRNG(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithLogger sets the structured logger
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithEventBus sets the bus that receives hand events
func WithEventBus(bus EventBus) Option {
	return func(g *Game) { g.bus = bus }
}

// NewGame creates a table. At least two players are required for a hand
// to be playable.
func NewGame(players []*Player, smallBlind, bigBlind int, opts ...Option) *Game {
	g := &Game{
		players:    players,
		smallBlind: smallBlind,
		bigBlind:   bigBlind,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:     log.Default(),
		bus:        NewEventBus(),
	}
	for _, opt := range opts {
		opt(g)
	}
	for i, p := range players {
		p.Position = i
	}
	return g
}

// EventBus exposes the bus so observers can subscribe to hand events
func (g *Game) EventBus() EventBus {
	return g.bus
}

// Players returns the current (non-eliminated) players
func (g *Game) Players() []*Player {
	return g.players
}

// Pot returns the chips committed to the current hand
func (g *Game) Pot() int {
	return g.pot
}

// Board returns the community cards dealt so far
func (g *Game) Board() []deck.Card {
	return g.board
}

// HandNumber returns the number of hands started
func (g *Game) HandNumber() int {
	return g.handNumber
}

// Run plays hands until only one player has chips or maxHands completes.
// An error inside a single hand is logged and absorbed: players are
// reset and the next hand starts, so one bad hand cannot halt a long
// unattended run.
func (g *Game) Run(maxHands int) {
	for i := 0; i < maxHands && len(g.players) > 1; i++ {
		if _, err := g.PlayHand(); err != nil {
			g.logger.Error("hand aborted", "hand", g.handNumber, "error", err)
			for _, p := range g.players {
				p.ResetForNewHand()
			}
		}
	}
}

// PlayHand plays one complete hand and returns the settlement. The hand
// short-circuits to settlement whenever at most one non-folded player
// remains; otherwise it runs all four streets and a showdown.
func (g *Game) PlayHand() ([]Payout, error) {
	if len(g.players) < 2 {
		return nil, fmt.Errorf("cannot play a hand with %d players", len(g.players))
	}

	g.handNumber++
	g.pot = 0
	g.board = nil
	for _, p := range g.players {
		p.ResetForNewHand()
	}

	d := deck.NewDeck(g.rng)
	d.Shuffle()
	for _, p := range g.players {
		p.DealHoleCards(d.DealN(2))
	}

	g.logger.Debug("hand started",
		"hand", g.handNumber, "players", len(g.players), "dealer", g.players[g.dealer].Name)
	g.bus.Publish(HandStartEvent{
		HandNumber: g.handNumber,
		Players:    g.playerNames(),
		Dealer:     g.players[g.dealer].Name,
		SmallBlind: g.smallBlind,
		BigBlind:   g.bigBlind,
		timestamp:  time.Now(),
	})

	firstToAct := g.postBlinds()

	if err := g.runStreet(Preflop, firstToAct, g.bigBlind); err != nil {
		return nil, err
	}

	reveals := []struct {
		street Street
		cards  int
	}{
		{Flop, 3},
		{Turn, 1},
		{River, 1},
	}
	for _, reveal := range reveals {
		if g.contenders() <= 1 {
			break
		}
		d.Burn()
		g.board = append(g.board, d.DealN(reveal.cards)...)
		g.bus.Publish(StreetChangeEvent{
			Street:    reveal.street,
			Board:     g.board,
			Pot:       g.pot,
			timestamp: time.Now(),
		})

		if err := g.runStreet(reveal.street, g.nextActor(g.dealer), 0); err != nil {
			return nil, err
		}
	}

	payouts, err := g.settle()
	if err != nil {
		return nil, err
	}

	g.eliminate()
	if len(g.players) > 0 {
		g.dealer = (g.dealer + 1) % len(g.players)
	}

	return payouts, nil
}

// postBlinds commits the forced bets and returns the seat index that acts
// first preflop. Heads-up the dealer posts the small blind and acts
// first; with three or more players the two seats after the dealer post
// and action starts behind the big blind.
func (g *Game) postBlinds() int {
	var sbSeat, bbSeat int
	if len(g.players) == 2 {
		sbSeat = g.dealer
		bbSeat = (g.dealer + 1) % 2
	} else {
		sbSeat = (g.dealer + 1) % len(g.players)
		bbSeat = (g.dealer + 2) % len(g.players)
	}

	sb := g.players[sbSeat]
	bb := g.players[bbSeat]
	g.pot += sb.Bet(g.smallBlind)
	g.pot += bb.Bet(g.bigBlind)

	g.logger.Debug("blinds posted",
		"smallBlind", sb.Name, "bigBlind", bb.Name, "pot", g.pot)

	return g.nextActor(bbSeat)
}

// runStreet drives one betting round to completion. openingBet is the
// pre-existing table bet the round opens against (the big blind preflop,
// zero otherwise).
func (g *Game) runStreet(street Street, firstToAct, openingBet int) error {
	br := NewBettingRound(street, g.players, g.bigBlind)
	br.CurrentBet = openingBet
	defer br.Close()

	seat := firstToAct
	for !br.Done() && g.contenders() > 1 {
		p, next, ok := g.nextToAct(br, seat)
		if !ok {
			// Obligations outstanding but nobody owes an action: the
			// round's accounting is broken. Force-close the street.
			g.logger.Error("betting round failed to converge",
				"hand", g.handNumber, "street", street)
			return fmt.Errorf("%w: %s, hand %d", ErrNonTerminatingRound, street, g.handNumber)
		}
		seat = next

		action, amount := p.agent.GetAction(g.buildView(p, br))
		wagered, err := br.Apply(p, action, amount)
		if err != nil {
			return err
		}
		g.pot += wagered

		g.logger.Debug("player acted",
			"player", p.Name, "street", street, "action", action, "wagered", wagered, "pot", g.pot)
		g.bus.Publish(PlayerActionEvent{
			Player:    p.Name,
			Action:    action,
			Amount:    wagered,
			Street:    street,
			PotAfter:  g.pot,
			timestamp: time.Now(),
		})
	}

	return nil
}

// nextToAct scans from seat for the next player who owes an action and
// returns the player plus the seat to resume from afterwards.
func (g *Game) nextToAct(br *BettingRound, seat int) (*Player, int, bool) {
	for i := 0; i < len(g.players); i++ {
		idx := (seat + i) % len(g.players)
		if br.MustAct(g.players[idx]) {
			return g.players[idx], (idx + 1) % len(g.players), true
		}
	}
	return nil, seat, false
}

// nextActor returns the first seat after the given one that can still act
func (g *Game) nextActor(seat int) int {
	for i := 1; i <= len(g.players); i++ {
		idx := (seat + i) % len(g.players)
		if g.players[idx].CanAct() {
			return idx
		}
	}
	return (seat + 1) % len(g.players)
}

// settle distributes the pot and publishes the settlement event
func (g *Game) settle() ([]Payout, error) {
	var contenders []*Player
	for _, p := range g.players {
		if !p.Folded {
			contenders = append(contenders, p)
		}
	}

	payouts, err := SettlePot(contenders, g.board, g.pot)
	if err != nil {
		return nil, err
	}

	for _, payout := range payouts {
		g.logger.Info("pot awarded",
			"hand", g.handNumber, "player", payout.Player.Name,
			"amount", payout.Amount, "showdown", payout.Showdown)
	}
	g.bus.Publish(HandSettledEvent{
		HandNumber: g.handNumber,
		Payouts:    payouts,
		Board:      g.board,
		Pot:        g.pot,
		timestamp:  time.Now(),
	})

	g.pot = 0
	return payouts, nil
}

// eliminate removes busted players. Called only after settlement so a
// player is never removed mid-hand.
func (g *Game) eliminate() {
	remaining := g.players[:0]
	for _, p := range g.players {
		if p.Chips > 0 {
			remaining = append(remaining, p)
		} else {
			g.logger.Info("player eliminated", "player", p.Name, "hand", g.handNumber)
		}
	}
	g.players = remaining

	if g.dealer >= len(g.players) && len(g.players) > 0 {
		g.dealer = g.dealer % len(g.players)
	}
	for i, p := range g.players {
		p.Position = i
	}
}

// contenders counts players still in the hand
func (g *Game) contenders() int {
	n := 0
	for _, p := range g.players {
		if !p.Folded {
			n++
		}
	}
	return n
}

// buildView snapshots the table from p's seat for an agent decision
func (g *Game) buildView(p *Player, br *BettingRound) GameView {
	board := make([]string, len(g.board))
	for i, c := range g.board {
		board[i] = c.String()
	}

	others := make([]OpponentView, 0, len(g.players)-1)
	for _, other := range g.players {
		if other == p {
			continue
		}
		others = append(others, OpponentView{
			Name:       other.Name,
			Chips:      other.Chips,
			CurrentBet: other.CurrentBet,
			IsFolded:   other.Folded,
			IsAllIn:    other.AllIn,
		})
	}

	hole := make([]string, len(p.HoleCards))
	for i, c := range p.HoleCards {
		hole[i] = c.String()
	}

	return GameView{
		Pot:            g.pot,
		CommunityCards: board,
		BettingRound:   br.Street.String(),
		CurrentBet:     br.CurrentBet,
		CallAmount:     br.CallAmount(p),
		MinRaise:       br.MinRaise,
		BigBlind:       g.bigBlind,
		SmallBlind:     g.smallBlind,
		OtherPlayers:   others,
		HandNumber:     g.handNumber,
		HoleCards:      hole,
		Chips:          p.Chips,
	}
}

func (g *Game) playerNames() []string {
	names := make([]string, len(g.players))
	for i, p := range g.players {
		names[i] = p.Name
	}
	return names
}
