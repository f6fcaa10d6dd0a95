package game

import (
	"github.com/feltworks/holdem/internal/deck"
)

// Player is a seat at the table. Players are created once and survive
// across hands; per-hand state is cleared by ResetForNewHand.
type Player struct {
	Name           string
	Chips          int
	HoleCards      []deck.Card
	CurrentBet     int // chips wagered this street
	TotalBetInHand int // chips wagered this hand
	Folded         bool
	AllIn          bool
	Position       int

	agent Agent
}

// NewPlayer creates a player backed by the given decision agent.
func NewPlayer(name string, chips int, agent Agent) *Player {
	return &Player{
		Name:  name,
		Chips: chips,
		agent: agent,
	}
}

// ResetForNewHand clears hole cards, bets and flags. Chips and position
// persist.
func (p *Player) ResetForNewHand() {
	p.HoleCards = nil
	p.Folded = false
	p.AllIn = false
	p.CurrentBet = 0
	p.TotalBetInHand = 0
}

// DealHoleCards assigns the player's two hole cards
func (p *Player) DealHoleCards(cards []deck.Card) {
	p.HoleCards = cards
}

// CanAct reports whether the player can still make decisions this street
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn && p.Chips > 0
}

// Bet wagers up to amount chips and returns the actual wager. A wager of
// the full stack (or more) puts the player all-in; chips never go below
// zero.
func (p *Player) Bet(amount int) int {
	actual := amount
	if actual >= p.Chips {
		actual = p.Chips
		p.AllIn = true
	}
	p.Chips -= actual
	p.CurrentBet += actual
	p.TotalBetInHand += actual
	return actual
}

// Fold marks the player out of the hand
func (p *Player) Fold() {
	p.Folded = true
}

// WinChips credits winnings. Negative amounts are ignored.
func (p *Player) WinChips(amount int) {
	if amount < 0 {
		return
	}
	p.Chips += amount
}
