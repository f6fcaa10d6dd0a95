package game

import "fmt"

// BettingRound drives one street of wagering: turn bookkeeping, legal
// actions, and raise re-opening. Termination is tracked with an explicit
// obligation counter: every player who can act owes exactly one action,
// a raise re-issues obligations to the other live players, and the street
// ends when the counter reaches zero. Each re-open requires the table bet
// to strictly increase, so the counter cannot reset forever.
type BettingRound struct {
	Street     Street
	CurrentBet int
	MinRaise   int

	players     []*Player
	settled     map[*Player]bool
	obligations int
}

// NewBettingRound starts a street. Every player able to act owes one
// action, including the big blind preflop (the option).
func NewBettingRound(street Street, players []*Player, bigBlind int) *BettingRound {
	br := &BettingRound{
		Street:   street,
		MinRaise: bigBlind,
		players:  players,
		settled:  make(map[*Player]bool, len(players)),
	}
	for _, p := range players {
		if p.CanAct() {
			br.obligations++
		}
	}
	return br
}

// CallAmount returns the chips p needs to match the current bet
func (br *BettingRound) CallAmount(p *Player) int {
	toCall := br.CurrentBet - p.CurrentBet
	if toCall < 0 {
		return 0
	}
	return toCall
}

// LegalActions returns the actions p may take right now
func (br *BettingRound) LegalActions(p *Player) []Action {
	if !p.CanAct() {
		return nil
	}

	actions := []Action{Fold}
	toCall := br.CallAmount(p)

	if toCall == 0 {
		actions = append(actions, Check)
	} else {
		// A call short of the full amount becomes an involuntary all-in
		actions = append(actions, Call)
	}

	if p.Chips > toCall {
		actions = append(actions, Raise)
	}
	if p.Chips > 0 {
		actions = append(actions, AllIn)
	}

	return actions
}

// MustAct reports whether p still owes an action this street
func (br *BettingRound) MustAct(p *Player) bool {
	return p.CanAct() && !br.settled[p]
}

// Done reports whether every obligation has been discharged
func (br *BettingRound) Done() bool {
	return br.obligations <= 0
}

// Apply validates and executes one action for p, returning the chips
// added to the pot. A raise, or an all-in that exceeds the current bet,
// re-opens the street: every other live player owes a fresh action.
func (br *BettingRound) Apply(p *Player, action Action, amount int) (int, error) {
	if !br.isLegal(p, action) {
		return 0, fmt.Errorf("%w: %s by %s", ErrIllegalAction, action, p.Name)
	}

	toCall := br.CallAmount(p)

	// Raising less than the minimum is only legal as an all-in
	if action == Raise && amount < br.MinRaise && p.Chips > toCall+amount {
		return 0, fmt.Errorf("%w: raise %d below minimum %d", ErrIllegalAction, amount, br.MinRaise)
	}

	br.discharge(p)

	var wagered int
	switch action {
	case Fold:
		p.Fold()

	case Check:
		br.settled[p] = true

	case Call:
		wagered = p.Bet(toCall)
		br.settled[p] = true

	case Raise:
		wagered = p.Bet(toCall + amount)
		br.settleWager(p)

	case AllIn:
		wagered = p.Bet(p.Chips)
		br.settleWager(p)
	}

	return wagered, nil
}

// settleWager records a voluntary wager and re-opens the street when it
// exceeds the table bet.
func (br *BettingRound) settleWager(p *Player) {
	br.settled[p] = true
	if p.CurrentBet <= br.CurrentBet {
		return
	}

	raiseDelta := p.CurrentBet - br.CurrentBet
	if raiseDelta > br.MinRaise {
		br.MinRaise = raiseDelta
	}
	br.CurrentBet = p.CurrentBet

	// Re-open: everyone else who can still act owes a fresh action
	br.obligations = 0
	for _, other := range br.players {
		if other == p {
			continue
		}
		if other.CanAct() {
			delete(br.settled, other)
			br.obligations++
		}
	}
}

// discharge consumes p's outstanding obligation, if any
func (br *BettingRound) discharge(p *Player) {
	if !br.settled[p] {
		br.obligations--
		if br.obligations < 0 {
			br.obligations = 0
		}
	}
}

func (br *BettingRound) isLegal(p *Player, action Action) bool {
	for _, a := range br.LegalActions(p) {
		if a == action {
			return true
		}
	}
	return false
}

// Close resets per-street bets on the table and every player. Called by
// the orchestrator once the street has terminated.
func (br *BettingRound) Close() {
	br.CurrentBet = 0
	for _, p := range br.players {
		p.CurrentBet = 0
	}
}
