package game

// Street represents the betting round within a hand
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "raise", "allin"}[a]
}

// OpponentView is the visible state of another player at the table.
type OpponentView struct {
	Name       string
	Chips      int
	CurrentBet int
	IsFolded   bool
	IsAllIn    bool
}

// GameView is the read-only snapshot handed to an agent when it must act.
// Cards are display strings so the view is cheap to serialize.
type GameView struct {
	Pot            int
	CommunityCards []string
	BettingRound   string
	CurrentBet     int
	CallAmount     int
	MinRaise       int
	BigBlind       int
	SmallBlind     int
	OtherPlayers   []OpponentView
	HandNumber     int

	// The acting player's own visible state
	HoleCards []string
	Chips     int
}

// Agent is any decision source for a player, human or automated. The
// engine blocks until GetAction returns; no timeout is imposed here.
// For Raise the amount is the increment on top of the call amount; for
// every other action it is ignored and the engine derives the wager.
type Agent interface {
	GetAction(view GameView) (Action, int)
}
