package game

import "errors"

// ErrIllegalAction is returned when an agent picks an action outside the
// currently legal set. The engine rejects rather than trusting the caller:
// an inconsistent wager silently corrupts pot accounting.
var ErrIllegalAction = errors.New("illegal action for current betting state")

// ErrNonTerminatingRound is returned when the betting round's obligation
// accounting is violated. The street is force-closed with a diagnostic;
// this is a truncation recovery, not a correctness guarantee.
var ErrNonTerminatingRound = errors.New("betting round failed to converge")
