package remote

import (
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/feltworks/holdem/internal/game"
)

// Conn is the subset of a websocket connection the agent needs. It is
// satisfied by *websocket.Conn.
type Conn interface {
	WriteJSON(v any) error
	ReadJSON(v any) error
	Close() error
}

// Agent proxies one remote player. It implements game.Agent: the engine
// calls GetAction, the agent forwards the view over the wire and blocks
// until the client answers or the decision timeout fires. Timeouts and
// dead connections fold.
type Agent struct {
	name    string
	conn    Conn
	logger  *log.Logger
	clock   quartz.Clock
	timeout time.Duration

	actions chan ActionData
}

// NewAgent creates an agent for a connected player. The clock is
// injectable so decision timeouts are testable without real waits.
func NewAgent(name string, conn Conn, timeout time.Duration, clock quartz.Clock, logger *log.Logger) *Agent {
	return &Agent{
		name:    name,
		conn:    conn,
		logger:  logger.WithPrefix("remote").With("player", name),
		clock:   clock,
		timeout: timeout,
		actions: make(chan ActionData, 1),
	}
}

// Name returns the player name supplied at join
func (a *Agent) Name() string {
	return a.name
}

// GetAction requests a decision from the remote client
func (a *Agent) GetAction(view game.GameView) (game.Action, int) {
	msg, err := NewMessage(MessageTypeActionRequired, ActionRequiredData{
		View:           view,
		TimeoutSeconds: int(a.timeout / time.Second),
	})
	if err != nil {
		a.logger.Error("building action request", "error", err)
		return game.Fold, 0
	}
	if err := a.conn.WriteJSON(msg); err != nil {
		a.logger.Error("sending action request", "error", err)
		return game.Fold, 0
	}

	timedOut := make(chan struct{})
	timer := a.clock.AfterFunc(a.timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case reply := <-a.actions:
		action, err := ParseAction(reply.Action)
		if err != nil {
			a.logger.Warn("client sent unknown action, folding", "action", reply.Action)
			return game.Fold, 0
		}
		amount := reply.Amount
		if amount < 0 {
			amount = 0
		}
		return action, amount

	case <-timedOut:
		a.logger.Warn("decision timeout, folding", "timeout", a.timeout)
		return game.Fold, 0
	}
}

// OnEvent forwards settlements to the client so it can track results
func (a *Agent) OnEvent(event game.Event) {
	settled, ok := event.(game.HandSettledEvent)
	if !ok {
		return
	}

	board := make([]string, len(settled.Board))
	for i, c := range settled.Board {
		board[i] = c.String()
	}
	winners := make([]WinnerData, len(settled.Payouts))
	for i, payout := range settled.Payouts {
		winners[i] = WinnerData{
			Name:   payout.Player.Name,
			Amount: payout.Amount,
		}
		if payout.Showdown {
			winners[i].Hand = payout.Result.Category.String()
		}
	}

	msg, err := NewMessage(MessageTypeHandSettled, HandSettledData{
		HandNumber: settled.HandNumber,
		Board:      board,
		Pot:        settled.Pot,
		Winners:    winners,
	})
	if err != nil {
		a.logger.Error("building settlement notice", "error", err)
		return
	}
	if err := a.conn.WriteJSON(msg); err != nil {
		a.logger.Error("sending settlement notice", "error", err)
	}
}

// Serve reads client messages until the connection drops, routing action
// replies to any pending GetAction call. It blocks and is intended to
// run on its own goroutine.
func (a *Agent) Serve() error {
	for {
		var msg Message
		if err := a.conn.ReadJSON(&msg); err != nil {
			a.logger.Debug("connection closed", "error", err)
			return err
		}

		switch msg.Type {
		case MessageTypeAction:
			var reply ActionData
			if err := json.Unmarshal(msg.Data, &reply); err != nil {
				a.logger.Warn("malformed action payload", "error", err)
				continue
			}
			select {
			case a.actions <- reply:
			default:
				a.logger.Warn("unsolicited action dropped", "action", reply.Action)
			}
		default:
			a.logger.Warn("unexpected message", "type", msg.Type)
		}
	}
}
