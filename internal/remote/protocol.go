// Package remote seats players connected over a websocket. Each remote
// player is proxied by an agent that forwards game views to the client
// and waits, bounded by a clock, for its action.
package remote

import (
	"encoding/json"
	"fmt"

	"github.com/feltworks/holdem/internal/game"
)

// MessageType identifies a wire message
type MessageType string

const (
	MessageTypeJoin           MessageType = "join"
	MessageTypeActionRequired MessageType = "action_required"
	MessageTypeAction         MessageType = "action"
	MessageTypeHandSettled    MessageType = "hand_settled"
)

// Message is the wire envelope. Data holds the type-specific payload.
type Message struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewMessage wraps a payload in an envelope
func NewMessage(mt MessageType, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("marshal %s payload: %w", mt, err)
	}
	return Message{Type: mt, Data: data}, nil
}

// JoinData is sent by a client immediately after connecting
type JoinData struct {
	Name string `json:"name"`
}

// ActionRequiredData asks the client for a decision
type ActionRequiredData struct {
	View           game.GameView `json:"view"`
	TimeoutSeconds int           `json:"timeout_seconds"`
}

// ActionData is the client's reply to an action request
type ActionData struct {
	Action string `json:"action"`
	Amount int    `json:"amount"`
}

// HandSettledData notifies the client of a settlement
type HandSettledData struct {
	HandNumber int      `json:"hand_number"`
	Board      []string `json:"board"`
	Pot        int      `json:"pot"`
	Winners    []WinnerData
}

// WinnerData is one winner's share in a settlement notice
type WinnerData struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
	Hand   string `json:"hand,omitempty"`
}

// ParseAction maps a wire action name to a game action
func ParseAction(s string) (game.Action, error) {
	switch s {
	case "fold":
		return game.Fold, nil
	case "check":
		return game.Check, nil
	case "call":
		return game.Call, nil
	case "raise":
		return game.Raise, nil
	case "allin":
		return game.AllIn, nil
	}
	return game.Fold, fmt.Errorf("unknown action %q", s)
}
