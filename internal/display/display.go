// Package display renders table events for a terminal. It subscribes to
// the game's event bus and writes styled, hand-history style output.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/feltworks/holdem/internal/deck"
	"github.com/feltworks/holdem/internal/game"
)

// Styles contains the lipgloss styles used by the renderer
type Styles struct {
	Header    lipgloss.Style
	Street    lipgloss.Style
	Action    lipgloss.Style
	Winner    lipgloss.Style
	Pot       lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Separator lipgloss.Style
}

// NewStyles creates the default style set
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Street: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Action: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Pot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Bold(true),
		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Renderer writes game events as they are published. It implements
// game.Subscriber and is safe to attach to any event bus.
type Renderer struct {
	w      io.Writer
	styles *Styles
}

// NewRenderer creates a renderer writing to w
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w, styles: NewStyles()}
}

// OnEvent renders a single game event
func (r *Renderer) OnEvent(event game.Event) {
	switch e := event.(type) {
	case game.HandStartEvent:
		header := fmt.Sprintf("Hand #%d • %d players • $%d/$%d • button: %s",
			e.HandNumber, len(e.Players), e.SmallBlind, e.BigBlind, e.Dealer)
		fmt.Fprintln(r.w, r.styles.Header.Render(header))

	case game.StreetChangeEvent:
		label := strings.ToUpper(e.Street.String())
		fmt.Fprintf(r.w, "%s %s %s\n",
			r.styles.Street.Render(fmt.Sprintf("*** %s ***", label)),
			r.RenderCards(e.Board),
			r.styles.Pot.Render(fmt.Sprintf("(pot $%d)", e.Pot)))

	case game.PlayerActionEvent:
		line := fmt.Sprintf("%s: %s", e.Player, r.describeAction(e))
		fmt.Fprintln(r.w, r.styles.Action.Render(line))

	case game.HandSettledEvent:
		for _, payout := range e.Payouts {
			var line string
			if payout.Showdown {
				line = fmt.Sprintf("%s wins $%d with %s",
					payout.Player.Name, payout.Amount, payout.Result.Category)
			} else {
				line = fmt.Sprintf("%s wins $%d uncontested", payout.Player.Name, payout.Amount)
			}
			fmt.Fprintln(r.w, r.styles.Winner.Render(line))
		}
		fmt.Fprintln(r.w, r.styles.Separator.Render(strings.Repeat("─", 40)))
	}
}

func (r *Renderer) describeAction(e game.PlayerActionEvent) string {
	switch e.Action {
	case game.Fold:
		return "folds"
	case game.Check:
		return "checks"
	case game.Call:
		return fmt.Sprintf("calls $%d (pot $%d)", e.Amount, e.PotAfter)
	case game.Raise:
		return fmt.Sprintf("raises $%d (pot $%d)", e.Amount, e.PotAfter)
	case game.AllIn:
		return fmt.Sprintf("goes all-in for $%d (pot $%d)", e.Amount, e.PotAfter)
	}
	return e.Action.String()
}

// RenderCards styles cards red or black by suit
func (r *Renderer) RenderCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.Suit == deck.Hearts || c.Suit == deck.Diamonds {
			parts[i] = r.styles.CardRed.Render(c.String())
		} else {
			parts[i] = r.styles.CardBlack.Render(c.String())
		}
	}
	return strings.Join(parts, " ")
}
