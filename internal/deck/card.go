package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the suit glyph
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Values run 2-14 with the ace high;
// the wheel straight is the only place an ace plays low.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-glyph representation of a rank
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return string(rune('0' + int(r)))
		}
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns rank glyph followed by suit glyph, e.g. "A♠"
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Value returns the numeric rank value (2-14) used for comparisons
func (c Card) Value() int {
	return int(c.Rank)
}

// ParseCard parses the string form produced by Card.String, e.g. "T♥".
// It is the exact inverse of String for all 52 cards.
func ParseCard(s string) (Card, error) {
	runes := []rune(s)
	if len(runes) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: want rank glyph + suit glyph", s)
	}

	var rank Rank
	switch runes[0] {
	case 'T':
		rank = Ten
	case 'J':
		rank = Jack
	case 'Q':
		rank = Queen
	case 'K':
		rank = King
	case 'A':
		rank = Ace
	default:
		if runes[0] < '2' || runes[0] > '9' {
			return Card{}, fmt.Errorf("invalid rank glyph %q in %q", runes[0], s)
		}
		rank = Rank(runes[0] - '0')
	}

	var suit Suit
	switch runes[1] {
	case '♠':
		suit = Spades
	case '♥':
		suit = Hearts
	case '♦':
		suit = Diamonds
	case '♣':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid suit glyph %q in %q", runes[1], s)
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// MustParseCard parses a card and panics on error. Intended for tests
// and fixed fixtures.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MustParseCards parses a space-separated list of cards, e.g. "A♠ K♦".
func MustParseCards(s string) []Card {
	fields := strings.Fields(s)
	cards := make([]Card, len(fields))
	for i, f := range fields {
		cards[i] = MustParseCard(f)
	}
	return cards
}
