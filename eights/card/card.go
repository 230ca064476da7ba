package card

import (
	"strconv"

	"github.com/ratel-online/eights/eights/card/suit"
)

type Rank int

const (
	Ace Rank = iota + 1
	Two
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
)

// WildRank may be played on anything and lets its player nominate the next suit.
const WildRank = Eight

var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(r))
	}
}

func (r Rank) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Card is an immutable value. Its ID stays the same for the card's lifetime,
// so presentation code can follow one physical card between collections.
type Card struct {
	id   string
	suit suit.Suit
	rank Rank
}

func New(s suit.Suit, r Rank) Card {
	return Card{
		id:   r.String() + s.Letter(),
		suit: s,
		rank: r,
	}
}

func (c Card) ID() string {
	return c.id
}

func (c Card) Suit() suit.Suit {
	return c.suit
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) Wild() bool {
	return c.rank == WildRank
}

func (c Card) IsZero() bool {
	return c.id == ""
}

func (c Card) Equal(other Card) bool {
	return c.id == other.id
}

func (c Card) Paint() string {
	return c.suit.Paintf("[%s%s]", c.rank, c.suit.Symbol())
}

func (c Card) String() string {
	return c.rank.String() + c.suit.Symbol()
}
