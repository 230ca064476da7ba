package suit

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Suit int

// The declaration order doubles as the tie-break priority when a suit has to be nominated.
const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var All = []Suit{Hearts, Diamonds, Clubs, Spades}

type suitStruct struct {
	name          string
	symbol        string
	letter        string
	colorFunction func(string, ...interface{}) string
}

var suits = [...]suitStruct{
	Hearts: {
		name:          "hearts",
		symbol:        "♥",
		letter:        "H",
		colorFunction: color.New(color.FgHiRed).SprintfFunc(),
	},
	Diamonds: {
		name:          "diamonds",
		symbol:        "♦",
		letter:        "D",
		colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
	},
	Clubs: {
		name:          "clubs",
		symbol:        "♣",
		letter:        "C",
		colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
	},
	Spades: {
		name:          "spades",
		symbol:        "♠",
		letter:        "S",
		colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
	},
}

func (s Suit) Valid() bool {
	return s >= Hearts && s <= Spades
}

func (s Suit) Name() string {
	if !s.Valid() {
		return fmt.Sprintf("suit(%d)", int(s))
	}
	return suits[s].name
}

func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suits[s].symbol
}

func (s Suit) Letter() string {
	if !s.Valid() {
		return "?"
	}
	return suits[s].letter
}

func (s Suit) Paint(text string) string {
	return s.Paintf("%s", text)
}

func (s Suit) Paintf(format string, args ...interface{}) string {
	if !s.Valid() {
		return fmt.Sprintf(format, args...)
	}
	return suits[s].colorFunction(format, args...)
}

func (s Suit) String() string {
	return s.Name()
}

func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.Name()), nil
}

// ByName accepts a suit's name, letter or symbol, ignoring case.
func ByName(name string) (Suit, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range All {
		info := suits[s]
		if name == info.name || name == strings.ToLower(info.letter) || name == info.symbol {
			return s, nil
		}
	}
	return 0, fmt.Errorf("invalid suit '%s'", name)
}
