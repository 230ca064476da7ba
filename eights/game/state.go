package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

type Actor int

const (
	Nobody Actor = iota
	Human
	Opponent
)

func (a Actor) Other() Actor {
	switch a {
	case Human:
		return Opponent
	case Opponent:
		return Human
	default:
		return Nobody
	}
}

func (a Actor) String() string {
	switch a {
	case Human:
		return "player"
	case Opponent:
		return "opponent"
	default:
		return "none"
	}
}

func (a Actor) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

type Status int

const (
	StatusHome Status = iota
	StatusPlaying
	StatusChoosingSuit
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusHome:
		return "home"
	case StatusPlaying:
		return "playing"
	case StatusChoosingSuit:
		return "choosing_suit"
	case StatusGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Scores struct {
	Player   int
	Opponent int
}

func (s *Scores) add(actor Actor, points int) {
	switch actor {
	case Human:
		s.Player += points
	case Opponent:
		s.Opponent += points
	}
}

// State is a snapshot of the table. Its slices are copies and safe to keep.
type State struct {
	Deck         []card.Card
	PlayerHand   []card.Card
	OpponentHand []card.Card
	// DiscardPile is most recent first.
	DiscardPile  []card.Card
	CurrentSuit  suit.Suit
	CurrentRank  card.Rank
	Turn         Actor
	Status       Status
	Winner       Actor
	Scores       Scores
	Round        int
	LastAction   string
	PlayerName   string
	OpponentName string
	// Generation changes on every accepted transition.
	Generation uint64
}

func (s State) Top() (card.Card, bool) {
	if len(s.DiscardPile) == 0 {
		return card.Card{}, false
	}
	return s.DiscardPile[0], true
}

func (s State) Hand(actor Actor) []card.Card {
	switch actor {
	case Human:
		return s.PlayerHand
	case Opponent:
		return s.OpponentHand
	default:
		return nil
	}
}

func (s State) String() string {
	var lines []string
	if top, ok := s.Top(); ok {
		lines = append(lines, fmt.Sprintf("Top card: %s, suit to follow: %s", top, s.CurrentSuit.Name()))
	}
	lines = append(lines, fmt.Sprintf("Round %d, %s's turn, status %s", s.Round, s.Turn, s.Status))
	lines = append(lines, fmt.Sprintf("Deck: %d card(s), %s: %d card(s)", len(s.Deck), s.OpponentName, len(s.OpponentHand)))
	lines = append(lines, fmt.Sprintf("Your hand: %s", s.PlayerHand))
	return strings.Join(lines, "\n")
}
