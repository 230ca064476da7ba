package model

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/game"
)

type Card struct {
	ID    string `json:"id"`
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Wild  bool   `json:"wild"`
	Label string `json:"label"`
}

type Scores struct {
	Player   int `json:"player"`
	Opponent int `json:"opponent"`
}

// Table is what the client receives for the json command. The opponent's
// hand and the deck are sent as counts only.
type Table struct {
	Round        int    `json:"round"`
	Status       string `json:"status"`
	Turn         string `json:"turn"`
	Winner       string `json:"winner"`
	CurrentSuit  string `json:"currentSuit"`
	CurrentRank  string `json:"currentRank"`
	Top          *Card  `json:"top"`
	Hand         []Card `json:"hand"`
	Playable     []Card `json:"playable"`
	OpponentName string `json:"opponentName"`
	OpponentSize int    `json:"opponentSize"`
	DeckSize     int    `json:"deckSize"`
	PileSize     int    `json:"pileSize"`
	Scores       Scores `json:"scores"`
	LastAction   string `json:"lastAction"`
}

func NewCard(c card.Card) Card {
	return Card{
		ID:    c.ID(),
		Suit:  c.Suit().Name(),
		Rank:  c.Rank().String(),
		Wild:  c.Wild(),
		Label: c.String(),
	}
}

func NewCards(cards []card.Card) []Card {
	list := make([]Card, 0, len(cards))
	for _, c := range cards {
		list = append(list, NewCard(c))
	}
	return list
}

func NewTable(state game.State) Table {
	table := Table{
		Round:        state.Round,
		Status:       state.Status.String(),
		Turn:         state.Turn.String(),
		Winner:       state.Winner.String(),
		Hand:         NewCards(state.PlayerHand),
		Playable:     make([]Card, 0),
		OpponentName: state.OpponentName,
		OpponentSize: len(state.OpponentHand),
		DeckSize:     len(state.Deck),
		PileSize:     len(state.DiscardPile),
		Scores: Scores{
			Player:   state.Scores.Player,
			Opponent: state.Scores.Opponent,
		},
		LastAction: state.LastAction,
	}
	if top, ok := state.Top(); ok {
		topCard := NewCard(top)
		table.Top = &topCard
		table.CurrentSuit = state.CurrentSuit.Name()
		table.CurrentRank = state.CurrentRank.String()
	}
	if state.Status == game.StatusPlaying && state.Turn == game.Human {
		for _, c := range state.PlayerHand {
			if game.Playable(c, state.CurrentSuit, state.CurrentRank) {
				table.Playable = append(table.Playable, NewCard(c))
			}
		}
	}
	return table
}
