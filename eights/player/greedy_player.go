package player

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
)

// fallbackSuit is nominated when no card is left to count.
const fallbackSuit = suit.Hearts

type greedyPlayer struct {
	basicPlayer
}

// NewGreedyPlayer plays the first legal card in hand order and draws otherwise.
func NewGreedyPlayer(name string) game.Policy {
	return greedyPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p greedyPlayer) Play(hand []card.Card, currentSuit suit.Suit, currentRank card.Rank) game.Move {
	for _, candidate := range hand {
		if game.Playable(candidate, currentSuit, currentRank) {
			return game.PlayMove(candidate)
		}
	}
	return game.DrawMove()
}

// PickSuit nominates the most frequent suit in hand; ties go to the earlier suit in suit.All.
func (p greedyPlayer) PickSuit(hand []card.Card) suit.Suit {
	if len(hand) == 0 {
		return fallbackSuit
	}

	suitCounts := make(map[suit.Suit]int)
	for _, c := range hand {
		suitCounts[c.Suit()]++
	}

	var (
		mostFrequentSuit       = fallbackSuit
		mostFrequentSuitAmount int
	)
	for _, availableSuit := range suit.All {
		if amount := suitCounts[availableSuit]; amount > mostFrequentSuitAmount {
			mostFrequentSuitAmount = amount
			mostFrequentSuit = availableSuit
		}
	}

	return mostFrequentSuit
}
