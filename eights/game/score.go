package game

import (
	"github.com/ratel-online/eights/eights/card"
)

const wildPoints = 50

func Points(r card.Rank) int {
	switch r {
	case card.WildRank:
		return wildPoints
	case card.Jack, card.Queen, card.King:
		return 10
	default:
		return int(r)
	}
}

// ScoreHand is the penalty value of the cards left in a hand.
func ScoreHand(cards []card.Card) int {
	score := 0
	for _, c := range cards {
		score += Points(c.Rank())
	}
	return score
}
