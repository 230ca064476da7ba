package game

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

func Playable(candidateCard card.Card, currentSuit suit.Suit, currentRank card.Rank) bool {
	if candidateCard.Rank() == card.WildRank {
		return true
	}
	return candidateCard.Suit() == currentSuit || candidateCard.Rank() == currentRank
}
