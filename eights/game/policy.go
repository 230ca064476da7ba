package game

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

// Move is either a card to play or a draw.
type Move struct {
	Card card.Card
	Draw bool
}

func PlayMove(c card.Card) Move {
	return Move{Card: c}
}

func DrawMove() Move {
	return Move{Draw: true}
}

// Policy decides for the computer player.
type Policy interface {
	Name() string
	Play(hand []card.Card, currentSuit suit.Suit, currentRank card.Rank) Move
	// PickSuit is called after a wild card with the hand that remains.
	PickSuit(hand []card.Card) suit.Suit
}
