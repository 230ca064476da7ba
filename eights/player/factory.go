package player

import (
	"github.com/ratel-online/eights/eights/game"
)

const DefaultOpponentName = "Computer"

// NewOpponent builds the computer player used by every session.
func NewOpponent(name string) game.Policy {
	if name == "" {
		name = DefaultOpponentName
	}
	return NewGreedyPlayer(name)
}
