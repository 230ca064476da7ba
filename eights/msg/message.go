package msg

import (
	"fmt"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

var Message = MessageWriter{}

// MessageWriter builds the one-line narration kept as a game's last action.
type MessageWriter struct{}

func (m MessageWriter) RoundStarted(round int, firstCard card.Card) string {
	return fmt.Sprintf("Round %d started, first card is %s", round, firstCard)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c card.Card) string {
	return fmt.Sprintf("%s played %s", playerName, c)
}

func (m MessageWriter) PlayerMustPickSuit(playerName string) string {
	return fmt.Sprintf("%s played a wild 8 and must pick a suit", playerName)
}

func (m MessageWriter) PlayerPlayedWild(playerName string, c card.Card, picked suit.Suit) string {
	return fmt.Sprintf("%s played %s and picked %s", playerName, c, picked.Name())
}

func (m MessageWriter) PlayerPickedSuit(playerName string, picked suit.Suit) string {
	return fmt.Sprintf("%s picked %s", playerName, picked.Name())
}

func (m MessageWriter) PlayerDrewCard(playerName string) string {
	return fmt.Sprintf("%s drew a card", playerName)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return fmt.Sprintf("%s passed, the deck is empty", playerName)
}

func (m MessageWriter) WinnerFound(playerName string, points int) string {
	return fmt.Sprintf("%s wins the round and scores %d", playerName, points)
}

func (m MessageWriter) Deadlock(playerName string, points int) string {
	return fmt.Sprintf("No more moves! %s has the lower hand and scores %d", playerName, points)
}

func (m MessageWriter) WentHome() string {
	return "Back at home"
}
