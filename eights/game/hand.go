package game

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, HandSize)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Find(id string) (card.Card, bool) {
	for _, cardInHand := range h.cards {
		if cardInHand.ID() == id {
			return cardInHand, true
		}
	}
	return card.Card{}, false
}

func (h *Hand) PlayableCards(currentSuit suit.Suit, currentRank card.Rank) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, currentSuit, currentRank) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// RemoveCard drops the card with the given id, keeping the order of the rest.
func (h *Hand) RemoveCard(id string) (card.Card, bool) {
	for index, cardInHand := range h.cards {
		if cardInHand.ID() == id {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return cardInHand, true
		}
	}
	return card.Card{}, false
}

func (h *Hand) Size() int {
	return len(h.cards)
}
