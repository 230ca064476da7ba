package game

import (
	"github.com/ratel-online/eights/eights/card"
)

// Pile is the discard pile.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 52)}
}

func (p *Pile) Add(cards ...card.Card) {
	p.cards = append(p.cards, cards...)
}

// Cards lists the pile most recent first.
func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	for index, c := range p.cards {
		cards[len(p.cards)-1-index] = c
	}
	return cards
}

func (p *Pile) Top() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}

func (p *Pile) Size() int {
	return len(p.cards)
}
