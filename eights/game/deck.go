package game

import (
	"math/rand"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

// Shuffler permutes cards in place.
type Shuffler func(cards []card.Card)

// NewShuffler returns a Fisher-Yates shuffle drawing from source.
func NewShuffler(source *rand.Rand) Shuffler {
	return func(cards []card.Card) {
		source.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	}
}

// StandardCards returns the 52 cards in a fixed order: suits by priority, A to K within a suit.
func StandardCards() []card.Card {
	cards := make([]card.Card, 0, len(suit.All)*len(card.Ranks))
	for _, s := range suit.All {
		for _, r := range card.Ranks {
			cards = append(cards, card.New(s, r))
		}
	}
	return cards
}

// Deck is the draw pile. Cards leave from the top (index 0) and it is never refilled.
type Deck struct {
	cards []card.Card
}

func NewDeck(cards []card.Card) *Deck {
	deck := &Deck{cards: make([]card.Card, len(cards))}
	copy(deck.cards, cards)
	return deck
}

func (d *Deck) DrawOne() (card.Card, bool) {
	cards := d.Draw(1)
	if len(cards) == 0 {
		return card.Card{}, false
	}
	return cards[0], true
}

// Draw takes up to amount cards from the top.
func (d *Deck) Draw(amount int) []card.Card {
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	if amount <= 0 {
		return []card.Card{}
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards
}

// DrawFirstNonWild takes the topmost non-wild card together with every wild
// card above it. When the deck holds only wild cards the last of them is
// returned as the card and ok is false.
func (d *Deck) DrawFirstNonWild() (first card.Card, skipped []card.Card, ok bool) {
	for index, candidate := range d.cards {
		if candidate.Wild() {
			continue
		}
		skipped = make([]card.Card, index)
		copy(skipped, d.cards[:index])
		d.cards = d.cards[index+1:]
		return candidate, skipped, true
	}
	if len(d.cards) == 0 {
		return card.Card{}, nil, false
	}
	all := d.Draw(len(d.cards))
	return all[len(all)-1], all[:len(all)-1], false
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Size() int {
	return len(d.cards)
}
