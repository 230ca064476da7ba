package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/event"
	"github.com/ratel-online/eights/eights/msg"
)

// HandSize is dealt to both players at the start of every round.
const HandSize = 7

const defaultPlayerName = "Player"

type Option func(g *Game)

func WithShuffler(shuffler Shuffler) Option {
	return func(g *Game) {
		g.shuffle = shuffler
	}
}

func WithPlayerName(name string) Option {
	return func(g *Game) {
		if name != "" {
			g.playerName = name
		}
	}
}

// Game owns the table of one human against one computer player.
// Every intent is a total function: input that does not apply in the
// current state is ignored and the unchanged snapshot is returned.
type Game struct {
	sync.Mutex
	policy     Policy
	shuffle    Shuffler
	events     *event.Bus
	playerName string

	deck        *Deck
	player      *Hand
	opponent    *Hand
	pile        *Pile
	currentSuit suit.Suit
	currentRank card.Rank
	turn        Actor
	status      Status
	winner      Actor
	scores      Scores
	round       int
	lastAction  string
	generation  uint64
}

func New(policy Policy, options ...Option) *Game {
	g := &Game{
		policy:     policy,
		shuffle:    NewShuffler(rand.New(rand.NewSource(time.Now().UnixNano()))),
		events:     event.NewBus(),
		playerName: defaultPlayerName,
		deck:       NewDeck(nil),
		player:     NewHand(),
		opponent:   NewHand(),
		pile:       NewPile(),
		status:     StatusHome,
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *Game) Events() *event.Bus {
	return g.events
}

func (g *Game) State() State {
	g.Lock()
	defer g.Unlock()
	return g.snapshot()
}

func (g *Game) StartGame() State {
	g.Lock()
	defer g.Unlock()
	g.deal()
	return g.snapshot()
}

// NextRound deals a fresh round, keeping the cumulative scores.
func (g *Game) NextRound() State {
	return g.StartGame()
}

func (g *Game) RestartGame() State {
	return g.NextRound()
}

func (g *Game) GoHome() State {
	g.Lock()
	defer g.Unlock()
	g.status = StatusHome
	g.lastAction = msg.Message.WentHome()
	g.generation++
	return g.snapshot()
}

// IsValidMove reports whether c may be played on the current table.
func (g *Game) IsValidMove(c card.Card) bool {
	g.Lock()
	defer g.Unlock()
	return g.status == StatusPlaying && Playable(c, g.currentSuit, g.currentRank)
}

func (g *Game) PlayCard(cardID string, actor Actor) State {
	g.Lock()
	defer g.Unlock()
	if !g.canAct(actor) {
		return g.snapshot()
	}
	playedCard, ok := g.hand(actor).Find(cardID)
	if !ok || !Playable(playedCard, g.currentSuit, g.currentRank) {
		return g.snapshot()
	}
	g.play(actor, playedCard)
	return g.snapshot()
}

func (g *Game) DrawCard(actor Actor) State {
	g.Lock()
	defer g.Unlock()
	if !g.canAct(actor) {
		return g.snapshot()
	}
	g.draw(actor)
	return g.snapshot()
}

func (g *Game) SelectSuit(picked suit.Suit) State {
	g.Lock()
	defer g.Unlock()
	if g.status != StatusChoosingSuit || !picked.Valid() {
		return g.snapshot()
	}
	g.currentSuit = picked
	g.currentRank = card.WildRank
	g.status = StatusPlaying
	g.turn = Opponent
	g.lastAction = msg.Message.PlayerPickedSuit(g.playerName, picked)
	g.generation++
	g.events.SuitPicked.Emit(event.SuitPickedPayload{
		PlayerName: g.playerName,
		Suit:       picked,
	})
	g.evaluateRoundEnd()
	return g.snapshot()
}

// OpponentTurn applies the policy's move if nothing has changed since the
// snapshot carrying generation was taken. It reports whether a move was made.
func (g *Game) OpponentTurn(generation uint64) (State, bool) {
	g.Lock()
	defer g.Unlock()
	if generation != g.generation || !g.canAct(Opponent) {
		return g.snapshot(), false
	}
	move := g.policy.Play(g.opponent.Cards(), g.currentSuit, g.currentRank)
	if !move.Draw {
		chosenCard, ok := g.opponent.Find(move.Card.ID())
		if ok && Playable(chosenCard, g.currentSuit, g.currentRank) {
			g.play(Opponent, chosenCard)
			return g.snapshot(), true
		}
	}
	g.draw(Opponent)
	return g.snapshot(), true
}

func (g *Game) deal() {
	cards := StandardCards()
	g.shuffle(cards)
	g.deck = NewDeck(cards)
	g.player = NewHand()
	g.player.AddCards(g.deck.Draw(HandSize))
	g.opponent = NewHand()
	g.opponent.AddCards(g.deck.Draw(HandSize))

	firstCard, skipped, _ := g.deck.DrawFirstNonWild()
	g.pile = NewPile()
	g.pile.Add(skipped...)
	g.pile.Add(firstCard)

	g.currentSuit = firstCard.Suit()
	g.currentRank = firstCard.Rank()
	g.turn = Human
	g.status = StatusPlaying
	g.winner = Nobody
	g.round++
	g.lastAction = msg.Message.RoundStarted(g.round, firstCard)
	g.generation++
	g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Round: g.round,
		Card:  firstCard,
	})
}

func (g *Game) play(actor Actor, playedCard card.Card) {
	hand := g.hand(actor)
	hand.RemoveCard(playedCard.ID())
	g.pile.Add(playedCard)
	g.generation++
	g.lastAction = msg.Message.PlayerPlayedCard(g.name(actor), playedCard)
	g.events.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: g.name(actor),
		Card:       playedCard,
	})

	switch {
	case !playedCard.Wild():
		g.currentSuit = playedCard.Suit()
		g.currentRank = playedCard.Rank()
	case actor == Human && !hand.Empty():
		g.status = StatusChoosingSuit
		g.lastAction = msg.Message.PlayerMustPickSuit(g.name(actor))
		return
	case actor == Human:
		// The round is over, there is nothing left to nominate a suit for.
		g.currentSuit = playedCard.Suit()
		g.currentRank = card.WildRank
	default:
		picked := g.policy.PickSuit(hand.Cards())
		if !picked.Valid() {
			picked = suit.Hearts
		}
		g.currentSuit = picked
		g.currentRank = card.WildRank
		g.lastAction = msg.Message.PlayerPlayedWild(g.name(actor), playedCard, picked)
		g.events.SuitPicked.Emit(event.SuitPickedPayload{
			PlayerName: g.name(actor),
			Suit:       picked,
		})
	}
	g.turn = actor.Other()
	g.evaluateRoundEnd()
}

func (g *Game) draw(actor Actor) {
	if drawnCard, ok := g.deck.DrawOne(); ok {
		g.hand(actor).AddCards([]card.Card{drawnCard})
		g.lastAction = msg.Message.PlayerDrewCard(g.name(actor))
		g.events.PlayerDrew.Emit(event.PlayerDrewPayload{
			PlayerName: g.name(actor),
			Card:       drawnCard,
		})
	} else {
		g.lastAction = msg.Message.PlayerPassed(g.name(actor))
		g.events.PlayerPassed.Emit(event.PlayerPassedPayload{
			PlayerName: g.name(actor),
		})
	}
	g.turn = actor.Other()
	g.generation++
	g.evaluateRoundEnd()
}

func (g *Game) evaluateRoundEnd() {
	switch {
	case g.player.Empty():
		g.endRound(Human, false)
	case g.opponent.Empty():
		g.endRound(Opponent, false)
	case g.deadlocked():
		// Equal hands go to the human.
		winner := Human
		if ScoreHand(g.opponent.Cards()) < ScoreHand(g.player.Cards()) {
			winner = Opponent
		}
		g.endRound(winner, true)
	}
}

func (g *Game) deadlocked() bool {
	return g.deck.Empty() &&
		len(g.player.PlayableCards(g.currentSuit, g.currentRank)) == 0 &&
		len(g.opponent.PlayableCards(g.currentSuit, g.currentRank)) == 0
}

func (g *Game) endRound(winner Actor, deadlock bool) {
	points := ScoreHand(g.hand(winner.Other()).Cards())
	g.scores.add(winner, points)
	g.status = StatusGameOver
	g.winner = winner
	if deadlock {
		g.lastAction = msg.Message.Deadlock(g.name(winner), points)
	} else {
		g.lastAction = msg.Message.WinnerFound(g.name(winner), points)
	}
	g.events.RoundEnded.Emit(event.RoundEndedPayload{
		Round:      g.round,
		WinnerName: g.name(winner),
		Points:     points,
		Deadlock:   deadlock,
	})
}

func (g *Game) canAct(actor Actor) bool {
	return g.status == StatusPlaying && g.turn == actor && actor != Nobody
}

func (g *Game) hand(actor Actor) *Hand {
	if actor == Opponent {
		return g.opponent
	}
	return g.player
}

func (g *Game) name(actor Actor) string {
	if actor == Opponent {
		return g.policy.Name()
	}
	return g.playerName
}

func (g *Game) snapshot() State {
	return State{
		Deck:         g.deck.Cards(),
		PlayerHand:   g.player.Cards(),
		OpponentHand: g.opponent.Cards(),
		DiscardPile:  g.pile.Cards(),
		CurrentSuit:  g.currentSuit,
		CurrentRank:  g.currentRank,
		Turn:         g.turn,
		Status:       g.status,
		Winner:       g.winner,
		Scores:       g.scores,
		Round:        g.round,
		LastAction:   g.lastAction,
		PlayerName:   g.playerName,
		OpponentName: g.policy.Name(),
		Generation:   g.generation,
	}
}
