package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/event"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/player"
	"github.com/stretchr/testify/require"
)

// stacked puts the given cards on top of the deck in order and leaves the rest in base order.
func stacked(ids ...string) game.Shuffler {
	return func(cards []card.Card) {
		byID := make(map[string]card.Card, len(cards))
		for _, c := range cards {
			byID[c.ID()] = c
		}
		ordered := make([]card.Card, 0, len(cards))
		used := make(map[string]bool, len(ids))
		for _, id := range ids {
			ordered = append(ordered, byID[id])
			used[id] = true
		}
		for _, c := range cards {
			if !used[c.ID()] {
				ordered = append(ordered, c)
			}
		}
		copy(cards, ordered)
	}
}

func requirePartition(t *testing.T, state game.State) {
	t.Helper()
	all := make([]card.Card, 0, 52)
	all = append(all, state.Deck...)
	all = append(all, state.PlayerHand...)
	all = append(all, state.OpponentHand...)
	all = append(all, state.DiscardPile...)
	require.ElementsMatch(t, game.StandardCards(), all)
}

func ids(cards []card.Card) []string {
	result := make([]string, 0, len(cards))
	for _, c := range cards {
		result = append(result, c.ID())
	}
	return result
}

func newStackedGame(ids ...string) *game.Game {
	return game.New(player.NewGreedyPlayer("Computer"), game.WithShuffler(stacked(ids...)), game.WithPlayerName("Annie"))
}

func TestNewGameStartsAtHome(t *testing.T) {
	g := game.New(player.NewGreedyPlayer("Computer"))
	state := g.State()
	require.Equal(t, game.StatusHome, state.Status)
	require.Equal(t, 0, state.Round)
	require.Equal(t, "Player", state.PlayerName)
	require.Equal(t, "Computer", state.OpponentName)
}

func TestStartGame(t *testing.T) {
	g := newStackedGame(
		"AH", "2H", "3H", "4H", "5H", "6H", "7H",
		"9H", "10H", "JH", "QH", "KH", "AD", "2D",
		"8C", "8S", "5C",
	)
	state := g.StartGame()

	require.Equal(t, []string{"AH", "2H", "3H", "4H", "5H", "6H", "7H"}, ids(state.PlayerHand))
	require.Equal(t, []string{"9H", "10H", "JH", "QH", "KH", "AD", "2D"}, ids(state.OpponentHand))
	require.Equal(t, []string{"5C", "8S", "8C"}, ids(state.DiscardPile))
	require.Len(t, state.Deck, 52-14-3)
	require.Equal(t, suit.Clubs, state.CurrentSuit)
	require.Equal(t, card.Five, state.CurrentRank)
	require.Equal(t, game.Human, state.Turn)
	require.Equal(t, game.StatusPlaying, state.Status)
	require.Equal(t, game.Nobody, state.Winner)
	require.Equal(t, 1, state.Round)
	require.Equal(t, "Round 1 started, first card is 5♣", state.LastAction)
	requirePartition(t, state)

	top, ok := state.Top()
	require.True(t, ok)
	require.Equal(t, card.New(suit.Clubs, card.Five), top)
}

func TestRoundCounterAndScoresPersist(t *testing.T) {
	g := game.New(player.NewGreedyPlayer("Computer"))
	require.Equal(t, 1, g.StartGame().Round)
	require.Equal(t, 2, g.NextRound().Round)
	g.GoHome()
	state := g.StartGame()
	require.Equal(t, 3, state.Round)
	requirePartition(t, state)
}

func TestRejectedIntentsLeaveStateUnchanged(t *testing.T) {
	g := newStackedGame(
		"9H", "2C", "3S", "5S", "6S", "7S", "JS",
		"8C", "2D", "3D", "4D", "5D", "6D", "7H",
		"4H",
	)
	before := g.StartGame()

	scenarios := []struct {
		description string
		intent      func() game.State
	}{
		{description: "card_not_in_hand", intent: func() game.State { return g.PlayCard("8C", game.Human) }},
		{description: "unknown_card", intent: func() game.State { return g.PlayCard("ZZ", game.Human) }},
		{description: "illegal_card", intent: func() game.State { return g.PlayCard("2C", game.Human) }},
		{description: "opponent_out_of_turn", intent: func() game.State { return g.PlayCard("8C", game.Opponent) }},
		{description: "draw_out_of_turn", intent: func() game.State { return g.DrawCard(game.Opponent) }},
		{description: "nobody_draws", intent: func() game.State { return g.DrawCard(game.Nobody) }},
		{description: "suit_without_wild", intent: func() game.State { return g.SelectSuit(suit.Spades) }},
		{description: "opponent_turn_when_human_is_to_play", intent: func() game.State {
			state, applied := g.OpponentTurn(before.Generation)
			require.False(t, applied)
			return state
		}},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, before, scenario.intent())
		})
	}
}

func TestIntentsAtHomeAreIgnored(t *testing.T) {
	g := game.New(player.NewGreedyPlayer("Computer"))
	before := g.State()
	require.Equal(t, before, g.DrawCard(game.Human))
	require.Equal(t, before, g.PlayCard("AH", game.Human))
	require.False(t, g.IsValidMove(card.New(suit.Hearts, card.Eight)))
}

func TestPlayMatchingCard(t *testing.T) {
	g := newStackedGame(
		"9H", "2C", "3S", "5S", "6S", "7S", "JS",
		"8C", "2D", "3D", "4D", "5D", "6D", "7H",
		"4H",
	)
	g.StartGame()
	require.True(t, g.IsValidMove(card.New(suit.Hearts, card.Nine)))
	require.False(t, g.IsValidMove(card.New(suit.Clubs, card.Two)))

	state := g.PlayCard("9H", game.Human)
	require.Equal(t, suit.Hearts, state.CurrentSuit)
	require.Equal(t, card.Nine, state.CurrentRank)
	require.Equal(t, game.Opponent, state.Turn)
	require.Equal(t, []string{"9H", "4H"}, ids(state.DiscardPile))
	require.Equal(t, "Annie played 9♥", state.LastAction)
	requirePartition(t, state)
}

func TestOpponentWildResolvesInline(t *testing.T) {
	g := newStackedGame(
		"9H", "2C", "3S", "5S", "6S", "7S", "JS",
		"8C", "2D", "3D", "4D", "5C", "6C", "7H",
		"4H",
	)
	listener := event.NewDummyListener()
	g.Events().AddListener(listener)

	g.StartGame()
	state := g.PlayCard("9H", game.Human)
	state, applied := g.OpponentTurn(state.Generation)
	require.True(t, applied)

	require.Equal(t, game.StatusPlaying, state.Status)
	require.Equal(t, game.Human, state.Turn)
	require.Equal(t, suit.Diamonds, state.CurrentSuit)
	require.Equal(t, card.WildRank, state.CurrentRank)
	require.Equal(t, "Computer played 8♣ and picked diamonds", state.LastAction)
	requirePartition(t, state)

	require.Equal(t, []interface{}{
		event.FirstCardPlayedPayload{Round: 1, Card: card.New(suit.Hearts, card.Four)},
		event.CardPlayedPayload{PlayerName: "Annie", Card: card.New(suit.Hearts, card.Nine)},
		event.CardPlayedPayload{PlayerName: "Computer", Card: card.New(suit.Clubs, card.Eight)},
		event.SuitPickedPayload{PlayerName: "Computer", Suit: suit.Diamonds},
	}, listener.ReceivedPayloads())
}

func TestHumanWildSuspendsTurn(t *testing.T) {
	g := newStackedGame(
		"8H", "2C", "3C", "4C", "5C", "6C", "7C",
		"9S", "10S", "JS", "QS", "KS", "AS", "2S",
		"4H",
	)
	g.StartGame()

	state := g.PlayCard("8H", game.Human)
	require.Equal(t, game.StatusChoosingSuit, state.Status)
	require.Equal(t, game.Human, state.Turn)
	require.False(t, g.IsValidMove(card.New(suit.Clubs, card.Two)))

	// nothing but a suit choice is accepted now
	require.Equal(t, state, g.PlayCard("2C", game.Human))
	require.Equal(t, state, g.DrawCard(game.Human))
	_, applied := g.OpponentTurn(state.Generation)
	require.False(t, applied)
	require.Equal(t, state, g.SelectSuit(suit.Suit(9)))

	state = g.SelectSuit(suit.Spades)
	require.Equal(t, game.StatusPlaying, state.Status)
	require.Equal(t, game.Opponent, state.Turn)
	require.Equal(t, suit.Spades, state.CurrentSuit)
	require.Equal(t, card.WildRank, state.CurrentRank)

	state, applied = g.OpponentTurn(state.Generation)
	require.True(t, applied)
	require.Equal(t, []string{"9S", "8H", "4H"}, ids(state.DiscardPile))
	require.Equal(t, suit.Spades, state.CurrentSuit)
	require.Equal(t, card.Nine, state.CurrentRank)
	require.Equal(t, game.Human, state.Turn)
	requirePartition(t, state)
}

func TestDrawCard(t *testing.T) {
	g := newStackedGame(
		"2C", "3C", "5C", "6C", "7C", "9C", "JC",
		"9S", "10S", "JS", "QS", "KS", "AS", "2S",
		"4H", "KD",
	)
	g.StartGame()

	state := g.DrawCard(game.Human)
	require.Equal(t, game.Opponent, state.Turn)
	require.Len(t, state.PlayerHand, 8)
	require.Equal(t, card.New(suit.Diamonds, card.King), state.PlayerHand[7])
	require.Equal(t, "Annie drew a card", state.LastAction)
	requirePartition(t, state)

	state, applied := g.OpponentTurn(state.Generation)
	require.True(t, applied)
	require.Equal(t, game.Human, state.Turn)
	require.Len(t, state.OpponentHand, 8)
	requirePartition(t, state)
}

func TestGoHomeWhileChoosingSuit(t *testing.T) {
	g := newStackedGame(
		"8H", "2C", "3C", "4C", "5C", "6C", "7C",
		"9S", "10S", "JS", "QS", "KS", "AS", "2S",
		"4H",
	)
	g.StartGame()
	state := g.PlayCard("8H", game.Human)
	require.Equal(t, game.StatusChoosingSuit, state.Status)

	state = g.GoHome()
	require.Equal(t, game.StatusHome, state.Status)
	require.Equal(t, 1, state.Round)
	require.Equal(t, state, g.SelectSuit(suit.Clubs))

	state = g.StartGame()
	require.Equal(t, game.StatusPlaying, state.Status)
	require.Equal(t, 2, state.Round)
	require.Len(t, state.PlayerHand, game.HandSize)
	require.Len(t, state.OpponentHand, game.HandSize)
	requirePartition(t, state)
}

func TestStaleOpponentTurnIsDropped(t *testing.T) {
	g := game.New(player.NewGreedyPlayer("Computer"))
	g.StartGame()
	scheduled := g.DrawCard(game.Human)
	require.Equal(t, game.Opponent, scheduled.Turn)

	restarted := g.NextRound()
	state, applied := g.OpponentTurn(scheduled.Generation)
	require.False(t, applied)
	require.Equal(t, restarted, state)

	g.DrawCard(game.Human)
	g.GoHome()
	_, applied = g.OpponentTurn(scheduled.Generation)
	require.False(t, applied)
}

func TestOpponentTurnAppliesOnce(t *testing.T) {
	g := game.New(player.NewGreedyPlayer("Computer"))
	g.StartGame()
	scheduled := g.DrawCard(game.Human)

	_, applied := g.OpponentTurn(scheduled.Generation)
	require.True(t, applied)
	_, applied = g.OpponentTurn(scheduled.Generation)
	require.False(t, applied)
}

type illegalPolicy struct{}

func (illegalPolicy) Name() string { return "Cheater" }

func (illegalPolicy) Play([]card.Card, suit.Suit, card.Rank) game.Move {
	return game.PlayMove(card.New(suit.Hearts, card.Ace))
}

func (illegalPolicy) PickSuit([]card.Card) suit.Suit { return suit.Hearts }

func TestIllegalPolicyMoveFallsBackToDraw(t *testing.T) {
	g := game.New(illegalPolicy{}, game.WithShuffler(stacked(
		"2C", "3C", "5C", "6C", "7C", "9C", "JC",
		"9S", "10S", "JS", "QS", "KS", "2S", "3S",
		"4D", "AH",
	)))
	g.StartGame()
	state := g.DrawCard(game.Human)
	state, applied := g.OpponentTurn(state.Generation)
	require.True(t, applied)
	require.Len(t, state.OpponentHand, game.HandSize+1)
	require.Equal(t, game.Human, state.Turn)
	requirePartition(t, state)
}

// TestRoundsTerminate plays whole rounds with both sides choosing the first
// legal card and checks the invariants after every transition.
func TestRoundsTerminate(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := game.New(
			player.NewGreedyPlayer("Computer"),
			game.WithShuffler(game.NewShuffler(rand.New(rand.NewSource(seed)))),
		)
		state := g.StartGame()
		requirePartition(t, state)

		for steps := 0; state.Status != game.StatusGameOver; steps++ {
			require.Less(t, steps, 500, "seed %d did not terminate", seed)
			previous := state

			switch {
			case state.Status == game.StatusChoosingSuit:
				state = g.SelectSuit(suit.Spades)
				require.Equal(t, card.WildRank, state.CurrentRank)
				if state.Status == game.StatusPlaying {
					require.Equal(t, game.Opponent, state.Turn)
				}
			case state.Turn == game.Human:
				var playable *card.Card
				for _, c := range state.PlayerHand {
					if g.IsValidMove(c) {
						c := c
						playable = &c
						break
					}
				}
				if playable != nil {
					state = g.PlayCard(playable.ID(), game.Human)
					require.Equal(t, len(previous.PlayerHand)-1, len(state.PlayerHand))
				} else {
					state = g.DrawCard(game.Human)
				}
				if state.Status == game.StatusPlaying {
					require.Equal(t, game.Opponent, state.Turn)
				}
			default:
				var applied bool
				state, applied = g.OpponentTurn(state.Generation)
				require.True(t, applied)
				if state.Status == game.StatusPlaying {
					require.Equal(t, game.Human, state.Turn)
				}
			}

			require.Greater(t, state.Generation, previous.Generation)
			requirePartition(t, state)
		}

		require.NotEqual(t, game.Nobody, state.Winner)
		loser := state.Winner.Other()
		points := game.ScoreHand(state.Hand(loser))
		if state.Winner == game.Human {
			require.Equal(t, game.Scores{Player: points}, state.Scores)
		} else {
			require.Equal(t, game.Scores{Opponent: points}, state.Scores)
		}
	}
}
