package render

import (
	"testing"

	"github.com/fatih/color"
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
	"github.com/stretchr/testify/require"
)

func TestTableText(t *testing.T) {
	color.NoColor = true

	base := game.State{
		PlayerHand:   []card.Card{card.New(suit.Hearts, card.Two), card.New(suit.Spades, card.King)},
		OpponentHand: []card.Card{card.New(suit.Clubs, card.Ace)},
		DiscardPile:  []card.Card{card.New(suit.Hearts, card.Nine)},
		CurrentSuit:  suit.Hearts,
		CurrentRank:  card.Nine,
		Round:        1,
		OpponentName: "Computer",
	}

	scenarios := []struct {
		description string
		status      game.Status
		turn        game.Actor
		expected    []string
	}{
		{
			description: "human_turn_lists_playable_cards",
			status:      game.StatusPlaying,
			turn:        game.Human,
			expected:    []string{"[9♥]", "follow hearts", "Your turn, playable: 2H", "Computer    1 card(s)"},
		},
		{
			description: "opponent_turn",
			status:      game.StatusPlaying,
			turn:        game.Opponent,
			expected:    []string{"Computer is thinking..."},
		},
		{
			description: "choosing_suit",
			status:      game.StatusChoosingSuit,
			turn:        game.Human,
			expected:    []string{"Pick a suit: suit hearts | diamonds | clubs | spades"},
		},
		{
			description: "round_over",
			status:      game.StatusGameOver,
			expected:    []string{"Round over"},
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			state := base
			state.Status = scenario.status
			state.Turn = scenario.turn
			text := TableText(state)
			for _, expected := range scenario.expected {
				require.Contains(t, text, expected)
			}
		})
	}
}
