package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ratel-online/eights/database"
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/msg"
	"github.com/ratel-online/eights/model"
)

func Welcome(player *database.Player) error {
	return player.WriteString(fmt.Sprintf("Hi %s, welcome to Crazy Eights! \n", player.Name))
}

func HomeOptions(player *database.Player, state game.State) error {
	buf := bytes.Buffer{}
	if state.Round > 0 {
		buf.WriteString(fmt.Sprintf("Score: you %d, %s %d\n", state.Scores.Player, state.OpponentName, state.Scores.Opponent))
	}
	buf.WriteString("1.Start\n")
	buf.WriteString("Type exit to leave\n")
	return player.WriteString(buf.String())
}

var helpLines = []string{
	"play <card>  play a card, e.g. play 10H (the word play is optional)",
	"draw         draw a card, or pass when the deck is empty",
	"suit <suit>  name the suit after an 8: hearts, diamonds, clubs or spades",
	"next         deal the next round once this one is over",
	"home         back to the menu",
	"state | json | history",
}

func Help(player *database.Player) error {
	return player.WriteString(msg.Sprintlns(helpLines))
}

func Table(player *database.Player, state game.State) error {
	return player.WriteString(TableText(state))
}

func TableJSON(player *database.Player, state game.State) error {
	return player.WriteObject(model.NewTable(state))
}

func History(player *database.Player, lines []string) error {
	if len(lines) == 0 {
		return player.WriteString("Nothing happened yet\n")
	}
	buf := bytes.Buffer{}
	for i, line := range lines {
		buf.WriteString(msg.Sprintfln("%3d. %s", i+1, line))
	}
	return player.WriteString(buf.String())
}

// TableText draws the table as the human sees it.
func TableText(state game.State) string {
	buf := bytes.Buffer{}
	if state.LastAction != "" {
		buf.WriteString(state.LastAction + "\n")
	}
	buf.WriteString(fmt.Sprintf("%-12s%d\n", "Round", state.Round))
	if top, ok := state.Top(); ok {
		buf.WriteString(fmt.Sprintf("%-12s%s  follow %s\n", "Top", top.Paint(), state.CurrentSuit.Paint(state.CurrentSuit.Name())))
	}
	buf.WriteString(fmt.Sprintf("%-12s%d\n", "Deck", len(state.Deck)))
	buf.WriteString(fmt.Sprintf("%-12s%d card(s)\n", state.OpponentName, len(state.OpponentHand)))
	buf.WriteString(fmt.Sprintf("%-12s%s\n", "Your hand", paint(state.PlayerHand)))
	buf.WriteString(fmt.Sprintf("%-12s%d - %d\n", "Score", state.Scores.Player, state.Scores.Opponent))

	switch state.Status {
	case game.StatusChoosingSuit:
		names := make([]string, 0, len(suit.All))
		for _, s := range suit.All {
			names = append(names, s.Paint(s.Name()))
		}
		buf.WriteString(fmt.Sprintf("Pick a suit: suit %s\n", strings.Join(names, " | ")))
	case game.StatusGameOver:
		buf.WriteString("Round over, type next for another round or home\n")
	case game.StatusPlaying:
		if state.Turn == game.Human {
			playable := make([]card.Card, 0)
			for _, c := range state.PlayerHand {
				if game.Playable(c, state.CurrentSuit, state.CurrentRank) {
					playable = append(playable, c)
				}
			}
			if len(playable) == 0 {
				buf.WriteString("Your turn, nothing matches: draw\n")
			} else {
				buf.WriteString(fmt.Sprintf("Your turn, playable: %s\n", ids(playable)))
			}
		} else {
			buf.WriteString(fmt.Sprintf("%s is thinking...\n", state.OpponentName))
		}
	}
	return buf.String()
}

func paint(cards []card.Card) string {
	painted := make([]string, 0, len(cards))
	for _, c := range cards {
		painted = append(painted, c.Paint())
	}
	return strings.Join(painted, " ")
}

func ids(cards []card.Card) string {
	list := make([]string, 0, len(cards))
	for _, c := range cards {
		list = append(list, c.ID())
	}
	return strings.Join(list, " ")
}
