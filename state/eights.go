package state

import (
	"strings"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/database"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/render"
)

type eights struct{}

type command struct {
	name string
	arg  string
}

// parseCommand reads one line of input. A bare card id is a play.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, consts.ErrorsInputInvalid
	}
	name := strings.ToLower(fields[0])
	switch name {
	case consts.CommandPlay, consts.CommandSuit:
		if len(fields) != 2 {
			return command{}, consts.ErrorsInputInvalid
		}
		return command{name: name, arg: fields[1]}, nil
	case consts.CommandDraw, consts.CommandNext, consts.CommandRestart, consts.CommandHome,
		consts.CommandState, consts.CommandJSON, consts.CommandHistory, consts.CommandHelp:
		if len(fields) != 1 {
			return command{}, consts.ErrorsInputInvalid
		}
		return command{name: name}, nil
	}
	if len(fields) == 1 {
		return command{name: consts.CommandPlay, arg: fields[0]}, nil
	}
	return command{}, consts.ErrorsInputInvalid
}

func (*eights) Next(player *database.Player) (consts.StateID, error) {
	session := database.GetEightsGame(player.ID)
	if session == nil {
		return 0, player.WriteError(consts.ErrorsGameInvalid)
	}
	err := render.Table(player, session.State())
	if err != nil {
		return 0, player.WriteError(err)
	}
	for {
		line, err := player.AskForString(consts.PlayTimeout)
		if err == consts.ErrorsTimeout {
			log.Infof("player %s idle, sent home\n", player)
			session.Home()
			_ = player.WriteError(err)
			return consts.StateHome, nil
		}
		if err != nil {
			return 0, player.WriteError(err)
		}
		cmd, err := parseCommand(line)
		if err != nil {
			_ = player.WriteError(err)
			continue
		}
		next, err := apply(player, session, cmd)
		if err != nil {
			if e, ok := err.(consts.Error); ok && !e.Exit {
				_ = player.WriteError(err)
				continue
			}
			return 0, err
		}
		if next > 0 {
			return next, nil
		}
	}
}

func (*eights) Exit(player *database.Player) consts.StateID {
	if session := database.GetEightsGame(player.ID); session != nil {
		session.Home()
	}
	return consts.StateHome
}

func apply(player *database.Player, session *database.EightsGame, cmd command) (consts.StateID, error) {
	var (
		state    game.State
		accepted = true
	)
	switch cmd.name {
	case consts.CommandPlay:
		state, accepted = session.Play(strings.ToUpper(cmd.arg))
	case consts.CommandDraw:
		state, accepted = session.Draw()
	case consts.CommandSuit:
		picked, err := suit.ByName(cmd.arg)
		if err != nil {
			return 0, consts.ErrorsSuitInvalid
		}
		state, accepted = session.PickSuit(picked)
	case consts.CommandNext, consts.CommandRestart:
		state = session.NextRound()
	case consts.CommandHome:
		session.Home()
		return consts.StateHome, nil
	case consts.CommandState:
		state = session.State()
	case consts.CommandJSON:
		return 0, render.TableJSON(player, session.State())
	case consts.CommandHistory:
		return 0, render.History(player, session.History())
	case consts.CommandHelp:
		return 0, render.Help(player)
	}
	if !accepted {
		return 0, consts.ErrorsMoveRejected
	}
	return 0, render.Table(player, state)
}
