package state

import (
	"strings"

	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/database"
	"github.com/ratel-online/eights/render"
)

type home struct{}

func (*home) Next(player *database.Player) (consts.StateID, error) {
	session := database.GetEightsGame(player.ID)
	if session == nil {
		return 0, player.WriteError(consts.ErrorsGameInvalid)
	}
	err := render.HomeOptions(player, session.State())
	if err != nil {
		return 0, player.WriteError(err)
	}
	selected, err := player.AskForString()
	if err != nil {
		return 0, player.WriteError(err)
	}
	switch strings.ToLower(selected) {
	case "1", "start":
		session.Start()
		return consts.StateEightsGame, nil
	}
	return 0, player.WriteError(consts.ErrorsInputInvalid)
}

func (*home) Exit(player *database.Player) consts.StateID {
	return 0
}
