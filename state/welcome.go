package state

import (
	"github.com/ratel-online/eights/config"
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/database"
	"github.com/ratel-online/eights/eights/game"
	computer "github.com/ratel-online/eights/eights/player"
	"github.com/ratel-online/eights/render"
)

type welcome struct{}

func (*welcome) Next(player *database.Player) (consts.StateID, error) {
	err := render.Welcome(player)
	if err != nil {
		return 0, err
	}
	if database.GetEightsGame(player.ID) == nil {
		cfg := config.Get()
		session := database.NewEightsGame(
			player.ID,
			computer.NewOpponent(cfg.OpponentName),
			cfg.OpponentDelay,
			func(state game.State) {
				_ = render.Table(player, state)
			},
			game.WithPlayerName(player.Name),
		)
		database.SetEightsGame(session)
	}
	return consts.StateHome, nil
}

func (*welcome) Exit(player *database.Player) consts.StateID {
	return 0
}
