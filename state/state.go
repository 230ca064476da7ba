package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/database"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateEightsGame, &eights{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

type State interface {
	Next(player *database.Player) (consts.StateID, error)
	Exit(player *database.Player) consts.StateID
}

// Run drives one player through welcome, home and the table until they
// leave or the connection drops.
func Run(player *database.Player) {
	defer func() {
		if err := recover(); err != nil {
			async.PrintStackTrace(err)
		}
		log.Infof("player %s state machine break up.\n", player)
		player.Close()
	}()
	player.State(consts.StateWelcome)
	for {
		state := states[player.GetState()]
		stateID, err := state.Next(player)
		if err != nil {
			if e, ok := err.(consts.Error); ok && !e.Exit {
				continue
			}
			if err != consts.ErrorsExist && err != consts.ErrorsChanClosed {
				log.Error(err)
			}
			state.Exit(player)
			return
		}
		if stateID > 0 {
			player.State(stateID)
		}
	}
}
