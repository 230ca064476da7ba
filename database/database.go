package database

import (
	"sort"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	modelx "github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/util/async"
)

var players = hashmap.New()
var eightsGames = hashmap.New()

func Connected(conn *network.Conn, info *modelx.AuthInfo, ip string) *Player {
	player := &Player{
		ID:    info.ID,
		IP:    ip,
		Name:  info.Name,
		Score: info.Score,
	}
	player.Conn(conn)
	players.Set(info.ID, player)
	return player
}

func Disconnected(player *Player) {
	players.Del(player.ID)
}

func GetPlayer(playerID int64) *Player {
	if v, ok := players.Get(playerID); ok {
		return v.(*Player)
	}
	return nil
}

func GetPlayers() []*Player {
	list := make([]*Player, 0)
	players.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Player))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

func SetEightsGame(session *EightsGame) {
	eightsGames.Set(session.PlayerID, session)
}

func GetEightsGame(playerID int64) *EightsGame {
	if v, ok := eightsGames.Get(playerID); ok {
		return v.(*EightsGame)
	}
	return nil
}

func DeleteEightsGame(playerID int64) {
	eightsGames.Del(playerID)
}

func CountEightsGames() int {
	count := 0
	eightsGames.Foreach(func(e *hashmap.Entry) {
		count++
	})
	return count
}

// StartMonitor logs the number of connected players and open tables every interval.
func StartMonitor(interval time.Duration) {
	async.Async(func() {
		for {
			time.Sleep(interval)
			online := GetPlayers()
			names := make([]string, 0, len(online))
			for _, player := range online {
				names = append(names, player.String())
			}
			log.Infof("online players %d %v, tables %d\n", len(online), names, CountEightsGames())
		}
	})
}
