package database

import (
	"fmt"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/event"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/msg"
)

// EightsGame is one player's table against the computer. It forwards
// intents to the engine and runs the computer's turn after a delay.
type EightsGame struct {
	PlayerID int64      `json:"playerId"`
	Game     *game.Game `json:"-"`

	delay    time.Duration
	onUpdate func(state game.State)

	timerLock sync.Mutex
	timer     *time.Timer

	historyLock sync.Mutex
	history     []string
}

// NewEightsGame wires a session. onUpdate receives every state the
// computer produces on its own, it may be nil.
func NewEightsGame(playerID int64, opponent game.Policy, delay time.Duration, onUpdate func(state game.State), options ...game.Option) *EightsGame {
	eg := &EightsGame{
		PlayerID: playerID,
		Game:     game.New(opponent, options...),
		delay:    delay,
		onUpdate: onUpdate,
	}
	eg.Game.Events().AddListener(eg)
	return eg
}

func (eg *EightsGame) State() game.State {
	return eg.Game.State()
}

func (eg *EightsGame) Start() game.State {
	return eg.schedule(eg.Game.StartGame())
}

func (eg *EightsGame) NextRound() game.State {
	return eg.schedule(eg.Game.NextRound())
}

func (eg *EightsGame) Restart() game.State {
	return eg.schedule(eg.Game.RestartGame())
}

func (eg *EightsGame) Home() game.State {
	eg.stop()
	return eg.Game.GoHome()
}

// Play reports false when the engine ignored the move.
func (eg *EightsGame) Play(cardID string) (game.State, bool) {
	before := eg.Game.State().Generation
	state := eg.Game.PlayCard(cardID, game.Human)
	return eg.schedule(state), state.Generation != before
}

func (eg *EightsGame) Draw() (game.State, bool) {
	before := eg.Game.State().Generation
	state := eg.Game.DrawCard(game.Human)
	return eg.schedule(state), state.Generation != before
}

func (eg *EightsGame) PickSuit(picked suit.Suit) (game.State, bool) {
	before := eg.Game.State().Generation
	state := eg.Game.SelectSuit(picked)
	return eg.schedule(state), state.Generation != before
}

// History returns the narration of the current round, oldest first.
func (eg *EightsGame) History() []string {
	eg.historyLock.Lock()
	defer eg.historyLock.Unlock()
	return append([]string(nil), eg.history...)
}

func (eg *EightsGame) Close() {
	eg.stop()
}

// schedule arms the computer's turn for state. The task carries the
// generation it was armed for and the engine drops it once that is stale.
func (eg *EightsGame) schedule(state game.State) game.State {
	if state.Status != game.StatusPlaying || state.Turn != game.Opponent {
		return state
	}
	generation := state.Generation
	eg.timerLock.Lock()
	defer eg.timerLock.Unlock()
	if eg.timer != nil {
		eg.timer.Stop()
	}
	eg.timer = time.AfterFunc(eg.delay, func() {
		next, applied := eg.Game.OpponentTurn(generation)
		if !applied {
			log.Infof("player %d: dropped stale opponent turn %d\n", eg.PlayerID, generation)
			return
		}
		if eg.onUpdate != nil {
			eg.onUpdate(next)
		}
		eg.schedule(next)
	})
	return state
}

func (eg *EightsGame) stop() {
	eg.timerLock.Lock()
	defer eg.timerLock.Unlock()
	if eg.timer != nil {
		eg.timer.Stop()
		eg.timer = nil
	}
}

func (eg *EightsGame) record(line string) {
	eg.historyLock.Lock()
	defer eg.historyLock.Unlock()
	eg.history = append(eg.history, line)
}

func (eg *EightsGame) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	eg.historyLock.Lock()
	eg.history = nil
	eg.historyLock.Unlock()
	eg.record(msg.Message.RoundStarted(payload.Round, payload.Card))
}

func (eg *EightsGame) OnCardPlayed(payload event.CardPlayedPayload) {
	eg.record(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (eg *EightsGame) OnSuitPicked(payload event.SuitPickedPayload) {
	eg.record(msg.Message.PlayerPickedSuit(payload.PlayerName, payload.Suit))
}

func (eg *EightsGame) OnPlayerDrew(payload event.PlayerDrewPayload) {
	eg.record(msg.Message.PlayerDrewCard(payload.PlayerName))
}

func (eg *EightsGame) OnPlayerPassed(payload event.PlayerPassedPayload) {
	eg.record(msg.Message.PlayerPassed(payload.PlayerName))
}

func (eg *EightsGame) OnRoundEnded(payload event.RoundEndedPayload) {
	line := msg.Message.WinnerFound(payload.WinnerName, payload.Points)
	if payload.Deadlock {
		line = msg.Message.Deadlock(payload.WinnerName, payload.Points)
	}
	eg.record(line)
	log.Infof("player %d: round %d over, %s\n", eg.PlayerID, payload.Round, line)
}

func (eg *EightsGame) String() string {
	return fmt.Sprintf("eights[%d]", eg.PlayerID)
}
