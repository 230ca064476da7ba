package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateEightsGame
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	PlayTimeout = 5 * time.Minute
)

// Commands understood while a game is running.
const (
	CommandPlay    = "play"
	CommandDraw    = "draw"
	CommandSuit    = "suit"
	CommandNext    = "next"
	CommandRestart = "restart"
	CommandHome    = "home"
	CommandState   = "state"
	CommandJSON    = "json"
	CommandHistory = "history"
	CommandHelp    = "help"
	CommandExit    = "exit"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist        = NewErr(1, true, "Exist. ")
	ErrorsChanClosed   = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout      = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail     = NewErr(1, true, "Auth fail. ")
	ErrorsGameInvalid  = NewErr(1, true, "Game invalid. ")
	ErrorsMoveRejected = NewErr(1, false, "Move rejected. ")
	ErrorsSuitInvalid  = NewErr(1, false, "Suit invalid, choose hearts, diamonds, clubs or spades. ")
)
