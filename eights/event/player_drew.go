package event

import "github.com/ratel-online/eights/eights/card"

// PlayerDrewPayload carries the drawn card. Listeners facing the other
// player should not reveal it.
type PlayerDrewPayload struct {
	PlayerName string
	Card       card.Card
}

type PlayerDrewListener interface {
	OnPlayerDrew(PlayerDrewPayload)
}

type playerDrewEmitter struct {
	listeners []PlayerDrewListener
}

func (e *playerDrewEmitter) AddListener(listener PlayerDrewListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *playerDrewEmitter) Emit(payload PlayerDrewPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerDrew(payload)
	}
}
