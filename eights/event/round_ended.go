package event

type RoundEndedPayload struct {
	Round      int
	WinnerName string
	Points     int
	Deadlock   bool
}

type RoundEndedListener interface {
	OnRoundEnded(RoundEndedPayload)
}

type roundEndedEmitter struct {
	listeners []RoundEndedListener
}

func (e *roundEndedEmitter) AddListener(listener RoundEndedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *roundEndedEmitter) Emit(payload RoundEndedPayload) {
	for _, listener := range e.listeners {
		listener.OnRoundEnded(payload)
	}
}
