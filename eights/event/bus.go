package event

// Bus holds one emitter per event kind for a single game.
// Emit is called with the game locked, so listeners must not call back into the game.
type Bus struct {
	FirstCardPlayed *firstCardPlayedEmitter
	CardPlayed      *cardPlayedEmitter
	SuitPicked      *suitPickedEmitter
	PlayerDrew      *playerDrewEmitter
	PlayerPassed    *playerPassedEmitter
	RoundEnded      *roundEndedEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed: &firstCardPlayedEmitter{},
		CardPlayed:      &cardPlayedEmitter{},
		SuitPicked:      &suitPickedEmitter{},
		PlayerDrew:      &playerDrewEmitter{},
		PlayerPassed:    &playerPassedEmitter{},
		RoundEnded:      &roundEndedEmitter{},
	}
}

// Listener is satisfied by anything that wants every event.
type Listener interface {
	FirstCardPlayedListener
	CardPlayedListener
	SuitPickedListener
	PlayerDrewListener
	PlayerPassedListener
	RoundEndedListener
}

func (b *Bus) AddListener(listener Listener) {
	b.FirstCardPlayed.AddListener(listener)
	b.CardPlayed.AddListener(listener)
	b.SuitPicked.AddListener(listener)
	b.PlayerDrew.AddListener(listener)
	b.PlayerPassed.AddListener(listener)
	b.RoundEnded.AddListener(listener)
}
