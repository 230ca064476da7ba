package player

type basicPlayer struct {
	name string
}

func (p basicPlayer) Name() string {
	return p.name
}
