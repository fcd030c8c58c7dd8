//go:build enumevent

package shape

//enumevent:events
type GameEvent struct {
	Scored struct { // want "mixes positional"
		_    uint32
		Team string
	}
}

//enumevent:events
type ScoreKind int // want "ScoreKind is not a struct"
