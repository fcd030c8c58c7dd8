//go:build enumevent

package example

//enumevent:fsm
//enumevent:transition
type PlayerState struct {
	Idle    struct{}
	Running struct{}
	Jumping struct{}
}

//enumevent:events
type GameEvent struct {
	Victory      string
	ScoreChanged struct {
		Team  uint32 `json:"team"`
		Score int32
	}
	GameOver struct{}
}

//enumevent:entity auto_propagate propagate=SquadOf
type UnitEvent struct {
	Damaged struct {
		Entity uint64
		Amount float32
	}
	Selected struct {
		Unit uint64 `enumevent:"target"`
	} `enumevent:"propagate"`
}

//enumevent:events
type Motion[T any] struct {
	Moved   struct{ Delta T }
	Stopped struct{}
}
