//go:build enumevent

package fsm

//enumevent:fsm
type PlayerState struct {
	Idle    struct{}
	Running struct{ Speed float32 } // want "variant Running carries fields"
}
