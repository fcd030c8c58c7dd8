//go:build enumevent

package deref

//enumevent:events
type GameEvent struct {
	Scored struct {
		Team  string `enumevent:"deref"`
		Score int32  `enumevent:"deref"` // want "at most one field can be the dereference target"
	}
}
