//go:build enumevent

package entity

//enumevent:entity
type UnitEvent struct {
	Damaged struct { // want "has no dispatch target"
		Amount float32
	}
	Healed struct {
		Entity uint64
		Unit   uint64 `enumevent:"target"` // want "exactly one field can be the target"
	}
}
