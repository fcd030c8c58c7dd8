// Package example is a consumer of the enumevent generator. Its enum
// declarations live in enums.go behind the enumevent build tag, and the
// checked-in subpackages hold the generated output:
//
//	go run github.com/enumevent/enumevent/cmd/enumevent ./example
package example

// SquadOf is the propagation relationship of the unit events.
type SquadOf struct{}
