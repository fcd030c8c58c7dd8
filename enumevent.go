// Package enumevent provides directives for per-variant event type
// generation.
//
// Event-driven code often funnels every kind of occurrence through one
// enum, forcing every observer to switch on the variant it cares about.
// enumevent flips that around: declare the variants once, and the
// generator produces one distinct nominal type per variant, grouped in
// their own package, so observers subscribe to exactly the type they
// want and the compiler keeps payload access honest.
//
// To start with enumevent, declare a variant enum in a file with a build
// constraint:
//
//	//go:build enumevent
//
//	//enumevent:events
//	type GameEvent struct {
//		Victory      string
//		ScoreChanged struct {
//			Team  uint32
//			Score int32
//		}
//		GameOver struct{}
//	}
//
// Each struct field declares one variant. A bare type is shorthand for a
// single payload field, an inline struct declares named payload fields,
// and struct{} declares a payload-less marker. After declaring enums,
// run the enumevent command. For each enum it generates a subpackage
// named by [ModuleIdent], here game_event:
//
//	go run github.com/enumevent/enumevent/cmd/enumevent .
//
//	// generated: (simplified)
//	package game_event
//
//	type Victory struct{ F0 string }
//
//	func (Victory) EnumEvent() string { return "game_event.Victory" }
//	func (e Victory) Deref() string   { return e.F0 }
//
// Because the declaration file carries the enumevent build constraint,
// it vanishes from regular builds; only the generated types remain.
//
// # Entity events
//
// The entity directive derives events that carry a dispatch target,
// addressed through the field named Entity or the field tagged
// `enumevent:"target"`:
//
//	//enumevent:entity auto_propagate propagate=ecs.ChildOf
//	type UnitEvent struct {
//		Damaged struct {
//			Entity uint64
//			Amount float32
//		}
//	}
//
// Propagation words at the enum level set the default for every
// variant; a variant's own `enumevent:"propagate,auto_propagate"` tag
// replaces that default wholesale rather than merging with it.
//
// # Finite state machines
//
// The fsm and transition directives derive state machine glue for a
// field-less enum: a closed State value type, enter and exit dispatch
// helpers, a transition helper covering every ordered state pair, and a
// permissive CanTransition predicate to override transition rules per
// machine.
//
//	//enumevent:fsm
//	//enumevent:transition
//	type PlayerState struct {
//		Idle    struct{}
//		Running struct{}
//	}
//
// # Diagnostics
//
// Misplaced directives, ambiguous dereference or dispatch targets, and
// namespace collisions are reported at generation time with source
// positions, so broken declarations never produce broken code.
package enumevent

import "github.com/enumevent/enumevent/internal/ident"

// ModuleIdent converts a Go type name to the snake_case package name its
// generated namespace uses. Acronym runs stay intact:
//
//	ModuleIdent("GameEvent")  // "game_event"
//	ModuleIdent("HTTPServer") // "http_server"
//	ModuleIdent("LifeFSM")    // "life_fsm"
func ModuleIdent(name string) string {
	return ident.Snake(name)
}
