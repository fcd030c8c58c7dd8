// Package event declares the contract between generated enum event types
// and a host event bus.
//
// The package holds the nominal types generated code references: the
// [Event] interface every generated type implements, the [Enter], [Exit],
// and [Transition] wrappers fired by generated FSM dispatch tables, and
// the [EntityEvent] and [Propagator] capabilities of entity-flavored
// events. It deliberately contains no dispatch logic; routing, observer
// registration, and propagation belong to the host application.
package event

// Event is implemented by every type the enumevent generator emits. The
// returned name is "<namespace>.<Variant>" and is stable across
// regenerations, so a bus may key subscriptions on it.
type Event interface {
	EnumEvent() string
}

// Dispatcher receives events fired by generated dispatch tables. The host
// bus implements it.
type Dispatcher interface {
	Trigger(Event)
}

// Enter notifies that a state machine entered state S.
type Enter[S Event] struct {
	State S
}

func (e Enter[S]) EnumEvent() string { return "enter:" + e.State.EnumEvent() }

// Exit notifies that a state machine left state S.
type Exit[S Event] struct {
	State S
}

func (e Exit[S]) EnumEvent() string { return "exit:" + e.State.EnumEvent() }

// Transition notifies that a state machine moved from state From to state
// To. Each ordered state pair is a distinct nominal type, which is why
// generated transition tables enumerate every pair.
type Transition[From, To Event] struct {
	From From
	To   To
}

func (e Transition[From, To]) EnumEvent() string {
	return "transition:" + e.From.EnumEvent() + "->" + e.To.EnumEvent()
}

// EntityEvent is an event concerning one entity of the host's entity
// model. E is the host's entity handle type; enumevent treats it as
// opaque.
type EntityEvent[E any] interface {
	Event
	Target() E
}

// Propagator is implemented by entity events configured to propagate
// along a relationship. R is the relationship type; its zero value
// returned by PropagateVia identifies the relationship to walk.
type Propagator[R any] interface {
	AutoPropagate() bool
	PropagateVia() R
}

// Dereferencer is implemented by generated types with a designated inner
// field. Deref reads the field's value; DerefMut exposes it for in-place
// mutation.
type Dereferencer[T any] interface {
	Deref() T
	DerefMut() *T
}

// ChildOf is the default propagation relationship. Hosts with their own
// relationship model configure events with propagate=<Type> instead.
type ChildOf struct{}
