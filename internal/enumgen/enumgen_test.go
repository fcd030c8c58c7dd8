package enumgeninternal

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// loadFixture parses and type-checks a single-file package, standing in
// for what packages.Load would produce. Fixtures are self-contained so no
// importer is needed.
func loadFixture(t *testing.T, src string) *packages.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "game.go", src, parser.ParseComments)
	require.NoError(t, err)

	info := &types.Info{
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
		Instances:  make(map[*ast.Ident]types.Instance),
	}

	var conf types.Config
	tpkg, err := conf.Check("example.com/game", fset, []*ast.File{file}, info)
	require.NoError(t, err)

	return &packages.Package{
		Name:      "game",
		PkgPath:   "example.com/game",
		GoFiles:   []string{"game.go"},
		Types:     tpkg,
		Fset:      fset,
		Syntax:    []*ast.File{file},
		TypesInfo: info,
	}
}

func generate(t *testing.T, src string, cfg Config) map[string][]byte {
	t.Helper()

	eg, err := New(loadFixture(t, src), cfg)
	require.NoError(t, err)
	require.NoError(t, eg.Build())
	return eg.Generate()
}

func TestGenerateEvents(t *testing.T) {
	outs := generate(t, `//go:build enumevent

package game

//enumevent:events
type GameEvent struct {
	Victory      string
	ScoreChanged struct {
		Team  uint32 `+"`json:\"team\"`"+`
		Score int32
	}
	Moved    struct{ _, _ float32 }
	GameOver struct{}
}
`, DefaultConfig())

	require.Contains(t, outs, "game_event/enumevent_gen.go")
	code := string(outs["game_event/enumevent_gen.go"])

	assert.Contains(t, code, "// Code generated by github.com/enumevent/enumevent. DO NOT EDIT.")
	assert.Contains(t, code, "package game_event")

	// Bare types are single-field wrappers with the accessor pair.
	assert.Contains(t, code, "F0 string")
	assert.Contains(t, code, `func (Victory) EnumEvent() string { return "game_event.Victory" }`)
	assert.Contains(t, code, "func (e Victory) Deref() string { return e.F0 }")
	assert.Contains(t, code, "func (e *Victory) DerefMut() *string { return &e.F0 }")

	// Named fields keep their names and pass-through tags.
	assert.Contains(t, code, "Team  uint32 `json:\"team\"`")
	assert.Contains(t, code, "Score int32")
	assert.NotContains(t, code, "enumevent:")

	// Positional fields are numbered; multi-field types get no accessor.
	assert.Contains(t, code, "F0 float32")
	assert.Contains(t, code, "F1 float32")
	assert.NotContains(t, code, "func (e Moved) Deref()")
	assert.NotContains(t, code, "func (e ScoreChanged) Deref()")

	assert.Contains(t, code, "type GameOver struct{}")

	// Interface assertions pull in the contract package.
	assert.Contains(t, code, `event "github.com/enumevent/enumevent/event"`)
	assert.Contains(t, code, "var _ event.Event = GameOver{}")
	assert.Contains(t, code, "var _ event.Dereferencer[string] = (*Victory)(nil)")
}

func TestGenerateDerefOff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Deref = false

	outs := generate(t, `//go:build enumevent

package game

//enumevent:events
type GameEvent struct {
	Victory string
}
`, cfg)

	code := string(outs["game_event/enumevent_gen.go"])
	assert.NotContains(t, code, "Deref")
	assert.Contains(t, code, "var _ event.Event = Victory{}")
}

func TestGenerateEntity(t *testing.T) {
	outs := generate(t, `//go:build enumevent

package game

type SquadOf struct{}

//enumevent:entity auto_propagate propagate=SquadOf
type UnitEvent struct {
	Damaged struct {
		Entity uint64
		Amount float32
	}
	Selected struct {
		Unit uint64 `+"`enumevent:\"target\"`"+`
	} `+"`enumevent:\"propagate\"`"+`
}
`, DefaultConfig())

	code := string(outs["unit_event/enumevent_gen.go"])

	assert.Contains(t, code, "// Damaged is the entity event for the Damaged variant of UnitEvent.")
	assert.Contains(t, code, "func (e Damaged) Target() uint64 { return e.Entity }")
	assert.Contains(t, code, "func (Damaged) AutoPropagate() bool { return true }")

	// The enum-level relationship lives in the consumer package, so the
	// generated subpackage qualifies and imports it.
	assert.Contains(t, code, "func (Damaged) PropagateVia() (rel game.SquadOf) { return }")
	assert.Contains(t, code, `game "example.com/game"`)
	assert.Contains(t, code, "var _ event.Propagator[game.SquadOf] = Damaged{}")

	// The variant-level word replaces the enum default wholesale.
	assert.Contains(t, code, "func (e Selected) Target() uint64 { return e.Unit }")
	assert.Contains(t, code, "func (Selected) AutoPropagate() bool { return false }")
	assert.Contains(t, code, "func (Selected) PropagateVia() (rel event.ChildOf) { return }")

	assert.Contains(t, code, "var _ event.EntityEvent[uint64] = Damaged{}")
}

func TestGenerateFSM(t *testing.T) {
	outs := generate(t, `//go:build enumevent

package game

//enumevent:fsm
//enumevent:transition
type PlayerState struct {
	Idle    struct{}
	Running struct{}
}
`, DefaultConfig())

	code := string(outs["player_state/enumevent_gen.go"])

	assert.Contains(t, code, "type State int")
	assert.Contains(t, code, "StateIdle State = iota")
	assert.Contains(t, code, "StateRunning")
	assert.Contains(t, code, `return "Idle"`)
	assert.Contains(t, code, "func CanTransition(from, to State) bool { return true }")

	assert.Contains(t, code, "func TriggerEnter(d event.Dispatcher, s State)")
	assert.Contains(t, code, "d.Trigger(event.Enter[Running]{State: Running{}})")
	assert.Contains(t, code, "func TriggerExit(d event.Dispatcher, s State)")
	assert.Contains(t, code, "d.Trigger(event.Exit[Idle]{State: Idle{}})")

	// The transition trigger enumerates all ordered pairs.
	assert.Contains(t, code, "func TriggerTransition(d event.Dispatcher, from, to State)")
	assert.Contains(t, code, "case from == StateRunning && to == StateIdle:")
	assert.Contains(t, code, "event.Transition[Running, Idle]{From: Running{}, To: Idle{}}")
	assert.Equal(t, 4, strings.Count(code, "d.Trigger(event.Transition["))
}

func TestGenerateTransitionOnly(t *testing.T) {
	outs := generate(t, `//go:build enumevent

package game

//enumevent:transition
type PlayerState struct {
	Idle    struct{}
	Running struct{}
}
`, DefaultConfig())

	code := string(outs["player_state/enumevent_gen.go"])
	assert.Contains(t, code, "func CanTransition(from, to State) bool { return true }")
	assert.NotContains(t, code, "TriggerEnter")
	assert.NotContains(t, code, "TriggerTransition")
}

func TestGenerateGenerics(t *testing.T) {
	outs := generate(t, `//go:build enumevent

package game

//enumevent:events
type Motion[T any] struct {
	Moved   struct{ Delta T }
	Stopped struct{}
}
`, DefaultConfig())

	code := string(outs["motion/enumevent_gen.go"])

	assert.Contains(t, code, "type Moved[T any] struct {")
	assert.Contains(t, code, "Delta T")
	assert.Contains(t, code, `func (Moved[T]) EnumEvent() string { return "motion.Moved" }`)

	// The unused parameter is pinned by a marker field, filled in by the
	// constructor.
	assert.Contains(t, code, "type Stopped[T any] struct {")
	assert.Contains(t, code, "_ [0]T")
	assert.Contains(t, code, "func NewStopped[T any]() Stopped[T] {")
	assert.Contains(t, code, "func NewMoved[T any](delta T) Moved[T] {")
	assert.Contains(t, code, "return Moved[T]{Delta: delta}")

	// No concrete type to assert interfaces with.
	assert.NotContains(t, code, "var _")
}

func TestGenerateCtorParamNames(t *testing.T) {
	outs := generate(t, `//go:build enumevent

package game

//enumevent:events
type Spawn[T any] struct {
	Clash struct {
		Type  string
		Delta string
		delta string
	}
}
`, DefaultConfig())

	code := string(outs["spawn/enumevent_gen.go"])

	// Keyword field names get a suffix; colliding names get numbered.
	assert.Contains(t, code, "func NewClash[T any](typeValue string, delta string, delta2 string) Clash[T] {")
	assert.Contains(t, code, "return Clash[T]{Type: typeValue, Delta: delta, delta: delta2}")
}

func TestGenerateNamespaceCollision(t *testing.T) {
	eg, err := New(loadFixture(t, `//go:build enumevent

package game

//enumevent:events
type AB struct {
	Done struct{}
}

//enumevent:events
type Ab struct {
	Done struct{}
}
`), DefaultConfig())
	require.NoError(t, err)

	err = eg.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enums AB and Ab both map to namespace ab")
}

func TestGenerateNothing(t *testing.T) {
	eg, err := New(loadFixture(t, `package game

type Score int
`), DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, eg.Build())
	assert.Empty(t, eg.Generate())
}

func TestReorderErrors(t *testing.T) {
	errs := errors.Join(
		errors.New("b"),
		errors.Join(errors.New("c"), errors.New("a")),
	)

	err := reorderErrors(errs)
	assert.Equal(t, "a\nb\nc", err.Error())
	assert.Nil(t, reorderErrors(nil))
}
