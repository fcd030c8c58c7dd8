package emit

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	enumparse "github.com/enumevent/enumevent/internal/enumgen/parse"
)

// buildSrc parses a fixture file and compiles its enums. Names like
// SquadOf that relationship expressions refer to are declared through
// decls so scope lookups resolve.
func buildSrc(t *testing.T, src string, decls ...string) (*enumparse.Parser, []*enumparse.Enum) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "game.go", src, parser.ParseComments)
	require.NoError(t, err)

	tpkg := types.NewPackage("example.com/game", "game")
	for _, decl := range decls {
		tpkg.Scope().Insert(types.NewTypeName(token.NoPos, tpkg, decl, nil))
	}

	pkg := &packages.Package{
		Name:      "game",
		PkgPath:   "example.com/game",
		Types:     tpkg,
		Fset:      fset,
		Syntax:    []*ast.File{file},
		TypesInfo: &types.Info{},
	}

	p, err := enumparse.New(pkg)
	require.NoError(t, err)

	enums, err := p.ParseEnums()
	require.NoError(t, err)
	return p, enums
}

func TestBuildShapes(t *testing.T) {
	p, enums := buildSrc(t, `//go:build enumevent

package game

//enumevent:events
type GameEvent struct {
	Victory      string
	ScoreChanged struct {
		Team  uint32
		Score int32
	}
	GameOver struct{}
}
`)

	mod, err := Build(p, enums[0], true)
	require.NoError(t, err)

	assert.Equal(t, "game_event", mod.PkgName)
	require.Len(t, mod.Events, 3)
	assert.Empty(t, mod.Ctors)
	assert.Nil(t, mod.FSM)

	victory := mod.Events[0]
	require.Len(t, victory.Fields, 1)
	assert.Equal(t, "F0", victory.Fields[0].Name)
	require.NotNil(t, victory.Deref)
	assert.Equal(t, "F0", victory.Deref.Name)

	scored := mod.Events[1]
	assert.Equal(t, []string{"Team", "Score"}, []string{scored.Fields[0].Name, scored.Fields[1].Name})
	assert.Nil(t, scored.Deref)

	assert.Empty(t, mod.Events[2].Fields)
	assert.Equal(t, "game_event.Victory", mod.EventName(victory))
}

func TestBuildDerefToggleOff(t *testing.T) {
	p, enums := buildSrc(t, `//go:build enumevent

package game

//enumevent:events
type GameEvent struct {
	Victory string
}
`)

	mod, err := Build(p, enums[0], false)
	require.NoError(t, err)
	assert.Nil(t, mod.Events[0].Deref)
}

func TestBuildDerefMarked(t *testing.T) {
	p, enums := buildSrc(t, `//go:build enumevent

package game

//enumevent:events
type GameEvent struct {
	Scored struct {
		Team  string
		Score int32 `+"`enumevent:\"deref\"`"+`
	}
}
`)

	mod, err := Build(p, enums[0], true)
	require.NoError(t, err)
	require.NotNil(t, mod.Events[0].Deref)
	assert.Equal(t, "Score", mod.Events[0].Deref.Name)
}

func TestBuildDerefConflict(t *testing.T) {
	p, enums := buildSrc(t, `//go:build enumevent

package game

//enumevent:events
type GameEvent struct {
	Scored struct {
		Team  string `+"`enumevent:\"deref\"`"+`
		Score int32  `+"`enumevent:\"deref_mut\"`"+`
	}
}
`)

	_, err := Build(p, enums[0], true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most one field can be the dereference target")
}

func TestBuildEntityTarget(t *testing.T) {
	p, enums := buildSrc(t, `//go:build enumevent

package game

//enumevent:entity
type UnitEvent struct {
	Damaged struct {
		Entity uint64
		Amount float32
	}
	Healed struct {
		Unit   uint64 `+"`enumevent:\"target\"`"+`
		Amount float32
	}
}
`)

	mod, err := Build(p, enums[0], true)
	require.NoError(t, err)

	require.NotNil(t, mod.Events[0].Target)
	assert.Equal(t, "Entity", mod.Events[0].Target.Name)
	require.NotNil(t, mod.Events[1].Target)
	assert.Equal(t, "Unit", mod.Events[1].Target.Name)
	assert.True(t, mod.Events[0].Entity)
}

func TestBuildEntityTargetMissing(t *testing.T) {
	p, enums := buildSrc(t, `//go:build enumevent

package game

//enumevent:entity
type UnitEvent struct {
	Damaged struct {
		Amount float32
	}
}
`)

	_, err := Build(p, enums[0], true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no dispatch target")
}

func TestBuildEntityTargetAmbiguous(t *testing.T) {
	p, enums := buildSrc(t, `//go:build enumevent

package game

//enumevent:entity
type UnitEvent struct {
	Damaged struct {
		Entity uint64
		Source uint64 `+"`enumevent:\"target\"`"+`
	}
}
`)

	_, err := Build(p, enums[0], true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one field can be the target")
}

func TestBuildEntityEmptyVariant(t *testing.T) {
	p, enums := buildSrc(t, `//go:build enumevent

package game

//enumevent:entity
type UnitEvent struct {
	Spawned struct{}
}
`)

	_, err := Build(p, enums[0], true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a dispatch target field")
}

func TestBuildPropagationOverride(t *testing.T) {
	p, enums := buildSrc(t, `//go:build enumevent

package game

//enumevent:entity auto_propagate propagate=SquadOf
type UnitEvent struct {
	Damaged struct {
		Entity uint64
	}
	Healed struct {
		Entity uint64
	} `+"`enumevent:\"propagate\"`"+`
}
`, "SquadOf")

	mod, err := Build(p, enums[0], true)
	require.NoError(t, err)

	// Enum-level default applies untouched.
	damaged := mod.Events[0]
	require.NotNil(t, damaged.Prop)
	assert.True(t, damaged.Prop.Auto)
	assert.Equal(t, "SquadOf", damaged.Rel.Name)
	assert.Equal(t, "example.com/game", damaged.Rel.PkgPath)

	// The variant-level word replaces the default wholesale: no auto,
	// default relationship.
	healed := mod.Events[1]
	require.NotNil(t, healed.Prop)
	assert.False(t, healed.Prop.Auto)
	assert.Equal(t, RelRef{}, healed.Rel)
}

func TestBuildRelationshipUnknown(t *testing.T) {
	p, enums := buildSrc(t, `//go:build enumevent

package game

//enumevent:entity propagate=SquadOf
type UnitEvent struct {
	Damaged struct {
		Entity uint64
	}
}
`)

	_, err := Build(p, enums[0], true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown relationship type SquadOf")
}

func TestBuildRelationshipImported(t *testing.T) {
	p, enums := buildSrc(t, `//go:build enumevent

package game

import "example.com/ecs"

//enumevent:entity propagate=ecs.ChildOf
type UnitEvent struct {
	Damaged struct {
		Entity ecs.Entity
	}
}
`)

	mod, err := Build(p, enums[0], true)
	require.NoError(t, err)
	rel := mod.Events[0].Rel
	assert.Equal(t, RelRef{PkgPath: "example.com/ecs", PkgName: "ecs", Name: "ChildOf"}, rel)
}

func TestBuildRelationshipUnimported(t *testing.T) {
	p, enums := buildSrc(t, `//go:build enumevent

package game

//enumevent:entity propagate=ecs.ChildOf
type UnitEvent struct {
	Damaged struct {
		Entity uint64
	}
}
`)

	_, err := Build(p, enums[0], true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not import")
}

func TestBuildFSM(t *testing.T) {
	p, enums := buildSrc(t, `//go:build enumevent

package game

//enumevent:fsm
//enumevent:transition
type PlayerState struct {
	Idle    struct{}
	Running struct{}
	Jumping struct{}
}
`)

	mod, err := Build(p, enums[0], true)
	require.NoError(t, err)

	require.NotNil(t, mod.FSM)
	assert.Equal(t, []string{"Idle", "Running", "Jumping"}, mod.FSM.States)
	assert.True(t, mod.FSM.Triggers)
	assert.True(t, mod.FSM.Transition)
	assert.Equal(t, "player_state", mod.PkgName)
}

func TestBuildFSMPayloadVariant(t *testing.T) {
	p, enums := buildSrc(t, `//go:build enumevent

package game

//enumevent:fsm
type PlayerState struct {
	Idle    struct{}
	Running struct{ Speed float32 }
}
`)

	_, err := Build(p, enums[0], true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variant Running carries fields")
}

func TestBuildGenericMarkers(t *testing.T) {
	p, enums := buildSrc(t, `//go:build enumevent

package game

//enumevent:events
type Motion[T any, U comparable] struct {
	Moved   struct{ Delta T }
	Stopped struct{}
}
`)

	mod, err := Build(p, enums[0], true)
	require.NoError(t, err)

	assert.Equal(t, []string{"U"}, mod.Events[0].Markers)
	assert.Equal(t, []string{"T", "U"}, mod.Events[1].Markers)
	require.Len(t, mod.Ctors, 2)
	assert.Same(t, mod.Events[0], mod.Ctors[0].Type)
	assert.True(t, mod.Generic())
}
