package emit

import (
	"go/ast"
	"strings"

	"github.com/enumevent/enumevent/internal/codefmt"
	"github.com/enumevent/enumevent/internal/enumgen/parse"
)

// eventPkgPath is the contract package generated code is written against.
const eventPkgPath = "github.com/enumevent/enumevent/event"

// moduleWriter decorates the code writer with the lazily imported event
// contract package, so modules that never reference it stay import-free.
type moduleWriter struct {
	*codefmt.Writer
	event string
}

func (w *moduleWriter) eventPkg() string {
	if w.event == "" {
		w.event = w.Import(eventPkgPath, "event")
	}
	return w.event
}

// WriteCode writes every declaration of the module: event types with
// their methods in variant declaration order, then constructors, then
// the FSM glue.
func (m *Module) WriteCode(cw *codefmt.Writer) {
	w := &moduleWriter{Writer: cw}

	for _, def := range m.Events {
		def.writeCode(w, m)
		w.Printf("\n")
	}
	for _, ctor := range m.Ctors {
		ctor.writeCode(w, m)
		w.Printf("\n")
	}
	if m.FSM != nil {
		m.FSM.writeCode(w, m)
	}
}

// Generic reports whether the enum declares type parameters. Generic
// modules skip compile-time interface assertions because there is no
// concrete type to instantiate them with.
func (m *Module) Generic() bool { return len(m.Enum.TypeParams) != 0 }

// EventName returns the qualified name embedded in the generated
// EnumEvent method, e.g. "game_event.Victory".
func (m *Module) EventName(def *TypeDef) string {
	return m.PkgName + "." + def.Name
}

// typeParams renders the enum's full type parameter declaration,
// constraints included, e.g. "[T any, U comparable]". Generated types
// keep every declared parameter; the unused ones are pinned by marker
// fields.
func typeParams(w *moduleWriter, enum *parse.Enum) string {
	if len(enum.TypeParams) == 0 {
		return ""
	}

	var parts []string
	for _, field := range enum.TypeParams {
		var names []string
		for _, name := range field.Names {
			names = append(names, name.Name)
		}
		constraint := codefmt.RewriteImports[ast.Expr](w.Writer, field.Type)
		parts = append(parts, w.Sprintf("%s %c", strings.Join(names, ", "), constraint))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// typeArgs renders the instantiation list matching [typeParams], e.g.
// "[T, U]".
func typeArgs(enum *parse.Enum) string {
	names := enum.TypeParamNames()
	if len(names) == 0 {
		return ""
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// relType renders the propagation relationship type, importing its
// package on first use. The zero reference means the default
// relationship.
func relType(w *moduleWriter, rel RelRef) string {
	if rel.PkgPath == "" {
		return w.eventPkg() + ".ChildOf"
	}
	return w.Import(rel.PkgPath, rel.PkgName) + "." + rel.Name
}
