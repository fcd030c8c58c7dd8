package emit

import (
	"go/ast"
	"strings"

	"github.com/enumevent/enumevent/internal/codefmt"
	"github.com/enumevent/enumevent/internal/enumgen/parse"
)

// writeCode writes the type declaration, its accessor methods, and the
// compile-time interface assertions of one event type.
func (def *TypeDef) writeCode(w *moduleWriter, m *Module) {
	params := typeParams(w, m.Enum)
	args := typeArgs(m.Enum)

	kind := "event"
	if def.Entity {
		kind = "entity event"
	}
	w.Printf("// %s is the %s for the %s variant of %s.\n", def.Name, kind, def.Name, m.Enum.Name)

	if len(def.Fields) == 0 && len(def.Markers) == 0 {
		w.Printf("type %s%s struct{}\n", def.Name, params)
	} else {
		w.Printf("type %s%s struct {\n", def.Name, params)
		for _, f := range def.Fields {
			typ := codefmt.RewriteImports[ast.Expr](w.Writer, f.Field.Type)
			if tag := passthroughTag(f.Field); tag != "" {
				w.Printf("%s %c `%s`\n", f.Name, typ, tag)
			} else {
				w.Printf("%s %c\n", f.Name, typ)
			}
		}
		for _, marker := range def.Markers {
			w.Printf("_ [0]%s\n", marker)
		}
		w.Printf("}\n")
	}

	w.Printf("\n// EnumEvent names the variant within its namespace.\n")
	w.Printf("func (%s%s) EnumEvent() string { return %q }\n", def.Name, args, m.EventName(def))

	if def.Deref != nil {
		typ := codefmt.RewriteImports[ast.Expr](w.Writer, def.Deref.Field.Type)
		w.Printf("\n// Deref returns the %s field.\n", def.Deref.Name)
		w.Printf("func (e %s%s) Deref() %c { return e.%s }\n", def.Name, args, typ, def.Deref.Name)
		w.Printf("\n// DerefMut returns the %s field for mutation in place.\n", def.Deref.Name)
		w.Printf("func (e *%s%s) DerefMut() *%c { return &e.%s }\n", def.Name, args, typ, def.Deref.Name)
	}

	if def.Target != nil {
		typ := codefmt.RewriteImports[ast.Expr](w.Writer, def.Target.Field.Type)
		w.Printf("\n// Target returns the entity the event is dispatched to.\n")
		w.Printf("func (e %s%s) Target() %c { return e.%s }\n", def.Name, args, typ, def.Target.Name)
	}

	if def.Prop != nil {
		rel := relType(w, def.Rel)
		w.Printf("\n// AutoPropagate reports whether the event propagates without an\n")
		w.Printf("// explicit request.\n")
		w.Printf("func (%s%s) AutoPropagate() bool { return %v }\n", def.Name, args, def.Prop.Auto)
		w.Printf("\n// PropagateVia returns the zero value of the relationship the event\n")
		w.Printf("// propagates along.\n")
		w.Printf("func (%s%s) PropagateVia() (rel %s) { return }\n", def.Name, args, rel)
	}

	if !m.Generic() {
		ev := w.eventPkg()
		w.Printf("\nvar _ %s.Event = %s{}\n", ev, def.Name)
		if def.Deref != nil {
			typ := codefmt.RewriteImports[ast.Expr](w.Writer, def.Deref.Field.Type)
			w.Printf("var _ %s.Dereferencer[%c] = (*%s)(nil)\n", ev, typ, def.Name)
		}
		if def.Target != nil {
			typ := codefmt.RewriteImports[ast.Expr](w.Writer, def.Target.Field.Type)
			w.Printf("var _ %s.EntityEvent[%c] = %s{}\n", ev, typ, def.Name)
		}
		if def.Prop != nil {
			w.Printf("var _ %s.Propagator[%s] = %s{}\n", ev, relType(w, def.Rel), def.Name)
		}
	}
}

// passthroughTag reassembles the non-enumevent struct tags of a field in
// declaration order, to be re-emitted verbatim.
func passthroughTag(field *parse.Field) string {
	if len(field.Passthrough) == 0 {
		return ""
	}

	var parts []string
	for _, tag := range field.Passthrough {
		parts = append(parts, tag.String())
	}
	return strings.Join(parts, " ")
}
