package emit

import (
	"go/ast"
	"go/token"

	"github.com/enumevent/enumevent/internal/codefmt"
)

// writeCode writes the constructor of one generic event type. Marker
// fields are blank, so the declared fields are the whole state; the
// constructor spares consumers from ever spelling the markers.
func (c *Ctor) writeCode(w *moduleWriter, m *Module) {
	def := c.Type

	// Parameter names live in their own namespace, seeded with the type
	// parameter names they must not shadow.
	w = &moduleWriter{Writer: w.WithNS(make(codefmt.NS)), event: w.event}
	for _, name := range m.Enum.TypeParamNames() {
		w.Reserve(name)
	}

	params := typeParams(w, m.Enum)
	args := typeArgs(m.Enum)

	names := make([]string, len(def.Fields))
	for i, f := range def.Fields {
		names[i] = paramName(w.Writer, f.Name)
	}

	w.Printf("// New%s constructs %s from its declared fields.\n", def.Name, def.Name)
	w.Printf("func New%s%s(", def.Name, params)
	for i, f := range def.Fields {
		if i > 0 {
			w.Printf(", ")
		}
		typ := codefmt.RewriteImports[ast.Expr](w.Writer, f.Field.Type)
		w.Printf("%s %c", names[i], typ)
	}
	w.Printf(") %s%s {\n", def.Name, args)
	w.Printf("return %s%s{", def.Name, args)
	for i, f := range def.Fields {
		if i > 0 {
			w.Printf(", ")
		}
		w.Printf("%s: %s", f.Name, names[i])
	}
	w.Printf("}\n}\n")
}

// paramName derives a parameter name from a field name, sidestepping Go
// keywords before handing the candidate to the writer's namespace.
func paramName(w *codefmt.Writer, field string) string {
	name := lowerFirst(field)
	if token.IsKeyword(name) {
		name += "Value"
	}
	return w.Name(name)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	c := s[0]
	if 'A' <= c && c <= 'Z' {
		c += 'a' - 'A'
	}
	return string(c) + s[1:]
}
