package emit

import (
	"go/ast"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// usedTypeParams reports which of the declared type parameter names occur
// in the given type expressions. The scan is purely syntactic; it covers
// every composite type form since pointers, containers, channels, funcs,
// and generic instantiations all spell their element types as identifiers
// somewhere in the expression tree. Declaration order is preserved.
func usedTypeParams(params []string, exprs []ast.Expr) *linkedhashset.Set {
	seen := linkedhashset.New()
	for _, expr := range exprs {
		ast.Inspect(expr, func(node ast.Node) bool {
			if id, ok := node.(*ast.Ident); ok {
				seen.Add(id.Name)
			}
			return true
		})
	}

	used := linkedhashset.New()
	for _, param := range params {
		if seen.Contains(param) {
			used.Add(param)
		}
	}
	return used
}

// unusedTypeParams returns the declared type parameter names that no field
// type mentions, in declaration order. These become zero-size marker
// fields on the generated type.
func unusedTypeParams(params []string, exprs []ast.Expr) []string {
	used := usedTypeParams(params, exprs)

	var unused []string
	for _, param := range params {
		if !used.Contains(param) {
			unused = append(unused, param)
		}
	}
	return unused
}
