package emit

import (
	"errors"
	"fmt"
	"go/ast"
	"path"
	"strconv"

	"github.com/enumevent/enumevent/internal/codefmt"
	"github.com/enumevent/enumevent/internal/enumgen/parse"
	"github.com/enumevent/enumevent/internal/ident"
)

// Module is one enum compiled into its writable form: a generated package
// holding one nominal event type per variant plus the optional FSM glue.
// [Build] returns every potential failure; once built, writing never
// fails.
type Module struct {
	Enum    *parse.Enum
	PkgName string

	Events []*TypeDef
	Ctors  []*Ctor
	FSM    *FSM
}

// TypeDef is one generated event type.
type TypeDef struct {
	Name   string
	Shape  parse.Shape
	Fields []*FieldDef

	// Markers are the type parameters no field mentions, kept on the
	// type through zero-size marker fields.
	Markers []string

	// Deref is the dereference target field, nil when the type gets no
	// accessor pair.
	Deref *FieldDef

	// Target is the dispatch target field of an entity event.
	Target *FieldDef

	// Prop is the effective propagation config. Variant-level settings
	// replace the enum-level default wholesale. Rel is the resolved
	// relationship type; its zero value means the default relationship.
	Prop *parse.Propagation
	Rel  RelRef

	Entity bool
}

// RelRef is a resolved reference to a named relationship type.
type RelRef struct {
	PkgPath string
	PkgName string
	Name    string
}

// FieldDef is one declared field with its generated name. Positional
// fields are named F0..Fn; named fields keep their declared name.
type FieldDef struct {
	Field *parse.Field
	Name  string
}

// Ctor is a generated constructor. Every type of a generic enum gets
// one, so that consumers never have to spell marker fields out and the
// construction surface stays uniform across variants.
type Ctor struct {
	Type *TypeDef
}

// Build compiles one parsed enum. deref toggles generation of the
// dereference accessor pair.
func Build(p *parse.Parser, enum *parse.Enum, deref bool) (*Module, error) {
	mod := &Module{
		Enum:    enum,
		PkgName: ident.Snake(enum.Name),
	}

	var errs error
	for _, variant := range enum.Variants {
		def, err := buildTypeDef(p, enum, variant, deref)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		mod.Events = append(mod.Events, def)
		if len(enum.TypeParams) != 0 {
			mod.Ctors = append(mod.Ctors, &Ctor{Type: def})
		}
	}

	if enum.Dir.FSM || enum.Dir.Transition {
		fsm, err := buildFSM(p, enum)
		if err != nil {
			errs = errors.Join(errs, err)
		}
		mod.FSM = fsm
	}

	if errs != nil {
		return nil, errs
	}
	return mod, nil
}

func buildTypeDef(p *parse.Parser, enum *parse.Enum, variant *parse.Variant, deref bool) (*TypeDef, error) {
	def := &TypeDef{
		Name:   variant.Name,
		Shape:  variant.Shape,
		Entity: enum.Dir.Mode == parse.ModeEntity,
	}

	for i, field := range variant.Fields {
		name := field.Name
		if name == "" {
			name = fmt.Sprintf("F%d", i)
		}
		def.Fields = append(def.Fields, &FieldDef{Field: field, Name: name})
	}

	def.Markers = unusedTypeParams(enum.TypeParamNames(), fieldTypes(variant))

	var errs error
	if err := resolveDeref(p, def, variant, deref); err != nil {
		errs = errors.Join(errs, err)
	}
	if def.Entity {
		if err := resolveEntity(p, def, variant); err != nil {
			errs = errors.Join(errs, err)
		}
		def.Prop = variant.Attrs.Propagation
		if def.Prop == nil {
			def.Prop = enum.Dir.Propagation
		}
		if def.Prop != nil {
			rel, err := resolveRel(p, enum, variant, def.Prop)
			if err != nil {
				errs = errors.Join(errs, err)
			}
			def.Rel = rel
		}
	}

	if errs != nil {
		return nil, errs
	}
	return def, nil
}

func fieldTypes(variant *parse.Variant) []ast.Expr {
	var exprs []ast.Expr
	for _, field := range variant.Fields {
		exprs = append(exprs, field.Type)
	}
	return exprs
}

// resolveDeref picks the dereference target. A single-field type derefs
// to its only field; a multi-field type derefs to the one field marked
// deref or deref_mut, if any. Marking two fields can never be satisfied.
func resolveDeref(p *parse.Parser, def *TypeDef, variant *parse.Variant, deref bool) error {
	var marked []*FieldDef
	for _, f := range def.Fields {
		if f.Field.Attrs.Deref {
			marked = append(marked, f)
		}
	}

	if len(marked) > 1 {
		return errorf(p, marked[1].Field, "variant %s marks %d fields deref; at most one field can be the dereference target", variant.Name, len(marked))
	}

	if !deref {
		return nil
	}

	switch {
	case len(marked) == 1:
		def.Deref = marked[0]
	case len(def.Fields) == 1:
		def.Deref = def.Fields[0]
	}
	return nil
}

// resolveEntity picks the dispatch target of an entity event: the one
// field tagged target or literally named Entity. Entity events must carry
// a target, so field-less and positional variants cannot be dispatched.
func resolveEntity(p *parse.Parser, def *TypeDef, variant *parse.Variant) error {
	switch def.Shape {
	case parse.Empty:
		return errorf(p, variant, "entity event variant %s has no fields; it needs a dispatch target field", variant.Name)
	case parse.Positional:
		return errorf(p, variant, "entity event variant %s has positional fields; the dispatch target must be a named field", variant.Name)
	}

	var targets []*FieldDef
	for _, f := range def.Fields {
		if f.Field.Attrs.Target || f.Name == "Entity" {
			targets = append(targets, f)
		}
	}

	switch len(targets) {
	case 0:
		return errorf(p, variant, "entity event variant %s has no dispatch target; name a field Entity or tag it `enumevent:\"target\"`", variant.Name)
	case 1:
		def.Target = targets[0]
		return nil
	default:
		return errorf(p, targets[1].Field, "entity event variant %s has %d dispatch targets; exactly one field can be the target", variant.Name, len(targets))
	}
}

// resolveRel resolves a relationship type expression. The expression is
// parsed detached from any file, so identifiers are looked up against the
// consumer package's scope and its import table instead of TypesInfo.
func resolveRel(p *parse.Parser, enum *parse.Enum, poser codefmt.Poser, prop *parse.Propagation) (RelRef, error) {
	switch expr := prop.RelExpr.(type) {
	case nil:
		// The default relationship.
		return RelRef{}, nil

	case *ast.Ident:
		pkg := p.Pkg()
		if pkg.Types.Scope().Lookup(expr.Name) == nil {
			return RelRef{}, errorf(p, poser, "unknown relationship type %s", expr.Name)
		}
		return RelRef{PkgPath: pkg.PkgPath, PkgName: pkg.Name, Name: expr.Name}, nil

	case *ast.SelectorExpr:
		qual, ok := expr.X.(*ast.Ident)
		if !ok {
			break
		}
		for _, imp := range enum.File.Imports {
			impPath, err := strconv.Unquote(imp.Path.Value)
			if err != nil {
				continue
			}
			name := path.Base(impPath)
			if imp.Name != nil {
				name = imp.Name.Name
			}
			if name == qual.Name {
				return RelRef{PkgPath: impPath, PkgName: name, Name: expr.Sel.Name}, nil
			}
		}
		return RelRef{}, errorf(p, poser, "relationship type %s.%s refers to a package the enum's file does not import", qual.Name, expr.Sel.Name)
	}

	return RelRef{}, errorf(p, poser, "relationship type %q must be a named type", prop.RelRaw)
}

// buildFSM validates the FSM companion request. States are field-less by
// construction: a variant with payload has no zero-value state to hand to
// the dispatch tables.
func buildFSM(p *parse.Parser, enum *parse.Enum) (*FSM, error) {
	fsm := &FSM{
		enum:       enum,
		Triggers:   enum.Dir.FSM,
		Transition: enum.Dir.Transition,
	}

	var errs error
	for _, variant := range enum.Variants {
		if variant.Shape != parse.Empty {
			errs = errors.Join(errs, errorf(p, variant, "fsm enum %s requires field-less variants; variant %s carries fields", enum.Name, variant.Name))
			continue
		}
		fsm.States = append(fsm.States, variant.Name)
	}

	if errs != nil {
		return nil, errs
	}
	return fsm, nil
}

func errorf(p *parse.Parser, poser codefmt.Poser, format string, args ...any) error {
	return codefmt.Errorf(p, poser, format, args...)
}
