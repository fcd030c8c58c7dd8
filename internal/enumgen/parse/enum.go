package parse

import (
	"errors"
	"go/ast"
	"go/token"

	"github.com/fatih/structtag"
)

// Shape classifies a variant's field list.
type Shape int

const (
	// Empty variants have no fields and become zero-size marker types.
	Empty Shape = iota + 1

	// Positional variants carry unnamed fields addressed by position.
	Positional

	// Named variants carry named fields.
	Named
)

func (s Shape) String() string {
	switch s {
	case Empty:
		return "empty"
	case Positional:
		return "positional"
	case Named:
		return "named"
	}
	return "unknown"
}

// Enum is the immutable description of one annotated variant enum. It is
// constructed once per declaration and read-only during generation.
type Enum struct {
	Name string
	Dir  Directive

	// TypeParams are the enum's declared type parameters, in order.
	TypeParams []*ast.Field

	// Variants in declaration order. Order is significant: generated
	// types, constructors, and FSM tables all preserve it.
	Variants []*Variant

	File *ast.File
	Spec *ast.TypeSpec
}

func (e *Enum) Pos() token.Pos { return e.Spec.Pos() }

// TypeParamNames returns the declared type parameter names in order.
func (e *Enum) TypeParamNames() []string {
	var names []string
	for _, f := range e.TypeParams {
		for _, name := range f.Names {
			names = append(names, name.Name)
		}
	}
	return names
}

// Variant is one alternative of a variant enum.
type Variant struct {
	Name   string
	Shape  Shape
	Fields []*Field
	Attrs  Attrs

	pos token.Pos
}

func (v *Variant) Pos() token.Pos { return v.pos }

// Field is one field of a variant. Name is empty for positional fields.
type Field struct {
	Name string
	Type ast.Expr

	Attrs       Attrs
	Passthrough []*structtag.Tag

	pos token.Pos
}

func (f *Field) Pos() token.Pos { return f.pos }

// parseEnum builds the enum description from an annotated type
// declaration. The declaration must be a struct type; each struct field
// declares one variant whose shape is read off the field's type:
//
//	GameOver struct{}                            // empty
//	Victory  string                              // positional, one field
//	Moved    struct{ _ float32; _ float32 }      // positional
//	Scored   struct{ Team uint32; Score int32 }  // named
func (p *Parser) parseEnum(file *ast.File, spec *ast.TypeSpec, dir Directive) (*Enum, error) {
	st, ok := spec.Type.(*ast.StructType)
	if !ok {
		return nil, p.errorf(spec, "enumevent directives require a struct-defined variant enum; %s is not a struct", spec.Name.Name)
	}

	enum := &Enum{
		Name: spec.Name.Name,
		Dir:  dir,
		File: file,
		Spec: spec,
	}
	if spec.TypeParams != nil {
		enum.TypeParams = spec.TypeParams.List
	}

	var errs error
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			errs = errors.Join(errs, p.errorf(field, "enum %s cannot embed %c; every variant must be named", enum.Name, field.Type))
			continue
		}

		attrs, _, err := p.ParseTag(field, ScopeVariant)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		for _, name := range field.Names {
			if name.Name == "_" {
				errs = errors.Join(errs, p.errorf(name, "enum %s has an unnamed variant; every variant must be named", enum.Name))
				continue
			}

			variant, err := p.parseVariant(name, field.Type, attrs)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			enum.Variants = append(enum.Variants, variant)
		}
	}
	if errs != nil {
		return nil, errs
	}

	return enum, nil
}

// parseVariant classifies one variant's shape and collects its fields.
func (p *Parser) parseVariant(name *ast.Ident, typ ast.Expr, attrs Attrs) (*Variant, error) {
	v := &Variant{
		Name:  name.Name,
		Attrs: attrs,
		pos:   name.Pos(),
	}

	st, ok := typ.(*ast.StructType)
	if !ok {
		// A bare type is shorthand for a single positional field.
		v.Shape = Positional
		v.Fields = []*Field{{Type: typ, pos: typ.Pos()}}
		return v, nil
	}

	if len(st.Fields.List) == 0 {
		v.Shape = Empty
		return v, nil
	}

	var errs error
	positional, named := 0, 0
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			errs = errors.Join(errs, p.errorf(field, "variant %s cannot embed %c; fields must be named or positional (_)", v.Name, field.Type))
			continue
		}

		fieldAttrs, passthrough, err := p.ParseTag(field, ScopeField)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		for _, fname := range field.Names {
			f := &Field{
				Type:        field.Type,
				Attrs:       fieldAttrs,
				Passthrough: passthrough,
				pos:         fname.Pos(),
			}
			if fname.Name == "_" {
				positional++
			} else {
				named++
				f.Name = fname.Name
			}
			v.Fields = append(v.Fields, f)
		}
	}
	if errs != nil {
		return nil, errs
	}

	if positional != 0 && named != 0 {
		return nil, p.errorf(v, "variant %s mixes positional (_) and named fields", v.Name)
	}

	if named != 0 {
		v.Shape = Named
	} else {
		v.Shape = Positional
	}
	return v, nil
}
