package parse

import (
	"errors"
	"go/ast"
	"go/parser"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/fatih/structtag"

	"github.com/enumevent/enumevent/internal/codefmt"
)

// AttrScope is the position an enumevent directive word appears at.
type AttrScope int

const (
	// ScopeField covers fields inside a variant's struct.
	ScopeField AttrScope = 1 << iota

	// ScopeVariant covers the variant field of the enum struct.
	ScopeVariant

	// ScopeEnum covers the enum-level directive comment.
	ScopeEnum
)

func (s AttrScope) String() string {
	switch s {
	case ScopeField:
		return "field"
	case ScopeVariant:
		return "variant"
	case ScopeEnum:
		return "enum"
	}
	return "unknown"
}

// Attrs are the recognized enumevent directives of one field or variant.
// Unrecognized struct tags are not part of Attrs; they travel separately
// as the pass-through bag.
type Attrs struct {
	// Deref designates the field as the dereference target. DerefMut
	// additionally requests the mutable accessor and implies Deref.
	Deref    bool
	DerefMut bool

	// Target designates the field as the dispatch target of an
	// entity-flavored event.
	Target bool

	// Propagation holds variant-level propagation settings. When a
	// variant carries any propagation word, these settings replace the
	// enum-level defaults wholesale.
	Propagation *Propagation
}

// Propagation configures how an entity event forwards to related
// entities. A nil RelExpr means the default relationship.
type Propagation struct {
	Auto    bool
	RelExpr ast.Expr
	RelRaw  string
}

// attrWords maps each recognized directive word to the scopes it is valid
// at. Insertion order doubles as the order words are listed in
// diagnostics.
var attrWords = func() *linkedhashmap.Map {
	m := linkedhashmap.New()
	m.Put("deref", ScopeField)
	m.Put("deref_mut", ScopeField)
	m.Put("target", ScopeField)
	m.Put("propagate", ScopeVariant|ScopeEnum)
	m.Put("auto_propagate", ScopeVariant|ScopeEnum)
	return m
}()

// wordsForScope lists the directive words valid at the given scope, in
// registry order.
func wordsForScope(scope AttrScope) string {
	var words []string
	attrWords.Each(func(key, value any) {
		if value.(AttrScope)&scope != 0 {
			words = append(words, key.(string))
		}
	})
	return strings.Join(words, ", ")
}

func recognizedDirectives() string {
	return "enumevent:events, enumevent:entity, enumevent:fsm, enumevent:transition"
}

// parseAttrWords classifies a list of directive words appearing at the
// given scope. Every malformed or misplaced word is a fatal failure.
func (p *Parser) parseAttrWords(poser codefmt.Poser, words []string, scope AttrScope) (Attrs, error) {
	var a Attrs
	var errs error

	for _, word := range words {
		name, value, hasValue := strings.Cut(word, "=")

		v, ok := attrWords.Get(name)
		if !ok {
			errs = errors.Join(errs, p.errorf(poser, "unknown enumevent directive %q; recognized at the %s level: %s", name, scope, wordsForScope(scope)))
			continue
		}
		if v.(AttrScope)&scope == 0 {
			errs = errors.Join(errs, p.errorf(poser, "enumevent directive %q is not valid at the %s level", name, scope))
			continue
		}

		if hasValue && name != "propagate" {
			errs = errors.Join(errs, p.errorf(poser, "enumevent directive %q takes no value", name))
			continue
		}

		switch name {
		case "deref":
			a.Deref = true

		case "deref_mut":
			a.DerefMut = true
			a.Deref = true

		case "target":
			a.Target = true

		case "auto_propagate":
			if a.Propagation == nil {
				a.Propagation = &Propagation{}
			}
			a.Propagation.Auto = true

		case "propagate":
			if a.Propagation == nil {
				a.Propagation = &Propagation{}
			}
			if hasValue {
				if value == "" {
					errs = errors.Join(errs, p.errorf(poser, "enumevent directive propagate= needs a relationship type"))
					continue
				}
				rel, err := parser.ParseExpr(value)
				if err != nil {
					errs = errors.Join(errs, p.errorf(poser, "malformed relationship type %q: %s", value, err.Error()))
					continue
				}
				a.Propagation.RelExpr = rel
				a.Propagation.RelRaw = value
			}
		}
	}

	return a, errs
}

// parsePropagation parses enum-level directive arguments, which may only
// carry propagation words.
func (p *Parser) parsePropagation(poser codefmt.Poser, words []string, scope AttrScope) (*Propagation, error) {
	a, err := p.parseAttrWords(poser, words, scope)
	if err != nil {
		return nil, err
	}
	return a.Propagation, nil
}

// ParseTag analyzes the struct tag of one field or variant field. It
// returns the recognized enumevent directives and, for field scope, the
// remaining tags in declaration order, to be re-emitted verbatim on the
// generated field.
func (p *Parser) ParseTag(field *ast.Field, scope AttrScope) (Attrs, []*structtag.Tag, error) {
	var a Attrs
	if field.Tag == nil {
		return a, nil, nil
	}

	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return a, nil, p.errorf(field.Tag, "malformed struct tag %s", field.Tag.Value)
	}

	tags, err := structtag.Parse(raw)
	if err != nil {
		return a, nil, p.errorf(field.Tag, "malformed struct tag %s: %s", field.Tag.Value, err.Error())
	}

	var passthrough []*structtag.Tag
	var errs error
	var seen bool
	for _, tag := range tags.Tags() {
		if tag.Key != "enumevent" {
			passthrough = append(passthrough, tag)
			continue
		}
		if seen {
			errs = errors.Join(errs, p.errorf(field.Tag, "duplicate enumevent key in struct tag %s", field.Tag.Value))
			continue
		}
		seen = true

		words := append([]string{tag.Name}, tag.Options...)
		a, err = p.parseAttrWords(field.Tag, words, scope)
		errs = errors.Join(errs, err)
	}

	return a, passthrough, errs
}
