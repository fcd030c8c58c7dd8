package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"

	"github.com/enumevent/enumevent/internal/codefmt"
)

// directivePrefix marks enumevent directive comments, e.g.
// "//enumevent:entity propagate auto_propagate".
const directivePrefix = "//enumevent:"

// Mode selects the flavor of the primary derivation.
type Mode int

const (
	// ModeEvents derives one plain event type per variant.
	ModeEvents Mode = iota + 1

	// ModeEntity derives entity events carrying a dispatch target.
	ModeEntity
)

// Directive is the parsed set of enumevent directives attached to one
// enum declaration.
type Directive struct {
	Mode Mode

	// FSM requests the state value type and the enter/exit/transition
	// dispatch tables. Transition requests the permissive transition
	// predicate. Either implies the plain derivation.
	FSM        bool
	Transition bool

	// Propagation holds the enum-level propagation defaults of an
	// entity-flavored enum. Nil when the enum declares none.
	Propagation *Propagation

	pos token.Pos
}

func (d Directive) Pos() token.Pos { return d.pos }

// parseDirectives scans a doc comment for enumevent directive lines.
// found reports whether any directive was present at all; a doc comment
// without directives is not an error, it is just not an enum.
func (p *Parser) parseDirectives(doc *ast.CommentGroup) (dir Directive, found bool, err error) {
	if doc == nil {
		return dir, false, nil
	}

	var errs error
	for _, comment := range doc.List {
		rest, ok := strings.CutPrefix(comment.Text, directivePrefix)
		if !ok {
			continue
		}
		found = true
		if !dir.pos.IsValid() {
			dir.pos = comment.Pos()
		}

		words := strings.Fields(rest)
		if len(words) == 0 {
			errs = errors.Join(errs, p.errorf(comment, "missing directive name after %q", directivePrefix))
			continue
		}

		name, args := words[0], words[1:]
		switch name {
		case "events":
			errs = errors.Join(errs, dir.setMode(p, comment, ModeEvents))
			if len(args) != 0 {
				errs = errors.Join(errs, p.errorf(comment, "enumevent:events takes no arguments; got %q", strings.Join(args, " ")))
			}

		case "entity":
			errs = errors.Join(errs, dir.setMode(p, comment, ModeEntity))
			if len(args) != 0 {
				prop, err := p.parsePropagation(comment, args, ScopeEnum)
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}
				dir.Propagation = prop
			}

		case "fsm":
			dir.FSM = true
			if len(args) != 0 {
				errs = errors.Join(errs, p.errorf(comment, "enumevent:fsm takes no arguments; got %q", strings.Join(args, " ")))
			}

		case "transition":
			dir.Transition = true
			if len(args) != 0 {
				errs = errors.Join(errs, p.errorf(comment, "enumevent:transition takes no arguments; got %q", strings.Join(args, " ")))
			}

		default:
			errs = errors.Join(errs, p.errorf(comment, "unknown directive enumevent:%s; recognized directives are %s", name, recognizedDirectives()))
		}
	}
	if errs != nil {
		return dir, found, errs
	}

	// The FSM companions build on the per-variant event types, so they
	// imply the plain derivation when no mode is spelled out.
	if dir.Mode == 0 && (dir.FSM || dir.Transition) {
		dir.Mode = ModeEvents
	}

	if dir.Mode == ModeEntity && (dir.FSM || dir.Transition) {
		// Entity events must carry a target field while FSM states must be
		// field-less; the combination can never be satisfied.
		return dir, found, p.errorf(codefmt.Pos(dir.pos), "enumevent:fsm and enumevent:transition require plain enumevent:events enums")
	}

	return dir, found, nil
}

func (d *Directive) setMode(p *Parser, comment *ast.Comment, mode Mode) error {
	if d.Mode != 0 && d.Mode != mode {
		return p.errorf(comment, "enumevent:events and enumevent:entity are mutually exclusive")
	}
	d.Mode = mode
	return nil
}
