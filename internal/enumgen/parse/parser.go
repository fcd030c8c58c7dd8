package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/build/constraint"

	"golang.org/x/tools/go/packages"

	"github.com/enumevent/enumevent/internal/codefmt"
)

// Parser inspects an AST of the underlying package to collect variant
// enum declarations annotated with enumevent directives.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

// ParseEnums collects every directive-annotated enum declaration from the
// files constrained by the enumevent build tag. Enums are returned in
// source order. Failures of independent enums are joined so one broken
// declaration does not hide diagnostics of another.
func (p *Parser) ParseEnums() ([]*Enum, error) {
	var enums []*Enum
	var errs error

	for _, file := range p.EnumeventGoFiles() {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				doc := ts.Doc
				if doc == nil {
					doc = gen.Doc
				}

				dir, found, err := p.parseDirectives(doc)
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}
				if !found {
					continue
				}

				enum, err := p.parseEnum(file, ts, dir)
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}
				enums = append(enums, enum)
			}
		}
	}

	return enums, errs
}

// EnumeventGoFiles returns the Go files that have a "//go:build enumevent"
// constraint. Enum declarations live only in such files so that they are
// replaced by, rather than compiled alongside, the generated code.
func (p *Parser) EnumeventGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if hasGoBuildEnumevent(file) {
			files = append(files, file)
		}
	}
	return files
}

// hasGoBuildEnumevent checks if the file has a "//go:build enumevent"
// constraint.
func hasGoBuildEnumevent(file *ast.File) bool {
	ok := false
	for _, group := range file.Comments {
		for _, comment := range group.List {
			if constraint.IsGoBuild(comment.Text) {
				expr, _ := constraint.Parse(comment.Text)
				expr.Eval(func(tag string) bool {
					if tag == "enumevent" {
						ok = true
					}
					return true
				})
			}
		}
	}
	return ok
}

func (p *Parser) errorf(poser codefmt.Poser, format string, args ...any) error {
	return codefmt.Errorf(p, poser, format, args...)
}
