package enumgeninternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"

	"golang.org/x/tools/go/packages"

	"github.com/enumevent/enumevent/internal/codefmt"
	"github.com/enumevent/enumevent/internal/enumgen/emit"
	"github.com/enumevent/enumevent/internal/enumgen/parse"
)

// Enumgen generates event type code for the enums of one package. Call
// [Enumgen.Build] and then [Enumgen.Generate] to get the generated code.
// All potential errors are returned by Build. Once Build succeeds,
// Generate never fails.
type Enumgen struct {
	p   *parse.Parser
	cfg Config

	mods []*emit.Module
}

// New creates a new [Enumgen] for the given package. The package must
// have its Syntax, Types and TypesInfo, and must not have any errors.
func New(pkg *packages.Package, cfg Config) (*Enumgen, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	return &Enumgen{p: parser, cfg: cfg}, nil
}

// Build parses the annotated enums and compiles their modules. It must
// be called before [Enumgen.Generate].
func (eg *Enumgen) Build() error {
	enums, errs := eg.p.ParseEnums()
	if errs != nil {
		return errs
	}

	namespaces := make(map[string]*emit.Module)
	for _, enum := range enums {
		mod, err := emit.Build(eg.p, enum, eg.cfg.Deref)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if prev, ok := namespaces[mod.PkgName]; ok {
			err := eg.errorf(enum, "enums %s and %s both map to namespace %s", prev.Enum.Name, enum.Name, mod.PkgName)
			errs = errors.Join(errs, err)
			continue
		}
		namespaces[mod.PkgName] = mod

		eg.mods = append(eg.mods, mod)
	}

	return errs
}

// Generate generates one file per enum, keyed by its path relative to the
// package directory, e.g. "game_event/enumevent_gen.go". It must be
// called after [Enumgen.Build] succeeds.
func (eg *Enumgen) Generate() map[string][]byte {
	outs := make(map[string][]byte)
	for _, mod := range eg.mods {
		outs[mod.PkgName+"/"+eg.cfg.OutFile] = eg.generateModule(mod)
	}
	return outs
}

// generateModule renders one module: declarations first, then the frame
// with the header comment, package clause, and collected imports.
func (eg *Enumgen) generateModule(mod *emit.Module) []byte {
	pkg := eg.p.Pkg()
	self := pkg.PkgPath + "/" + mod.PkgName

	var body bytes.Buffer
	w := codefmt.NewWriter(&body, pkg, self)
	mod.WriteCode(w)

	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by github.com/enumevent/enumevent%s. DO NOT EDIT.\n\n", versionSuffix)
	fmt.Fprintf(&buf, "// Package %s holds the event types derived from %s.%s.\n", mod.PkgName, pkg.Name, mod.Enum.Name)
	fmt.Fprintf(&buf, "package %s\n", mod.PkgName)

	if imports := w.Imports(); len(imports) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range imports {
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, &body)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}

func (eg *Enumgen) errorf(poser codefmt.Poser, format string, args ...any) error {
	return codefmt.Errorf(eg.p, poser, format, args...)
}
