// Package gen emits typed builder functions from an arbor.yaml manifest.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path"

	"golang.org/x/tools/imports"

	"github.com/go-arbor/arbor/cmd/arbor/internal/config"
)

// corePackage is the import path of the builder core; generated code
// always delegates to it.
const corePackage = "github.com/go-arbor/arbor/pkg/core"

// Generator emits Go source for one resolved manifest.
type Generator struct {
	buf bytes.Buffer

	// SkipImports uses format.Source instead of imports.Process
	// (faster for tests).
	SkipImports bool
}

// Generate renders builder functions for every kind in the manifest and
// returns gofmt-ed source.
func (g *Generator) Generate(res *config.Resolved) ([]byte, error) {
	m := res.Manifest
	elemPkg := path.Base(res.ElementsImport)

	g.buf.Reset()
	g.printf("// Code generated by arbor gen from arbor.yaml; DO NOT EDIT.\n\n")
	g.printf("package %s\n\n", m.Package)
	g.printf("import (\n")
	g.printf("\t%q\n", corePackage)
	g.printf("\t%q\n", res.ElementsImport)
	g.printf(")\n\n")

	for _, kind := range m.Kinds {
		g.builder(elemPkg, kind)
		if kind.At && kind.SlotArg == "" {
			g.builderAt(elemPkg, kind)
		}
	}

	if g.SkipImports {
		return format.Source(g.buf.Bytes())
	}
	return imports.Process("", g.buf.Bytes(), &imports.Options{Comments: true, FormatOnly: true})
}

// builder emits the default-slot builder function for one kind.
func (g *Generator) builder(elemPkg string, kind config.Kind) {
	typ := fmt.Sprintf("*%s.%s", elemPkg, kind.Name)

	g.printf("%s", builderComment(elemPkg, kind))
	g.printf("func %s(parent core.Container, %sconfigure ...core.Configure[%s]) (%s, error) {\n",
		kind.Name, argList(kind.Args), typ, typ)
	if kind.SlotArg != "" {
		g.printf("\treturn core.BuildAt(parent, %s, func() (%s, error) {\n", kind.SlotArg, typ)
	} else {
		g.printf("\treturn core.Build(parent, func() (%s, error) {\n", typ)
	}
	g.ctorCall(elemPkg, kind)
	g.printf("\t}, configure...)\n")
	g.printf("}\n\n")
}

// builderAt emits the explicit-slot variant.
func (g *Generator) builderAt(elemPkg string, kind config.Kind) {
	typ := fmt.Sprintf("*%s.%s", elemPkg, kind.Name)

	g.printf("// %sAt builds %s.%s under parent at the given slot.\n", kind.Name, elemPkg, kind.Name)
	g.printf("func %sAt(parent core.Container, slot any, %sconfigure ...core.Configure[%s]) (%s, error) {\n",
		kind.Name, argList(kind.Args), typ, typ)
	g.printf("\treturn core.BuildAt(parent, slot, func() (%s, error) {\n", typ)
	g.ctorCall(elemPkg, kind)
	g.printf("\t}, configure...)\n")
	g.printf("}\n\n")
}

func (g *Generator) ctorCall(elemPkg string, kind config.Kind) {
	call := fmt.Sprintf("%s.%s(%s)", elemPkg, kind.Ctor, argNames(kind.Args))
	if kind.CtorErr {
		g.printf("\t\treturn %s\n", call)
	} else {
		g.printf("\t\treturn %s, nil\n", call)
	}
}

func (g *Generator) printf(f string, args ...any) {
	fmt.Fprintf(&g.buf, f, args...)
}

// builderComment renders the doc comment for a builder, naming the
// slot argument or forwarded constructor arguments when present.
func builderComment(elemPkg string, kind config.Kind) string {
	base := fmt.Sprintf("// %s builds %s.%s under parent", kind.Name, elemPkg, kind.Name)
	switch {
	case kind.SlotArg != "":
		return fmt.Sprintf("%s, registered under %s.\n", base, kind.SlotArg)
	case len(kind.Args) > 0:
		return fmt.Sprintf("%s with the given %s.\n", base, argNames(kind.Args))
	default:
		return base + ".\n"
	}
}

// argList renders "name type, " pairs for a parameter list, with a
// trailing separator when non-empty.
func argList(args []config.Arg) string {
	var b bytes.Buffer
	for _, a := range args {
		fmt.Fprintf(&b, "%s %s, ", a.Name, a.Type)
	}
	return b.String()
}

func argNames(args []config.Arg) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.Name)
	}
	return b.String()
}
