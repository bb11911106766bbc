// Package codegen reconstructs runnable source snippets for charts.
//
// Go has no runtime equivalent of reading a live function's source, so
// the text of each plot function is extracted ahead of time from its
// (embedded) source file and carried on the Plotter value. This package
// provides the extraction and the deterministic snippet assembly.
package codegen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
)

// ExtractFuncSource returns the literal text of the named top-level
// function declaration in src, including its doc comment when present.
func ExtractFuncSource(src []byte, funcName string) (string, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "src.go", src, parser.ParseComments)
	if err != nil {
		return "", fmt.Errorf("failed to parse source: %w", err)
	}

	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || fn.Name.Name != funcName {
			continue
		}
		start := fset.Position(fn.Pos()).Offset
		if fn.Doc != nil {
			start = fset.Position(fn.Doc.Pos()).Offset
		}
		end := fset.Position(fn.End()).Offset
		return string(src[start:end]), nil
	}

	return "", fmt.Errorf("function %q not found in source", funcName)
}
