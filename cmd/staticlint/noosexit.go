package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// NoOsExitAnalyzer reports direct os.Exit calls in the main function of
// package main. Exiting there skips deferred cleanup such as closing the
// database pool.
var NoOsExitAnalyzer = &analysis.Analyzer{
	Name: "noosexit",
	Doc:  "forbid direct os.Exit calls in main.main",
	Run:  runNoOsExit,
}

func runNoOsExit(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
				continue
			}

			ast.Inspect(fn.Body, func(node ast.Node) bool {
				call, ok := node.(*ast.CallExpr)
				if !ok {
					return true
				}
				sel, ok := call.Fun.(*ast.SelectorExpr)
				if !ok || sel.Sel.Name != "Exit" {
					return true
				}
				if ident, ok := sel.X.(*ast.Ident); ok {
					if pkg, ok := pass.TypesInfo.Uses[ident].(*types.PkgName); ok && pkg.Imported().Path() == "os" {
						pass.Reportf(call.Pos(), "direct os.Exit call in main.main")
					}
				}
				return true
			})
		}
	}
	return nil, nil
}
