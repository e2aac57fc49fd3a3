// File: compiler.go
// Title: MiniPy Compiler Facade
// Description: Orchestrates the MiniPy front-end pipeline of lexing,
//              parsing, and semantic analysis. Aggregates all phases
//              into a single result record. Semantic analysis only runs
//              on syntactically valid trees.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial compiler facade

/*
Package compiler provides the single entry point for compiling MiniPy
source text. Each call constructs fresh parser and analyzer instances,
so concurrent compilations never share mutable state.
*/
package compiler

import (
	miniast "github.com/msto63/minipy/pkg/minilang/ast"
	miniparser "github.com/msto63/minipy/pkg/minilang/parser"
	minisemantic "github.com/msto63/minipy/pkg/minilang/semantic"
)

// Result holds the aggregated outcome of one compilation request
type Result struct {
	AST            *miniast.Program // Parsed program, nil on total parse failure
	SyntaxErrors   []string         // Lexical and syntax errors in source order
	SemanticErrors []string         // Semantic errors, empty when syntax errors exist
}

// Valid reports whether the compilation produced no errors at all
func (r *Result) Valid() bool {
	return len(r.SyntaxErrors) == 0 && len(r.SemanticErrors) == 0
}

// Compile runs the full front-end pipeline over the given source text.
// Semantic analysis is skipped entirely when the parser reported any
// syntax error or produced no AST.
func Compile(source string) *Result {
	program, syntaxErrors := miniparser.ParseSource(source)

	result := &Result{
		AST:          program,
		SyntaxErrors: syntaxErrors,
	}

	if program != nil && len(syntaxErrors) == 0 {
		result.SemanticErrors = minisemantic.AnalyzeProgram(program)
	}

	return result
}

// DumpAST returns an indented tree dump of the compiled program, or an
// empty string when no AST is present
func (r *Result) DumpAST() string {
	if r.AST == nil {
		return ""
	}
	return miniast.Dump(r.AST)
}
