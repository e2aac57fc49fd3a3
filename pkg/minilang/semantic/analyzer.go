// File: analyzer.go
// Title: MiniPy Semantic Analyzer
// Description: Implements flow-sensitive semantic analysis over MiniPy
//              ASTs. Flags uses of undefined variables in source order
//              and guards against structurally unknown nodes with
//              defensive error reporting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial semantic analyzer implementation

package semantic

import (
	"fmt"
	"strings"

	minilog "github.com/msto63/minipy/pkg/core/log"
	miniast "github.com/msto63/minipy/pkg/minilang/ast"
)

// Analyzer performs semantic analysis of MiniPy programs. An Analyzer
// holds per-run error state and must not be shared across concurrent
// analyses; create a fresh instance per compilation.
type Analyzer struct {
	errors []string
	logger *minilog.Logger
}

// NewAnalyzer creates a new semantic analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		logger: minilog.GetDefault().WithField("component", "minipy-semantic"),
	}
}

// Analyze walks the program and returns all semantic errors in source
// order. The caller must only pass ASTs that parsed without syntax
// errors.
func (a *Analyzer) Analyze(program *miniast.Program) []string {
	a.errors = nil
	scope := NewScope()

	for _, stmt := range program.Statements {
		a.visitStatement(stmt, scope)
	}

	if len(a.errors) > 0 {
		a.logger.Debug("Semantic analysis finished with errors", minilog.Fields{
			"errors": len(a.errors),
		})
	}

	return a.errors
}

// visitStatement dispatches over the closed statement set. The default
// branch is a defensive invariant check and should be unreachable for
// trees built by the parser.
func (a *Analyzer) visitStatement(stmt miniast.Stmt, scope *Scope) {
	switch node := stmt.(type) {
	case *miniast.Assignment:
		// Right-hand side first, so x = x + 1 flags an undefined x
		a.visitExpression(node.Value, scope)
		scope.Define(node.Name)

	case *miniast.Print:
		a.visitExpression(node.Value, scope)

	case *miniast.If:
		a.visitExpression(node.Condition, scope)

		bodyScope := scope.Copy()
		for _, s := range node.Body {
			a.visitStatement(s, bodyScope)
		}

		if node.Else != nil {
			// The else branch sees the parent scope, not the body's
			elseScope := scope.Copy()
			for _, s := range node.Else {
				a.visitStatement(s, elseScope)
			}
		}

	default:
		a.errors = append(a.errors, fmt.Sprintf("Unknown statement type: %s", nodeTag(stmt)))
	}
}

// visitExpression dispatches over the closed expression set
func (a *Analyzer) visitExpression(expr miniast.Expr, scope *Scope) {
	switch node := expr.(type) {
	case *miniast.Number:
		// Always valid

	case *miniast.StringLit:
		// Always valid

	case *miniast.Name:
		if !scope.IsDefined(node.Ident) {
			a.errors = append(a.errors, fmt.Sprintf("Undefined variable '%s'", node.Ident))
		}

	case *miniast.BinaryOp:
		a.visitExpression(node.Left, scope)
		a.visitExpression(node.Right, scope)

	default:
		a.errors = append(a.errors, fmt.Sprintf("Unknown expression type: %s", nodeTag(expr)))
	}
}

// nodeTag returns the bare type name of an AST node for diagnostics
func nodeTag(node interface{}) string {
	tag := fmt.Sprintf("%T", node)
	if idx := strings.LastIndex(tag, "."); idx >= 0 {
		tag = tag[idx+1:]
	}
	return strings.TrimPrefix(tag, "*")
}

// AnalyzeProgram is a convenience function that analyzes a program
// with a fresh analyzer instance
func AnalyzeProgram(program *miniast.Program) []string {
	return NewAnalyzer().Analyze(program)
}
