// File: nodes.go
// Title: MiniPy AST Node Definitions
// Description: Defines all AST node types for representing MiniPy programs
//              including statements, expressions, and literals. Provides
//              string representations and validation methods.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strings"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a source-like string representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate performs basic structural validation of the node
	Validate() error
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
}

// Stmt represents the base interface for all statements
type Stmt interface {
	Node
	stmtNode() // marker method
}

// Expr represents the base interface for all expressions
type Expr interface {
	Node
	exprNode() // marker method
}

// Program represents a complete MiniPy program, a sequence of
// top-level statements
type Program struct {
	Statements []Stmt   // Top-level statements in source order
	Pos        Position // Source position (start of program)
}

// Assignment represents a variable assignment (name = expr)
type Assignment struct {
	Name  string   // Target variable name
	Value Expr     // Assigned expression
	Pos   Position // Source position
}

// Print represents a print statement (print(expr))
type Print struct {
	Value Expr     // Printed expression
	Pos   Position // Source position
}

// If represents a conditional statement with an optional else branch
type If struct {
	Condition Expr     // Condition expression (single comparison)
	Body      []Stmt   // Statements in the if branch
	Else      []Stmt   // Statements in the else branch (nil if absent)
	Pos       Position // Source position
}

// BinaryOp represents a binary expression (a + b, a > b, etc.)
type BinaryOp struct {
	Left  Expr     // Left operand
	Op    string   // Operator (+, -, *, /, >, <, >=, <=, ==, !=)
	Right Expr     // Right operand
	Pos   Position // Source position
}

// Number represents an unsigned integer literal
type Number struct {
	Value int      // Parsed numeric value
	Pos   Position // Source position
}

// StringLit represents a string literal (without surrounding quotes)
type StringLit struct {
	Value string   // Literal content
	Pos   Position // Source position
}

// Name represents a variable reference
type Name struct {
	Ident string   // Variable name
	Pos   Position // Source position
}

// marker methods

func (p *Program) stmtNode()    {}
func (a *Assignment) stmtNode() {}
func (p *Print) stmtNode()      {}
func (i *If) stmtNode()         {}

func (b *BinaryOp) exprNode()  {}
func (n *Number) exprNode()    {}
func (s *StringLit) exprNode() {}
func (n *Name) exprNode()      {}

// Implementation of Node interface for Program

func (p *Program) String() string {
	var parts []string
	for _, stmt := range p.Statements {
		parts = append(parts, stmt.String())
	}
	return strings.Join(parts, "\n")
}

func (p *Program) Accept(visitor Visitor) interface{} {
	return visitor.VisitProgram(p)
}

func (p *Program) Position() Position {
	return p.Pos
}

func (p *Program) Validate() error {
	for i, stmt := range p.Statements {
		if stmt == nil {
			return fmt.Errorf("statement %d is nil", i)
		}
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}
	return nil
}

// Implementation of Node interface for Assignment

func (a *Assignment) String() string {
	return fmt.Sprintf("%s = %s", a.Name, a.Value.String())
}

func (a *Assignment) Accept(visitor Visitor) interface{} {
	return visitor.VisitAssignment(a)
}

func (a *Assignment) Position() Position {
	return a.Pos
}

func (a *Assignment) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("assignment target is required")
	}
	if a.Value == nil {
		return fmt.Errorf("assignment value is required")
	}
	return a.Value.Validate()
}

// Implementation of Node interface for Print

func (p *Print) String() string {
	return fmt.Sprintf("print(%s)", p.Value.String())
}

func (p *Print) Accept(visitor Visitor) interface{} {
	return visitor.VisitPrint(p)
}

func (p *Print) Position() Position {
	return p.Pos
}

func (p *Print) Validate() error {
	if p.Value == nil {
		return fmt.Errorf("print argument is required")
	}
	return p.Value.Validate()
}

// Implementation of Node interface for If

func (i *If) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("if %s:", i.Condition.String()))
	for _, stmt := range i.Body {
		for _, line := range strings.Split(stmt.String(), "\n") {
			sb.WriteString("\n    " + line)
		}
	}
	if i.Else != nil {
		sb.WriteString("\nelse:")
		for _, stmt := range i.Else {
			for _, line := range strings.Split(stmt.String(), "\n") {
				sb.WriteString("\n    " + line)
			}
		}
	}
	return sb.String()
}

func (i *If) Accept(visitor Visitor) interface{} {
	return visitor.VisitIf(i)
}

func (i *If) Position() Position {
	return i.Pos
}

func (i *If) Validate() error {
	if i.Condition == nil {
		return fmt.Errorf("if condition is required")
	}
	if err := i.Condition.Validate(); err != nil {
		return fmt.Errorf("condition: %w", err)
	}
	for idx, stmt := range i.Body {
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("body statement %d: %w", idx, err)
		}
	}
	for idx, stmt := range i.Else {
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("else statement %d: %w", idx, err)
		}
	}
	return nil
}

// HasElse returns true if this conditional has an else branch
func (i *If) HasElse() bool {
	return i.Else != nil
}

// Implementation of Node interface for BinaryOp

func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

func (b *BinaryOp) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryOp(b)
}

func (b *BinaryOp) Position() Position {
	return b.Pos
}

// IsComparison returns true if the operator is a comparison operator
func (b *BinaryOp) IsComparison() bool {
	switch b.Op {
	case ">", "<", ">=", "<=", "==", "!=":
		return true
	}
	return false
}

func (b *BinaryOp) Validate() error {
	if b.Left == nil || b.Right == nil {
		return fmt.Errorf("binary expression requires two operands")
	}
	switch b.Op {
	case "+", "-", "*", "/", ">", "<", ">=", "<=", "==", "!=":
		// known operator
	default:
		return fmt.Errorf("unknown operator: %s", b.Op)
	}
	if err := b.Left.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := b.Right.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}
	return nil
}

// Implementation of Node interface for Number

func (n *Number) String() string {
	return fmt.Sprintf("%d", n.Value)
}

func (n *Number) Accept(visitor Visitor) interface{} {
	return visitor.VisitNumber(n)
}

func (n *Number) Position() Position {
	return n.Pos
}

func (n *Number) Validate() error {
	return nil // Numbers are validated during lexing
}

// Implementation of Node interface for StringLit

func (s *StringLit) String() string {
	return fmt.Sprintf("%q", s.Value)
}

func (s *StringLit) Accept(visitor Visitor) interface{} {
	return visitor.VisitString(s)
}

func (s *StringLit) Position() Position {
	return s.Pos
}

func (s *StringLit) Validate() error {
	return nil // Strings are always valid
}

// Implementation of Node interface for Name

func (n *Name) String() string {
	return n.Ident
}

func (n *Name) Accept(visitor Visitor) interface{} {
	return visitor.VisitName(n)
}

func (n *Name) Position() Position {
	return n.Pos
}

func (n *Name) Validate() error {
	if n.Ident == "" {
		return fmt.Errorf("identifier name is required")
	}
	return nil
}
