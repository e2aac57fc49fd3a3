// File: visitor.go
// Title: MiniPy AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing and processing
//              MiniPy AST nodes. Provides base visitor interface and common
//              visitor implementations for analysis and inspection.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	// Visit statement nodes
	VisitProgram(prog *Program) interface{}
	VisitAssignment(stmt *Assignment) interface{}
	VisitPrint(stmt *Print) interface{}
	VisitIf(stmt *If) interface{}

	// Visit expression nodes
	VisitBinaryOp(expr *BinaryOp) interface{}
	VisitNumber(expr *Number) interface{}
	VisitString(expr *StringLit) interface{}
	VisitName(expr *Name) interface{}
}

// BaseVisitor provides default implementations for all visitor methods
// Embed this in concrete visitors to only override needed methods
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitProgram(prog *Program) interface{} {
	for _, stmt := range prog.Statements {
		stmt.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitAssignment(stmt *Assignment) interface{} {
	if stmt.Value != nil {
		return stmt.Value.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitPrint(stmt *Print) interface{} {
	if stmt.Value != nil {
		return stmt.Value.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitIf(stmt *If) interface{} {
	if stmt.Condition != nil {
		stmt.Condition.Accept(bv)
	}
	for _, s := range stmt.Body {
		s.Accept(bv)
	}
	for _, s := range stmt.Else {
		s.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitBinaryOp(expr *BinaryOp) interface{} {
	if expr.Left != nil {
		expr.Left.Accept(bv)
	}
	if expr.Right != nil {
		expr.Right.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitNumber(expr *Number) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitString(expr *StringLit) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitName(expr *Name) interface{} {
	return nil // Terminal node
}

// DumpVisitor creates an indented tree dump of the AST
type DumpVisitor struct {
	BaseVisitor
	buffer strings.Builder
	indent int
}

// NewDumpVisitor creates a new dump visitor
func NewDumpVisitor() *DumpVisitor {
	return &DumpVisitor{}
}

// String returns the built tree dump
func (dv *DumpVisitor) String() string {
	return dv.buffer.String()
}

// Reset clears the internal buffer
func (dv *DumpVisitor) Reset() {
	dv.buffer.Reset()
	dv.indent = 0
}

func (dv *DumpVisitor) writeIndent() {
	for i := 0; i < dv.indent; i++ {
		dv.buffer.WriteString("  ")
	}
}

func (dv *DumpVisitor) VisitProgram(prog *Program) interface{} {
	dv.writeIndent()
	dv.buffer.WriteString("Program:\n")
	dv.indent++
	for _, stmt := range prog.Statements {
		stmt.Accept(dv)
	}
	dv.indent--
	return nil
}

func (dv *DumpVisitor) VisitAssignment(stmt *Assignment) interface{} {
	dv.writeIndent()
	dv.buffer.WriteString(fmt.Sprintf("Assignment: %s\n", stmt.Name))
	dv.indent++
	stmt.Value.Accept(dv)
	dv.indent--
	return nil
}

func (dv *DumpVisitor) VisitPrint(stmt *Print) interface{} {
	dv.writeIndent()
	dv.buffer.WriteString("Print:\n")
	dv.indent++
	stmt.Value.Accept(dv)
	dv.indent--
	return nil
}

func (dv *DumpVisitor) VisitIf(stmt *If) interface{} {
	dv.writeIndent()
	dv.buffer.WriteString("If:\n")
	dv.indent++

	dv.writeIndent()
	dv.buffer.WriteString("Condition:\n")
	dv.indent++
	stmt.Condition.Accept(dv)
	dv.indent--

	dv.writeIndent()
	dv.buffer.WriteString("Body:\n")
	dv.indent++
	for _, s := range stmt.Body {
		s.Accept(dv)
	}
	dv.indent--

	if stmt.Else != nil {
		dv.writeIndent()
		dv.buffer.WriteString("Else:\n")
		dv.indent++
		for _, s := range stmt.Else {
			s.Accept(dv)
		}
		dv.indent--
	}

	dv.indent--
	return nil
}

func (dv *DumpVisitor) VisitBinaryOp(expr *BinaryOp) interface{} {
	dv.writeIndent()
	dv.buffer.WriteString(fmt.Sprintf("BinaryOp: %s\n", expr.Op))
	dv.indent++
	expr.Left.Accept(dv)
	expr.Right.Accept(dv)
	dv.indent--
	return nil
}

func (dv *DumpVisitor) VisitNumber(expr *Number) interface{} {
	dv.writeIndent()
	dv.buffer.WriteString(fmt.Sprintf("Number: %s\n", expr.String()))
	return nil
}

func (dv *DumpVisitor) VisitString(expr *StringLit) interface{} {
	dv.writeIndent()
	dv.buffer.WriteString(fmt.Sprintf("String: %q\n", expr.Value))
	return nil
}

func (dv *DumpVisitor) VisitName(expr *Name) interface{} {
	dv.writeIndent()
	dv.buffer.WriteString(fmt.Sprintf("Name: %s\n", expr.Ident))
	return nil
}

// ValidationVisitor validates AST nodes and collects errors
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{
		errors: make([]error, 0),
	}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) addError(err error) {
	vv.errors = append(vv.errors, err)
}

func (vv *ValidationVisitor) VisitProgram(prog *Program) interface{} {
	if err := prog.Validate(); err != nil {
		vv.addError(fmt.Errorf("program validation failed: %w", err))
	}
	return nil
}

func (vv *ValidationVisitor) VisitAssignment(stmt *Assignment) interface{} {
	if err := stmt.Validate(); err != nil {
		vv.addError(fmt.Errorf("assignment validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitAssignment(stmt)
}

func (vv *ValidationVisitor) VisitPrint(stmt *Print) interface{} {
	if err := stmt.Validate(); err != nil {
		vv.addError(fmt.Errorf("print validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitPrint(stmt)
}

func (vv *ValidationVisitor) VisitIf(stmt *If) interface{} {
	if err := stmt.Validate(); err != nil {
		vv.addError(fmt.Errorf("if validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitIf(stmt)
}

func (vv *ValidationVisitor) VisitBinaryOp(expr *BinaryOp) interface{} {
	if err := expr.Validate(); err != nil {
		vv.addError(fmt.Errorf("binary expression validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitBinaryOp(expr)
}

// CollectorVisitor collects specific types of nodes from the AST
type CollectorVisitor struct {
	BaseVisitor
	Assignments []*Assignment
	Names       []*Name
	Numbers     []*Number
	Strings     []*StringLit
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{
		Assignments: make([]*Assignment, 0),
		Names:       make([]*Name, 0),
		Numbers:     make([]*Number, 0),
		Strings:     make([]*StringLit, 0),
	}
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Assignments = cv.Assignments[:0]
	cv.Names = cv.Names[:0]
	cv.Numbers = cv.Numbers[:0]
	cv.Strings = cv.Strings[:0]
}

func (cv *CollectorVisitor) VisitProgram(prog *Program) interface{} {
	for _, stmt := range prog.Statements {
		stmt.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitAssignment(stmt *Assignment) interface{} {
	cv.Assignments = append(cv.Assignments, stmt)
	if stmt.Value != nil {
		stmt.Value.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitPrint(stmt *Print) interface{} {
	if stmt.Value != nil {
		stmt.Value.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitIf(stmt *If) interface{} {
	stmt.Condition.Accept(cv)
	for _, s := range stmt.Body {
		s.Accept(cv)
	}
	for _, s := range stmt.Else {
		s.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitBinaryOp(expr *BinaryOp) interface{} {
	if expr.Left != nil {
		expr.Left.Accept(cv)
	}
	if expr.Right != nil {
		expr.Right.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitName(expr *Name) interface{} {
	cv.Names = append(cv.Names, expr)
	return nil
}

func (cv *CollectorVisitor) VisitNumber(expr *Number) interface{} {
	cv.Numbers = append(cv.Numbers, expr)
	return nil
}

func (cv *CollectorVisitor) VisitString(expr *StringLit) interface{} {
	cv.Strings = append(cv.Strings, expr)
	return nil
}

// Utility functions for working with visitors

// ValidateAST validates an AST node and returns any validation errors
func ValidateAST(node Node) []error {
	visitor := NewValidationVisitor()
	node.Accept(visitor)
	return visitor.Errors()
}

// Dump converts an AST node to an indented tree dump
func Dump(node Node) string {
	visitor := NewDumpVisitor()
	node.Accept(visitor)
	return visitor.String()
}

// CollectNodes collects specific types of nodes from an AST
func CollectNodes(node Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	node.Accept(visitor)
	return visitor
}
