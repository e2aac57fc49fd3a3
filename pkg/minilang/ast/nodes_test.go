// File: nodes_test.go
// Title: MiniPy AST Node Unit Tests
// Description: Unit tests for AST node construction, string rendering,
//              position tracking, and structural validation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial test suite

package ast

import (
	"strings"
	"testing"
)

func TestNode_String(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "number",
			node: &Number{Value: 42},
			want: "42",
		},
		{
			name: "string literal",
			node: &StringLit{Value: "hi"},
			want: `"hi"`,
		},
		{
			name: "name",
			node: &Name{Ident: "counter"},
			want: "counter",
		},
		{
			name: "binary op",
			node: &BinaryOp{Left: &Number{Value: 1}, Op: "+", Right: &Number{Value: 2}},
			want: "(1 + 2)",
		},
		{
			name: "nested binary op",
			node: &BinaryOp{
				Left:  &Name{Ident: "x"},
				Op:    "*",
				Right: &BinaryOp{Left: &Number{Value: 2}, Op: "+", Right: &Number{Value: 3}},
			},
			want: "(x * (2 + 3))",
		},
		{
			name: "assignment",
			node: &Assignment{Name: "x", Value: &Number{Value: 5}},
			want: "x = 5",
		},
		{
			name: "print",
			node: &Print{Value: &StringLit{Value: "out"}},
			want: `print("out")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIf_String(t *testing.T) {
	stmt := &If{
		Condition: &BinaryOp{Left: &Name{Ident: "x"}, Op: ">", Right: &Number{Value: 5}},
		Body:      []Stmt{&Print{Value: &StringLit{Value: "big"}}},
		Else:      []Stmt{&Print{Value: &StringLit{Value: "small"}}},
	}

	got := stmt.String()
	if !strings.HasPrefix(got, "if (x > 5):") {
		t.Errorf("String() = %q, want prefix %q", got, "if (x > 5):")
	}
	if !strings.Contains(got, "else:") {
		t.Errorf("String() = %q, missing else branch", got)
	}
	if !strings.Contains(got, `    print("big")`) {
		t.Errorf("String() = %q, body not indented", got)
	}
}

func TestIf_HasElse(t *testing.T) {
	withElse := &If{
		Condition: &Number{Value: 1},
		Else:      []Stmt{},
	}
	withoutElse := &If{Condition: &Number{Value: 1}}

	// An empty but present else slice still counts as an else branch
	if !withElse.HasElse() {
		t.Error("HasElse() = false for non-nil else slice")
	}
	if withoutElse.HasElse() {
		t.Error("HasElse() = true for nil else slice")
	}
}

func TestProgram_String(t *testing.T) {
	program := &Program{
		Statements: []Stmt{
			&Assignment{Name: "x", Value: &Number{Value: 1}},
			&Print{Value: &Name{Ident: "x"}},
		},
	}

	want := "x = 1\nprint(x)"
	if got := program.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNode_Position(t *testing.T) {
	node := &Assignment{
		Name:  "x",
		Value: &Number{Value: 1},
		Pos:   Position{Line: 7, Column: 3},
	}

	pos := node.Position()
	if pos.Line != 7 || pos.Column != 3 {
		t.Errorf("Position() = %+v, want {Line:7 Column:3}", pos)
	}
}

func TestNode_Validate(t *testing.T) {
	tests := []struct {
		name    string
		node    Node
		wantErr bool
	}{
		{"valid assignment", &Assignment{Name: "x", Value: &Number{Value: 1}}, false},
		{"assignment without target", &Assignment{Value: &Number{Value: 1}}, true},
		{"assignment without value", &Assignment{Name: "x"}, true},
		{"valid print", &Print{Value: &Name{Ident: "x"}}, false},
		{"print without argument", &Print{}, true},
		{"valid binary op", &BinaryOp{Left: &Number{Value: 1}, Op: "+", Right: &Number{Value: 2}}, false},
		{"binary op missing operand", &BinaryOp{Left: &Number{Value: 1}, Op: "+"}, true},
		{"binary op unknown operator", &BinaryOp{Left: &Number{Value: 1}, Op: "%", Right: &Number{Value: 2}}, true},
		{"name without identifier", &Name{}, true},
		{"number always valid", &Number{Value: 0}, false},
		{"string always valid", &StringLit{Value: ""}, false},
		{"if without condition", &If{}, true},
		{"if with empty body", &If{Condition: &BinaryOp{Left: &Number{Value: 1}, Op: ">", Right: &Number{Value: 0}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestProgram_ValidatePropagates(t *testing.T) {
	program := &Program{
		Statements: []Stmt{
			&Assignment{Name: "x", Value: &Number{Value: 1}},
			&Print{}, // invalid
		},
	}

	err := program.Validate()
	if err == nil {
		t.Fatal("Validate() = nil for program with invalid statement")
	}
	if !strings.Contains(err.Error(), "statement 1") {
		t.Errorf("error %q does not name the failing statement", err)
	}
}

func TestBinaryOp_IsComparison(t *testing.T) {
	comparisons := []string{">", "<", ">=", "<=", "==", "!="}
	for _, op := range comparisons {
		b := &BinaryOp{Left: &Number{Value: 1}, Op: op, Right: &Number{Value: 2}}
		if !b.IsComparison() {
			t.Errorf("IsComparison() = false for %q", op)
		}
	}

	arithmetic := []string{"+", "-", "*", "/"}
	for _, op := range arithmetic {
		b := &BinaryOp{Left: &Number{Value: 1}, Op: op, Right: &Number{Value: 2}}
		if b.IsComparison() {
			t.Errorf("IsComparison() = true for %q", op)
		}
	}
}
