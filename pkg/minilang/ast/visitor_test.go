// File: visitor_test.go
// Title: MiniPy AST Visitor Unit Tests
// Description: Unit tests for the visitor pattern implementations
//              including tree dumping, validation, and node collection.
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

// sampleProgram builds the AST for:
//
//	x = 5
//	if x > 3:
//	    print("big")
//	else:
//	    print("small")
func sampleProgram() *Program {
	return &Program{
		Statements: []Stmt{
			&Assignment{Name: "x", Value: &Number{Value: 5}},
			&If{
				Condition: &BinaryOp{Left: &Name{Ident: "x"}, Op: ">", Right: &Number{Value: 3}},
				Body:      []Stmt{&Print{Value: &StringLit{Value: "big"}}},
				Else:      []Stmt{&Print{Value: &StringLit{Value: "small"}}},
			},
		},
	}
}

func TestDumpVisitor(t *testing.T) {
	dump := Dump(sampleProgram())

	wantLines := []string{
		"Program:",
		"  Assignment: x",
		"    Number: 5",
		"  If:",
		"    Condition:",
		"      BinaryOp: >",
		"        Name: x",
		"        Number: 3",
		"    Body:",
		"      Print:",
		`        String: "big"`,
		"    Else:",
		"      Print:",
		`        String: "small"`,
	}

	got := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	if len(got) != len(wantLines) {
		t.Fatalf("dump has %d lines, want %d:\n%s", len(got), len(wantLines), dump)
	}
	for i, want := range wantLines {
		if got[i] != want {
			t.Errorf("line %d = %q, want %q", i, got[i], want)
		}
	}
}

func TestDumpVisitor_Reset(t *testing.T) {
	dv := NewDumpVisitor()
	sampleProgram().Accept(dv)
	if dv.String() == "" {
		t.Fatal("empty dump")
	}

	dv.Reset()
	if dv.String() != "" {
		t.Error("Reset() did not clear the buffer")
	}
}

func TestValidationVisitor(t *testing.T) {
	valid := sampleProgram()
	if errs := ValidateAST(valid); len(errs) != 0 {
		t.Errorf("unexpected validation errors: %v", errs)
	}

	invalid := &Program{
		Statements: []Stmt{
			&Assignment{Value: &Number{Value: 1}}, // missing target
		},
	}
	if errs := ValidateAST(invalid); len(errs) == 0 {
		t.Error("no validation errors for invalid program")
	}
}

func TestValidationVisitor_Reset(t *testing.T) {
	vv := NewValidationVisitor()
	(&Print{}).Accept(vv)
	if !vv.HasErrors() {
		t.Fatal("no errors collected for invalid node")
	}

	vv.Reset()
	if vv.HasErrors() {
		t.Error("Reset() did not clear errors")
	}
}

func TestCollectorVisitor(t *testing.T) {
	collector := CollectNodes(sampleProgram())

	if len(collector.Assignments) != 1 {
		t.Errorf("assignment count = %d, want 1", len(collector.Assignments))
	}
	if len(collector.Names) != 1 {
		t.Errorf("name count = %d, want 1", len(collector.Names))
	}
	if len(collector.Numbers) != 2 {
		t.Errorf("number count = %d, want 2", len(collector.Numbers))
	}
	if len(collector.Strings) != 2 {
		t.Errorf("string count = %d, want 2", len(collector.Strings))
	}
}

func TestCollectorVisitor_BothBranches(t *testing.T) {
	// Traversal must reach every name in both branches of a conditional
	program := &Program{
		Statements: []Stmt{
			&If{
				Condition: &BinaryOp{Left: &Name{Ident: "a"}, Op: "<", Right: &Name{Ident: "b"}},
				Body:      []Stmt{&Print{Value: &Name{Ident: "c"}}},
				Else:      []Stmt{&Print{Value: &Name{Ident: "d"}}},
			},
		},
	}

	collector := CollectNodes(program)
	if len(collector.Names) != 4 {
		t.Errorf("name count = %d, want 4", len(collector.Names))
	}
}
