// File: doc.go
// Title: MiniPy Abstract Syntax Tree Package Documentation
// Description: Defines the Abstract Syntax Tree nodes and structures for
//              representing parsed MiniPy programs. Provides visitor patterns
//              and tree inspection utilities.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree structures for MiniPy programs.

This package provides the node definitions, visitor patterns, and utilities
for representing and inspecting parsed MiniPy source as structured data.

The AST enables:
  • Structured representation of MiniPy programs
  • Flow-sensitive semantic analysis
  • Tree dumps for debugging and tooling
  • Static inspection and validation
*/
package ast
