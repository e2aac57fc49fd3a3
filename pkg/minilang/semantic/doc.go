// File: doc.go
// Title: MiniPy Semantic Analysis Package Documentation
// Description: Provides flow-sensitive semantic analysis for MiniPy
//              programs, detecting uses of undefined variables with
//              branch-local scope isolation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial semantic analysis package

/*
Package semantic implements the semantic analysis phase for MiniPy.

The analyzer walks the AST depth-first in statement order, threading a
scope of defined names. Assignments define names after their right-hand
side is checked, so self-referencing initializers are flagged. Branches
of an if statement each analyze against a copy of the enclosing scope,
modeling non-guaranteed execution: names assigned inside a branch are
invisible to the sibling branch and to statements after the if.

Analysis is a static check only. No values are tracked and no type
checking is performed.
*/
package semantic
