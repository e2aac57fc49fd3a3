// File: scope.go
// Title: MiniPy Scope (Symbol Table)
// Description: Implements the symbol table used during semantic
//              analysis. Tracks which variable names have been assigned
//              with set semantics, no values are stored. Scopes are
//              copied when entering conditional branches so branch-local
//              assignments never leak.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial scope implementation

package semantic

// Scope tracks the set of variable names known to be assigned at a
// given point of program traversal
type Scope struct {
	defined map[string]struct{}
}

// NewScope creates an empty scope
func NewScope() *Scope {
	return &Scope{
		defined: make(map[string]struct{}),
	}
}

// Define marks a name as assigned in this scope
func (s *Scope) Define(name string) {
	s.defined[name] = struct{}{}
}

// IsDefined reports whether a name has been assigned in this scope
func (s *Scope) IsDefined(name string) bool {
	_, ok := s.defined[name]
	return ok
}

// Copy returns an independent snapshot of this scope. The copy never
// aliases the parent's storage, so defining names in the copy leaves
// the original untouched.
func (s *Scope) Copy() *Scope {
	clone := &Scope{
		defined: make(map[string]struct{}, len(s.defined)),
	}
	for name := range s.defined {
		clone.defined[name] = struct{}{}
	}
	return clone
}

// Len returns the number of defined names
func (s *Scope) Len() int {
	return len(s.defined)
}
