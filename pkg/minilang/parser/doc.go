// File: doc.go
// Title: MiniPy Parser Package Documentation
// Description: Provides lexical analysis and parsing for MiniPy source
//              code. Converts source text into token streams and Abstract
//              Syntax Trees with error-tolerant recovery.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial parser package

/*
Package parser implements the front-end analysis phases for MiniPy, a
minimal indentation-sensitive Python-like language.

The package provides:
  • Lexer - converts source text into tokens, synthesizing INDENT,
    DEDENT, and NEWLINE tokens from leading-whitespace analysis
  • Parser - recursive descent parsing of the token stream into an AST,
    collecting syntax errors without aborting on the first one

Supported language constructs: assignment, print calls, if/else blocks,
arithmetic and comparison operators, parenthesized grouping, integer and
string literals, and comments.

Lexical errors are non-fatal. An illegal character produces an error
token in the stream and lexing resumes one character later. The parser
surfaces such tokens as syntax errors and recovers at the next
statement boundary.
*/
package parser
