// File: token.go
// Title: MiniPy Token Definitions
// Description: Defines the token types produced by the MiniPy lexer
//              including synthetic block-structure tokens and lexical
//              error tokens. Provides string representations for
//              debugging and error reporting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial token definitions

package parser

import "fmt"

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	// Identifiers and literals
	TokenName   // x, counter, my_var
	TokenNumber // 123
	TokenString // "string literal"

	// Keywords
	TokenPrint // print
	TokenIf    // if
	TokenElse  // else

	// Operators
	TokenPlus      // +
	TokenMinus     // -
	TokenStar      // *
	TokenSlash     // /
	TokenAssign    // =
	TokenGreater   // >
	TokenLess      // <
	TokenGreaterEq // >=
	TokenLessEq    // <=
	TokenEq        // ==
	TokenNotEq     // !=

	// Delimiters
	TokenLeftParen  // (
	TokenRightParen // )
	TokenColon      // :

	// Block structure (synthesized from whitespace)
	TokenNewline // end of physical line
	TokenIndent  // block start
	TokenDedent  // block end
)

// Token represents a lexical token with position information.
// For TokenError the value carries the full lexical error message.
type Token struct {
	Type  TokenType // Token type
	Value string    // Token text (decoded content for strings)
	Line  int       // Line number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return fmt.Sprintf("ERROR(%s)", t.Value)
	case TokenNewline:
		return "NEWLINE"
	case TokenIndent:
		return "INDENT"
	case TokenDedent:
		return "DEDENT"
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "ERROR"
	case TokenName:
		return "NAME"
	case TokenNumber:
		return "NUMBER"
	case TokenString:
		return "STRING"
	case TokenPrint:
		return "PRINT"
	case TokenIf:
		return "IF"
	case TokenElse:
		return "ELSE"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	case TokenAssign:
		return "ASSIGN"
	case TokenGreater:
		return "GREATER"
	case TokenLess:
		return "LESS"
	case TokenGreaterEq:
		return "GREATER_EQ"
	case TokenLessEq:
		return "LESS_EQ"
	case TokenEq:
		return "EQ"
	case TokenNotEq:
		return "NOT_EQ"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	case TokenColon:
		return "COLON"
	case TokenNewline:
		return "NEWLINE"
	case TokenIndent:
		return "INDENT"
	case TokenDedent:
		return "DEDENT"
	default:
		return "UNKNOWN"
	}
}

// IsComparison returns true for the six comparison operator tokens
func (tt TokenType) IsComparison() bool {
	switch tt {
	case TokenGreater, TokenLess, TokenGreaterEq, TokenLessEq, TokenEq, TokenNotEq:
		return true
	}
	return false
}

// Keywords map for identifier lookup
var keywords = map[string]TokenType{
	"print": TokenPrint,
	"if":    TokenIf,
	"else":  TokenElse,
}

// lookupIdent determines if an identifier is a keyword or regular name
func lookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenName
}
