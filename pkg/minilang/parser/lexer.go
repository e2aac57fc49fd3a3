// File: lexer.go
// Title: MiniPy Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of MiniPy parsing.
//              Converts source text into streams of tokens, synthesizing
//              INDENT/DEDENT/NEWLINE tokens from leading-whitespace
//              analysis. Lexical errors are reported as tokens so that
//              lexing never aborts.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"strings"
)

// tabWidth is the indentation width contributed by a single tab.
// Mixed tab/space widths are summed, not aligned to tab stops.
const tabWidth = 4

// Lexer performs lexical analysis of MiniPy source code.
// A Lexer instance holds indentation-stack state and must not be
// reused across inputs; create a fresh instance or call Reset.
type Lexer struct {
	source      string // Input source text
	indentStack []int  // Open indentation levels, always starts at 0
	line        int    // Current physical line number (1-based)
}

// NewLexer creates a new lexer for the given source text
func NewLexer(source string) *Lexer {
	return &Lexer{
		source:      source,
		indentStack: []int{0},
		line:        1,
	}
}

// Reset clears the indentation stack so the lexer can process a new input
func (l *Lexer) Reset(source string) {
	l.source = source
	l.indentStack = l.indentStack[:1]
	l.indentStack[0] = 0
	l.line = 1
}

// Tokenize performs a single pass over the source and returns the
// complete token sequence. Every physical line is terminated by one
// NEWLINE token, blocks are bracketed by INDENT/DEDENT tokens, and the
// sequence always ends with remaining DEDENTs followed by EOF.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token

	for _, rawLine := range splitLines(l.source) {
		lineText := strings.TrimRight(rawLine, "\r\n")

		width, contentStart := measureIndent(lineText)
		stripped := strings.TrimSpace(lineText)

		// Blank or whitespace-only lines keep the indent stack unchanged
		if stripped != "" {
			tokens = append(tokens, l.indentTokens(width)...)
		}

		tokens = append(tokens, l.scanLine(lineText[contentStart:])...)

		tokens = append(tokens, Token{Type: TokenNewline, Value: "\n", Line: l.line})
		l.line++
	}

	// Unwind any remaining indentation at end of input
	for len(l.indentStack) > 1 {
		l.indentStack = l.indentStack[:len(l.indentStack)-1]
		tokens = append(tokens, Token{Type: TokenDedent, Value: "DEDENT", Line: l.line})
	}

	tokens = append(tokens, Token{Type: TokenEOF, Line: l.line})
	return tokens
}

// indentTokens compares the line's indentation width against the stack
// and emits INDENT/DEDENT tokens as needed. A dedent that does not land
// exactly on a stack entry is silently normalized to the nearest
// shallower level.
func (l *Lexer) indentTokens(width int) []Token {
	var tokens []Token

	current := l.indentStack[len(l.indentStack)-1]
	if width > current {
		l.indentStack = append(l.indentStack, width)
		tokens = append(tokens, Token{Type: TokenIndent, Value: "INDENT", Line: l.line})
	} else if width < current {
		for len(l.indentStack) > 0 && width < l.indentStack[len(l.indentStack)-1] {
			l.indentStack = l.indentStack[:len(l.indentStack)-1]
			tokens = append(tokens, Token{Type: TokenDedent, Value: "DEDENT", Line: l.line})
		}
	}

	return tokens
}

// scanLine tokenizes the content portion of a single line
func (l *Lexer) scanLine(content string) []Token {
	var tokens []Token
	pos := 0

	for pos < len(content) {
		ch := content[pos]

		switch {
		case ch == ' ' || ch == '\t':
			pos++

		case ch == '#':
			// Comment to end of line
			return tokens

		case ch == '>':
			if pos+1 < len(content) && content[pos+1] == '=' {
				tokens = append(tokens, Token{Type: TokenGreaterEq, Value: ">=", Line: l.line})
				pos += 2
			} else {
				tokens = append(tokens, Token{Type: TokenGreater, Value: ">", Line: l.line})
				pos++
			}

		case ch == '<':
			if pos+1 < len(content) && content[pos+1] == '=' {
				tokens = append(tokens, Token{Type: TokenLessEq, Value: "<=", Line: l.line})
				pos += 2
			} else {
				tokens = append(tokens, Token{Type: TokenLess, Value: "<", Line: l.line})
				pos++
			}

		case ch == '=':
			if pos+1 < len(content) && content[pos+1] == '=' {
				tokens = append(tokens, Token{Type: TokenEq, Value: "==", Line: l.line})
				pos += 2
			} else {
				tokens = append(tokens, Token{Type: TokenAssign, Value: "=", Line: l.line})
				pos++
			}

		case ch == '!':
			if pos+1 < len(content) && content[pos+1] == '=' {
				tokens = append(tokens, Token{Type: TokenNotEq, Value: "!=", Line: l.line})
				pos += 2
			} else {
				tokens = append(tokens, l.errorToken(ch))
				pos++
			}

		case ch == '+':
			tokens = append(tokens, Token{Type: TokenPlus, Value: "+", Line: l.line})
			pos++
		case ch == '-':
			tokens = append(tokens, Token{Type: TokenMinus, Value: "-", Line: l.line})
			pos++
		case ch == '*':
			tokens = append(tokens, Token{Type: TokenStar, Value: "*", Line: l.line})
			pos++
		case ch == '/':
			tokens = append(tokens, Token{Type: TokenSlash, Value: "/", Line: l.line})
			pos++
		case ch == '(':
			tokens = append(tokens, Token{Type: TokenLeftParen, Value: "(", Line: l.line})
			pos++
		case ch == ')':
			tokens = append(tokens, Token{Type: TokenRightParen, Value: ")", Line: l.line})
			pos++
		case ch == ':':
			tokens = append(tokens, Token{Type: TokenColon, Value: ":", Line: l.line})
			pos++

		case ch == '"' || ch == '\'':
			value, consumed, ok := scanString(content[pos:], ch)
			if !ok {
				// Unterminated string: report the quote and resume
				tokens = append(tokens, l.errorToken(ch))
				pos++
				break
			}
			tokens = append(tokens, Token{Type: TokenString, Value: value, Line: l.line})
			pos += consumed

		case isLetter(ch):
			start := pos
			for pos < len(content) && (isLetter(content[pos]) || isDigit(content[pos])) {
				pos++
			}
			ident := content[start:pos]
			tokens = append(tokens, Token{Type: lookupIdent(ident), Value: ident, Line: l.line})

		case isDigit(ch):
			start := pos
			for pos < len(content) && isDigit(content[pos]) {
				pos++
			}
			tokens = append(tokens, Token{Type: TokenNumber, Value: content[start:pos], Line: l.line})

		default:
			tokens = append(tokens, l.errorToken(ch))
			pos++
		}
	}

	return tokens
}

// errorToken builds a lexical error token for an illegal character.
// The lexer skips exactly one character and resumes.
func (l *Lexer) errorToken(ch byte) Token {
	return Token{
		Type:  TokenError,
		Value: fmt.Sprintf("Illegal character '%c' at line %d", ch, l.line),
		Line:  l.line,
	}
}

// scanString scans a quoted string literal starting at the opening
// quote. Returns the decoded content, the number of bytes consumed
// including both quotes, and whether a closing quote was found.
func scanString(s string, quote byte) (string, int, bool) {
	var sb strings.Builder
	i := 1 // skip opening quote

	for i < len(s) {
		ch := s[i]
		if ch == quote {
			return sb.String(), i + 1, true
		}
		if ch == '\\' && i+1 < len(s) {
			sb.WriteByte(unescape(s[i+1]))
			i += 2
			continue
		}
		sb.WriteByte(ch)
		i++
	}

	return "", 0, false
}

// unescape decodes a single backslash escape sequence
func unescape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		// Unknown escapes keep the escaped character
		return ch
	}
}

// measureIndent returns the indentation width of a line (spaces count
// as 1, tabs as tabWidth) and the byte offset of the first
// non-whitespace character.
func measureIndent(line string) (width, contentStart int) {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			width++
		case '\t':
			width += tabWidth
		default:
			return width, i
		}
	}
	return width, len(line)
}

// splitLines splits source text into physical lines, stripping
// terminators. A trailing newline does not produce an extra empty line.
func splitLines(source string) []string {
	if source == "" {
		return nil
	}

	var lines []string
	start := 0
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			lines = append(lines, source[start:i])
			start = i + 1
		}
	}
	if start < len(source) {
		lines = append(lines, source[start:])
	}
	return lines
}

// isLetter checks if the character can start or continue an identifier
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if the character is a decimal digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// TokenizeSource is a convenience function that tokenizes source text
// with a fresh lexer instance
func TokenizeSource(source string) []Token {
	return NewLexer(source).Tokenize()
}
