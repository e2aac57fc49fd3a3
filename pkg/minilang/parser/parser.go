// File: parser.go
// Title: MiniPy Recursive Descent Parser
// Description: Implements the parsing phase of MiniPy processing.
//              Converts token streams into Abstract Syntax Trees using
//              recursive descent parsing with panic-mode error recovery
//              so that valid statements before and after an error are
//              preserved.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strconv"

	minilog "github.com/msto63/minipy/pkg/core/log"
	miniast "github.com/msto63/minipy/pkg/minilang/ast"
)

// Parser implements recursive descent parsing for MiniPy
type Parser struct {
	tokens  []Token
	pos     int
	errors  []string
	logger  *minilog.Logger
	options Options

	// recovering is set while resynchronizing after a syntax error and
	// cleared once a statement parses cleanly. pendingDedents counts
	// stray INDENTs that were skipped so their closing DEDENTs can be
	// consumed without a second error.
	recovering     bool
	pendingDedents int
}

// Options configures parser behavior
type Options struct {
	Logger         *minilog.Logger
	MaxInputLength int
}

// parseFailure signals that the current production could not be
// completed. The associated message has already been recorded.
type parseFailure struct {
	reported bool
}

func (pf *parseFailure) Error() string {
	return "parse failure"
}

// New creates a new MiniPy parser with the given options
func New(opts Options) *Parser {
	// Set defaults
	if opts.Logger == nil {
		opts.Logger = minilog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = 65536
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "minipy-parser"),
		options: opts,
	}
}

// Parse parses MiniPy source text and returns the AST together with
// all collected syntax errors. The AST is nil only when the input
// exceeds the configured limit or nothing could be parsed at the top
// level after an unrecoverable failure; otherwise it contains every
// statement built from fully matched grammar rules.
func (p *Parser) Parse(source string) (*miniast.Program, []string) {
	p.errors = nil

	if len(source) > p.options.MaxInputLength {
		p.errors = append(p.errors, fmt.Sprintf("input exceeds maximum length: %d > %d",
			len(source), p.options.MaxInputLength))
		return nil, p.errors
	}

	p.tokens = NewLexer(source).Tokenize()
	p.pos = 0
	p.recovering = false
	p.pendingDedents = 0

	p.logger.Debug("Starting MiniPy parsing", minilog.Fields{
		"length": len(source),
		"tokens": len(p.tokens),
	})

	program := &miniast.Program{Pos: miniast.Position{Line: 1, Column: 1}}

	for p.current().Type != TokenEOF {
		switch p.current().Type {
		case TokenIndent:
			// No grammar rule accepts an INDENT at statement position.
			// During resynchronization it is skipped silently, on clean
			// input it is a syntax error. Either way its closing DEDENT
			// must pass without a second report.
			if !p.recovering {
				p.syntaxError(p.current())
			}
			p.pendingDedents++
			p.advance()
			continue

		case TokenDedent:
			if p.pendingDedents > 0 {
				p.pendingDedents--
			} else if !p.recovering {
				p.syntaxError(p.current())
			}
			p.advance()
			continue
		}

		stmt, err := p.parseStatement()
		if err != nil {
			p.recover(err)
			continue
		}
		p.recovering = false
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}

	if len(p.errors) > 0 {
		p.logger.Debug("MiniPy parsing finished with errors", minilog.Fields{
			"errors":     len(p.errors),
			"statements": len(program.Statements),
		})
	}

	return program, p.errors
}

// parseStatement parses a single statement. A bare NEWLINE is an empty
// statement and yields a nil node without error.
func (p *Parser) parseStatement() (miniast.Stmt, error) {
	tok := p.current()

	switch tok.Type {
	case TokenNewline:
		p.advance()
		return nil, nil

	case TokenIf:
		return p.parseIf()

	case TokenPrint:
		stmt, err := p.parsePrint()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenNewline); err != nil {
			return nil, err
		}
		return stmt, nil

	case TokenName:
		stmt, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenNewline); err != nil {
			return nil, err
		}
		return stmt, nil

	default:
		return nil, p.syntaxError(tok)
	}
}

// parseAssignment parses NAME '=' expression
func (p *Parser) parseAssignment() (*miniast.Assignment, error) {
	tok := p.current()
	name := tok.Value
	p.advance()

	if p.current().Type != TokenAssign {
		return nil, p.syntaxError(p.current())
	}
	p.advance()

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &miniast.Assignment{
		Name:  name,
		Value: expr,
		Pos:   miniast.Position{Line: tok.Line},
	}, nil
}

// parsePrint parses 'print' '(' expression ')'
func (p *Parser) parsePrint() (*miniast.Print, error) {
	tok := p.current()
	p.advance() // consume 'print'

	if err := p.expect(TokenLeftParen); err != nil {
		return nil, err
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := p.expect(TokenRightParen); err != nil {
		return nil, err
	}

	return &miniast.Print{
		Value: expr,
		Pos:   miniast.Position{Line: tok.Line},
	}, nil
}

// parseIf parses an if statement with an optional else branch:
//
//	'if' comparison ':' NEWLINE INDENT statement* DEDENT
//	['else' ':' NEWLINE INDENT statement* DEDENT]
func (p *Parser) parseIf() (*miniast.If, error) {
	tok := p.current()
	p.advance() // consume 'if'

	condition, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	if err := p.expectBlockHeader(); err != nil {
		return nil, err
	}

	body := p.parseBlock()

	if err := p.expect(TokenDedent); err != nil {
		return nil, err
	}

	stmt := &miniast.If{
		Condition: condition,
		Body:      body,
		Pos:       miniast.Position{Line: tok.Line},
	}

	if p.current().Type == TokenElse {
		p.advance()

		if err := p.expectBlockHeader(); err != nil {
			return nil, err
		}

		stmt.Else = p.parseBlock()

		if err := p.expect(TokenDedent); err != nil {
			return nil, err
		}
	}

	return stmt, nil
}

// expectBlockHeader consumes ':' NEWLINE INDENT
func (p *Parser) expectBlockHeader() error {
	if err := p.expect(TokenColon); err != nil {
		return err
	}
	if err := p.expect(TokenNewline); err != nil {
		return err
	}
	return p.expect(TokenIndent)
}

// parseBlock parses statements until the enclosing block closes.
// Errors inside the block are recorded and recovery continues at the
// next statement boundary so later statements are still parsed.
func (p *Parser) parseBlock() []miniast.Stmt {
	var stmts []miniast.Stmt

	for p.current().Type != TokenDedent && p.current().Type != TokenEOF {
		// A deeper INDENT without a block header is a syntax error
		// unless it turns up while resynchronizing
		if p.current().Type == TokenIndent {
			if !p.recovering {
				p.syntaxError(p.current())
			}
			p.pendingDedents++
			p.advance()
			continue
		}

		stmt, err := p.parseStatement()
		if err != nil {
			p.recover(err)
			continue
		}
		p.recovering = false
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	return stmts
}

// parseComparison parses exactly one comparison:
// expression (> < >= <= == !=) expression.
// Boolean connectives and chained comparisons are not part of the
// language.
func (p *Parser) parseComparison() (miniast.Expr, error) {
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	op := p.current()
	if !op.Type.IsComparison() {
		return nil, p.syntaxError(op)
	}
	p.advance()

	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &miniast.BinaryOp{
		Left:  left,
		Op:    op.Value,
		Right: right,
		Pos:   miniast.Position{Line: op.Line},
	}, nil
}

// parseExpression parses additive expressions (lowest arithmetic
// precedence level)
func (p *Parser) parseExpression() (miniast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenPlus || p.current().Type == TokenMinus {
		op := p.current()
		p.advance()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		left = &miniast.BinaryOp{
			Left:  left,
			Op:    op.Value,
			Right: right,
			Pos:   miniast.Position{Line: op.Line},
		}
	}

	return left, nil
}

// parseTerm parses multiplicative expressions
func (p *Parser) parseTerm() (miniast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenStar || p.current().Type == TokenSlash {
		op := p.current()
		p.advance()

		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}

		left = &miniast.BinaryOp{
			Left:  left,
			Op:    op.Value,
			Right: right,
			Pos:   miniast.Position{Line: op.Line},
		}
	}

	return left, nil
}

// parseFactor parses terminal expressions and parenthesized groups
func (p *Parser) parseFactor() (miniast.Expr, error) {
	tok := p.current()

	switch tok.Type {
	case TokenNumber:
		p.advance()
		value, err := strconv.Atoi(tok.Value)
		if err != nil {
			// Digits only by construction, overflow is the only failure
			p.errors = append(p.errors, fmt.Sprintf("Syntax error at '%s' (line %d)", tok.Value, tok.Line))
			return nil, &parseFailure{reported: true}
		}
		return &miniast.Number{Value: value, Pos: miniast.Position{Line: tok.Line}}, nil

	case TokenString:
		p.advance()
		return &miniast.StringLit{Value: tok.Value, Pos: miniast.Position{Line: tok.Line}}, nil

	case TokenName:
		p.advance()
		return &miniast.Name{Ident: tok.Value, Pos: miniast.Position{Line: tok.Line}}, nil

	case TokenLeftParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRightParen); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.syntaxError(tok)
	}
}

// current returns the token under examination
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token
func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

// expect consumes a token of the given type or records a syntax error
func (p *Parser) expect(tt TokenType) error {
	if p.current().Type != tt {
		return p.syntaxError(p.current())
	}
	p.advance()
	return nil
}

// syntaxError records a syntax error for the given token and returns a
// failure marker. Lexical error tokens carry their own message, which
// is surfaced verbatim.
func (p *Parser) syntaxError(tok Token) error {
	switch tok.Type {
	case TokenEOF:
		p.errors = append(p.errors, "Syntax error at EOF")
	case TokenError:
		p.errors = append(p.errors, tok.Value)
	default:
		p.errors = append(p.errors, fmt.Sprintf("Syntax error at '%s' (line %d)", tok.Value, tok.Line))
	}
	return &parseFailure{reported: true}
}

// recover implements panic-mode recovery: tokens are discarded until
// just past the next NEWLINE. DEDENT and EOF stop the skip without
// being consumed so that block structure stays intact.
func (p *Parser) recover(err error) {
	if _, ok := err.(*parseFailure); !ok {
		// Not a recorded parse failure, keep the message
		p.errors = append(p.errors, err.Error())
	}

	for {
		switch p.current().Type {
		case TokenNewline:
			p.advance()
			return
		case TokenDedent, TokenEOF:
			return
		default:
			p.advance()
		}
	}
}

// Errors returns the syntax errors collected by the last Parse call
func (p *Parser) Errors() []string {
	return p.errors
}

// ParseSource is a convenience function that parses source text with a
// fresh parser instance using default options
func ParseSource(source string) (*miniast.Program, []string) {
	return New(Options{}).Parse(source)
}
