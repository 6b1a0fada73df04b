// Package parser implements a Pratt (top-down operator precedence) parser
// for Monkey: tokens in, an ordered statement list plus an accumulated
// error list out (spec.md §4.2). It never panics on malformed input.
package parser

import (
	"strconv"

	"github.com/monkeylang/monkey/ast"
	"github.com/monkeylang/monkey/lexer"
)

// Parser holds the two-token lookahead and the registered prefix/infix
// parselet tables, following go-mix's CurrToken/NextToken pattern.
type Parser struct {
	lex *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	errors []*Error

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser over src and primes the two-token lookahead.
func New(src string) *Parser {
	p := &Parser{lex: lexer.NewLexer(src)}

	p.prefixFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENT:    p.parseIdentifier,
		lexer.INT:      p.parseIntegerLiteral,
		lexer.STRING:   p.parseStringLiteral,
		lexer.TRUE:     p.parseBoolean,
		lexer.FALSE:    p.parseBoolean,
		lexer.NIL:      p.parseNilLiteral,
		lexer.BANG:     p.parseUnaryExpression,
		lexer.MINUS:    p.parseUnaryExpression,
		lexer.LPAREN:   p.parseGroupedExpression,
		lexer.IF:       p.parseIfExpression,
		lexer.FUNCTION: p.parseFunctionLiteral,
		lexer.LBRACKET: p.parseArrayLiteral,
		lexer.LBRACE:   p.parseHashLiteral,
	}

	p.infixFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:     p.parseBinaryExpression,
		lexer.MINUS:    p.parseBinaryExpression,
		lexer.ASTERISK: p.parseBinaryExpression,
		lexer.SLASH:    p.parseBinaryExpression,
		lexer.EQ:       p.parseBinaryExpression,
		lexer.NOT_EQ:   p.parseBinaryExpression,
		lexer.LT:       p.parseBinaryExpression,
		lexer.LTE:      p.parseBinaryExpression,
		lexer.GT:       p.parseBinaryExpression,
		lexer.GTE:      p.parseBinaryExpression,
		lexer.LPAREN:   p.parseCallExpression,
		lexer.LBRACKET: p.parseIndexExpression,
	}

	p.advance()
	p.advance()
	return p
}

// Parse consumes every token and returns the top-level statement list
// alongside every accumulated error (spec.md §4.2's contract).
func (p *Parser) Parse() ([]ast.Statement, []*Error) {
	statements := make([]ast.Statement, 0)

	for p.curToken.Type != lexer.EOF {
		start := p.lex.Position
		stmt, err := p.parseStatement()
		if err != nil {
			p.errors = append(p.errors, err)
			p.recover()
			// recover stops on a Let/Return without consuming it; if the
			// failed statement never moved past that token, skip it.
			if p.lex.Position == start && p.curToken.Type != lexer.EOF {
				p.advance()
			}
			continue
		}
		statements = append(statements, stmt)
		p.advance()
	}

	return statements, p.errors
}

func (p *Parser) advance() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

// recover implements spec.md §4.2's "advance-on-error" policy: skip tokens
// until the next statement boundary, a Semicolon or a token that starts a
// new statement (Let, Return).
func (p *Parser) recover() {
	for {
		switch p.curToken.Type {
		case lexer.SEMICOLON:
			p.advance()
			return
		case lexer.EOF, lexer.LET, lexer.RETURN:
			return
		}
		p.advance()
	}
}

func (p *Parser) parseStatement() (ast.Statement, *Error) {
	switch p.curToken.Type {
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement: `let Identifier = Expression ;` (spec.md §4.2).
func (p *Parser) parseLetStatement() (ast.Statement, *Error) {
	stmt := &ast.LetStatement{Token: p.curToken}

	if p.peekToken.Type != lexer.IDENT {
		return nil, newUnexpectedToken(lexer.IDENT, p.peekToken)
	}
	p.advance()
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if p.peekToken.Type != lexer.ASSIGN {
		return nil, newUnexpectedToken(lexer.ASSIGN, p.peekToken)
	}
	p.advance()
	p.advance()

	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.Value = value

	if p.peekToken.Type != lexer.SEMICOLON {
		return nil, newUnexpectedToken(lexer.SEMICOLON, p.peekToken)
	}
	p.advance()

	return stmt, nil
}

// parseReturnStatement: `return Expression ;` (spec.md §4.2).
func (p *Parser) parseReturnStatement() (ast.Statement, *Error) {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	p.advance()

	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.Value = value

	if p.peekToken.Type != lexer.SEMICOLON {
		return nil, newUnexpectedToken(lexer.SEMICOLON, p.peekToken)
	}
	p.advance()

	return stmt, nil
}

// parseExpressionStatement parses an expression; the trailing semicolon
// is optional (spec.md §4.2), which is what lets the final statement of a
// program or block be its value.
func (p *Parser) parseExpressionStatement() (ast.Statement, *Error) {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.Expression = expr

	if p.peekToken.Type == lexer.SEMICOLON {
		p.advance()
	}

	return stmt, nil
}

// parseBlock parses `{ statements... }`, already positioned on the `{`.
func (p *Parser) parseBlock() (*ast.Block, *Error) {
	block := &ast.Block{Statements: make([]ast.Statement, 0)}
	p.advance() // consume '{'

	for p.curToken.Type != lexer.RBRACE {
		if p.curToken.Type == lexer.EOF {
			return nil, newUnexpectedEof(p.curToken)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		p.advance()
	}

	return block, nil
}

func (p *Parser) parseIntegerLiteral() (ast.Expression, error) {
	value, convErr := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if convErr != nil {
		return nil, newIllegalCharacter(p.curToken)
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}, nil
}
