package parser

import (
	"github.com/monkeylang/monkey/ast"
	"github.com/monkeylang/monkey/lexer"
)

// parseExpression is the Pratt loop: parse one prefix parselet, then keep
// folding in infix operators whose precedence exceeds minPrecedence
// (spec.md §4.2 — each infix parses its right operand at its own
// precedence, making every operator left-associative).
func (p *Parser) parseExpression(minPrecedence int) (ast.Expression, *Error) {
	if p.curToken.Type == lexer.ILLEGAL {
		return nil, newIllegalCharacter(p.curToken)
	}

	prefix, ok := p.prefixFns[p.curToken.Type]
	if !ok {
		if p.curToken.Type == lexer.EOF {
			return nil, newUnexpectedEof(p.curToken)
		}
		return nil, newCannotStartExpression(p.curToken)
	}

	left, err := prefix()
	if err != nil {
		return asParseError(err)
	}

	for p.peekToken.Type != lexer.SEMICOLON && minPrecedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peekToken.Type]
		if !ok {
			return left, nil
		}
		p.advance()
		left, err = infix(left)
		if err != nil {
			return asParseError(err)
		}
	}

	return left, nil
}

// asParseError narrows the `error` a parselet returns (always a *Error
// under the hood) back to the concrete type the rest of the parser uses.
func asParseError(err error) (ast.Expression, *Error) {
	if pe, ok := err.(*Error); ok {
		return nil, pe
	}
	return nil, &Error{Kind: CannotStartExpression}
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) parseIdentifier() (ast.Expression, error) {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}, nil
}

func (p *Parser) parseStringLiteral() (ast.Expression, error) {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}, nil
}

func (p *Parser) parseBoolean() (ast.Expression, error) {
	return &ast.Boolean{Token: p.curToken, Value: p.curToken.Type == lexer.TRUE}, nil
}

func (p *Parser) parseNilLiteral() (ast.Expression, error) {
	return &ast.NilLiteral{Token: p.curToken}, nil
}

// parseUnaryExpression handles `!x` and `-x`; the operand parses at
// PREFIX precedence (spec.md §4.2).
func (p *Parser) parseUnaryExpression() (ast.Expression, error) {
	expr := &ast.UnaryExpression{Token: p.curToken}
	if p.curToken.Type == lexer.BANG {
		expr.Operator = ast.OpNot
	} else {
		expr.Operator = ast.OpNegate
	}

	p.advance()
	right, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}
	expr.Right = right
	return expr, nil
}

var binaryOperators = map[lexer.TokenType]ast.BinaryOperator{
	lexer.PLUS:     ast.OpAdd,
	lexer.MINUS:    ast.OpSub,
	lexer.ASTERISK: ast.OpMul,
	lexer.SLASH:    ast.OpDiv,
	lexer.EQ:       ast.OpEq,
	lexer.NOT_EQ:   ast.OpNotEq,
	lexer.LT:       ast.OpLt,
	lexer.LTE:      ast.OpLte,
	lexer.GT:       ast.OpGt,
	lexer.GTE:      ast.OpGte,
}

// parseBinaryExpression parses the right operand at the operator's own
// precedence, which makes `a - b - c` group as `(a - b) - c` (spec.md §4.2).
func (p *Parser) parseBinaryExpression(left ast.Expression) (ast.Expression, error) {
	expr := &ast.BinaryExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: binaryOperators[p.curToken.Type],
	}

	precedence := p.curPrecedence()
	p.advance()
	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}
	expr.Right = right
	return expr, nil
}

// parseGroupedExpression: `( Expression )` parsed at precedence 0
// (spec.md §4.2's edge case).
func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	p.advance()
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if p.peekToken.Type != lexer.RPAREN {
		return nil, newUnexpectedToken(lexer.RPAREN, p.peekToken)
	}
	p.advance()
	return expr, nil
}

// parseIfExpression: `if (Condition) { Consequence } [else { Alternative }]`.
func (p *Parser) parseIfExpression() (ast.Expression, error) {
	expr := &ast.IfExpression{Token: p.curToken}

	if p.peekToken.Type != lexer.LPAREN {
		return nil, newUnexpectedToken(lexer.LPAREN, p.peekToken)
	}
	p.advance()
	p.advance()

	condition, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	expr.Condition = condition

	if p.peekToken.Type != lexer.RPAREN {
		return nil, newUnexpectedToken(lexer.RPAREN, p.peekToken)
	}
	p.advance()

	if p.peekToken.Type != lexer.LBRACE {
		return nil, newUnexpectedToken(lexer.LBRACE, p.peekToken)
	}
	p.advance()

	consequence, blockErr := p.parseBlock()
	if blockErr != nil {
		return nil, blockErr
	}
	expr.Consequence = consequence

	if p.peekToken.Type == lexer.ELSE {
		p.advance()
		if p.peekToken.Type != lexer.LBRACE {
			return nil, newUnexpectedToken(lexer.LBRACE, p.peekToken)
		}
		p.advance()
		alternative, altErr := p.parseBlock()
		if altErr != nil {
			return nil, altErr
		}
		expr.Alternative = alternative
	}

	return expr, nil
}

// parseFunctionLiteral: `fn ( Parameters... ) { Body }`.
func (p *Parser) parseFunctionLiteral() (ast.Expression, error) {
	fn := &ast.FunctionLiteral{Token: p.curToken}

	if p.peekToken.Type != lexer.LPAREN {
		return nil, newUnexpectedToken(lexer.LPAREN, p.peekToken)
	}
	p.advance()

	params, err := p.parseFunctionParameters()
	if err != nil {
		return nil, err
	}
	fn.Parameters = params

	if p.peekToken.Type != lexer.LBRACE {
		return nil, newUnexpectedToken(lexer.LBRACE, p.peekToken)
	}
	p.advance()

	body, blockErr := p.parseBlock()
	if blockErr != nil {
		return nil, blockErr
	}
	fn.Body = body

	return fn, nil
}

// parseFunctionParameters handles the `fn() { }` zero-parameter edge
// case (spec.md §4.2) as well as the comma-separated general case.
func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, *Error) {
	params := make([]*ast.Identifier, 0)

	if p.peekToken.Type == lexer.RPAREN {
		p.advance()
		return params, nil
	}

	p.advance()
	params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekToken.Type == lexer.COMMA {
		p.advance()
		p.advance()
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if p.peekToken.Type != lexer.RPAREN {
		return nil, newUnexpectedToken(lexer.RPAREN, p.peekToken)
	}
	p.advance()

	return params, nil
}

// parseArrayLiteral: `[ elements... ]`.
func (p *Parser) parseArrayLiteral() (ast.Expression, error) {
	arr := &ast.ArrayLiteral{Token: p.curToken}
	elements, err := p.parseExpressionList(lexer.RBRACKET)
	if err != nil {
		return nil, err
	}
	arr.Elements = elements
	return arr, nil
}

// parseExpressionList parses a comma-separated, precedence-0 list up to
// and including the closing delimiter. An optional leading or trailing
// comma is not accepted (spec.md §4.2).
func (p *Parser) parseExpressionList(end lexer.TokenType) ([]ast.Expression, *Error) {
	list := make([]ast.Expression, 0)

	if p.peekToken.Type == end {
		p.advance()
		return list, nil
	}

	p.advance()
	first, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	list = append(list, first)

	for p.peekToken.Type == lexer.COMMA {
		p.advance()
		p.advance()
		next, nextErr := p.parseExpression(LOWEST)
		if nextErr != nil {
			return nil, nextErr
		}
		list = append(list, next)
	}

	if p.peekToken.Type != end {
		return nil, newUnexpectedToken(end, p.peekToken)
	}
	p.advance()

	return list, nil
}

// parseHashLiteral: `{ key:value, ... }`.
func (p *Parser) parseHashLiteral() (ast.Expression, error) {
	hash := &ast.HashLiteral{Token: p.curToken, Pairs: make([]ast.HashPair, 0)}

	if p.peekToken.Type == lexer.RBRACE {
		p.advance()
		return hash, nil
	}

	for {
		p.advance()
		key, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}

		if p.peekToken.Type != lexer.COLON {
			return nil, newUnexpectedToken(lexer.COLON, p.peekToken)
		}
		p.advance()
		p.advance()

		value, valErr := p.parseExpression(LOWEST)
		if valErr != nil {
			return nil, valErr
		}

		hash.Pairs = append(hash.Pairs, ast.HashPair{Key: key, Value: value})

		if p.peekToken.Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}

	if p.peekToken.Type != lexer.RBRACE {
		return nil, newUnexpectedToken(lexer.RBRACE, p.peekToken)
	}
	p.advance()

	return hash, nil
}

// parseCallExpression: `Callee(Arguments...)`; arguments parse at
// precedence 0, each (spec.md §4.2's edge case).
func (p *Parser) parseCallExpression(callee ast.Expression) (ast.Expression, error) {
	call := &ast.CallExpression{Token: p.curToken, Callee: callee}
	args, err := p.parseExpressionList(lexer.RPAREN)
	if err != nil {
		return nil, err
	}
	call.Arguments = args
	return call, nil
}

// parseIndexExpression: `Container[Index]`.
func (p *Parser) parseIndexExpression(container ast.Expression) (ast.Expression, error) {
	expr := &ast.IndexExpression{Token: p.curToken, Container: container}
	p.advance()

	index, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	expr.Index = index

	if p.peekToken.Type != lexer.RBRACKET {
		return nil, newUnexpectedToken(lexer.RBRACKET, p.peekToken)
	}
	p.advance()

	return expr, nil
}
