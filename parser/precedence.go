package parser

import (
	"github.com/monkeylang/monkey/ast"
	"github.com/monkeylang/monkey/lexer"
)

// Precedence levels, exactly spec.md §4.2's table. Higher binds tighter.
const (
	LOWEST     = 0
	EQUALS     = 2 // == !=
	COMPARISON = 3 // < <= > >=
	SUM        = 4 // + -
	PRODUCT    = 5 // * /
	PREFIX     = 6 // !x, -x
	CALL       = 7 // fn(x)
	INDEX      = 8 // arr[x]
)

// precedences maps an infix-position token to its left-binding power; a
// token absent from this map cannot start an infix parse (returns LOWEST).
var precedences = map[lexer.TokenType]int{
	lexer.EQ:       EQUALS,
	lexer.NOT_EQ:   EQUALS,
	lexer.LT:       COMPARISON,
	lexer.LTE:      COMPARISON,
	lexer.GT:       COMPARISON,
	lexer.GTE:      COMPARISON,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.ASTERISK: PRODUCT,
	lexer.SLASH:    PRODUCT,
	lexer.LPAREN:   CALL,
	lexer.LBRACKET: INDEX,
}

type (
	prefixParseFn func() (ast.Expression, error)
	infixParseFn  func(ast.Expression) (ast.Expression, error)
)
