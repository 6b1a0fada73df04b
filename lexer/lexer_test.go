package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokensCase struct {
	Input    string
	Expected []Token
}

func TestTokens(t *testing.T) {
	tests := []tokensCase{
		{
			Input: `let five = 5;`,
			Expected: []Token{
				New(LET, "let"),
				New(IDENT, "five"),
				New(ASSIGN, "="),
				New(INT, "5"),
				New(SEMICOLON, ";"),
			},
		},
		{
			Input: `let add = fn(x, y) { x + y; };`,
			Expected: []Token{
				New(LET, "let"),
				New(IDENT, "add"),
				New(ASSIGN, "="),
				New(FUNCTION, "fn"),
				New(LPAREN, "("),
				New(IDENT, "x"),
				New(COMMA, ","),
				New(IDENT, "y"),
				New(RPAREN, ")"),
				New(LBRACE, "{"),
				New(IDENT, "x"),
				New(PLUS, "+"),
				New(IDENT, "y"),
				New(SEMICOLON, ";"),
				New(RBRACE, "}"),
				New(SEMICOLON, ";"),
			},
		},
		{
			Input: `!-/*5; 5 < 10 > 5;`,
			Expected: []Token{
				New(BANG, "!"),
				New(MINUS, "-"),
				New(SLASH, "/"),
				New(ASTERISK, "*"),
				New(INT, "5"),
				New(SEMICOLON, ";"),
				New(INT, "5"),
				New(LT, "<"),
				New(INT, "10"),
				New(GT, ">"),
				New(INT, "5"),
				New(SEMICOLON, ";"),
			},
		},
		{
			Input: `10 == 10; 10 != 9; 10 <= 9; 10 >= 9;`,
			Expected: []Token{
				New(INT, "10"),
				New(EQ, "=="),
				New(INT, "10"),
				New(SEMICOLON, ";"),
				New(INT, "10"),
				New(NOT_EQ, "!="),
				New(INT, "9"),
				New(SEMICOLON, ";"),
				New(INT, "10"),
				New(LTE, "<="),
				New(INT, "9"),
				New(SEMICOLON, ";"),
				New(INT, "10"),
				New(GTE, ">="),
				New(INT, "9"),
				New(SEMICOLON, ";"),
			},
		},
		{
			Input: `"foobar" "foo bar" ""`,
			Expected: []Token{
				New(STRING, "foobar"),
				New(STRING, "foo bar"),
				New(STRING, ""),
			},
		},
		{
			Input: `[1, 2]; {"one": 1};`,
			Expected: []Token{
				New(LBRACKET, "["),
				New(INT, "1"),
				New(COMMA, ","),
				New(INT, "2"),
				New(RBRACKET, "]"),
				New(SEMICOLON, ";"),
				New(LBRACE, "{"),
				New(STRING, "one"),
				New(COLON, ":"),
				New(INT, "1"),
				New(RBRACE, "}"),
				New(SEMICOLON, ";"),
			},
		},
		{
			Input: `if (true) { return nil; } else { return false; }`,
			Expected: []Token{
				New(IF, "if"),
				New(LPAREN, "("),
				New(TRUE, "true"),
				New(RPAREN, ")"),
				New(LBRACE, "{"),
				New(RETURN, "return"),
				New(NIL, "nil"),
				New(SEMICOLON, ";"),
				New(RBRACE, "}"),
				New(ELSE, "else"),
				New(LBRACE, "{"),
				New(RETURN, "return"),
				New(FALSE, "false"),
				New(SEMICOLON, ";"),
				New(RBRACE, "}"),
			},
		},
		{
			Input:    `@`,
			Expected: []Token{New(ILLEGAL, "@")},
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.Expected, Tokens(tt.Input), tt.Input)
	}
}

// whitespace insertion between lexemes must not change the token stream
// (spec.md §8 invariant 1).
func TestTokens_WhitespaceInsensitive(t *testing.T) {
	tight := Tokens(`let x=1+2;`)
	spread := Tokens("let  x \t =  1 \n + \r\n 2 ;")
	assert.Equal(t, tight, spread)
}

func TestTokens_IntegerOverflowIsIllegal(t *testing.T) {
	toks := Tokens(`99999999999999999999`)
	assert.Len(t, toks, 1)
	assert.Equal(t, ILLEGAL, toks[0].Type)
}

func TestTokens_NonASCIISkipped(t *testing.T) {
	toks := Tokens("let x é= 1;")
	assert.Equal(t, []Token{
		New(LET, "let"),
		New(IDENT, "x"),
		New(ASSIGN, "="),
		New(INT, "1"),
		New(SEMICOLON, ";"),
	}, toks)
}
