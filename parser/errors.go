package parser

import (
	"fmt"

	"github.com/monkeylang/monkey/lexer"
)

// ErrorKind is the stable set of parse failure kinds spec.md §7 requires.
type ErrorKind string

const (
	UnexpectedEof         ErrorKind = "UnexpectedEof"
	UnexpectedToken       ErrorKind = "UnexpectedToken"
	CannotStartExpression ErrorKind = "CannotStartExpression"
	IllegalCharacter      ErrorKind = "IllegalCharacter"
)

// Error is a single accumulated parse failure. The parser never stops at
// the first one (spec.md §4.2); callers get the full list.
type Error struct {
	Kind     ErrorKind
	Expected lexer.TokenType // set only for UnexpectedToken
	Got      lexer.Token
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedEof:
		return "unexpected end of input"
	case UnexpectedToken:
		return fmt.Sprintf("expected next token to be %s, got %s (%q) instead", e.Expected, e.Got.Type, e.Got.Literal)
	case CannotStartExpression:
		return fmt.Sprintf("no prefix parse function for %s (%q) found", e.Got.Type, e.Got.Literal)
	case IllegalCharacter:
		return fmt.Sprintf("illegal character %q", e.Got.Literal)
	default:
		return "parse error"
	}
}

func newUnexpectedEof(got lexer.Token) *Error {
	return &Error{Kind: UnexpectedEof, Got: got}
}

func newUnexpectedToken(expected lexer.TokenType, got lexer.Token) *Error {
	return &Error{Kind: UnexpectedToken, Expected: expected, Got: got}
}

func newCannotStartExpression(got lexer.Token) *Error {
	return &Error{Kind: CannotStartExpression, Got: got}
}

func newIllegalCharacter(got lexer.Token) *Error {
	return &Error{Kind: IllegalCharacter, Got: got}
}
