// Package eval is the tree-walking evaluator: statement/block/expression
// dispatch, truthiness, operators, the built-in table, and Return
// unwinding (spec.md §4.3).
package eval

import (
	"fmt"

	"github.com/monkeylang/monkey/object"
)

// ErrorKind is the stable set of runtime failure kinds spec.md §7 requires.
type ErrorKind string

const (
	UnknownIdentifier ErrorKind = "UnknownIdentifier"
	Redefined         ErrorKind = "Redefined"
	Arity             ErrorKind = "Arity"
	NotCallable       ErrorKind = "NotCallable"
	UnaryTypeError    ErrorKind = "UnaryTypeError"
	BinaryTypeError   ErrorKind = "BinaryTypeError"
	IndexTypeError    ErrorKind = "IndexTypeError"
	UnhashableKey     ErrorKind = "UnhashableKey"
	DivisionByZero    ErrorKind = "DivisionByZero"
	CoercionError     ErrorKind = "CoercionError"
	StackOverflow     ErrorKind = "StackOverflow"
)

// Error is a runtime failure. Evaluation aborts immediately and surfaces
// it to the caller of EvalProgram (spec.md §7); it carries the offending
// value's Type rather than the value itself, so errors stay cheap to
// compare (spec.md §9's "error variants" reshape note).
type Error struct {
	Kind     ErrorKind
	Name     string     // identifier name, for UnknownIdentifier/Redefined
	Operator string     // operator text, for Unary/BinaryTypeError
	Expected int        // expected arity, for Arity
	Got      int        // actual arity, for Arity
	LHS, RHS object.Type // operand kinds, for BinaryTypeError/IndexTypeError
	Value    object.Type // single operand kind, for Unary/NotCallable/Coercion/Unhashable
	Target   object.Type // coercion target, for CoercionError
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnknownIdentifier:
		return fmt.Sprintf("identifier not found: %s", e.Name)
	case Redefined:
		return fmt.Sprintf("%s already defined in this scope", e.Name)
	case Arity:
		return fmt.Sprintf("wrong number of arguments: expected %d, got %d", e.Expected, e.Got)
	case NotCallable:
		return fmt.Sprintf("not a function: %s", e.Value)
	case UnaryTypeError:
		return fmt.Sprintf("unknown operator: %s%s", e.Operator, e.Value)
	case BinaryTypeError:
		return fmt.Sprintf("unknown operator: %s %s %s", e.LHS, e.Operator, e.RHS)
	case IndexTypeError:
		return fmt.Sprintf("index operator not supported: %s[%s]", e.LHS, e.RHS)
	case UnhashableKey:
		return fmt.Sprintf("unusable as hash key: %s", e.Value)
	case DivisionByZero:
		return "division by zero"
	case CoercionError:
		return fmt.Sprintf("cannot coerce %s to %s", e.Value, e.Target)
	case StackOverflow:
		return "stack overflow: recursion depth exceeded"
	default:
		return "evaluation error"
	}
}

func errUnknownIdentifier(name string) *Error { return &Error{Kind: UnknownIdentifier, Name: name} }
func errRedefined(name string) *Error         { return &Error{Kind: Redefined, Name: name} }
func errArity(expected, got int) *Error       { return &Error{Kind: Arity, Expected: expected, Got: got} }
func errNotCallable(kind object.Type) *Error  { return &Error{Kind: NotCallable, Value: kind} }

func errUnaryType(op string, kind object.Type) *Error {
	return &Error{Kind: UnaryTypeError, Operator: op, Value: kind}
}

func errBinaryType(op string, lhs, rhs object.Type) *Error {
	return &Error{Kind: BinaryTypeError, Operator: op, LHS: lhs, RHS: rhs}
}

func errIndexType(container, index object.Type) *Error {
	return &Error{Kind: IndexTypeError, LHS: container, RHS: index}
}

func errUnhashableKey(kind object.Type) *Error { return &Error{Kind: UnhashableKey, Value: kind} }
func errDivisionByZero() *Error                { return &Error{Kind: DivisionByZero} }

func errCoercion(value, target object.Type) *Error {
	return &Error{Kind: CoercionError, Value: value, Target: target}
}

func errStackOverflow() *Error { return &Error{Kind: StackOverflow} }
