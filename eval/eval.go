package eval

import (
	"fmt"

	"github.com/monkeylang/monkey/ast"
	"github.com/monkeylang/monkey/environment"
	"github.com/monkeylang/monkey/object"
)

// maxCallDepth bounds recursion (spec.md §5 suggests 1,000-10,000 before
// surfacing a StackOverflow rather than crashing the host process).
const maxCallDepth = 2000

// Canonical singletons: every Boolean result and every Nil the evaluator
// produces is one of these rather than a fresh allocation, so callers such
// as the REPL can compare a result against NIL by pointer (grounded in
// go-mix's evaluator.go, which keeps a similar interned-value table).
var (
	NIL   = &object.Nil{}
	TRUE  = &object.Boolean{Value: true}
	FALSE = &object.Boolean{Value: false}
)

// Evaluator walks an AST against an Environment chain. It is not
// goroutine-safe; each connection/REPL session owns its own Evaluator.
type Evaluator struct {
	depth int
}

// New creates an Evaluator ready to evaluate against any Environment.
func New() *Evaluator {
	return &Evaluator{}
}

// Eval dispatches on the concrete node type. Block and statement evaluation
// live in statements.go, program-level evaluation in EvalProgram below;
// everything producing a value lives in expressions.go.
func (e *Evaluator) Eval(node ast.Node, env *environment.Environment) (object.Object, *Error) {
	switch n := node.(type) {
	case *ast.Block:
		return e.evalBlock(n, env)
	case *ast.LetStatement:
		return e.evalLetStatement(n, env)
	case *ast.ReturnStatement:
		return e.evalReturnStatement(n, env)
	case *ast.ExpressionStatement:
		return e.Eval(n.Expression, env)

	case *ast.IntegerLiteral:
		return &object.Integer{Value: n.Value}, nil
	case *ast.StringLiteral:
		return &object.String{Value: n.Value}, nil
	case *ast.Boolean:
		return nativeBool(n.Value), nil
	case *ast.NilLiteral:
		return NIL, nil
	case *ast.Identifier:
		return e.evalIdentifier(n, env)
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(n, env)
	case *ast.HashLiteral:
		return e.evalHashLiteral(n, env)
	case *ast.FunctionLiteral:
		return &object.Function{Parameters: n.Parameters, Body: n.Body, Env: env}, nil

	case *ast.UnaryExpression:
		return e.evalUnaryExpression(n, env)
	case *ast.BinaryExpression:
		return e.evalBinaryExpression(n, env)
	case *ast.IfExpression:
		return e.evalIfExpression(n, env)
	case *ast.CallExpression:
		return e.evalCallExpression(n, env)
	case *ast.IndexExpression:
		return e.evalIndexExpression(n, env)
	}

	return nil, &Error{Kind: NotCallable, Value: object.Type(fmt.Sprintf("%T", node))}
}

// EvalProgram evaluates a top-level statement list: the entry point used by
// the REPL and the file/server runners. Unlike evalBlock it unwraps the
// first ReturnValue a statement yields and stops there, since there is no
// further frame to propagate it to (spec.md §4.3).
func (e *Evaluator) EvalProgram(statements []ast.Statement, env *environment.Environment) (object.Object, *Error) {
	var result object.Object = NIL
	for _, stmt := range statements {
		val, err := e.Eval(stmt, env)
		if err != nil {
			return nil, err
		}
		result = val
		if rv, ok := result.(*object.ReturnValue); ok {
			return rv.Value, nil
		}
	}
	return result, nil
}

func nativeBool(b bool) *object.Boolean {
	if b {
		return TRUE
	}
	return FALSE
}

// truthy implements spec.md §4.3's table: false, nil, Int(0), and the
// empty string are false; everything else, including empty arrays/hashes,
// is true.
func truthy(val object.Object) bool {
	switch v := val.(type) {
	case *object.Boolean:
		return v.Value
	case *object.Nil:
		return false
	case *object.Integer:
		return v.Value != 0
	case *object.String:
		return v.Value != ""
	default:
		return true
	}
}
