package eval

import (
	"github.com/monkeylang/monkey/ast"
	"github.com/monkeylang/monkey/environment"
	"github.com/monkeylang/monkey/object"
)

// evalBlock evaluates a block's statements in order. Unlike EvalProgram it
// does NOT unwrap a ReturnValue it produces: a block may be nested inside
// another block (e.g. the consequence of an `if` inside a function body),
// and only a function-call boundary or the program top is allowed to
// unwrap it (spec.md §4.3). The block's own value is that of its last
// statement, or Nil if it has none.
func (e *Evaluator) evalBlock(block *ast.Block, env *environment.Environment) (object.Object, *Error) {
	var result object.Object = NIL
	for _, stmt := range block.Statements {
		val, err := e.Eval(stmt, env)
		if err != nil {
			return nil, err
		}
		result = val
		if result.Type() == object.ReturnValueType {
			return result, nil
		}
	}
	return result, nil
}

func (e *Evaluator) evalLetStatement(stmt *ast.LetStatement, env *environment.Environment) (object.Object, *Error) {
	val, err := e.Eval(stmt.Value, env)
	if err != nil {
		return nil, err
	}
	if !env.Define(stmt.Name.Value, val) {
		return nil, errRedefined(stmt.Name.Value)
	}
	return NIL, nil
}

func (e *Evaluator) evalReturnStatement(stmt *ast.ReturnStatement, env *environment.Environment) (object.Object, *Error) {
	val, err := e.Eval(stmt.Value, env)
	if err != nil {
		return nil, err
	}
	return &object.ReturnValue{Value: val}, nil
}
