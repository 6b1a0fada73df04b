package eval

import (
	"github.com/monkeylang/monkey/ast"
	"github.com/monkeylang/monkey/environment"
	"github.com/monkeylang/monkey/object"
)

func (e *Evaluator) evalIdentifier(ident *ast.Identifier, env *environment.Environment) (object.Object, *Error) {
	if val, ok := env.Get(ident.Value); ok {
		return val, nil
	}
	if builtin, ok := builtins[ident.Value]; ok {
		return builtin, nil
	}
	return nil, errUnknownIdentifier(ident.Value)
}

func (e *Evaluator) evalArrayLiteral(node *ast.ArrayLiteral, env *environment.Environment) (object.Object, *Error) {
	elements, err := e.evalExpressions(node.Elements, env)
	if err != nil {
		return nil, err
	}
	return &object.Array{Elements: elements}, nil
}

// evalExpressions evaluates a slice of expressions left-to-right, stopping
// at the first error (spec.md §5).
func (e *Evaluator) evalExpressions(exprs []ast.Expression, env *environment.Environment) ([]object.Object, *Error) {
	result := make([]object.Object, 0, len(exprs))
	for _, expr := range exprs {
		val, err := e.Eval(expr, env)
		if err != nil {
			return nil, err
		}
		result = append(result, val)
	}
	return result, nil
}

func (e *Evaluator) evalHashLiteral(node *ast.HashLiteral, env *environment.Environment) (object.Object, *Error) {
	pairs := make(map[object.HashKey]object.HashPair, len(node.Pairs))
	for _, p := range node.Pairs {
		key, err := e.Eval(p.Key, env)
		if err != nil {
			return nil, err
		}
		hashable, ok := key.(object.Hashable)
		if !ok {
			return nil, errUnhashableKey(key.Type())
		}
		value, err := e.Eval(p.Value, env)
		if err != nil {
			return nil, err
		}
		pairs[hashable.HashKey()] = object.HashPair{Key: key, Value: value}
	}
	return &object.Hash{Pairs: pairs}, nil
}

func (e *Evaluator) evalUnaryExpression(node *ast.UnaryExpression, env *environment.Environment) (object.Object, *Error) {
	right, err := e.Eval(node.Right, env)
	if err != nil {
		return nil, err
	}

	switch node.Operator {
	case ast.OpNot:
		return nativeBool(!truthy(right)), nil
	case ast.OpNegate:
		intval, ok := right.(*object.Integer)
		if !ok {
			return nil, errUnaryType(string(node.Operator), right.Type())
		}
		return &object.Integer{Value: -intval.Value}, nil
	default:
		return nil, errUnaryType(string(node.Operator), right.Type())
	}
}

// evalBinaryExpression implements spec.md §4.3's operator table: Int x Int
// arithmetic and comparison, String x String concatenation with `+` only,
// and Eq/NotEq defined across Int/Bool/String/Nil (by value, not identity)
// with every other pairing simply unequal rather than an error.
func (e *Evaluator) evalBinaryExpression(node *ast.BinaryExpression, env *environment.Environment) (object.Object, *Error) {
	left, err := e.Eval(node.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(node.Right, env)
	if err != nil {
		return nil, err
	}

	switch {
	case node.Operator == ast.OpEq:
		return nativeBool(valuesEqual(left, right)), nil
	case node.Operator == ast.OpNotEq:
		return nativeBool(!valuesEqual(left, right)), nil
	}

	leftInt, leftIsInt := left.(*object.Integer)
	rightInt, rightIsInt := right.(*object.Integer)
	if leftIsInt && rightIsInt {
		return e.evalIntegerBinary(node.Operator, leftInt, rightInt)
	}

	leftStr, leftIsStr := left.(*object.String)
	rightStr, rightIsStr := right.(*object.String)
	if leftIsStr && rightIsStr && node.Operator == ast.OpAdd {
		return &object.String{Value: leftStr.Value + rightStr.Value}, nil
	}

	// Comparisons on anything but Int x Int are not type errors: they are
	// simply false (spec.md §9's design note on heterogeneous comparison).
	switch node.Operator {
	case ast.OpLt, ast.OpLte, ast.OpGt, ast.OpGte:
		return FALSE, nil
	}

	return nil, errBinaryType(string(node.Operator), left.Type(), right.Type())
}

func (e *Evaluator) evalIntegerBinary(op ast.BinaryOperator, left, right *object.Integer) (object.Object, *Error) {
	switch op {
	case ast.OpAdd:
		return &object.Integer{Value: left.Value + right.Value}, nil
	case ast.OpSub:
		return &object.Integer{Value: left.Value - right.Value}, nil
	case ast.OpMul:
		return &object.Integer{Value: left.Value * right.Value}, nil
	case ast.OpDiv:
		if right.Value == 0 {
			return nil, errDivisionByZero()
		}
		return &object.Integer{Value: left.Value / right.Value}, nil
	case ast.OpLt:
		return nativeBool(left.Value < right.Value), nil
	case ast.OpLte:
		return nativeBool(left.Value <= right.Value), nil
	case ast.OpGt:
		return nativeBool(left.Value > right.Value), nil
	case ast.OpGte:
		return nativeBool(left.Value >= right.Value), nil
	default:
		return nil, errBinaryType(string(op), left.Type(), right.Type())
	}
}

// valuesEqual is value equality, not pointer identity: two distinct
// Integer(5) objects are equal (spec.md §3's == semantics). Mismatched
// types, or any type not in {Int, Bool, String, Nil}, are simply unequal.
func valuesEqual(left, right object.Object) bool {
	switch l := left.(type) {
	case *object.Integer:
		r, ok := right.(*object.Integer)
		return ok && l.Value == r.Value
	case *object.Boolean:
		r, ok := right.(*object.Boolean)
		return ok && l.Value == r.Value
	case *object.String:
		r, ok := right.(*object.String)
		return ok && l.Value == r.Value
	case *object.Nil:
		_, ok := right.(*object.Nil)
		return ok
	default:
		return false
	}
}

func (e *Evaluator) evalIfExpression(node *ast.IfExpression, env *environment.Environment) (object.Object, *Error) {
	cond, err := e.Eval(node.Condition, env)
	if err != nil {
		return nil, err
	}

	if truthy(cond) {
		return e.evalBlock(node.Consequence, env)
	}
	if node.Alternative != nil {
		return e.evalBlock(node.Alternative, env)
	}
	return NIL, nil
}

func (e *Evaluator) evalCallExpression(node *ast.CallExpression, env *environment.Environment) (object.Object, *Error) {
	callee, err := e.Eval(node.Callee, env)
	if err != nil {
		return nil, err
	}

	args, err := e.evalExpressions(node.Arguments, env)
	if err != nil {
		return nil, err
	}

	switch fn := callee.(type) {
	case *object.Function:
		return e.callFunction(fn, args)
	case *object.Builtin:
		result, callErr := fn.Fn(args...)
		if callErr != nil {
			if evalErr, ok := callErr.(*Error); ok {
				return nil, evalErr
			}
			return nil, &Error{Kind: BinaryTypeError}
		}
		return result, nil
	default:
		return nil, errNotCallable(callee.Type())
	}
}

func (e *Evaluator) callFunction(fn *object.Function, args []object.Object) (object.Object, *Error) {
	if len(args) != len(fn.Parameters) {
		return nil, errArity(len(fn.Parameters), len(args))
	}

	e.depth++
	defer func() { e.depth-- }()
	if e.depth > maxCallDepth {
		return nil, errStackOverflow()
	}

	outer, ok := fn.Env.(*environment.Environment)
	if !ok {
		return nil, errNotCallable(fn.Type())
	}
	frame := environment.NewEnclosed(outer)
	for i, param := range fn.Parameters {
		frame.Define(param.Value, args[i])
	}

	result, err := e.evalBlock(fn.Body, frame)
	if err != nil {
		return nil, err
	}
	if rv, ok := result.(*object.ReturnValue); ok {
		return rv.Value, nil
	}
	return result, nil
}

// evalIndexExpression implements spec.md §4.3's container indexing: Array
// supports negative indices (len+i) and returns Nil out of range; Hash
// looks the key up by value via Hashable and returns Nil on a miss.
func (e *Evaluator) evalIndexExpression(node *ast.IndexExpression, env *environment.Environment) (object.Object, *Error) {
	container, err := e.Eval(node.Container, env)
	if err != nil {
		return nil, err
	}
	index, err := e.Eval(node.Index, env)
	if err != nil {
		return nil, err
	}

	switch c := container.(type) {
	case *object.Array:
		idx, ok := index.(*object.Integer)
		if !ok {
			return nil, errIndexType(container.Type(), index.Type())
		}
		i := idx.Value
		if i < 0 {
			i += int64(len(c.Elements))
		}
		if i < 0 || i >= int64(len(c.Elements)) {
			return NIL, nil
		}
		return c.Elements[i], nil

	case *object.Hash:
		hashable, ok := index.(object.Hashable)
		if !ok {
			return nil, errUnhashableKey(index.Type())
		}
		pair, found := c.Pairs[hashable.HashKey()]
		if !found {
			return NIL, nil
		}
		return pair.Value, nil

	default:
		return nil, errIndexType(container.Type(), index.Type())
	}
}
