package eval

import (
	"fmt"

	"github.com/monkeylang/monkey/object"
)

// builtins is the fixed table spec.md §4.3 defines: len, first, last, rest,
// push, puts. Each wraps its arity/type checks in the shared Error type so
// a bad call surfaces the same structured error a user-defined call would.
var builtins = map[string]*object.Builtin{
	"len":   {Name: "len", Fn: builtinLen},
	"first": {Name: "first", Fn: builtinFirst},
	"last":  {Name: "last", Fn: builtinLast},
	"rest":  {Name: "rest", Fn: builtinRest},
	"push":  {Name: "push", Fn: builtinPush},
	"puts":  {Name: "puts", Fn: builtinPuts},
}

func builtinLen(args ...object.Object) (object.Object, error) {
	if len(args) != 1 {
		return nil, errArity(1, len(args))
	}
	switch arg := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len(arg.Value))}, nil
	case *object.Array:
		return &object.Integer{Value: int64(len(arg.Elements))}, nil
	default:
		return nil, errUnaryType("len", arg.Type())
	}
}

func builtinFirst(args ...object.Object) (object.Object, error) {
	if len(args) != 1 {
		return nil, errArity(1, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return nil, errUnaryType("first", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return NIL, nil
	}
	return arr.Elements[0], nil
}

func builtinLast(args ...object.Object) (object.Object, error) {
	if len(args) != 1 {
		return nil, errArity(1, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return nil, errUnaryType("last", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return NIL, nil
	}
	return arr.Elements[len(arr.Elements)-1], nil
}

// builtinRest returns a new Array holding every element but the first
// (never mutates its argument, spec.md §4.3), or Nil for an empty array.
func builtinRest(args ...object.Object) (object.Object, error) {
	if len(args) != 1 {
		return nil, errArity(1, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return nil, errUnaryType("rest", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return NIL, nil
	}
	rest := make([]object.Object, len(arr.Elements)-1)
	copy(rest, arr.Elements[1:])
	return &object.Array{Elements: rest}, nil
}

// builtinPush returns a new Array with value appended, leaving the
// original untouched (spec.md §4.3's functionally-persistent push).
func builtinPush(args ...object.Object) (object.Object, error) {
	if len(args) != 2 {
		return nil, errArity(2, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return nil, errUnaryType("push", args[0].Type())
	}
	pushed := make([]object.Object, len(arr.Elements)+1)
	copy(pushed, arr.Elements)
	pushed[len(arr.Elements)] = args[1]
	return &object.Array{Elements: pushed}, nil
}

// builtinPuts writes each argument's display form to stdout, space
// separated, and returns Nil. The REPL suppresses Nil results, so a bare
// `puts(...)` call doesn't double-print (see repl.REPL).
func builtinPuts(args ...object.Object) (object.Object, error) {
	rendered := make([]any, 0, len(args))
	for _, a := range args {
		rendered = append(rendered, a.Inspect())
	}
	fmt.Println(rendered...)
	return NIL, nil
}
