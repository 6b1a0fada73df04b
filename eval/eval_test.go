package eval

import (
	"testing"

	"github.com/monkeylang/monkey/environment"
	"github.com/monkeylang/monkey/object"
	"github.com/monkeylang/monkey/parser"
	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, src string) (object.Object, *Error) {
	t.Helper()
	p := parser.New(src)
	stmts, errs := p.Parse()
	assert.Empty(t, errs, "unexpected parse errors for %q: %v", src, errs)
	return New().EvalProgram(stmts, environment.New())
}

func TestIntegerArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5;", 5},
		{"5 + 5 + 5 - 10;", 5},
		{"2 * 2 * 2 * 2;", 16},
		{"-5 + 10;", 5},
		{"50 / 2 * 2 + 10;", 60},
	}
	for _, tt := range tests {
		result, err := run(t, tt.input)
		assert.Nil(t, err, tt.input)
		assert.Equal(t, tt.expected, result.(*object.Integer).Value, tt.input)
	}
}

func TestBooleanAndComparisons(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1 < 2;", true},
		{"1 > 2;", false},
		{"1 == 1;", true},
		{"1 != 2;", true},
		{"true == true;", true},
		{"true == false;", false},
		{"(1 < 2) == true;", true},
		{"1 < \"a\";", false}, // non-integer comparison is false, not an error
	}
	for _, tt := range tests {
		result, err := run(t, tt.input)
		assert.Nil(t, err, tt.input)
		assert.Equal(t, tt.expected, result.(*object.Boolean).Value, tt.input)
	}
}

func TestStringConcatenation(t *testing.T) {
	result, err := run(t, `"Hello, " + "World!";`)
	assert.Nil(t, err)
	assert.Equal(t, "Hello, World!", result.(*object.String).Value)
}

func TestIfElseExpressions(t *testing.T) {
	result, err := run(t, `if (1 < 2) { 10 } else { 20 };`)
	assert.Nil(t, err)
	assert.EqualValues(t, 10, result.(*object.Integer).Value)

	result, err = run(t, `if (false) { 10 };`)
	assert.Nil(t, err)
	assert.Equal(t, NIL, result)
}

func TestReturnStatements(t *testing.T) {
	result, err := run(t, `
		if (10 > 1) {
			if (10 > 1) {
				return 10;
			}
			return 1;
		}
	`)
	assert.Nil(t, err)
	assert.EqualValues(t, 10, result.(*object.Integer).Value)
}

func TestLetStatements(t *testing.T) {
	result, err := run(t, `let a = 5; let b = a; b;`)
	assert.Nil(t, err)
	assert.EqualValues(t, 5, result.(*object.Integer).Value)
}

func TestFunctionApplicationAndClosures(t *testing.T) {
	result, err := run(t, `
		let newAdder = fn(x) {
			fn(y) { x + y; };
		};
		let addTwo = newAdder(2);
		addTwo(3);
	`)
	assert.Nil(t, err)
	assert.EqualValues(t, 5, result.(*object.Integer).Value)
}

// A recursive function only resolves its own name because the closure it
// creates shares the defining frame by reference: at the moment the
// fn-literal is evaluated, `fact` isn't bound yet, so a copied frame
// (go-mix's Scope.Copy) would never see the later `let fact = ...`
// binding land (spec.md §9).
func TestRecursionRequiresSharedFrame(t *testing.T) {
	result, err := run(t, `
		let fact = fn(n) {
			if (n < 2) { 1 } else { n * fact(n - 1) }
		};
		fact(5);
	`)
	assert.Nil(t, err)
	assert.EqualValues(t, 120, result.(*object.Integer).Value)
}

func TestArrayAndHashLiterals(t *testing.T) {
	result, err := run(t, `[1, 2 * 2, 3 + 3];`)
	assert.Nil(t, err)
	arr := result.(*object.Array)
	assert.Len(t, arr.Elements, 3)
	assert.EqualValues(t, 4, arr.Elements[1].(*object.Integer).Value)

	result, err = run(t, `{"one": 10 - 9, "two": 1 + 1}["two"];`)
	assert.Nil(t, err)
	assert.EqualValues(t, 2, result.(*object.Integer).Value)
}

func TestIndexOutOfRangeIsNil(t *testing.T) {
	result, err := run(t, `[1, 2, 3][-4];`)
	assert.Nil(t, err)
	assert.Equal(t, NIL, result)

	result, err = run(t, `[1, 2, 3][10];`)
	assert.Nil(t, err)
	assert.Equal(t, NIL, result)
}

func TestNegativeIndexing(t *testing.T) {
	result, err := run(t, `[1, 2, 3][-1];`)
	assert.Nil(t, err)
	assert.EqualValues(t, 3, result.(*object.Integer).Value)
}

func TestBuiltins(t *testing.T) {
	result, err := run(t, `len("hello");`)
	assert.Nil(t, err)
	assert.EqualValues(t, 5, result.(*object.Integer).Value)

	result, err = run(t, `first([1, 2, 3]);`)
	assert.Nil(t, err)
	assert.EqualValues(t, 1, result.(*object.Integer).Value)

	result, err = run(t, `last([1, 2, 3]);`)
	assert.Nil(t, err)
	assert.EqualValues(t, 3, result.(*object.Integer).Value)

	result, err = run(t, `rest([1, 2, 3]);`)
	assert.Nil(t, err)
	assert.Equal(t, []int64{2, 3}, toInts(result.(*object.Array)))

	result, err = run(t, `push([1, 2], 3);`)
	assert.Nil(t, err)
	assert.Equal(t, []int64{1, 2, 3}, toInts(result.(*object.Array)))
}

func toInts(arr *object.Array) []int64 {
	ints := make([]int64, len(arr.Elements))
	for i, el := range arr.Elements {
		ints[i] = el.(*object.Integer).Value
	}
	return ints
}

func TestTruthiness(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{`if (0) { 1 } else { 2 };`, 2},
		{`if ("") { 1 } else { 2 };`, 2},
		{`if (nil) { 1 } else { 2 };`, 2},
		{`if (1) { 1 } else { 2 };`, 1},
		{`if ("x") { 1 } else { 2 };`, 1},
	}
	for _, tt := range tests {
		result, err := run(t, tt.input)
		assert.Nil(t, err, tt.input)
		assert.EqualValues(t, tt.expected, result.(*object.Integer).Value, tt.input)
	}
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{"5 + true;", BinaryTypeError},
		{"-true;", UnaryTypeError},
		{`"hello" - "world";`, BinaryTypeError},
		{"foobar;", UnknownIdentifier},
		{"let x = 1; let x = 2;", Redefined},
		{"5(1);", NotCallable},
		{"fn(x) { x; }(1, 2);", Arity},
		{"5 / 0;", DivisionByZero},
	}
	for _, tt := range tests {
		_, err := run(t, tt.input)
		assert.NotNil(t, err, tt.input)
		assert.Equal(t, tt.kind, err.Kind, tt.input)
	}
}

func TestUnhashableKeyIsAnError(t *testing.T) {
	_, err := run(t, `{1: 1}[fn(x) { x }];`)
	assert.NotNil(t, err)
	assert.Equal(t, UnhashableKey, err.Kind)
}

func TestHeterogeneousHashKeysDoNotCollide(t *testing.T) {
	result, err := run(t, `let h = {3: "int", "3": "string"}; h[3];`)
	assert.Nil(t, err)
	assert.Equal(t, "int", result.(*object.String).Value)

	result, err = run(t, `let h = {3: "int", "3": "string"}; h["3"];`)
	assert.Nil(t, err)
	assert.Equal(t, "string", result.(*object.String).Value)
}

func TestStackOverflowGuard(t *testing.T) {
	_, err := run(t, `
		let loop = fn(n) { loop(n + 1); };
		loop(0);
	`)
	assert.NotNil(t, err)
	assert.Equal(t, StackOverflow, err.Kind)
}
