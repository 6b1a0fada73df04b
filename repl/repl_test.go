package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/monkeylang/monkey/environment"
	"github.com/monkeylang/monkey/eval"
)

func TestExecutePrintsResult(t *testing.T) {
	var buf bytes.Buffer
	r := New("", "", "", "", "", "")
	r.execute(&buf, "5 + 5;", eval.New(), environment.New())
	assert.Contains(t, buf.String(), "10")
}

func TestExecuteSuppressesNilResult(t *testing.T) {
	var buf bytes.Buffer
	r := New("", "", "", "", "", "")
	r.execute(&buf, "let x = 1;", eval.New(), environment.New())
	assert.Empty(t, buf.String())
}

func TestExecutePrefixesRuntimeErrors(t *testing.T) {
	var buf bytes.Buffer
	r := New("", "", "", "", "", "")
	r.execute(&buf, "foobar;", eval.New(), environment.New())
	assert.Contains(t, buf.String(), "error:")
}

func TestExecutePrefixesParseErrors(t *testing.T) {
	var buf bytes.Buffer
	r := New("", "", "", "", "", "")
	r.execute(&buf, "let x = 5", eval.New(), environment.New())
	assert.Contains(t, buf.String(), "error:")
}

func TestBindingsPersistAcrossLines(t *testing.T) {
	var buf bytes.Buffer
	r := New("", "", "", "", "", "")
	ev := eval.New()
	env := environment.New()
	r.execute(&buf, "let x = 40;", ev, env)
	buf.Reset()
	r.execute(&buf, "x + 2;", ev, env)
	assert.Contains(t, buf.String(), "42")
}

func TestPrintEnvironmentWalksParentChain(t *testing.T) {
	var buf bytes.Buffer
	outer := environment.New()
	outer.Define("a", eval.NIL)
	inner := environment.NewEnclosed(outer)
	printEnvironment(&buf, inner)
	assert.Contains(t, buf.String(), "frame 0")
	assert.Contains(t, buf.String(), "frame 1")
}
