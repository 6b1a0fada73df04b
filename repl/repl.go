// Package repl implements Monkey's interactive Read-Eval-Print Loop: line
// editing and history via chzyer/readline, colored output via fatih/color,
// and the fixed external-interface rules spec.md §6 sets for terminal
// sessions (the literal "error: " prefix, Nil-result suppression, and the
// `dbg!` environment dump).
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/monkeylang/monkey/environment"
	"github.com/monkeylang/monkey/eval"
	"github.com/monkeylang/monkey/object"
	"github.com/monkeylang/monkey/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// REPL bundles the banner text a session prints at startup. One REPL value
// is reused across a whole interactive session; the Environment it hands
// the evaluator lives only as long as that session.
type REPL struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a REPL ready to Start.
func New(banner, version, author, line, license, prompt string) *REPL {
	return &REPL{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *REPL) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Monkey!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type 'dbg!' to dump the current environment")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the interactive loop until '.exit', Ctrl+D, or a readline
// error. Every line shares one Environment and one Evaluator, so `let`
// bindings persist across lines within a session (spec.md §6). reader and
// writer are plugged into readline's Config so the same loop serves both
// the stdin REPL and a TCP server connection (cmd/monkey's `server` mode).
func (r *REPL) Start(reader io.ReadCloser, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  reader,
		Stdout: writer,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := environment.New()
	evaluator := eval.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)

		if line == "dbg!" {
			printEnvironment(writer, env)
			continue
		}

		r.execute(writer, line, evaluator, env)
	}
}

// execute parses and evaluates one line. Every parse error is displayed,
// one per line, and a runtime error once, each with the "error: " prefix
// spec.md §6 fixes; a Nil result is suppressed rather than echoed (unlike
// file mode, which prints it as `nil`).
func (r *REPL) execute(writer io.Writer, line string, evaluator *eval.Evaluator, env *environment.Environment) {
	p := parser.New(line)
	stmts, errs := p.Parse()
	if len(errs) > 0 {
		for _, perr := range errs {
			redColor.Fprintf(writer, "error: %s\n", perr)
		}
		return
	}

	result, err := evaluator.EvalProgram(stmts, env)
	if err != nil {
		redColor.Fprintf(writer, "error: %s\n", err)
		return
	}

	if result == eval.NIL {
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}

// printEnvironment dumps every binding visible from the current frame,
// walking outward to the root, one frame per blue separator line.
func printEnvironment(writer io.Writer, env *environment.Environment) {
	frame := env
	depth := 0
	for frame != nil {
		blueColor.Fprintf(writer, "-- frame %d --\n", depth)
		bindings := frame.Bindings()
		if len(bindings) == 0 {
			cyanColor.Fprintln(writer, "  (empty)")
		}
		for name, val := range bindings {
			fmt.Fprintf(writer, "  %s = %s\n", name, describe(val))
		}
		frame = frame.Parent()
		depth++
	}
}

func describe(val object.Object) string {
	return fmt.Sprintf("%s (%s)", val.Inspect(), val.Type())
}
