// Command monkey is the Monkey interpreter's entry point: REPL mode with
// no arguments, file mode given a path, or `server <port>` to serve one
// REPL session per TCP connection (spec.md §6).
package main

import (
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/monkeylang/monkey/environment"
	"github.com/monkeylang/monkey/eval"
	"github.com/monkeylang/monkey/parser"
	"github.com/monkeylang/monkey/repl"
)

const (
	version = "v1.0.0"
	author  = "monkeylang"
	license = "MIT"
	prompt  = "monkey >>> "
	line    = "----------------------------------------------------------------"
)

var banner = `
 888b    888                   888
 8888b   888                   888
 88888b  888                   888
 888Y88b 888 .d88b.  88888b.  888  888 .d88b.  888  888
 888 Y88b888d88""88b 888 "88b 888 .88P d8P  Y8b 888  888
 888  Y88888888  888 888  888 888888K  88888888 888  888
 888   Y8888Y88..88P 888  888 888 "88b Y8b.     Y88b 888
 888    Y888 "Y88P"  888  888 888  888  "Y8888   "Y88888
                                                     888
                                                Y8b d88P
                                                 "Y88P"
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) <= 1 {
		repl.New(banner, version, author, line, license, prompt).Start(os.Stdin, os.Stdout)
		return
	}

	switch arg := os.Args[1]; arg {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "server":
		if len(os.Args) < 3 {
			redColor.Fprintln(os.Stderr, "usage: monkey server <port>")
			os.Exit(1)
		}
		startServer(os.Args[2])
	default:
		runFile(arg)
	}
}

func showHelp() {
	cyanColor.Println("Monkey - a small expression-oriented scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  monkey                    Start interactive REPL mode")
	yellowColor.Println("  monkey <path-to-file>     Execute a Monkey source file")
	yellowColor.Println("  monkey server <port>      Serve one REPL session per TCP connection")
	yellowColor.Println("  monkey --help             Display this help message")
	yellowColor.Println("  monkey --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL:")
	yellowColor.Println("  dbg!                      Dump the current environment's bindings")
	yellowColor.Println("  .exit                     Exit the REPL")
}

func showVersion() {
	cyanColor.Printf("Monkey %s (%s license, %s)\n", version, license, author)
}

// runFile parses and evaluates an entire file against one fresh
// Environment and prints the final value's display form to stdout; unlike
// the REPL it prints a Nil result too, as `nil`. Parse and runtime errors
// go to stderr with the "error: " prefix and exit non-zero.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "error: could not read %q: %v\n", path, err)
		os.Exit(1)
	}

	p := parser.New(string(source))
	stmts, errs := p.Parse()
	if len(errs) > 0 {
		for _, perr := range errs {
			redColor.Fprintf(os.Stderr, "error: %s\n", perr)
		}
		os.Exit(1)
	}

	result, evalErr := eval.New().EvalProgram(stmts, environment.New())
	if evalErr != nil {
		redColor.Fprintf(os.Stderr, "error: %s\n", evalErr)
		os.Exit(1)
	}
	yellowColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
}

// startServer listens on port and hands each accepted connection its own
// goroutine, REPL instance, and Environment — sessions never share state
// (spec.md §5).
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "error: could not listen on port %s: %v\n", port, err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("monkey server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "error: accept failed: %v\n", err)
			continue
		}
		go handleConnection(conn)
	}
}

func handleConnection(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected: %s\n", conn.RemoteAddr())
	repl.New(banner, version, author, line, license, prompt).Start(conn, conn)
	cyanColor.Printf("client disconnected: %s\n", conn.RemoteAddr())
}
