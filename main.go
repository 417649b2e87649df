// Command lox is the Lox interpreter's entry point: REPL, file runner, and
// the supplemented TCP REPL server, dispatched from plain os.Args
// inspection the way the teacher's main.go does (no flags/config library).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/loxrun/lox/interpreter"
	"github.com/loxrun/lox/repl"
	"github.com/loxrun/lox/run"
	"github.com/loxrun/lox/server"
)

const (
	version = "v1.0.0"
	author  = "loxrun"
	license = "MIT"
	prompt  = "> "
	line    = "----------------------------------------------------------------"
	banner  = `
  _
 | |    _____  __
 | |   / _ \ \/ /
 | |__| (_) >  <
 |_____\___/_/\_\
`
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	args := os.Args[1:]

	for _, a := range args {
		if a == "--no-color" {
			color.NoColor = true
		}
	}
	args = filterNoColor(args)

	switch {
	case len(args) == 0:
		repl.New(banner, version, author, line, license, prompt).Start(os.Stdin, os.Stdout)

	case args[0] == "--help" || args[0] == "-h":
		showHelp()

	case args[0] == "--version" || args[0] == "-v":
		showVersion()

	case args[0] == "serve":
		if len(args) < 2 {
			redColor.Fprintln(os.Stderr, "Usage: lox serve <port>")
			os.Exit(64)
		}
		if err := server.Serve(args[1], banner, version, author, line, license, prompt); err != nil {
			redColor.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

	case len(args) == 1:
		os.Exit(runFile(args[0]))

	default:
		redColor.Fprintln(os.Stderr, "Usage: lox [script]")
		os.Exit(64)
	}
}

// filterNoColor strips the "--no-color" flag out of the argument list so
// the remaining dispatch logic never has to know about it.
func filterNoColor(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a != "--no-color" {
			out = append(out, a)
		}
	}
	return out
}

func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		return 74
	}
	interp := interpreter.New(os.Stdout)
	return run.File(string(source), interp, os.Stderr)
}

func showHelp() {
	cyanColor.Println("lox - a tree-walking interpreter for Lox")
	cyanColor.Println()
	cyanColor.Println("USAGE:")
	fmt.Println("  lox                  Start the interactive REPL")
	fmt.Println("  lox <path>           Execute a Lox source file")
	fmt.Println("  lox serve <port>     Start a TCP REPL server on <port>")
	fmt.Println("  lox --help           Show this help message")
	fmt.Println("  lox --version        Show version information")
	fmt.Println("  lox --no-color       Disable colorized diagnostics")
}

func showVersion() {
	cyanColor.Printf("lox %s (%s, %s)\n", version, author, license)
}
