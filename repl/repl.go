// Package repl implements the interactive Lox REPL: prompt, line editing
// and history via chzyer/readline on a real terminal, one interpreter
// session whose globals environment persists across lines, and colorized
// diagnostics via fatih/color — all carried forward from the teacher's own
// repl.go.
package repl

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/loxrun/lox/interpreter"
	"github.com/loxrun/lox/run"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
	greenColor  = color.New(color.FgGreen)
)

// Repl is one interactive session's configuration: banner text, version
// string, and prompt. A Repl value carries no interpreter state itself —
// Start creates and owns one Interpreter for the lifetime of the session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Type Lox statements and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit, or press Ctrl-D.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the read-eval-print loop over reader/writer until end of
// input. Each line is parsed and interpreted as a full program against one
// long-lived Interpreter, so variable and function definitions persist
// across lines. Per §6: only the syntactic error flag resets on each
// iteration — the REPL simply continues after a runtime error, there being
// no separate runtime-error flag to reset since each run.Source call
// reports its own.
//
// reader/writer make this transport-agnostic, exactly like the teacher's
// own Repl.Start(reader, writer): when reader is the process's real stdin,
// line editing and history go through chzyer/readline; otherwise (the TCP
// server's §10.1 per-connection session, a raw net.Conn that cannot
// negotiate a local terminal) a plain line-oriented reader is used directly
// over the supplied reader/writer.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	interp := interpreter.New(writer)

	if reader == os.Stdin {
		r.runWithReadline(interp, writer)
		return
	}
	r.runWithPlainReader(interp, reader, writer)
}

func (r *Repl) runWithReadline(interp *interpreter.Interpreter, writer io.Writer) {
	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}
		if r.handleLine(line, interp, writer) {
			return
		}
		rl.SaveHistory(line)
	}
}

func (r *Repl) runWithPlainReader(interp *interpreter.Interpreter, reader io.Reader, writer io.Writer) {
	br := bufio.NewReader(reader)
	for {
		writer.Write([]byte(r.Prompt))
		line, err := br.ReadString('\n')
		if err != nil {
			if line == "" {
				writer.Write([]byte("Good bye!\n"))
				return
			}
		}
		if r.handleLine(line, interp, writer) {
			return
		}
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}
	}
}

// handleLine trims and runs one line of input, returning true if the
// session should end (the ".exit" REPL-only command; never valid Lox
// source, so it cannot collide with program text).
func (r *Repl) handleLine(line string, interp *interpreter.Interpreter, writer io.Writer) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if line == ".exit" {
		writer.Write([]byte("Good bye!\n"))
		return true
	}
	// The local REPL reports diagnostics on stderr; a server session
	// reports them over its own connection.
	errOut := writer
	if writer == os.Stdout {
		errOut = os.Stderr
	}
	run.Source(line, interp, errOut)
	return false
}
