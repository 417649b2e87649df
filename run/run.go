// Package run wires the scanner, parser, and interpreter into the single
// "run one chunk of source" operation that the REPL, the file runner, and
// the TCP server (§10.1) all share, following the teacher's own
// executeWithRecovery/executeFileWithRecovery shape: parse, bail out on
// parse errors, otherwise interpret and report any runtime error.
package run

import (
	"github.com/fatih/color"
	"github.com/loxrun/lox/environment"
	"github.com/loxrun/lox/interpreter"
	"github.com/loxrun/lox/parser"
	"github.com/loxrun/lox/scanner"
)

var errColor = color.New(color.FgRed)

// Writer is the narrow output sink diagnostics are written to.
type Writer interface {
	Write(p []byte) (n int, err error)
}

// Source scans, parses, and — only if parsing produced no diagnostics —
// interprets source against interp. It reports every diagnostic and any
// runtime error to errOut, colorized per §9's ambient stack. It returns
// whether a static (lexical/syntactic) error occurred and whether a runtime
// error occurred, exactly the two flags §6/§7 says the driver must track.
func Source(source string, interp *interpreter.Interpreter, errOut Writer) (hadError, hadRuntimeError bool) {
	tokens, scanErrs := scanner.Scan(source)
	for _, d := range scanErrs {
		errColor.Fprintln(errOut, d.String())
	}

	stmts, parseErrs := parser.Parse(tokens)
	for _, d := range parseErrs {
		errColor.Fprintln(errOut, d.String())
	}

	if len(scanErrs) > 0 || len(parseErrs) > 0 {
		return true, false
	}

	if err := interp.Interpret(stmts); err != nil {
		if rtErr, ok := err.(*environment.RuntimeError); ok {
			errColor.Fprintln(errOut, rtErr.Error())
		} else {
			errColor.Fprintln(errOut, err.Error())
		}
		return false, true
	}
	return false, false
}

// File runs an entire source file as one program, returning the process
// exit code per §6: 65 for a static error, 70 for a runtime error, 0
// otherwise.
func File(source string, interp *interpreter.Interpreter, errOut Writer) int {
	hadError, hadRuntimeError := Source(source, interp, errOut)
	switch {
	case hadError:
		return 65
	case hadRuntimeError:
		return 70
	default:
		return 0
	}
}
