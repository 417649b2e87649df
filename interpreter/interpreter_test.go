package interpreter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxrun/lox/environment"
	"github.com/loxrun/lox/parser"
	"github.com/loxrun/lox/scanner"
)

// runSource scans, parses, and interprets source against a fresh
// interpreter whose print output is captured, returning stdout and any
// runtime error. The first eight tests are the spec's own end-to-end
// scenarios; the rest cover short-circuiting, scoping, calls, and clock.
func runSource(t *testing.T, src string) (string, error) {
	t.Helper()
	tokens, scanErrs := scanner.Scan(src)
	assert.Empty(t, scanErrs)
	stmts, parseErrs := parser.Parse(tokens)
	assert.Empty(t, parseErrs)

	var buf bytes.Buffer
	interp := New(&buf)
	err := interp.Interpret(stmts)
	return buf.String(), err
}

func TestNumberAddition(t *testing.T) {
	out, err := runSource(t, "print 1 + 2;")
	assert.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestStringConcatenation(t *testing.T) {
	out, err := runSource(t, `var a = "hi"; var b = " there"; print a + b;`)
	assert.NoError(t, err)
	assert.Equal(t, "hi there\n", out)
}

func TestForLoopAccumulation(t *testing.T) {
	out, err := runSource(t, "var x = 0; for (var i = 0; i < 3; i = i + 1) x = x + i; print x;")
	assert.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestClosureCapturesByReference(t *testing.T) {
	src := `fun makeCounter(){ var n=0; fun c(){ n = n+1; return n; } return c; }
	         var c = makeCounter(); print c(); print c(); print c();`
	out, err := runSource(t, src)
	assert.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestEqualityAcrossTypes(t *testing.T) {
	out, err := runSource(t, `print "a" == "a"; print 1 == "1"; print nil == nil;`)
	assert.NoError(t, err)
	assert.Equal(t, "true\nfalse\ntrue\n", out)
}

func TestDivisionByZeroIsNotARuntimeError(t *testing.T) {
	out, err := runSource(t, "print 1/0;")
	assert.NoError(t, err)
	assert.Equal(t, "inf\n", out)
}

func TestUnaryMinusOnStringIsRuntimeError(t *testing.T) {
	_, err := runSource(t, `print -"x";`)
	assert.Error(t, err)
	rtErr, ok := err.(*environment.RuntimeError)
	assert.True(t, ok)
	assert.Equal(t, "Operand must be a number.\n[line 1]", rtErr.Error())
}

func TestLogicalAndShortCircuitTruthValueCarriesThrough(t *testing.T) {
	out, err := runSource(t, `print (1 < 2) and "yes";`)
	assert.NoError(t, err)
	assert.Equal(t, "yes\n", out)
}

func TestOrShortCircuitsAndNeverEvaluatesRight(t *testing.T) {
	// If short-circuiting failed to skip the right operand, calling the
	// undefined "boom" function would raise a runtime error instead of
	// printing.
	out, err := runSource(t, `print true or boom();`)
	assert.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestAndShortCircuitsAndNeverEvaluatesRight(t *testing.T) {
	out, err := runSource(t, `print false and boom();`)
	assert.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := runSource(t, "print missing;")
	assert.Error(t, err)
}

func TestBlockScopeRestoresEnclosingEnvironmentOnExit(t *testing.T) {
	src := `var a = "outer"; { var a = "inner"; print a; } print a;`
	out, err := runSource(t, src)
	assert.NoError(t, err)
	assert.Equal(t, "inner\nouter\n", out)
}

func TestFunctionArityMismatchIsRuntimeError(t *testing.T) {
	_, err := runSource(t, "fun f(a) { return a; } f(1, 2);")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 1 arguments but got 2.")
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := runSource(t, `var x = 1; x();`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Can only call functions and classes.")
}

func TestClockIsRegisteredAsNativeZeroArity(t *testing.T) {
	out, err := runSource(t, "print clock() >= 0;")
	assert.NoError(t, err)
	assert.Equal(t, "true\n", out)
}
