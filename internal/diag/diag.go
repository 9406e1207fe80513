// Package diag provides the compiler's structured diagnostic model: a closed
// set of named error kinds, an optional source position, and compiler-site
// metadata for internal triage. The kind name is the public, test-facing
// contract; the human message is not.
package diag

import (
	"fmt"
	"runtime"
	"strings"
)

// Kind identifies the stage and reason a diagnostic was raised. Kind values
// are stable string identifiers so that callers (and tests) can match on
// them without depending on message wording.
type Kind string

// Parser diagnostic kinds.
const (
	KindExpectedParen               Kind = "expected_paren"
	KindExpectedDef                 Kind = "expected_def"
	KindExpectedName                Kind = "expected_name"
	KindExpectedFuncType            Kind = "expected_func_type"
	KindExpectedFuncTypeAfterName   Kind = "expected_func_type_after_name"
	KindExpectedFuncExpr            Kind = "expected_func_expr"
	KindExpectedType                Kind = "expected_type"
	KindExpectedFuncRetTerminalType Kind = "expected_func_ret_terminal_type"
	KindExpectedParam               Kind = "expected_param"
	KindExpectedParamName           Kind = "expected_param_name"
	KindExpectedParamType           Kind = "expected_param_type"
	KindUnexpectedToken             Kind = "unexpected_token"
)

// Resolver diagnostic kinds.
const (
	KindExpectedDefinedType Kind = "expected_defined_type"
	KindExpectedTerminalType Kind = "expected_terminal_type"
)

// Type checker diagnostic kinds.
const (
	KindExpectedMain          Kind = "expected_main"
	KindUnexpectedMultiMain   Kind = "unexpected_multi_main"
	KindExpectedMainType      Kind = "expected_main_type"
	KindExpectedDefinedSymbol Kind = "expected_defined_symbol"
	KindExpectedLiteralOrVar  Kind = "expected_literal_or_var"
	KindTypeMismatch          Kind = "type_mismatch"
	KindExpectedFunc          Kind = "expected_func"
	KindFuncTypeMismatch      Kind = "func_type_mismatch"
	KindExpectedArgument      Kind = "expected_argument"
	KindUnexpectedArgument    Kind = "unexpected_argument"
	KindNoTypeMatch           Kind = "no_type_match"
)

// noPos marks an Error with no source location, e.g. the main-contract
// checks which are raised before any single expression is inspected.
const noPos = -1

// Error is the compiler's single error type. Every stage returns a concrete
// *Error (which implements the standard error interface) instead of ad-hoc
// fmt.Errorf values, because Kind is the contract tests and callers match
// against.
type Error struct {
	Kind    Kind
	Pos     int // byte offset into source, or -1 if this diagnostic has no location.
	Message string

	// Compiler-site metadata: where in this compiler's own source the
	// diagnostic was raised, for internal triage only. Never part of the
	// public contract.
	File string
	Line int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// HasPos reports whether the diagnostic carries a source location.
func (e *Error) HasPos() bool {
	return e.Pos >= 0
}

// Print renders the diagnostic to a string exactly as a CLI would print it
// to stderr: the enclosing source line (if any), a caret under the byte
// offset, the human message, and the compiler-site origin.
func (e *Error) Print(source string) string {
	var sb strings.Builder
	if !e.HasPos() {
		fmt.Fprintf(&sb, "Error: %s\n%s:%d\n", e.Message, e.File, e.Line)
		return sb.String()
	}

	line, column, ok := lineAndColumn(source, e.Pos)
	if !ok {
		fmt.Fprintf(&sb, "Error: %s\n%s:%d\n", e.Message, e.File, e.Line)
		return sb.String()
	}
	sb.WriteString(line)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", column))
	sb.WriteString("^\n")
	fmt.Fprintf(&sb, "Error: %s\n%s:%d\n", e.Message, e.File, e.Line)
	return sb.String()
}

// lineAndColumn finds the source line containing byte offset pos and the
// zero-indexed column of pos within that line.
func lineAndColumn(source string, pos int) (line string, column int, ok bool) {
	if pos < 0 || pos > len(source) {
		return "", 0, false
	}
	start := strings.LastIndexByte(source[:pos], '\n') + 1
	end := len(source)
	if i := strings.IndexByte(source[pos:], '\n'); i >= 0 {
		end = pos + i
	}
	return source[start:end], pos - start, true
}

// site captures the file and line of the caller that raised a diagnostic,
// skip frames above the New* constructor.
func site(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", 0
	}
	return file, line
}

func newErr(kind Kind, pos int, message string) *Error {
	file, line := site(3)
	return &Error{Kind: kind, Pos: pos, Message: message, File: file, Line: line}
}

// ---- Parser diagnostics ----

func ExpectedParen(pos int, token string) *Error {
	return newErr(KindExpectedParen, pos,
		fmt.Sprintf("unexpected lone token %q, you may be missing some parentheses", token))
}

func ExpectedDef(pos int, token string) *Error {
	return newErr(KindExpectedDef, pos, fmt.Sprintf("expected definition, got lone token %s", token))
}

func ExpectedName(pos int) *Error {
	return newErr(KindExpectedName, pos, "expected a name to start definition")
}

func ExpectedFuncType(pos int) *Error {
	return newErr(KindExpectedFuncType, pos, "expected function type consisting of parameters and a return type")
}

func ExpectedFuncTypeAfterName(pos int) *Error {
	return newErr(KindExpectedFuncTypeAfterName, pos, "expected function type after this definition name")
}

func ExpectedFuncExpr(pos int) *Error {
	return newErr(KindExpectedFuncExpr, pos, "expected function expression after this function type")
}

func ExpectedType(pos int) *Error {
	return newErr(KindExpectedType, pos, "expected at least one type inside function type, try adding void")
}

func ExpectedFuncRetTerminalType(pos int) *Error {
	return newErr(KindExpectedFuncRetTerminalType, pos, "unexpected nesting in function return type")
}

func ExpectedParam(pos int) *Error {
	return newErr(KindExpectedParam, pos, "expected a parameter consisting of a name and a type")
}

func ExpectedParamName(pos int) *Error {
	return newErr(KindExpectedParamName, pos, "unexpected nesting, expected a name for a parameter")
}

func ExpectedParamType(pos int) *Error {
	return newErr(KindExpectedParamType, pos, "unexpected nesting, expected a type for a parameter")
}

func UnexpectedToken(pos int) *Error {
	return newErr(KindUnexpectedToken, pos, "unexpected extra token, a definition is a name, type and expression")
}

// ---- Resolver diagnostics ----

func ExpectedDefinedType(pos int, token string) *Error {
	return newErr(KindExpectedDefinedType, pos, fmt.Sprintf("no such type %q", token))
}

func ExpectedTerminalType(pos int) *Error {
	return newErr(KindExpectedTerminalType, pos, "expected terminal type")
}

// ---- Type checker diagnostics ----

func ExpectedMain() *Error {
	return newErr(KindExpectedMain, noPos, "expected main function to be defined")
}

func UnexpectedMultiMain() *Error {
	return newErr(KindUnexpectedMultiMain, noPos, "multiple definitions of function main")
}

func ExpectedMainType() *Error {
	return newErr(KindExpectedMainType, noPos, "expected main to have type () -> i32 or (i32) -> i32")
}

func ExpectedDefinedSymbol(pos int, token string) *Error {
	return newErr(KindExpectedDefinedSymbol, pos, fmt.Sprintf("symbol %q is undefined", token))
}

func ExpectedLiteralOrVar(pos int) *Error {
	return newErr(KindExpectedLiteralOrVar, pos, "expected a literal, variable or function call")
}

func TypeMismatch(pos int, expected, got string) *Error {
	return newErr(KindTypeMismatch, pos,
		fmt.Sprintf("this type cannot be used, expected %s but got %s", expected, got))
}

func ExpectedFunc(pos int) *Error {
	return newErr(KindExpectedFunc, pos, "expected a function name in the beginning of a function call")
}

func FuncTypeMismatch(pos int, expected, got string) *Error {
	return newErr(KindFuncTypeMismatch, pos,
		fmt.Sprintf("function call gives wrong type, expected %s but this returns %s", expected, got))
}

func ExpectedArgument(pos int) *Error {
	return newErr(KindExpectedArgument, pos, "missing argument in function call")
}

func UnexpectedArgument(pos int) *Error {
	return newErr(KindUnexpectedArgument, pos, "unexpected extra argument in function call")
}

func NoTypeMatch(pos int) *Error {
	return newErr(KindNoTypeMatch, pos, "functions with this name exist, but none are appropriate in this context")
}
