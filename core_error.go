// core_error.go - fatal-error convention for usage violations

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
core_error.go implements the taxonomy in spec.md 7: usage violations,
unsupported operations, allocation failures and surface-present failures
are all fatal — there is no recoverable error path and GetError is a dead
read. panic(fmt.Sprintf(...)) is the convention for programmer-error
conditions throughout this package; FatalError gives it a struct shape a
recover() at a host boundary can inspect.
*/

package glcore

import "fmt"

// FatalError is the panic value raised for usage violations and
// unsupported operations (spec.md 7). A host shim that wants to convert
// a panic at the FFI boundary into a logged process abort can recover and
// type-assert on this.
type FatalError struct {
	Op     string // operation being attempted, e.g. "Begin" or "CallList"
	Detail string // what went wrong
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("glcore: %s: %s", e.Op, e.Detail)
}

// fatal panics with a FatalError built from op and detail.
func fatal(op, detail string) {
	panic(&FatalError{Op: op, Detail: detail})
}

// fatalf panics with a FatalError built from op and a formatted detail.
func fatalf(op, format string, args ...any) {
	panic(&FatalError{Op: op, Detail: fmt.Sprintf(format, args...)})
}

// fatalValue builds a FatalError value (not a panic) for use inside
// expressions that must produce a value, e.g. an exhaustive switch's
// default arm. Callers still pass it to panic().
func fatalValue(op, format string, args ...any) *FatalError {
	return &FatalError{Op: op, Detail: fmt.Sprintf(format, args...)}
}

// unsupported panics with the "unimplemented" message distinguished in
// spec.md 7 for API entry points the core declines to implement.
func unsupported(op string) {
	panic(&FatalError{Op: op, Detail: "unimplemented: not part of the supported subset"})
}
