// Package oops records where an internal failure happened. Handlers never
// show these to clients; middleware.ErrorResponse turns them into a plain 500
// and the log line carries the frames.
package oops

import (
	"errors"
	"fmt"

	"github.com/go-stack/stack"
	"github.com/rs/zerolog"
)

// Error is a failure the caller cannot do anything about, such as a row that
// vanished mid-request or a gateway that stopped answering. User-facing
// outcomes belong in apperr.
type Error struct {
	Message string
	Wrapped error
	Stack   CallStack
}

func (e *Error) Error() string {
	if e.Wrapped != nil {
		return e.Message + ": " + e.Wrapped.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Wrapped }

// CallStack is logged innermost frame first.
type CallStack []StackFrame

func (cs CallStack) MarshalZerologArray(arr *zerolog.Array) {
	for _, sf := range cs {
		arr.Object(sf)
	}
}

type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

func (sf StackFrame) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("function", sf.Function).Str("file", sf.File).Int("line", sf.Line)
}

// ZerologStackMarshaler is installed as zerolog.ErrorStackMarshaler. It finds
// the first *Error anywhere in the chain, so an apperr wrapping one still logs
// its frames.
var ZerologStackMarshaler = func(err error) interface{} {
	var traced *Error
	if errors.As(err, &traced) {
		return traced.Stack
	}
	return nil
}

// Trace captures the stack above its own call site, runtime frames removed.
func Trace() CallStack {
	calls := stack.Trace()[1:].TrimRuntime()
	cs := make(CallStack, 0, len(calls))
	for _, c := range calls {
		fr := c.Frame()
		cs = append(cs, StackFrame{File: fr.File, Line: fr.Line, Function: fr.Function})
	}
	return cs
}

// New formats a message, wraps err (which may be nil) and records the stack
// of whoever called New.
func New(err error, format string, args ...interface{}) error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Wrapped: err,
		Stack:   Trace()[1:],
	}
}
