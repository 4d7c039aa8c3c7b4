// Package apperrors provides hierarchical application errors. An error created with New on an
// existing error is a child of it: errors.Is(child, parent) holds for every ancestor.
package apperrors

import (
	"errors"
	"strings"
)

// Error is an application error that can be specialized and annotated while keeping its identity.
type Error interface {
	error
	// New creates a child error with its own message.
	New(msg string) Error
	// Msg returns a child error carrying msg in place of the parent's message.
	Msg(msg string) Error
	// Err returns a child error wrapping err as its cause.
	Err(err error) Error
	SetExpandError(expand bool) Error
	SetExitCode(code int) Error
	ExitCode() int
	// ErrorAll renders the whole chain, root first, followed by the cause.
	ErrorAll() string
	Is(target error) bool
	Unwrap() error
}

type appError struct {
	msg      string
	parent   *appError
	cause    error
	exitCode int
	expand   bool
}

var _ Error = (*appError)(nil)

// New creates a root error.
func New(msg string) Error {
	return &appError{msg: msg}
}

func (e *appError) child(msg string) *appError {
	return &appError{
		msg:      msg,
		parent:   e,
		cause:    e.cause,
		exitCode: e.exitCode,
		expand:   e.expand,
	}
}

func (e *appError) New(msg string) Error {
	c := e.child(msg)
	c.cause = nil
	return c
}

func (e *appError) Msg(msg string) Error {
	return e.child(msg)
}

func (e *appError) Err(err error) Error {
	c := e.child(e.msg)
	c.cause = err
	return c
}

func (e *appError) SetExpandError(expand bool) Error {
	c := *e
	c.expand = expand
	return &c
}

func (e *appError) SetExitCode(code int) Error {
	c := *e
	c.exitCode = code
	return &c
}

func (e *appError) ExitCode() int {
	return e.exitCode
}

func (e *appError) Error() string {
	if e.expand && e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *appError) ErrorAll() string {
	var parts []string
	last := ""
	for p := e; p != nil; p = p.parent {
		if p.msg != last {
			parts = append(parts, p.msg)
			last = p.msg
		}
	}
	// reverse so the root comes first
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	s := strings.Join(parts, ": ")
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

func (e *appError) Is(target error) bool {
	var t *appError
	if !errors.As(target, &t) {
		return false
	}
	for p := e; p != nil; p = p.parent {
		if p == t {
			return true
		}
	}
	return false
}

func (e *appError) Unwrap() error {
	return e.cause
}
