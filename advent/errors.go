package main

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errInvalidFormat = errors.New("invalid format")
	errNoMarker      = errors.New("no marker found")
)

// A parseError reports malformed input. Line is 1-based, or 0 if the
// error isn't tied to a single line.
type parseError struct {
	Line  int
	Input string
	Err   error
}

func (e *parseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %q: %s", e.Line, e.Input, e.Err)
	}
	return fmt.Sprintf("at %q: %s", e.Input, e.Err)
}

func (e *parseError) Unwrap() error { return e.Err }

// lineError attributes err to the given line of input.
func lineError(line int, input string, err error) error {
	var pe *parseError
	if errors.As(err, &pe) {
		return &parseError{Line: line, Input: input, Err: pe.Err}
	}
	return &parseError{Line: line, Input: input, Err: err}
}

// snippet trims s to the rest of its first line, with a length limit,
// for use in error messages.
func snippet(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSuffix(s, "\r")
	if len(s) > 30 {
		s = s[:30] + "..."
	}
	return s
}

type symbolError struct {
	sym string
}

func (e *symbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q", e.sym)
}

// A moveError is a crate move that cannot be applied to the current stacks.
type moveError struct {
	m      move
	reason string
}

func (e *moveError) Error() string {
	return fmt.Sprintf("cannot apply move %s: %s", e.m, e.reason)
}
