package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parser combinators in the style of nom. A parser consumes a prefix of
// its input and returns the value along with the unconsumed rest.
type parser[T any] func(in string) (value T, rest string, err error)

func expected(in, what string) error {
	return &parseError{Input: snippet(in), Err: fmt.Errorf("expected %s", what)}
}

func tag(t string) parser[string] {
	return func(in string) (string, string, error) {
		if !strings.HasPrefix(in, t) {
			return "", in, expected(in, strconv.Quote(t))
		}
		return t, in[len(t):], nil
	}
}

// takeWhile1 matches a non-empty run of bytes satisfying ok.
func takeWhile1(what string, ok func(byte) bool) parser[string] {
	return func(in string) (string, string, error) {
		i := 0
		for i < len(in) && ok(in[i]) {
			i++
		}
		if i == 0 {
			return "", in, expected(in, what)
		}
		return in[:i], in[i:], nil
	}
}

func isDigit(c byte) bool  { return '0' <= c && c <= '9' }
func isLetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

var (
	digit1 = takeWhile1("digits", isDigit)
	alpha1 = takeWhile1("letters", isLetter)
)

// integer parses a run of decimal digits.
var integer parser[int] = func(in string) (int, string, error) {
	s, rest, err := digit1(in)
	if err != nil {
		return 0, in, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, in, &parseError{Input: snippet(in), Err: err}
	}
	return n, rest, nil
}

// space0 matches zero or more spaces and tabs.
var space0 parser[string] = func(in string) (string, string, error) {
	rest := strings.TrimLeft(in, " \t")
	return in[:len(in)-len(rest)], rest, nil
}

// padded matches p with optional spaces and tabs on either side.
func padded[T any](p parser[T]) parser[T] {
	return delimited(space0, p, space0)
}

// lineEnding matches \n or \r\n.
var lineEnding = alt(tag("\r\n"), tag("\n"))

// alt returns the result of the first parser that succeeds.
func alt[T any](options ...parser[T]) parser[T] {
	return func(in string) (T, string, error) {
		var zero T
		for _, p := range options {
			v, rest, err := p(in)
			if err == nil {
				return v, rest, nil
			}
		}
		return zero, in, expected(in, fmt.Sprintf("one of %d alternatives", len(options)))
	}
}

func delimited[L, T, R any](left parser[L], inner parser[T], right parser[R]) parser[T] {
	return func(in string) (T, string, error) {
		var zero T
		_, rest, err := left(in)
		if err != nil {
			return zero, in, err
		}
		v, rest, err := inner(rest)
		if err != nil {
			return zero, in, err
		}
		_, rest, err = right(rest)
		if err != nil {
			return zero, in, err
		}
		return v, rest, nil
	}
}

// preceded matches prefix then p, returning p's value.
func preceded[P, T any](prefix parser[P], p parser[T]) parser[T] {
	return func(in string) (T, string, error) {
		var zero T
		_, rest, err := prefix(in)
		if err != nil {
			return zero, in, err
		}
		v, rest, err := p(rest)
		if err != nil {
			return zero, in, err
		}
		return v, rest, nil
	}
}

func mapP[T, U any](p parser[T], f func(T) U) parser[U] {
	return func(in string) (U, string, error) {
		var zero U
		v, rest, err := p(in)
		if err != nil {
			return zero, in, err
		}
		return f(v), rest, nil
	}
}

// separatedList1 matches one or more p separated by sep. A trailing
// separator is left unconsumed.
func separatedList1[S, T any](sep parser[S], p parser[T]) parser[[]T] {
	return func(in string) ([]T, string, error) {
		v, rest, err := p(in)
		if err != nil {
			return nil, in, err
		}
		vs := []T{v}
		for {
			_, next, err := sep(rest)
			if err != nil {
				return vs, rest, nil
			}
			v, next, err = p(next)
			if err != nil {
				return vs, rest, nil
			}
			vs = append(vs, v)
			rest = next
		}
	}
}

// full runs p on all of in. Only whitespace may follow the parsed value.
// If other input follows, the error describes why p could not continue
// there.
func full[T any](p parser[T]) func(in string) (T, error) {
	return func(in string) (T, error) {
		var zero T
		v, rest, err := p(in)
		if err != nil {
			return zero, err
		}
		if strings.TrimSpace(rest) == "" {
			return v, nil
		}
		rest = strings.TrimLeft(rest, " \t\r\n")
		consumed := in[:len(in)-len(rest)]
		cause := fmt.Errorf("unexpected input after %d bytes", len(consumed))
		var pe *parseError
		if _, _, err := p(rest); errors.As(err, &pe) {
			cause = fmt.Errorf("at %q: %w", pe.Input, pe.Err)
		}
		return zero, &parseError{
			Line:  strings.Count(consumed, "\n") + 1,
			Input: snippet(rest),
			Err:   cause,
		}
	}
}

// splitTokens splits a line on single spaces and requires at least n
// tokens. Extra tokens are ignored.
func splitTokens(line string, n int) ([]string, error) {
	tokens := strings.Split(line, " ")
	if len(tokens) < n {
		return nil, errInvalidFormat
	}
	return tokens[:n], nil
}

// lookup maps a symbol through a table.
func lookup[T any](table map[string]T, sym string) (T, error) {
	v, ok := table[sym]
	if !ok {
		var zero T
		return zero, &symbolError{sym}
	}
	return v, nil
}

// parseLines applies parse to every line, stopping at the first failure.
func parseLines[T any](lines []string, parse func(string) (T, error)) ([]T, error) {
	records := make([]T, 0, len(lines))
	for i, line := range lines {
		rec, err := parse(line)
		if err != nil {
			return nil, lineError(i+1, line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
