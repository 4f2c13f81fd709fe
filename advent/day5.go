package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register("5", day5)
}

func day5(r *run) error {
	text, err := r.text()
	if err != nil {
		return err
	}
	initial, moves, err := parseCrates(text)
	if err != nil {
		return err
	}
	r.debug(initial)
	r.debug(moves)

	for _, mover := range []func(stacks, move) error{
		stacks.moveOneAtATime,
		stacks.moveBlock,
	} {
		st := initial.clone()
		for _, m := range moves {
			if err := mover(st, m); err != nil {
				return err
			}
		}
		r.answer(st.tops())
	}
	return nil
}

// A move transfers quantity crates from stack from to stack to.
// Stacks are numbered from 1.
type move struct {
	quantity int
	from     int
	to       int
}

func (m move) String() string {
	return fmt.Sprintf("%d -> %d (%d)", m.from, m.to, m.quantity)
}

// stacks holds crate labels, each stack ordered bottom to top.
type stacks [][]string

func (s stacks) clone() stacks {
	s1 := make(stacks, len(s))
	for i, st := range s {
		s1[i] = append([]string(nil), st...)
	}
	return s1
}

// check validates m against the current stacks and returns the 0-based
// stack indexes.
func (s stacks) check(m move) (from, to int, err error) {
	from, to = m.from-1, m.to-1
	if from < 0 || from >= len(s) {
		return 0, 0, &moveError{m, fmt.Sprintf("no stack %d", m.from)}
	}
	if to < 0 || to >= len(s) {
		return 0, 0, &moveError{m, fmt.Sprintf("no stack %d", m.to)}
	}
	if m.quantity > len(s[from]) {
		return 0, 0, &moveError{m, fmt.Sprintf("stack %d has only %d crates", m.from, len(s[from]))}
	}
	return from, to, nil
}

// moveOneAtATime moves crates singly, reversing their order.
func (s stacks) moveOneAtATime(m move) error {
	from, to, err := s.check(m)
	if err != nil {
		return err
	}
	for i := 0; i < m.quantity; i++ {
		n := len(s[from]) - 1
		c := s[from][n]
		s[from] = s[from][:n]
		s[to] = append(s[to], c)
	}
	return nil
}

// moveBlock moves the crates together, keeping their order.
func (s stacks) moveBlock(m move) error {
	from, to, err := s.check(m)
	if err != nil {
		return err
	}
	n := len(s[from]) - m.quantity
	block := append([]string(nil), s[from][n:]...)
	s[from] = s[from][:n]
	s[to] = append(s[to], block...)
	return nil
}

// tops concatenates the top crate of each stack. Empty stacks are skipped.
func (s stacks) tops() string {
	var b strings.Builder
	for _, st := range s {
		if len(st) > 0 {
			b.WriteString(st[len(st)-1])
		}
	}
	return b.String()
}

var (
	crateP     = delimited(tag("["), alpha1, tag("]"))
	emptySlotP = mapP(tag("   "), func(string) string { return "" })
	parseRow   = full(separatedList1(tag(" "), alt(crateP, emptySlotP)))
)

var moveP parser[move] = func(in string) (move, string, error) {
	var m move
	var err error
	rest := in
	for _, f := range []struct {
		prefix string
		n      *int
	}{
		{"move ", &m.quantity},
		{" from ", &m.from},
		{" to ", &m.to},
	} {
		if *f.n, rest, err = preceded(tag(f.prefix), integer)(rest); err != nil {
			return move{}, in, err
		}
	}
	return m, rest, nil
}

var parseMoves = full(separatedList1(lineEnding, padded(moveP)))

// parseCrates parses the drawing of the initial stacks, a blank line, and
// the move list.
func parseCrates(text string) (stacks, []move, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	drawing, procedure, ok := strings.Cut(text, "\n\n")
	if !ok {
		return nil, nil, errors.New("missing blank line after the stack drawing")
	}
	rows := strings.Split(strings.TrimLeft(drawing, "\n"), "\n")
	labels := rows[len(rows)-1]
	rows = rows[:len(rows)-1]

	var numStacks int
	for _, f := range strings.Fields(labels) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, nil, lineError(len(rows)+1, labels, errInvalidFormat)
		}
		numStacks = max(numStacks, n)
	}
	st := make(stacks, numStacks)
	for i := len(rows) - 1; i >= 0; i-- {
		row, err := parseRow(rows[i])
		if err != nil {
			return nil, nil, lineError(i+1, rows[i], err)
		}
		for j, label := range row {
			if label == "" {
				continue
			}
			if j >= numStacks {
				return nil, nil, lineError(i+1, rows[i], fmt.Errorf("crate %s is outside the %d stacks", label, numStacks))
			}
			st[j] = append(st[j], label)
		}
	}

	moves, err := parseMoves(procedure)
	if err != nil {
		var pe *parseError
		if errors.As(err, &pe) && pe.Line > 0 {
			return nil, nil, lineError(pe.Line+len(rows)+2, pe.Input, err)
		}
		return nil, nil, err
	}
	return st, moves, nil
}
