package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const crateDrawing = `    [D]
[N] [C]
[Z] [M] [P]
 1   2   3

move 1 from 2 to 1
move 3 from 1 to 3
`

func TestParseCrates(t *testing.T) {
	st, moves, err := parseCrates(crateDrawing)
	if err != nil {
		t.Fatal(err)
	}
	wantStacks := stacks{{"Z", "N"}, {"M", "C", "D"}, {"P"}}
	if diff := cmp.Diff(wantStacks, st); diff != "" {
		t.Errorf("stacks (-want +got):\n%s", diff)
	}
	wantMoves := []move{{1, 2, 1}, {3, 1, 3}}
	if diff := cmp.Diff(wantMoves, moves, cmp.AllowUnexported(move{})); diff != "" {
		t.Errorf("moves (-want +got):\n%s", diff)
	}
}

func TestParseCratesPaddedMoves(t *testing.T) {
	text := "[A]\n 1   2 \n\nmove 1 from 1 to 2 \n  move 1 from 2 to 1\n\tmove 1 from 1 to 2\t\r\n"
	_, moves, err := parseCrates(text)
	if err != nil {
		t.Fatal(err)
	}
	want := []move{{1, 1, 2}, {1, 2, 1}, {1, 1, 2}}
	if diff := cmp.Diff(want, moves, cmp.AllowUnexported(move{})); diff != "" {
		t.Errorf("moves (-want +got):\n%s", diff)
	}
}

func TestParseCratesErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
		line int
	}{
		{"no blank line", "[A]\n 1 \nmove 1 from 1 to 1\n", 0},
		{"bad crate", "[A] {B}\n 1   2 \n\nmove 1 from 1 to 2\n", 1},
		{"bad labels", "[A]\n x \n\nmove 1 from 1 to 1\n", 2},
		{"bad move", "[A]\n 1 \n\nmove 1 from 1 to 1\nmove one from 1 to 1\n", 5},
		{"extra crate", "[A] [B]\n 1 \n\nmove 1 from 1 to 1\n", 1},
	} {
		_, _, err := parseCrates(tt.text)
		if err == nil {
			t.Errorf("%s: got nil error", tt.name)
			continue
		}
		var pe *parseError
		if tt.line > 0 && (!errors.As(err, &pe) || pe.Line != tt.line) {
			t.Errorf("%s: got %v; want parse error on line %d", tt.name, err, tt.line)
		}
	}
}

func TestMoves(t *testing.T) {
	initial := stacks{{"A", "B", "C"}, {"D"}}
	m := move{quantity: 2, from: 1, to: 2}

	single := initial.clone()
	if err := single.moveOneAtATime(m); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(stacks{{"A"}, {"D", "C", "B"}}, single); diff != "" {
		t.Errorf("one at a time (-want +got):\n%s", diff)
	}

	block := initial.clone()
	if err := block.moveBlock(m); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(stacks{{"A"}, {"D", "B", "C"}}, block); diff != "" {
		t.Errorf("block (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(stacks{{"A", "B", "C"}, {"D"}}, initial); diff != "" {
		t.Errorf("clone shares state with the initial stacks (-want +got):\n%s", diff)
	}
	if single.tops() == block.tops() {
		t.Errorf("both movers gave tops %q", single.tops())
	}
}

func TestMoveErrors(t *testing.T) {
	for _, m := range []move{
		{quantity: 2, from: 2, to: 1},
		{quantity: 1, from: 0, to: 1},
		{quantity: 1, from: 1, to: 3},
	} {
		st := stacks{{"A", "B"}, {"C"}}
		for _, mover := range []func(stacks, move) error{stacks.moveOneAtATime, stacks.moveBlock} {
			var me *moveError
			if err := mover(st, m); !errors.As(err, &me) {
				t.Errorf("move %s: got %v; want *moveError", m, err)
			}
		}
		if diff := cmp.Diff(stacks{{"A", "B"}, {"C"}}, st); diff != "" {
			t.Errorf("failed move %s changed the stacks (-want +got):\n%s", m, diff)
		}
	}
}

func TestTopsSkipsEmpty(t *testing.T) {
	if got, want := (stacks{{"A"}, nil, {"B", "C"}}).tops(), "AC"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}
