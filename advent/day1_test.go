package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseElves(t *testing.T) {
	got, err := parseElves([]string{"1000", " 2000 ", "", "4000", "", "", "5000"})
	if err != nil {
		t.Fatal(err)
	}
	want := []elf{{1000, 2000}, {4000}, nil, {5000}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	_, err = parseElves([]string{"1000", "lots"})
	var pe *parseError
	if !errors.As(err, &pe) || pe.Line != 2 {
		t.Errorf("got %v; want parse error on line 2", err)
	}
}

func TestTopCalories(t *testing.T) {
	totals := []int{6000, 4000, 11000, 24000, 10000}
	for _, tt := range []struct {
		n    int
		want int
	}{
		{1, 24000},
		{3, 45000},
		{10, 55000},
	} {
		if got := topCalories(totals, tt.n); got != tt.want {
			t.Errorf("topCalories(%v, %d): got %d; want %d", totals, tt.n, got, tt.want)
		}
	}
	if totals[0] != 6000 {
		t.Error("topCalories modified its input")
	}
	for _, total := range totals {
		if top := topCalories(totals, 1); top < total {
			t.Errorf("max %d is less than group total %d", top, total)
		}
	}
}
