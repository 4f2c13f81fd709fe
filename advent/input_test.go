package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadLines(t *testing.T) {
	in := "one\r\ntwo\n\xff\xfe\n\nthree"
	lines, nums, skipped, err := readLines(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"one", "two", "", "three"}, lines); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 4, 5}, nums); diff != "" {
		t.Errorf("line numbers (-want +got):\n%s", diff)
	}
	if skipped != 1 {
		t.Errorf("got %d skipped lines; want 1", skipped)
	}
}

func TestRunText(t *testing.T) {
	r := &run{day: "6", path: filepath.Join("testdata", "day6.txt")}
	text, err := r.text()
	if err != nil {
		t.Fatal(err)
	}
	if want := "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n"; text != want {
		t.Errorf("got %q; want %q", text, want)
	}
	r.path = filepath.Join("testdata", "missing.txt")
	if _, err := r.text(); !os.IsNotExist(err) {
		t.Errorf("got %v; want not-exist error", err)
	}
}

func TestImportInput(t *testing.T) {
	dir := t.TempDir()
	cfg := defaultConfig()
	cfg.dataDir = filepath.Join(dir, "data")
	if err := importInput(cfg, []string{"2", filepath.Join("testdata", "day2.txt")}); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "data", "day2.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "A Y\nB X\nC Z\n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}

	for _, args := range [][]string{
		{"2"},
		{"42", "x.txt"},
		{"3", filepath.Join(dir, "missing.txt")},
	} {
		if err := importInput(cfg, args); err == nil {
			t.Errorf("importInput(%q) succeeded", args)
		}
	}
}
