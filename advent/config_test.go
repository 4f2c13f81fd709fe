package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vaughan0/go-ini"
)

func TestConfigApply(t *testing.T) {
	file, err := ini.Load(strings.NewReader(`
[advent]
datadir = inputs
workers = 3

[inputs]
5 = crates.txt
`))
	if err != nil {
		t.Fatal(err)
	}
	cfg := defaultConfig()
	if err := cfg.apply(file); err != nil {
		t.Fatal(err)
	}
	if cfg.workers != 3 {
		t.Errorf("got workers %d; want 3", cfg.workers)
	}
	for _, tt := range []struct {
		day  string
		want string
	}{
		{"5", "crates.txt"},
		{"1", filepath.Join("inputs", "day1.txt")},
	} {
		if got := cfg.inputPath(tt.day); got != tt.want {
			t.Errorf("inputPath(%q): got %q; want %q", tt.day, got, tt.want)
		}
	}
}

func TestConfigApplyErrors(t *testing.T) {
	for _, text := range []string{
		"[advent]\nworkers = many\n",
		"[advent]\nworkers = -1\n",
		"[inputs]\n99 = x.txt\n",
	} {
		file, err := ini.Load(strings.NewReader(text))
		if err != nil {
			t.Fatal(err)
		}
		if err := defaultConfig().apply(file); err == nil {
			t.Errorf("apply(%q) succeeded", text)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "advent.ini")
	cfg, err := loadConfig(missing, true)
	if err != nil {
		t.Fatalf("optional missing config: %s", err)
	}
	if got, want := cfg.inputPath("2"), filepath.Join("data", "day2.txt"); got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	if _, err := loadConfig(missing, false); err == nil {
		t.Error("required missing config: got nil error")
	}

	path := filepath.Join(t.TempDir(), "advent.ini")
	if err := os.WriteFile(path, []byte("[inputs]\n6 = signal.txt\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadConfig(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.inputPath("6"); got != "signal.txt" {
		t.Errorf("got %q; want \"signal.txt\"", got)
	}
}
