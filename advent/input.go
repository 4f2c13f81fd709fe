package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/cespare/cp"
	"github.com/dustin/go-humanize"
)

// readLines splits r into lines with any trailing \r removed.
// Lines that are not valid UTF-8 are dropped; skipped reports how many.
// nums holds the 1-based input line number of each returned line.
func readLines(r io.Reader) (lines []string, nums []int, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1<<20)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if !utf8.ValidString(line) {
			skipped++
			continue
		}
		lines = append(lines, line)
		nums = append(nums, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, 0, err
	}
	return lines, nums, skipped, nil
}

func (r *run) open() (*os.File, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, err
	}
	if r.verbose {
		if fi, err := f.Stat(); err == nil {
			r.logf("reading %s (%s)", r.path, humanize.Bytes(uint64(fi.Size())))
		}
	}
	return f, nil
}

// lines returns the input as lines (see readLines). Parse errors that
// cite a line of the result are mapped back to the file's numbering when
// the run finishes.
func (r *run) lines() ([]string, error) {
	f, err := r.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lines, nums, skipped, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", r.path, err)
	}
	if skipped > 0 {
		r.logf("skipped %d undecodable lines", skipped)
		r.lineNums = nums
	}
	return lines, nil
}

// text returns the whole input.
func (r *run) text() (string, error) {
	f, err := r.open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", r.path, err)
	}
	return string(b), nil
}

// importInput copies a downloaded puzzle input to the configured location
// for a day.
func importInput(cfg *config, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: import [solution] [file]")
	}
	day, src := args[0], args[1]
	if _, ok := solutions[day]; !ok {
		return fmt.Errorf("unknown solution %q", day)
	}
	dst := cfg.inputPath(day)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	if err := cp.CopyFile(dst, src); err != nil {
		return err
	}
	fmt.Printf("copied %s to %s\n", src, dst)
	return nil
}
