package main

import (
	"fmt"
	"strings"
)

func init() {
	register("6", day6)
}

const (
	packetMarkerSize  = 4
	messageMarkerSize = 14
)

func day6(r *run) error {
	text, err := r.text()
	if err != nil {
		return err
	}
	signal := strings.TrimSpace(text)
	r.debug(signal)
	for _, size := range []int{packetMarkerSize, messageMarkerSize} {
		n, ok := findMarker(signal, size)
		if !ok {
			return fmt.Errorf("window of %d: %w", size, errNoMarker)
		}
		r.answer(n)
	}
	return nil
}

// findMarker returns the number of characters read up to and including the
// first run of size distinct characters.
func findMarker(signal string, size int) (int, bool) {
	if size <= 0 {
		return 0, false
	}
	rs := []rune(signal)
	counts := make(map[rune]int)
	var distinct int
	for i, c := range rs {
		if counts[c] == 0 {
			distinct++
		}
		counts[c]++
		if i >= size {
			old := rs[i-size]
			counts[old]--
			if counts[old] == 0 {
				distinct--
			}
		}
		if distinct == size {
			return i + 1, true
		}
	}
	return 0, false
}
