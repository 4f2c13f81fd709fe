package main

import (
	"strconv"
	"strings"
)

func init() {
	register("1", day1)
}

func day1(r *run) error {
	lines, err := r.lines()
	if err != nil {
		return err
	}
	elves, err := parseElves(lines)
	if err != nil {
		return err
	}
	r.debug(elves)

	totals, err := mapRecords(elves, r.workers, func(e elf) (int, error) {
		return e.total(), nil
	})
	if err != nil {
		return err
	}
	r.answer(topCalories(totals, 1))
	r.answer(topCalories(totals, 3))
	return nil
}

// An elf is the calorie counts of the items one elf carries.
type elf []int

func (e elf) total() int {
	var sum int
	for _, n := range e {
		sum += n
	}
	return sum
}

// parseElves groups calorie lines into elves. A blank line ends the current
// group.
func parseElves(lines []string) ([]elf, error) {
	var elves []elf
	var cur elf
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			elves = append(elves, cur)
			cur = nil
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, lineError(i+1, line, errInvalidFormat)
		}
		cur = append(cur, n)
	}
	return append(elves, cur), nil
}

// topCalories returns the sum of the n largest totals.
func topCalories(totals []int, n int) int {
	var sum int
	for _, t := range largest(totals, n) {
		sum += t
	}
	return sum
}
