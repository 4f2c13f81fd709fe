package main

import (
	"fmt"
	"strings"
)

func init() {
	register("4", day4)
}

func day4(r *run) error {
	text, err := r.text()
	if err != nil {
		return err
	}
	pairs, err := parseAssignments(text)
	if err != nil {
		return err
	}
	r.debug(pairs)

	n, err := countRecords(pairs, r.workers, func(p assignment) bool {
		return p.first.contains(p.second) || p.second.contains(p.first)
	})
	if err != nil {
		return err
	}
	r.answer(n)

	n, err = countRecords(pairs, r.workers, func(p assignment) bool {
		return p.first.overlaps(p.second)
	})
	if err != nil {
		return err
	}
	r.answer(n)
	return nil
}

// A sectionRange is an inclusive range of section IDs.
type sectionRange struct {
	start int
	end   int
}

func (a sectionRange) String() string {
	return fmt.Sprintf("%d-%d", a.start, a.end)
}

// contains reports whether b lies entirely within a.
func (a sectionRange) contains(b sectionRange) bool {
	return a.start <= b.start && a.end >= b.end
}

func (a sectionRange) overlaps(b sectionRange) bool {
	return a.start <= b.end && b.start <= a.end
}

type assignment struct {
	first  sectionRange
	second sectionRange
}

var sectionRangeP parser[sectionRange] = func(in string) (sectionRange, string, error) {
	var sr sectionRange
	start, rest, err := integer(in)
	if err != nil {
		return sr, in, err
	}
	end, rest, err := preceded(tag("-"), integer)(rest)
	if err != nil {
		return sr, in, err
	}
	return sectionRange{start, end}, rest, nil
}

var assignmentP parser[assignment] = func(in string) (assignment, string, error) {
	var a assignment
	first, rest, err := sectionRangeP(in)
	if err != nil {
		return a, in, err
	}
	second, rest, err := preceded(tag(","), sectionRangeP)(rest)
	if err != nil {
		return a, in, err
	}
	return assignment{first, second}, rest, nil
}

var parseAssignmentList = full(separatedList1(lineEnding, padded(assignmentP)))

// parseAssignments parses lines of the form "2-4,6-8".
func parseAssignments(text string) ([]assignment, error) {
	return parseAssignmentList(strings.TrimLeft(text, " \t\r\n"))
}
