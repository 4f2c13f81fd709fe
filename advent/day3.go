package main

import (
	"errors"
	"fmt"
	"math/bits"
)

func init() {
	register("3", day3)
}

var (
	errOddRucksack = errors.New("rucksack has an odd number of items")
	errBadGroup    = errors.New("number of rucksacks is not a multiple of 3")
)

func day3(r *run) error {
	lines, err := r.lines()
	if err != nil {
		return err
	}
	sacks, err := parseLines(lines, parseRucksack)
	if err != nil {
		return err
	}
	r.debug(sacks)

	sum, err := sumRecords(sacks, r.workers, rucksack.misplaced)
	if err != nil {
		return err
	}
	r.answer(sum)

	groups, err := groupRucksacks(sacks)
	if err != nil {
		return err
	}
	sum, err = sumRecords(groups, r.workers, badge)
	if err != nil {
		return err
	}
	r.answer(sum)
	return nil
}

// priority maps a..z to 1..26 and A..Z to 27..52.
func priority(c byte) (int, error) {
	switch {
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 1, nil
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 27, nil
	}
	return 0, fmt.Errorf("item %q is not a letter", c)
}

// An itemSet holds item types as bits indexed by priority.
type itemSet uint64

func makeItemSet(items string) (itemSet, error) {
	var s itemSet
	for i := 0; i < len(items); i++ {
		p, err := priority(items[i])
		if err != nil {
			return 0, err
		}
		s |= 1 << p
	}
	return s, nil
}

// prioritySum is the sum of the priorities of the items in s.
func (s itemSet) prioritySum() int {
	var sum int
	for s != 0 {
		p := bits.TrailingZeros64(uint64(s))
		sum += p
		s &^= 1 << p
	}
	return sum
}

type rucksack string

func parseRucksack(line string) (rucksack, error) {
	if _, err := makeItemSet(line); err != nil {
		return "", err
	}
	return rucksack(line), nil
}

// misplaced returns the priority of the items found in both compartments.
func (r rucksack) misplaced() (int, error) {
	if len(r)%2 != 0 {
		return 0, fmt.Errorf("%q: %w", string(r), errOddRucksack)
	}
	half := len(r) / 2
	first, err := makeItemSet(string(r[:half]))
	if err != nil {
		return 0, err
	}
	second, err := makeItemSet(string(r[half:]))
	if err != nil {
		return 0, err
	}
	return (first & second).prioritySum(), nil
}

// groupRucksacks splits sacks into consecutive groups of three.
func groupRucksacks(sacks []rucksack) ([][3]rucksack, error) {
	if len(sacks)%3 != 0 {
		return nil, fmt.Errorf("%d rucksacks: %w", len(sacks), errBadGroup)
	}
	groups := make([][3]rucksack, 0, len(sacks)/3)
	for i := 0; i < len(sacks); i += 3 {
		groups = append(groups, [3]rucksack{sacks[i], sacks[i+1], sacks[i+2]})
	}
	return groups, nil
}

// badge returns the priority of the item common to all three rucksacks.
func badge(group [3]rucksack) (int, error) {
	common := ^itemSet(0)
	for _, r := range group {
		s, err := makeItemSet(string(r))
		if err != nil {
			return 0, err
		}
		common &= s
	}
	return common.prioritySum(), nil
}
