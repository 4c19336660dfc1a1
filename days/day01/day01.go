// Package day01 solves Advent of Code 2020 day 1: find the entries of an
// expense report that sum to 2020 and multiply them.
package day01

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const target = 2020

var errNoCombination = errors.New("no combination sums to 2020")

// Parse reads one integer per line.
func Parse(raw string) ([]int, error) {
	lines := strings.Fields(raw)
	out := make([]int, 0, len(lines))

	for i, line := range lines {
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, n)
	}

	return out, nil
}

// Part1 multiplies the two entries that sum to 2020.
func Part1(entries []int) (int, error) {
	a, b, ok := pairSum(entries, target)
	if !ok {
		return 0, errNoCombination
	}

	return a * b, nil
}

// Part2 multiplies the three entries that sum to 2020.
func Part2(entries []int) (int, error) {
	sorted := slices.Clone(entries)
	slices.Sort(sorted)

	for i, a := range sorted {
		lo, hi := i+1, len(sorted)-1
		for lo < hi {
			switch sum := a + sorted[lo] + sorted[hi]; {
			case sum == target:
				return a * sorted[lo] * sorted[hi], nil
			case sum < target:
				lo++
			default:
				hi--
			}
		}
	}

	return 0, errNoCombination
}

func pairSum(entries []int, want int) (int, int, bool) {
	seen := make(map[int]bool, len(entries))

	for _, n := range entries {
		if seen[want-n] {
			return want - n, n, true
		}
		seen[n] = true
	}

	return 0, 0, false
}
