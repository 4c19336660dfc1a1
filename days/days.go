// Package days declares the registered puzzle days. Add a line to
// Registry after generating a new day with `aoc <day> --init`.
package days

import (
	"github.com/weiihann/aocharness/days/day01"
	"github.com/weiihann/aocharness/harness"
)

// Year is the event year of every registered day.
const Year = 2020

// Registry returns the day table in registration order.
func Registry() (*harness.Registry, error) {
	return harness.NewRegistry(Year,
		harness.NewDay(1, day01.Parse,
			harness.Solution("part_1", day01.Part1),
			harness.Solution("part_2", day01.Part2),
		),
	)
}
