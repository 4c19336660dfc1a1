package harness

import (
	"fmt"
	"strconv"
	"strings"
)

// Part is a named solution over a parsed input of type T.
type Part[T any] struct {
	Name  string
	Solve func(T) (any, error)
}

// Solution wraps fn as a Part. The value fn returns is displayed with
// fmt.Sprint.
func Solution[T, R any](name string, fn func(T) (R, error)) Part[T] {
	return Part[T]{
		Name: name,
		Solve: func(in T) (any, error) {
			return fn(in)
		},
	}
}

type solver struct {
	name  string
	solve func(any) (any, error)
}

// Day is a registered puzzle day. The parser output type is erased so
// days with different input shapes can share one registry.
type Day struct {
	ID int

	parse func(string) (any, error)
	parts []solver
}

// NewDay builds a Day from a typed parser and its solutions.
func NewDay[T any](id int, parse func(string) (T, error), parts ...Part[T]) Day {
	d := Day{
		ID: id,
		parse: func(raw string) (any, error) {
			return parse(raw)
		},
		parts: make([]solver, 0, len(parts)),
	}

	for _, p := range parts {
		solve := p.Solve
		d.parts = append(d.parts, solver{
			name: p.Name,
			solve: func(in any) (any, error) {
				v, ok := in.(T)
				if !ok {
					return nil, fmt.Errorf("parsed input is %T, want %T", in, v)
				}
				return solve(v)
			},
		})
	}

	return d
}

// Key returns the normalized identifier of the day, e.g. "day01".
func (d Day) Key() string {
	return DayKey(d.ID)
}

// Parse runs the day's parser on raw puzzle text.
func (d Day) Parse(raw string) (any, error) {
	return d.parse(raw)
}

// NumParts reports how many solutions the day registers.
func (d Day) NumParts() int {
	return len(d.parts)
}

// PartName returns the label of the i-th solution.
func (d Day) PartName(i int) string {
	return d.parts[i].name
}

// Solve runs the i-th solution on a value returned by Parse.
func (d Day) Solve(i int, in any) (any, error) {
	return d.parts[i].solve(in)
}

// DayKey formats a day identifier in its zero-padded registry form.
func DayKey(id int) string {
	return fmt.Sprintf("day%02d", id)
}

// ParseDay accepts "7", "07", "day7" or "day07" and returns the day number.
func ParseDay(s string) (int, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "day")

	id, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("day %q is not a number", s)
	}
	if id <= 0 {
		return 0, fmt.Errorf("day %q must be positive", s)
	}

	return id, nil
}
