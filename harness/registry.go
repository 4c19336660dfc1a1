package harness

import (
	"fmt"
	"strings"
)

// Registry is the ordered, immutable table of days for one event year.
type Registry struct {
	Year int

	days  []Day
	byKey map[string]int
}

// NewRegistry builds a registry from days in registration order.
// Identifiers must be positive and unique.
func NewRegistry(year int, days ...Day) (*Registry, error) {
	if year <= 0 {
		return nil, fmt.Errorf("invalid year %d", year)
	}

	r := &Registry{
		Year:  year,
		days:  make([]Day, 0, len(days)),
		byKey: make(map[string]int, len(days)),
	}

	for _, d := range days {
		if d.ID <= 0 {
			return nil, fmt.Errorf("invalid day identifier %d", d.ID)
		}
		if d.parse == nil {
			return nil, fmt.Errorf("%s: no parser", d.Key())
		}
		if _, dup := r.byKey[d.Key()]; dup {
			return nil, fmt.Errorf("%s registered twice", d.Key())
		}

		r.byKey[d.Key()] = len(r.days)
		r.days = append(r.days, d)
	}

	return r, nil
}

// Lookup returns the day registered under id.
func (r *Registry) Lookup(id int) (Day, bool) {
	i, ok := r.byKey[DayKey(id)]
	if !ok {
		return Day{}, false
	}

	return r.days[i], true
}

// Days returns the registered days in registration order.
func (r *Registry) Days() []Day {
	out := make([]Day, len(r.days))
	copy(out, r.days)

	return out
}

// Keys returns the normalized identifiers in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.days))
	for _, d := range r.days {
		keys = append(keys, d.Key())
	}

	return keys
}

// UnregisteredDayError reports a day selection missing from the registry.
type UnregisteredDayError struct {
	Day       int
	Available []string
}

func (e *UnregisteredDayError) Error() string {
	return fmt.Sprintf("module `%s` was not registered, available are: %s",
		DayKey(e.Day), strings.Join(e.Available, ", "))
}

// StageError wraps a failure raised by a parser or solution.
type StageError struct {
	Day   int
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s %s: %v", DayKey(e.Day), e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
