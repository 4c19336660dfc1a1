// Package harness registers puzzle days and drives their parsers and
// solutions, timing every stage.
package harness

import "time"

// PrimaryParts is the number of leading solutions per day that count
// towards the aggregate solution total (part 1 and part 2).
const PrimaryParts = 2

// Timing is one measured stage of a day run.
type Timing struct {
	Label     string        `json:"label"`
	Output    string        `json:"output,omitempty"`
	HasOutput bool          `json:"-"`
	Duration  time.Duration `json:"duration_ns"`
}

// DayResult holds the measured stages of a single day.
type DayResult struct {
	Day   int      `json:"day"`
	Parse Timing   `json:"parse"`
	Parts []Timing `json:"parts"`
}

// Last returns the output of the last solution, which is the value
// submitted as an answer.
func (r *DayResult) Last() (string, bool) {
	if r == nil || len(r.Parts) == 0 {
		return "", false
	}

	return r.Parts[len(r.Parts)-1].Output, true
}

// Summary accumulates timings across every registered day.
type Summary struct {
	Days       []DayResult   `json:"days"`
	ParseTotal time.Duration `json:"parse_total_ns"`
	SolveTotal time.Duration `json:"solve_total_ns"`
}

// Total is the sum of parser and primary solution time.
func (s *Summary) Total() time.Duration {
	return s.ParseTotal + s.SolveTotal
}

func (s *Summary) add(r DayResult) {
	s.Days = append(s.Days, r)
	s.ParseTotal += r.Parse.Duration

	for i, p := range r.Parts {
		if i >= PrimaryParts {
			break
		}
		s.SolveTotal += p.Duration
	}
}
