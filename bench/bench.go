// Package bench turns a registered day into benchmark cases and runs
// them through a benchmarking engine.
package bench

import (
	"fmt"
	"io"
	"testing"

	"github.com/weiihann/aocharness/harness"
)

// Engine measures a benchmark function. testing.Benchmark is the default.
type Engine func(f func(b *testing.B)) testing.BenchmarkResult

// Case is one benchmark of a day: its parser or one of its solutions.
type Case struct {
	Name string
	F    func(b *testing.B)

	err error
}

// Result pairs a case name with its measurement.
type Result struct {
	Name string
	testing.BenchmarkResult
}

// Cases builds the parser case and one case per solution. The input is
// parsed once here; solution cases reuse that value across iterations
// so only solving is measured.
func Cases(day harness.Day, raw string) ([]*Case, error) {
	parsed, err := day.Parse(raw)
	if err != nil {
		return nil, &harness.StageError{Day: day.ID, Stage: "parser", Err: err}
	}

	cases := make([]*Case, 0, day.NumParts()+1)

	parser := &Case{Name: day.Key() + "/parser"}
	parser.F = func(b *testing.B) {
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			// The parsed value is discarded inside the loop so its
			// allocation is part of the measurement.
			if _, err := day.Parse(raw); err != nil {
				parser.err = err
				return
			}
		}
	}
	cases = append(cases, parser)

	for i := 0; i < day.NumParts(); i++ {
		c := &Case{Name: day.Key() + "/" + day.PartName(i)}
		c.F = func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for n := 0; n < b.N; n++ {
				if _, err := day.Solve(i, parsed); err != nil {
					c.err = err
					return
				}
			}
		}
		cases = append(cases, c)
	}

	return cases, nil
}

// Run benchmarks every case of day with engine, printing one line per
// case to w. The first failing case aborts the run.
func Run(w io.Writer, engine Engine, day harness.Day, raw string) ([]Result, error) {
	if engine == nil {
		engine = testing.Benchmark
	}

	cases, err := Cases(day, raw)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(cases))

	for _, c := range cases {
		res := engine(c.F)
		if c.err != nil {
			return nil, fmt.Errorf("benchmark %s: %w", c.Name, c.err)
		}

		fmt.Fprintf(w, "%-24s %s\t%s\n", c.Name, res.String(), res.MemString())
		results = append(results, Result{Name: c.Name, BenchmarkResult: res})
	}

	return results, nil
}
