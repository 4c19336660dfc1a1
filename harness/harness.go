package harness

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// InputSource supplies raw puzzle text for a day.
type InputSource interface {
	Get(ctx context.Context, year, day int) (string, error)
}

// Reporter receives stage timings as the runner produces them.
type Reporter interface {
	DayHeader(day int)
	Stage(t Timing)
	DayRow(r DayResult)
	Totals(s Summary)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) DayHeader(int)    {}
func (NopReporter) Stage(Timing)     {}
func (NopReporter) DayRow(DayResult) {}
func (NopReporter) Totals(Summary)   {}

// Runner drives registered days one stage at a time.
type Runner struct {
	Registry *Registry
	Inputs   InputSource
	Reporter Reporter
	Logger   *slog.Logger

	now func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithClock replaces the wall clock used to time stages.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) { r.now = now }
}

// NewRunner creates a Runner over reg, fetching input from inputs and
// reporting to reporter.
func NewRunner(
	reg *Registry,
	inputs InputSource,
	reporter Reporter,
	logger *slog.Logger,
	opts ...RunnerOption,
) *Runner {
	if reporter == nil {
		reporter = NopReporter{}
	}

	r := &Runner{
		Registry: reg,
		Inputs:   inputs,
		Reporter: reporter,
		Logger:   logger.With(slog.Int("year", reg.Year)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RunDay runs a single day: input, parser, then every solution in
// registration order. An unknown day yields *UnregisteredDayError before
// any input is requested.
func (r *Runner) RunDay(ctx context.Context, id int) (*DayResult, error) {
	day, ok := r.Registry.Lookup(id)
	if !ok {
		return nil, &UnregisteredDayError{Day: id, Available: r.Registry.Keys()}
	}

	r.Reporter.DayHeader(day.ID)

	return r.run(ctx, day, r.Reporter.Stage)
}

// RunAll runs every registered day in order, printing one row per day
// and the totals at the end. The first failure aborts the whole run.
func (r *Runner) RunAll(ctx context.Context) (*Summary, error) {
	var summary Summary

	for _, day := range r.Registry.Days() {
		res, err := r.run(ctx, day, nil)
		if err != nil {
			return nil, err
		}

		r.Reporter.DayRow(*res)
		summary.add(*res)
	}

	r.Reporter.Totals(summary)

	return &summary, nil
}

func (r *Runner) run(ctx context.Context, day Day, emit func(Timing)) (*DayResult, error) {
	logger := r.Logger.With(slog.String("day", day.Key()))

	raw, err := r.Inputs.Get(ctx, r.Registry.Year, day.ID)
	if err != nil {
		return nil, fmt.Errorf("input for %s: %w", day.Key(), err)
	}

	res := &DayResult{
		Day:   day.ID,
		Parts: make([]Timing, 0, day.NumParts()),
	}

	start := r.now()
	parsed, err := day.Parse(raw)
	res.Parse = Timing{Label: "parser", Duration: r.now().Sub(start)}

	if err != nil {
		return nil, &StageError{Day: day.ID, Stage: "parser", Err: err}
	}
	if emit != nil {
		emit(res.Parse)
	}

	for i := 0; i < day.NumParts(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := day.PartName(i)

		start := r.now()
		out, err := day.Solve(i, parsed)
		elapsed := r.now().Sub(start)

		if err != nil {
			return nil, &StageError{Day: day.ID, Stage: name, Err: err}
		}

		t := Timing{
			Label:     name,
			Output:    fmt.Sprint(out),
			HasOutput: true,
			Duration:  elapsed,
		}
		res.Parts = append(res.Parts, t)

		if emit != nil {
			emit(t)
		}
	}

	logger.Debug("day finished",
		slog.Duration("parse", res.Parse.Duration),
		slog.Int("parts", len(res.Parts)),
	)

	return res, nil
}
