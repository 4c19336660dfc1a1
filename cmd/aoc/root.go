package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/weiihann/aocharness/bench"
	"github.com/weiihann/aocharness/config"
	"github.com/weiihann/aocharness/harness"
	"github.com/weiihann/aocharness/input"
	"github.com/weiihann/aocharness/report"
	"github.com/weiihann/aocharness/scaffold"
)

type runOptions struct {
	day        string
	bench      bool
	download   bool
	init       bool
	submit     bool
	level      int
	outputJSON bool
	verbose    bool
	configPath string
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar, reg *harness.Registry) *cobra.Command {
	var opts runOptions

	root := &cobra.Command{
		Use:   "aoc [day]",
		Short: "Run, benchmark and submit daily puzzle solutions",
		Long: `aoc runs the parser and solutions registered for a day against the
cached puzzle input, downloading it on first use. Without a day, every
registered day runs and a timing table with totals is printed.`,
		Example: `  # Run day 1
  aoc 1

  # Run every registered day
  aoc

  # Fetch the input and write a template for day 5
  aoc 5 --init

  # Submit the last answer of day 1 as part 2
  aoc 1 --submit --level 2`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.day = args[0]
			}
			if opts.verbose {
				level.Set(slog.LevelDebug)
			}

			return runHarness(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), logger, reg, opts)
		},
	}

	flags := root.Flags()
	flags.BoolVar(&opts.bench, "bench", false,
		"Benchmark the parser and solutions instead of running them once")
	flags.BoolVar(&opts.download, "download", false,
		"Download and cache the input, then exit")
	flags.BoolVar(&opts.init, "init", false,
		"Write a solution template for the day before running")
	flags.BoolVar(&opts.submit, "submit", false,
		"Submit the last solution's result after running")
	flags.IntVar(&opts.level, "level", 1,
		"Puzzle level used with --submit (1 or 2)")
	flags.BoolVar(&opts.outputJSON, "json", false,
		"Output timings as JSON instead of text")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable debug logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"Config file (default is ./aoc.yaml)")

	root.AddCommand(newDaysCmd(reg))

	return root
}

func newDaysCmd(reg *harness.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Year %d\n", reg.Year)
			for _, d := range reg.Days() {
				names := make([]string, 0, d.NumParts())
				for i := 0; i < d.NumParts(); i++ {
					names = append(names, d.PartName(i))
				}
				fmt.Fprintf(out, "  - %s: %v\n", d.Key(), names)
			}

			return nil
		},
	}
}

func runHarness(
	ctx context.Context,
	out, errOut io.Writer,
	logger *slog.Logger,
	reg *harness.Registry,
	opts runOptions,
) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	selected := opts.day != ""

	var day int
	if selected {
		day, err = harness.ParseDay(opts.day)
		if err != nil {
			return err
		}
	}

	if !selected && (opts.download || opts.init || opts.submit) {
		return errors.New("--download, --init and --submit need a day")
	}

	client := input.NewClient(input.ClientConfig{
		BaseURL:   cfg.BaseURL,
		Session:   cfg.Session,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
	}, logger)
	cache := input.NewCache(cfg.InputDir, client, logger)

	if opts.bench {
		return runBench(ctx, out, errOut, reg, cache, day, selected)
	}

	if opts.download || opts.init {
		if _, err := cache.Get(ctx, reg.Year, day); err != nil {
			return err
		}
	}

	if opts.init {
		path, err := scaffold.Write(cfg.DaysDir, scaffold.Config{Year: reg.Year, Day: day})
		if err != nil {
			return fmt.Errorf("init day: %w", err)
		}

		logger.InfoContext(ctx, "template written", slog.String("path", path))
		fmt.Fprintf(out, "new file created at %s\n", path)
	}

	if opts.download {
		return nil
	}

	var reporter harness.Reporter = report.NewPrinter(out)
	if opts.outputJSON {
		reporter = harness.NopReporter{}
	}

	runner := harness.NewRunner(reg, cache, reporter, logger)

	if !selected {
		summary, err := runner.RunAll(ctx)
		if err != nil {
			return err
		}
		if opts.outputJSON {
			return report.GenerateJSON(out, summary)
		}
		return nil
	}

	res, err := runner.RunDay(ctx, day)

	var unregistered *harness.UnregisteredDayError
	if errors.As(err, &unregistered) {
		fmt.Fprintln(errOut, unregistered.Error())
		return nil
	}
	if err != nil {
		return err
	}

	if opts.outputJSON {
		if err := report.GenerateJSON(out, res); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	}

	if opts.submit {
		answer, ok := res.Last()
		if !ok {
			return fmt.Errorf("%s has no solution to submit", harness.DayKey(day))
		}

		if err := client.Submit(ctx, reg.Year, day, opts.level, answer); err != nil {
			return err
		}

		fmt.Fprintf(out, "submitted %q for level %d\n", answer, opts.level)
	}

	return nil
}

func runBench(
	ctx context.Context,
	out, errOut io.Writer,
	reg *harness.Registry,
	cache *input.Cache,
	day int,
	selected bool,
) error {
	targets := reg.Days()

	if selected {
		d, ok := reg.Lookup(day)
		if !ok {
			fmt.Fprintln(errOut, (&harness.UnregisteredDayError{Day: day, Available: reg.Keys()}).Error())
			return nil
		}
		targets = []harness.Day{d}
	}

	for _, d := range targets {
		raw, err := cache.Get(ctx, reg.Year, d.ID)
		if err != nil {
			return fmt.Errorf("input for %s: %w", d.Key(), err)
		}

		if _, err := bench.Run(out, nil, d, raw); err != nil {
			return err
		}
	}

	return nil
}
