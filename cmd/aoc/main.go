// Package main provides the CLI entry point for aoc, a runner for daily
// puzzle solutions that fetches inputs, times each stage and optionally
// benchmarks or submits answers.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/weiihann/aocharness/days"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	reg, err := days.Registry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	root := newRootCmd(logger, level, reg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
