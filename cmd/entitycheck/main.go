// Package main validates customer batch files and prints a JSON report.
//
//	entitycheck [-metrics-file path] batch.yaml [more.yaml ...]
//
// Settings come from DOMAINKIT_* environment variables; flags override them.
// The exit code is 0 when every record is valid, 1 when any is not and 2 on
// usage or configuration errors.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"domainkit/internal/bootstrap"
	"domainkit/internal/entitycheck"
	"domainkit/internal/platform/config"
	s "domainkit/pkg/string"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		return exitUsage
	}

	flags := flag.NewFlagSet("entitycheck", flag.ContinueOnError)
	metricsFile := flags.String("metrics-file", cfg.MetricsFile, "Write Prometheus metrics to this textfile after the run")
	concurrency := flags.Int("concurrency", cfg.Concurrency, "Number of batch files checked at once")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return exitUsage
	}
	files := s.DedupeAndTrim(flags.Args())
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: entitycheck [flags] batch.yaml [more.yaml ...]")
		flags.PrintDefaults()
		return exitUsage
	}
	if *concurrency < 1 || *concurrency > 64 {
		fmt.Fprintln(os.Stderr, "concurrency must be between 1 and 64")
		return exitUsage
	}
	cfg.MetricsFile = *metricsFile
	cfg.Concurrency = *concurrency

	deps := bootstrap.New(cfg)
	log := deps.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info("checking batch files", "files", len(files), "concurrency", cfg.Concurrency, "clock", cfg.Clock)
	report, err := entitycheck.NewRunner(deps).Run(ctx, files)
	if err != nil {
		log.Error("run aborted", "error", err)
		return exitUsage
	}

	if err := report.WriteJSON(os.Stdout); err != nil {
		log.Error("write report", "error", err)
		return exitUsage
	}

	if cfg.MetricsFile != "" {
		if err := deps.Metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Error("write metrics", "file", cfg.MetricsFile, "error", err)
		}
	}

	if !report.Valid {
		return exitInvalid
	}
	return exitValid
}
