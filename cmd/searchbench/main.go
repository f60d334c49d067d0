// Command searchbench compares linear and binary search timings over random
// lists of increasing length and prints one report block per length.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/karinahu/homework1-record/bench"
	"github.com/karinahu/homework1-record/config"
	"github.com/karinahu/homework1-record/logger"
	"github.com/karinahu/homework1-record/metrics"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "searchbench: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("searchbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath  = fs.String("config", "", "YAML config file (default: ./searchbench.yaml or ~/.searchbench.yaml if present)")
		sizes       = fs.String("sizes", "", "comma-separated list lengths, e.g. 1,10,100")
		seed        = fs.Int64("seed", 0, "random seed; 0 keeps the config seed or seeds from the clock")
		format      = fs.String("format", "", "output format: text or json")
		logLevel    = fs.String("log-level", "", "log level: debug, info, warn or error")
		showMetrics = fs.Bool("metrics", false, "print Prometheus metrics to stderr after the run")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *sizes != "" {
		if cfg.Sizes, err = parseSizes(*sizes); err != nil {
			return err
		}
	}
	if *seed != 0 {
		cfg.Seed = seed
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.NewTextLogger(stderr, cfg.Level())

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewPrometheus(reg)
	if err != nil {
		return err
	}

	h := bench.New(cfg.Options(
		bench.WithCollector(collector),
		bench.WithLogger(log),
	)...)

	reporter := bench.TextReporter(stdout)
	if cfg.Format == config.FormatJSON {
		reporter = bench.JSONReporter(stdout)
	}

	if _, err := h.Run(reporter); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if *showMetrics {
		return metrics.WriteText(stderr, reg)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg, _, err := config.Search()
	if errors.Is(err, config.ErrNoConfig) {
		return config.Default(), nil
	}
	return cfg, err
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: size %q: %w", config.ErrInvalidConfig, field, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
