package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/hamed0406/httpsaudit/internal/config"
	"github.com/hamed0406/httpsaudit/internal/logging"
	"github.com/hamed0406/httpsaudit/internal/notify"
	"github.com/hamed0406/httpsaudit/internal/orchestrator"
	"github.com/hamed0406/httpsaudit/internal/output"
	"github.com/hamed0406/httpsaudit/internal/probe"
	"github.com/hamed0406/httpsaudit/internal/source"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code. A missing or empty input list is
// reported and ends the run without probing; it is not a failure.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("httpsaudit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to optional YAML config file")
	inputPath := fs.String("input", "", "domain list, overrides config")
	outputDir := fs.String("out", "", "directory for result files, overrides config")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if *inputPath != "" {
		cfg.InputPath = *inputPath
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	logger, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer logger.Sync()

	domains, err := source.LoadFromFile(cfg.InputPath)
	if errors.Is(err, source.ErrNoInput) {
		logger.Warn("input_missing", zap.String("path", cfg.InputPath))
		fmt.Fprintf(stderr, "Error: input file %s not found\n", cfg.InputPath)
		return 0
	}
	if err != nil {
		logger.Error("input_read_failed", zap.String("path", cfg.InputPath), zap.Error(err))
		fmt.Fprintln(stderr, err)
		return 1
	}
	if len(domains) == 0 {
		logger.Warn("input_empty", zap.String("path", cfg.InputPath))
		fmt.Fprintf(stderr, "%s is empty, no domains to check.\n", cfg.InputPath)
		return 0
	}

	prober := probe.NewProber(cfg.Timeout, nil)
	prober.UserAgent = cfg.UserAgent
	orch := orchestrator.New(logger, prober, output.NewWriter(cfg.OutputDir), cfg.Workers, cfg.RatePerSecond)

	ctx := context.Background()
	report, err := orch.Run(ctx, domains)
	if report != nil {
		output.PrintSummary(stdout, report.Summary)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if slack := notify.NewSlack(cfg.SlackWebhook); slack != nil {
		if err := notify.SendSummary(ctx, slack, report.Summary); err != nil {
			logger.Warn("slack_notify_failed", zap.Error(err))
		}
	}
	return 0
}
