package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hamed0406/httpsaudit/internal/domain"
	"github.com/hamed0406/httpsaudit/internal/probe"
)

const DefaultWorkers = 10

// Sink persists the aggregated buckets and reports what it produced.
type Sink interface {
	Write(buckets map[domain.Category][]string, errs []string) ([]domain.Artifact, error)
}

type Orchestrator struct {
	Logger  *zap.Logger
	Checker probe.Checker
	Sink    Sink
	Workers int
	Limiter *rate.Limiter // nil means launches are not rate limited
}

func New(logger *zap.Logger, checker probe.Checker, sink Sink, workers int, perSecond float64) *Orchestrator {
	if workers < 1 {
		workers = DefaultWorkers
	}
	o := &Orchestrator{
		Logger:  logger,
		Checker: checker,
		Sink:    sink,
		Workers: workers,
	}
	if perSecond > 0 {
		o.Limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
	return o
}

// Report is everything a run produced.
type Report struct {
	Buckets map[domain.Category][]string
	Errors  []string
	Summary domain.RunSummary
}

// outcome is the single value each task hands to the collector.
type outcome struct {
	domain string
	result *domain.DomainResult
	err    error
}

// Run probes every non-blank domain with at most Workers tasks in flight,
// then writes the buckets through the sink.
func (o *Orchestrator) Run(ctx context.Context, domains []string) (*Report, error) {
	targets := make([]string, 0, len(domains))
	for _, d := range domains {
		if d = strings.TrimSpace(d); d != "" {
			targets = append(targets, d)
		}
	}

	runID := uuid.NewString()
	log := o.Logger.With(zap.String("run_id", runID))
	log.Info("run_started", zap.Int("domains", len(targets)), zap.Int("workers", o.Workers))

	results := make(chan outcome, o.Workers)
	collected := make(chan *Report, 1)
	go func() { collected <- collect(log, results) }()

	start := time.Now()
	var g errgroup.Group
	g.SetLimit(o.Workers)
	for _, d := range targets {
		if o.Limiter != nil {
			if err := o.Limiter.Wait(ctx); err != nil {
				results <- outcome{domain: d, err: fmt.Errorf("rate limiter: %w", err)}
				continue
			}
		}
		g.Go(func() error {
			results <- o.probeOne(ctx, d)
			return nil
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)
	close(results)

	report := <-collected
	report.Summary.RunID = runID
	report.Summary.StartedAt = start.UTC()
	report.Summary.Total = len(targets)
	report.Summary.Elapsed = elapsed

	artifacts, err := o.Sink.Write(report.Buckets, report.Errors)
	report.Summary.Artifacts = artifacts
	if err != nil {
		log.Error("write_artifacts_failed", zap.Error(err))
		return report, fmt.Errorf("write artifacts: %w", err)
	}

	log.Info("run_finished",
		zap.Int("domains", report.Summary.Total),
		zap.Duration("elapsed", elapsed),
		zap.Int("unexpected_errors", report.Summary.UnexpectedErrors),
	)
	return report, nil
}

// probeOne never panics past its boundary: a panic inside the checker is
// reported the same way as a returned error.
func (o *Orchestrator) probeOne(ctx context.Context, d string) (out outcome) {
	out.domain = d
	defer func() {
		if r := recover(); r != nil {
			out.result = nil
			out.err = fmt.Errorf("panic: %v", r)
		}
	}()
	out.result, out.err = o.Checker.Probe(ctx, d)
	return out
}

// collect is the only reader of results and the only writer of the buckets.
func collect(log *zap.Logger, results <-chan outcome) *Report {
	report := &Report{
		Buckets: make(map[domain.Category][]string, len(domain.Categories)),
		Summary: domain.RunSummary{Counts: make(map[domain.Category]int, len(domain.Categories))},
	}
	for _, c := range domain.Categories {
		report.Buckets[c] = []string{}
	}

	for out := range results {
		switch {
		case out.err != nil:
			report.Errors = append(report.Errors, fmt.Sprintf("%s\t unexpected error: %v", out.domain, out.err))
			log.Warn("probe_unexpected_error", zap.String("domain", out.domain), zap.Error(out.err))
		case out.result == nil:
			// blank domain
		default:
			r := out.result
			report.Buckets[r.Category] = append(report.Buckets[r.Category], r.Message)
			report.Summary.Counts[r.Category]++
			log.Debug("probe_done",
				zap.String("domain", r.Domain),
				zap.String("category", string(r.Category)),
				zap.Bool("https_reachable", r.HTTPS.Reachable),
				zap.Bool("http_reachable", r.HTTP.Reachable),
			)
		}
	}
	report.Summary.UnexpectedErrors = len(report.Errors)
	return report
}
