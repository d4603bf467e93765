// SPDX-License-Identifier: MIT
package searchstats

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("isograph.search")

var (
	testsTotal      metric.Int64Counter
	testDuration    metric.Float64Histogram
	stepsTotal      metric.Int64Counter
	backtracksTotal metric.Int64Counter
	searchDuration  metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		testsTotal, err = meter.Int64Counter(
			"isograph_tests_total",
			metric.WithDescription("Isomorphism tests by deciding outcome"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		testDuration, err = meter.Float64Histogram(
			"isograph_test_duration_seconds",
			metric.WithDescription("Wall time of one isomorphism test"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		stepsTotal, err = meter.Int64Counter(
			"isograph_search_steps_total",
			metric.WithDescription("Candidate assignments tried by backtracking"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		backtracksTotal, err = meter.Int64Counter(
			"isograph_search_backtracks_total",
			metric.WithDescription("Decision levels abandoned by backtracking"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchDuration, err = meter.Float64Histogram(
			"isograph_search_duration_seconds",
			metric.WithDescription("Wall time spent in backtracking"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func recordOutcome(o Outcome, elapsed time.Duration) {
	if err := initMetrics(); err != nil {
		return
	}
	ctx := context.Background()
	attrs := metric.WithAttributes(
		attribute.String("outcome", o.String()),
		attribute.Bool("positive", o.Positive()),
	)
	testsTotal.Add(ctx, 1, attrs)
	testDuration.Record(ctx, elapsed.Seconds(), attrs)
}

func recordSearch(steps, backtracks int64, elapsed time.Duration) {
	if err := initMetrics(); err != nil {
		return
	}
	ctx := context.Background()
	stepsTotal.Add(ctx, steps)
	backtracksTotal.Add(ctx, backtracks)
	searchDuration.Record(ctx, elapsed.Seconds())
}
