// SPDX-License-Identifier: MIT
package main

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/isograph/searchstats"
)

// newRegistry exposes a Collector's counters as Prometheus metrics.
func newRegistry(stats *searchstats.Collector) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	counter := func(name, help string, value func(searchstats.Report) int64, labels prometheus.Labels) {
		reg.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace:   "isograph",
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		}, func() float64 { return float64(value(stats.Snapshot())) }))
	}

	for _, o := range searchstats.Outcomes() {
		o := o
		counter("tests_total", "Isomorphism tests by deciding outcome.",
			func(r searchstats.Report) int64 { return r.Count(o) },
			prometheus.Labels{"outcome": o.String()})
	}
	counter("search_steps_total", "Candidate assignments tried by backtracking searches.",
		func(r searchstats.Report) int64 { return r.Steps }, nil)
	counter("search_backtracks_total", "Backtracks taken by searches.",
		func(r searchstats.Report) int64 { return r.Backtracks }, nil)
	counter("mappings_total", "Subgraph mappings recorded.",
		func(r searchstats.Report) int64 { return r.Mappings }, nil)
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "isograph",
		Name:      "search_seconds",
		Help:      "Time spent in backtracking searches.",
	}, func() float64 { return stats.Snapshot().SearchTime.Seconds() }))

	return reg
}

// writeMetrics dumps the registry in Prometheus text format.
func writeMetrics(path string, stats *searchstats.Collector) error {
	return errors.Wrap(prometheus.WriteToTextfile(path, newRegistry(stats)), "write metrics")
}
