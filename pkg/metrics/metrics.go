// Package metrics exposes RuleSet execution events as Prometheus metrics.
package metrics

import (
	"io"
	"time"

	"github.com/arthur-debert/textfilter/pkg/errors"
	"github.com/arthur-debert/textfilter/pkg/filter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds all Prometheus metrics for textfilter. It implements
// filter.Observer.
type Metrics struct {
	RuleRuns          *prometheus.CounterVec
	Truncations       *prometheus.CounterVec
	WorkLimitHits     *prometheus.CounterVec
	ChainBudgetHits   *prometheus.CounterVec
	ExecutionDuration *prometheus.HistogramVec
}

var _ filter.Observer = (*Metrics)(nil)

// New creates the metrics and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	ruleRuns := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textfilter_rule_runs_total",
			Help: "Eligible rule runs, by rule and whether the pattern matched",
		},
		[]string{"rule", "matched"},
	)

	truncations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textfilter_rule_truncations_total",
			Help: "Rule runs that stopped replacing at the output length limit",
		},
		[]string{"rule"},
	)

	workLimitHits := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textfilter_rule_work_limit_hits_total",
			Help: "Rule runs cut short because a match attempt exceeded the work limit",
		},
		[]string{"rule"},
	)

	chainBudgetHits := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textfilter_chain_budget_hits_total",
			Help: "Executions stopped because a rule's output exceeded the chain budget",
		},
		[]string{"rule"},
	)

	executionDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "textfilter_execution_duration_seconds",
			Help:    "Time taken by one RuleSet execution",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
		[]string{"mode"},
	)

	reg.MustRegister(ruleRuns, truncations, workLimitHits, chainBudgetHits, executionDuration)

	return &Metrics{
		RuleRuns:          ruleRuns,
		Truncations:       truncations,
		WorkLimitHits:     workLimitHits,
		ChainBudgetHits:   chainBudgetHits,
		ExecutionDuration: executionDuration,
	}
}

// RuleApplied counts one rule run
func (m *Metrics) RuleApplied(rule string, matched bool) {
	if m == nil {
		return
	}
	label := "false"
	if matched {
		label = "true"
	}
	m.RuleRuns.WithLabelValues(rule, label).Inc()
}

func (m *Metrics) OutputTruncated(rule string) {
	if m == nil {
		return
	}
	m.Truncations.WithLabelValues(rule).Inc()
}

func (m *Metrics) WorkLimitExceeded(rule string) {
	if m == nil {
		return
	}
	m.WorkLimitHits.WithLabelValues(rule).Inc()
}

func (m *Metrics) ChainBudgetExceeded(rule string) {
	if m == nil {
		return
	}
	m.ChainBudgetHits.WithLabelValues(rule).Inc()
}

// Executed records how long an execution took
func (m *Metrics) Executed(mode filter.Mode, duration time.Duration) {
	if m == nil {
		return
	}
	m.ExecutionDuration.WithLabelValues(mode.String()).Observe(duration.Seconds())
}

// WriteText writes every metric gathered from g in the Prometheus text format
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to write metric %s", mf.GetName())
		}
	}
	return nil
}
