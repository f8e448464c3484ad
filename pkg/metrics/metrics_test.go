package metrics_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/textfilter/pkg/filter"
	"github.com/arthur-debert/textfilter/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRuleSet(t *testing.T, m *metrics.Metrics) *filter.RuleSet {
	t.Helper()
	set := filter.NewRuleSet()
	set.SetObserver(m)

	for _, r := range []struct{ name, source, flags, replace string }{
		{"cat", "cat", "g", "dog"},
		{"never", "zebra", "g", "horse"},
		{"grow", "o", "g", "oooooooooo"},
	} {
		rule, err := filter.NewRule(r.name, r.source, r.flags, r.replace, true, false)
		require.NoError(t, err)
		require.NoError(t, set.Add(rule))
	}
	return set
}

func TestMetricsObserveExecution(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	set := newRuleSet(t, m)

	out := set.Execute("cat cat", filter.Prose, 12)
	assert.True(t, strings.HasPrefix(out, "doooooooooog"), out)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RuleRuns.WithLabelValues("cat", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RuleRuns.WithLabelValues("never", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RuleRuns.WithLabelValues("grow", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Truncations.WithLabelValues("grow")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Truncations.WithLabelValues("cat")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ExecutionDuration))
}

func TestMetricsChainBudget(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	set := newRuleSet(t, m)
	set.SetChainBudget(10)

	out := set.Execute("cat cat", filter.Prose, 1000)
	assert.Equal(t, "dog dog", out)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChainBudgetHits.WithLabelValues("grow")))
}

func TestMetricsNilSafe(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.RuleApplied("x", true)
		m.OutputTruncated("x")
		m.WorkLimitExceeded("x")
		m.ChainBudgetExceeded("x")
		m.Executed(filter.Links, time.Millisecond)
	})
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.RuleApplied("cat", true)
	m.Executed(filter.Links, 3*time.Millisecond)

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))

	text := buf.String()
	assert.Contains(t, text, `textfilter_rule_runs_total{matched="true",rule="cat"} 1`)
	assert.Contains(t, text, `textfilter_execution_duration_seconds_count{mode="links"} 1`)
}
