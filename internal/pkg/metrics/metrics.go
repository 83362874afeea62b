// Package metrics exposes Prometheus collectors for arena activity
package metrics

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Namespace prefixes every arena metric
const Namespace = "arena"

// XP sources
const (
	SourceBattle    = "battle"
	SourceEvolution = "evolution"
	SourceBonus     = "bonus"
)

// Unlock kinds
const (
	UnlockGeneration = "generation"
	UnlockMode       = "mode"
	UnlockRoster     = "roster"
)

// TurnBuckets covers one-turn knockouts up to the turn limit
var TurnBuckets = []float64{1, 2, 3, 5, 10, 20, 50, 100}

// ArenaMetrics collects battle, XP and unlock metrics. A nil
// *ArenaMetrics is valid and records nothing.
type ArenaMetrics struct {
	BattlesTotal    *prometheus.CounterVec
	BattleTurns     prometheus.Histogram
	XPAwardedTotal  *prometheus.CounterVec
	EvolutionsTotal prometheus.Counter
	UnlocksTotal    *prometheus.CounterVec
}

// NewArenaMetrics registers the collectors on the default registerer
func NewArenaMetrics() *ArenaMetrics {
	return NewArenaMetricsWithRegistry(Namespace, prometheus.DefaultRegisterer)
}

// NewArenaMetricsWithRegistry registers the collectors on registerer
func NewArenaMetricsWithRegistry(namespace string, registerer prometheus.Registerer) *ArenaMetrics {
	factory := promauto.With(registerer)

	return &ArenaMetrics{
		BattlesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "battles_total",
				Help:      "Total number of simulated battles by outcome and mode",
			},
			[]string{"outcome", "mode"},
		),

		BattleTurns: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "battle_turns",
				Help:      "Number of turns a battle lasted",
				Buckets:   TurnBuckets,
			},
		),

		XPAwardedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "xp_awarded_total",
				Help:      "Experience awarded by source (battle/evolution/bonus)",
			},
			[]string{"source"},
		),

		EvolutionsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evolutions_total",
				Help:      "Total number of accepted evolutions",
			},
		),

		UnlocksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "unlocks_total",
				Help:      "Unlocked generations, modes and roster entries",
			},
			[]string{"kind"},
		),
	}
}

// RecordBattle counts a finished battle and observes its length
func (m *ArenaMetrics) RecordBattle(outcome, mode string, turns int) {
	if m == nil {
		return
	}
	m.BattlesTotal.WithLabelValues(outcome, mode).Inc()
	m.BattleTurns.Observe(float64(turns))
}

// RecordXP adds awarded experience for source
func (m *ArenaMetrics) RecordXP(source string, amount int) {
	if m == nil || amount <= 0 {
		return
	}
	m.XPAwardedTotal.WithLabelValues(source).Add(float64(amount))
}

// RecordEvolution counts an accepted evolution
func (m *ArenaMetrics) RecordEvolution() {
	if m == nil {
		return
	}
	m.EvolutionsTotal.Inc()
}

// RecordUnlocks counts n unlocks of kind
func (m *ArenaMetrics) RecordUnlocks(kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.UnlocksTotal.WithLabelValues(kind).Add(float64(n))
}

// WriteSummary prints one line per series gathered from g, sorted by name
func WriteSummary(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	var lines []string
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), Namespace+"_") {
			continue
		}
		for _, metric := range mf.GetMetric() {
			lines = append(lines, formatSeries(mf, metric))
		}
	}
	sort.Strings(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatSeries(mf *dto.MetricFamily, metric *dto.Metric) string {
	name := mf.GetName()
	if pairs := metric.GetLabel(); len(pairs) > 0 {
		labels := make([]string, len(pairs))
		for i, p := range pairs {
			labels[i] = fmt.Sprintf("%s=%q", p.GetName(), p.GetValue())
		}
		name += "{" + strings.Join(labels, ",") + "}"
	}

	switch mf.GetType() {
	case dto.MetricType_HISTOGRAM:
		h := metric.GetHistogram()
		return fmt.Sprintf("%s count=%d sum=%g", name, h.GetSampleCount(), h.GetSampleSum())
	case dto.MetricType_GAUGE:
		return fmt.Sprintf("%s %g", name, metric.GetGauge().GetValue())
	default:
		return fmt.Sprintf("%s %g", name, metric.GetCounter().GetValue())
	}
}
