package runner

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// LatencySummary reports query latency percentiles for a run.
type LatencySummary struct {
	Queries int64
	Min     time.Duration
	Max     time.Duration
	Mean    time.Duration
	P50     time.Duration
	P95     time.Duration
	P99     time.Duration
}

// queryMetrics collects per-query latencies. Microsecond resolution, 1us to
// 60s range, 3 significant digits.
type queryMetrics struct {
	histogram *hdrhistogram.Histogram
}

func newQueryMetrics() *queryMetrics {
	return &queryMetrics{
		histogram: hdrhistogram.New(1, 60_000_000, 3),
	}
}

func (m *queryMetrics) record(elapsed time.Duration) {
	_ = m.histogram.RecordValue(elapsed.Microseconds())
}

func (m *queryMetrics) summary() *LatencySummary {
	if m.histogram.TotalCount() == 0 {
		return nil
	}
	return &LatencySummary{
		Queries: m.histogram.TotalCount(),
		Min:     time.Duration(m.histogram.Min()) * time.Microsecond,
		Max:     time.Duration(m.histogram.Max()) * time.Microsecond,
		Mean:    time.Duration(m.histogram.Mean()) * time.Microsecond,
		P50:     time.Duration(m.histogram.ValueAtQuantile(50)) * time.Microsecond,
		P95:     time.Duration(m.histogram.ValueAtQuantile(95)) * time.Microsecond,
		P99:     time.Duration(m.histogram.ValueAtQuantile(99)) * time.Microsecond,
	}
}
