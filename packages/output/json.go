package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/graphspec/packages/core/runner"
)

// JSONOutput represents the complete JSON output structure
type JSONOutput struct {
	Summary  JSONSummary  `json:"summary"`
	Tests    []JSONTest   `json:"tests"`
	Latency  *JSONLatency `json:"latency,omitempty"`
	Duration float64      `json:"duration"`
	Time     string       `json:"time"`
}

// JSONSummary represents the run summary
type JSONSummary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// JSONTest represents a single expectation result
type JSONTest struct {
	Name       string          `json:"name"`
	File       string          `json:"file"`
	Passed     bool            `json:"passed"`
	Skipped    bool            `json:"skipped,omitempty"`
	SkipReason string          `json:"skipReason,omitempty"`
	Duration   float64         `json:"duration"`
	Error      string          `json:"error,omitempty"`
	Assertions []JSONAssertion `json:"assertions,omitempty"`
}

// JSONAssertion represents an assertion result
type JSONAssertion struct {
	Subject  string   `json:"subject"`
	Operator string   `json:"operator"`
	Expected any      `json:"expected,omitempty"`
	Passed   bool     `json:"passed"`
	Failures []string `json:"failures,omitempty"`
}

// JSONLatency represents the query latency summary in milliseconds
type JSONLatency struct {
	Queries int64   `json:"queries"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`
	P50     float64 `json:"p50"`
	P95     float64 `json:"p95"`
	P99     float64 `json:"p99"`
}

// JSONFormatter formats run results as JSON
type JSONFormatter struct {
	writer  io.Writer
	results []JSONTest
	latency *JSONLatency
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer:  os.Stdout,
		results: make([]JSONTest, 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.writer == nil {
		f.writer = os.Stdout
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatResult(result *runner.RunResult) {
	for _, r := range result.Results {
		test := JSONTest{
			Name:     r.Name,
			File:     result.File,
			Passed:   r.Passed,
			Skipped:  r.Skipped,
			Duration: float64(r.Duration.Milliseconds()),
		}

		if r.SkipReason != "" && r.SkipReason != "filtered out" {
			test.SkipReason = r.SkipReason
		}

		if r.Error != nil {
			test.Error = r.Error.Error()
		}

		if len(r.Assertions) > 0 {
			test.Assertions = make([]JSONAssertion, len(r.Assertions))
			for i, a := range r.Assertions {
				ja := JSONAssertion{
					Subject:  a.Subject,
					Operator: a.Op,
					Expected: a.Expected,
					Passed:   a.Passed,
				}
				for _, failure := range a.Failures {
					ja.Failures = append(ja.Failures, failure.Message)
				}
				test.Assertions[i] = ja
			}
		}

		f.results = append(f.results, test)
	}

	if s := result.Latency; s != nil {
		f.latency = &JSONLatency{
			Queries: s.Queries,
			Min:     float64(s.Min.Microseconds()) / 1000,
			Max:     float64(s.Max.Microseconds()) / 1000,
			Mean:    float64(s.Mean.Microseconds()) / 1000,
			P50:     float64(s.P50.Microseconds()) / 1000,
			P95:     float64(s.P95.Microseconds()) / 1000,
			P99:     float64(s.P99.Microseconds()) / 1000,
		}
	}
}

func (f *JSONFormatter) FormatError(err error) {
	// Errors are included in individual expectation results
}

func (f *JSONFormatter) FormatHeader(version string) {
	// No header needed for JSON output
}

// Flush writes the accumulated JSON output
func (f *JSONFormatter) Flush(totalDuration time.Duration) error {
	var passed, failed, skipped int
	for _, t := range f.results {
		if t.Skipped {
			skipped++
		} else if t.Passed {
			passed++
		} else {
			failed++
		}
	}

	output := JSONOutput{
		Summary: JSONSummary{
			Total:   len(f.results),
			Passed:  passed,
			Failed:  failed,
			Skipped: skipped,
		},
		Tests:    f.results,
		Latency:  f.latency,
		Duration: float64(totalDuration.Milliseconds()),
		Time:     time.Now().Format(time.RFC3339),
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
