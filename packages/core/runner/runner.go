package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"golang.org/x/time/rate"

	"github.com/abdul-hamid-achik/graphspec/packages/assertions"
	"github.com/abdul-hamid-achik/graphspec/packages/core/parser"
)

// QueryRunner abstracts query execution so the evaluator can be exercised
// without a live server.
type QueryRunner interface {
	Run(ctx context.Context, query string, params map[string]any) ([]*db.Record, error)
	Close(ctx context.Context) error
}

// Options configures a Runner. Target and credentials from the expectation
// file are used unless overridden here.
type Options struct {
	Target   string
	Database string
	Username string
	Password string

	// Timeout bounds each query.
	Timeout time.Duration
	// Repeat re-runs every expectation this many times, feeding the latency
	// summary. Assertions are evaluated on every pass.
	Repeat int
	// Rate throttles query starts per second when Repeat > 1. Zero means
	// unlimited.
	Rate float64
	// Bail stops the suite at the first failed expectation.
	Bail bool
	// Tag filters expectations; empty runs everything.
	Tag string
}

// AssertionResult is the outcome of a single assert line.
type AssertionResult struct {
	Subject  string
	Op       string
	Expected any
	Passed   bool
	Failures []assertions.Failure
}

// ExpectationResult is the outcome of one expectation.
type ExpectationResult struct {
	Name       string
	Skipped    bool
	SkipReason string
	Passed     bool
	Duration   time.Duration
	Error      error
	Assertions []*AssertionResult
}

// RunResult aggregates one file's outcomes.
type RunResult struct {
	File     string
	Results  []*ExpectationResult
	Passed   int
	Failed   int
	Skipped  int
	Duration time.Duration
	Latency  *LatencySummary
}

// Runner evaluates expectation suites.
type Runner struct {
	opts    Options
	queries QueryRunner
	limiter *rate.Limiter
	metrics *queryMetrics
}

// New connects to the target with the neo4j driver and returns a Runner.
// The suite's own target/credentials are only defaults; Options win.
func New(ctx context.Context, suite *parser.Suite, opts Options) (*Runner, error) {
	target := opts.Target
	if target == "" {
		target = suite.Target
	}
	if target == "" {
		return nil, fmt.Errorf("no target: set one in the file or pass --target")
	}
	username := opts.Username
	if username == "" {
		username = suite.Username
	}
	password := opts.Password
	if password == "" {
		password = suite.Password
	}
	database := opts.Database
	if database == "" {
		database = suite.Database
	}

	driver, err := neo4j.NewDriverWithContext(target, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create driver for %s: %w", target, err)
	}
	if err := waitForTarget(ctx, driver, opts.Timeout); err != nil {
		_ = driver.Close(ctx)
		return nil, err
	}
	return NewWithQueryRunner(&driverQueries{driver: driver, database: database}, opts), nil
}

// NewWithQueryRunner wires a Runner over any QueryRunner.
func NewWithQueryRunner(queries QueryRunner, opts Options) *Runner {
	r := &Runner{
		opts:    opts,
		queries: queries,
		metrics: newQueryMetrics(),
	}
	if opts.Rate > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(opts.Rate), 1)
	}
	return r
}

// Close releases the underlying connection.
func (r *Runner) Close(ctx context.Context) error {
	return r.queries.Close(ctx)
}

// RunSuite executes every expectation in the suite.
func (r *Runner) RunSuite(ctx context.Context, suite *parser.Suite) (*RunResult, error) {
	result := &RunResult{File: suite.File}
	start := time.Now()

	for _, exp := range suite.Expectations {
		res := r.runExpectation(ctx, exp)
		result.Results = append(result.Results, res)
		switch {
		case res.Skipped:
			result.Skipped++
		case res.Passed:
			result.Passed++
		default:
			result.Failed++
		}
		if r.opts.Bail && !res.Skipped && !res.Passed {
			break
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	result.Duration = time.Since(start)
	result.Latency = r.metrics.summary()
	return result, nil
}

func (r *Runner) runExpectation(ctx context.Context, exp *parser.Expectation) *ExpectationResult {
	res := &ExpectationResult{Name: exp.Name}
	if exp.Skip {
		res.Skipped = true
		res.SkipReason = "skipped in file"
		return res
	}
	if r.opts.Tag != "" && !exp.HasTag(r.opts.Tag) {
		res.Skipped = true
		res.SkipReason = "filtered out"
		return res
	}

	repeat := r.opts.Repeat
	if repeat < 1 {
		repeat = 1
	}

	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	for i := 0; i < repeat; i++ {
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				res.Error = err
				return res
			}
		}

		records, elapsed, err := r.runQuery(ctx, exp.Query, exp.Params)
		if err != nil {
			res.Error = fmt.Errorf("query failed: %w", err)
			return res
		}
		r.metrics.record(elapsed)

		res.Assertions = evaluateAll(records, exp.Asserts)
	}

	res.Passed = true
	for _, a := range res.Assertions {
		if !a.Passed {
			res.Passed = false
			break
		}
	}
	return res
}

func (r *Runner) runQuery(ctx context.Context, query string, params map[string]any) ([]*db.Record, time.Duration, error) {
	if r.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
		defer cancel()
	}
	start := time.Now()
	records, err := r.queries.Run(ctx, query, params)
	return records, time.Since(start), err
}

// driverQueries runs queries through a read session per call.
type driverQueries struct {
	driver   neo4j.DriverWithContext
	database string
}

func (d *driverQueries) Run(ctx context.Context, query string, params map[string]any) ([]*db.Record, error) {
	session := d.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: d.database,
	})
	defer func() { _ = session.Close(ctx) }()

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	return result.Collect(ctx)
}

func (d *driverQueries) Close(ctx context.Context) error {
	return d.driver.Close(ctx)
}

// waitForTarget polls connectivity until the target answers or the timeout
// elapses, so runs against freshly started databases do not flake.
func waitForTarget(ctx context.Context, driver neo4j.DriverWithContext, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	deadline := time.Now().Add(timeout)
	var lastErr error
	for time.Now().Before(deadline) {
		if lastErr = driver.VerifyConnectivity(ctx); lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
	return fmt.Errorf("target not reachable: %w", lastErr)
}
