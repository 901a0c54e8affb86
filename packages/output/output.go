package output

import (
	"fmt"
	"io"
	"time"

	"github.com/abdul-hamid-achik/graphspec/packages/core/runner"
)

// Formatter renders run results.
type Formatter interface {
	FormatResult(result *runner.RunResult)
	FormatError(err error)
	FormatHeader(version string)
}

// Flushable is implemented by formatters that accumulate results and write
// everything at the end of the run.
type Flushable interface {
	Flush(totalDuration time.Duration) error
}

// Config carries the settings shared by all formatters.
type Config struct {
	Writer  io.Writer
	Verbose bool
	NoColor bool
}

// New returns the formatter for a format name.
func New(format string, cfg Config) (Formatter, error) {
	switch format {
	case "", "console":
		return NewConsoleFormatter(WithWriter(cfg.Writer), WithVerbose(cfg.Verbose), WithNoColor(cfg.NoColor)), nil
	case "json":
		return NewJSONFormatter(JSONWithWriter(cfg.Writer)), nil
	case "junit":
		return NewJUnitFormatter(JUnitWithWriter(cfg.Writer)), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
