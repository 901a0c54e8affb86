package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/abdul-hamid-achik/graphspec/packages/core/runner"
)

// formatValue formats an expected value for display, truncating or
// summarizing large values
func formatValue(v any, maxLen int) string {
	switch val := v.(type) {
	case []any:
		return fmt.Sprintf("[array with %d items]", len(val))
	case map[string]any:
		return fmt.Sprintf("{object with %d keys}", len(val))
	}
	str := fmt.Sprintf("%v", v)
	if len(str) > maxLen {
		return str[:maxLen] + "..."
	}
	return str
}

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.writer == nil {
		f.writer = os.Stdout
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatResult(result *runner.RunResult) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(f.writer, "\n%s\n", bold("Running: "+result.File))
	fmt.Fprintf(f.writer, "\n")

	for _, r := range result.Results {
		if r.Skipped {
			fmt.Fprintf(f.writer, "  %s %s", yellow("-"), r.Name)
			if r.SkipReason != "" && r.SkipReason != "filtered out" {
				fmt.Fprintf(f.writer, " (%s)", r.SkipReason)
			}
			fmt.Fprintf(f.writer, "\n")
			continue
		}

		if r.Error != nil {
			fmt.Fprintf(f.writer, "  %s %s %s\n", red("x"), r.Name, red(fmt.Sprintf("(%v)", r.Error)))
			continue
		}

		symbol := green("✓")
		if !r.Passed {
			symbol = red("✗")
		}

		fmt.Fprintf(f.writer, "  %s %s %s\n", symbol, r.Name, cyan(fmt.Sprintf("(%dms)", r.Duration.Milliseconds())))

		if !r.Passed {
			for _, a := range r.Assertions {
				if a.Passed {
					continue
				}
				fmt.Fprintf(f.writer, "    %s %s %s\n", red("→"), a.Subject, a.Op)
				if a.Expected != nil {
					fmt.Fprintf(f.writer, "      Expected: %s\n", formatValue(a.Expected, 100))
				}
				for _, failure := range a.Failures {
					fmt.Fprintf(f.writer, "      %s\n", failure.Message)
				}
			}
		}

		if f.verbose && r.Passed {
			for _, a := range r.Assertions {
				fmt.Fprintf(f.writer, "    %s %s %s\n", green("✓"), a.Subject, a.Op)
			}
		}
	}

	fmt.Fprintf(f.writer, "\n")
	fmt.Fprintf(f.writer, "Expectations: ")
	if result.Passed > 0 {
		fmt.Fprintf(f.writer, "%s, ", green(fmt.Sprintf("%d passed", result.Passed)))
	}
	if result.Failed > 0 {
		fmt.Fprintf(f.writer, "%s, ", red(fmt.Sprintf("%d failed", result.Failed)))
	}
	if result.Skipped > 0 {
		fmt.Fprintf(f.writer, "%s, ", yellow(fmt.Sprintf("%d skipped", result.Skipped)))
	}
	total := result.Passed + result.Failed + result.Skipped
	fmt.Fprintf(f.writer, "%d total\n", total)
	fmt.Fprintf(f.writer, "Time:  %dms\n", result.Duration.Milliseconds())

	if s := result.Latency; s != nil {
		fmt.Fprintf(f.writer, "\n%s\n", bold("Query latency"))
		fmt.Fprintf(f.writer, "  Queries: %d\n", s.Queries)
		fmt.Fprintf(f.writer, "  Min:     %s\n", s.Min)
		fmt.Fprintf(f.writer, "  Mean:    %s\n", s.Mean)
		fmt.Fprintf(f.writer, "  P50:     %s\n", s.P50)
		fmt.Fprintf(f.writer, "  P95:     %s\n", s.P95)
		fmt.Fprintf(f.writer, "  P99:     %s\n", s.P99)
		fmt.Fprintf(f.writer, "  Max:     %s\n", s.Max)
	}
	fmt.Fprintf(f.writer, "\n")
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

func (f *ConsoleFormatter) FormatHeader(version string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(f.writer, "%s %s\n", bold("graphspec"), version)
}
