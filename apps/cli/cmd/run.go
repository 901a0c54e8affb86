package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/graphspec/packages/core/config"
	"github.com/abdul-hamid-achik/graphspec/packages/core/env"
	"github.com/abdul-hamid-achik/graphspec/packages/core/parser"
	"github.com/abdul-hamid-achik/graphspec/packages/core/runner"
	"github.com/abdul-hamid-achik/graphspec/packages/history"
	"github.com/abdul-hamid-achik/graphspec/packages/output"
)

var runCmd = &cobra.Command{
	Use:   "run <file|directory>",
	Short: "Run expectations against a Neo4j database",
	Long: `Run expectations defined in .yaml expectation files.

Examples:
  graphspec run movies.yaml
  graphspec run ./expectations/ --tag smoke
  graphspec run movies.yaml --target bolt://localhost:7687 -u neo4j -p secret
  graphspec run movies.yaml --repeat 100 --rate 50
  graphspec run movies.yaml -o junit --output-file results.xml
  graphspec run ./expectations/ --watch`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCommand,
}

// WatchDebounceDelay is the debounce delay for file watch events
const WatchDebounceDelay = 300 * time.Millisecond

var (
	targetFlag      string
	databaseFlag    string
	usernameFlag    string
	passwordFlag    string
	envFileFlag     string
	configFlag      string
	tagFlag         string
	verboseFlag     int
	quietFlag       bool
	noColorFlag     bool
	outputFlag      string
	outputFileFlag  string
	bailFlag        bool
	timeoutFlag     string
	repeatFlag      int
	rateFlag        float64
	dryRunFlag      bool
	watchFlag       bool
	noHistoryFlag   bool
	historyFileFlag string
)

func init() {
	// Connection flags
	runCmd.Flags().StringVar(&targetFlag, "target", getEnvString("GRAPHSPEC_TARGET", ""), "Bolt URI of the database, e.g. bolt://localhost:7687 (env: GRAPHSPEC_TARGET)")
	runCmd.Flags().StringVar(&databaseFlag, "database", getEnvString("GRAPHSPEC_DATABASE", ""), "Database to run queries against (env: GRAPHSPEC_DATABASE)")
	runCmd.Flags().StringVarP(&usernameFlag, "username", "u", getEnvString("GRAPHSPEC_USERNAME", ""), "Username for authentication (env: GRAPHSPEC_USERNAME)")
	runCmd.Flags().StringVarP(&passwordFlag, "password", "p", getEnvString("GRAPHSPEC_PASSWORD", ""), "Password for authentication (env: GRAPHSPEC_PASSWORD)")
	runCmd.Flags().StringVar(&envFileFlag, "env-file", getEnvString("GRAPHSPEC_ENV_FILE", ""), "Path to .env file with credentials (env: GRAPHSPEC_ENV_FILE)")
	runCmd.Flags().StringVar(&configFlag, "config", getEnvString("GRAPHSPEC_CONFIG", ""), "Path to config file (env: GRAPHSPEC_CONFIG)")

	// Filtering flags
	runCmd.Flags().StringVarP(&tagFlag, "tag", "t", getEnvString("GRAPHSPEC_TAG", ""), "Run only expectations with the given tag (env: GRAPHSPEC_TAG)")

	// Output flags
	runCmd.Flags().CountVarP(&verboseFlag, "verbose", "v", "Verbose output")
	runCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", getEnvBool("GRAPHSPEC_QUIET", false), "Suppress all output except errors (env: GRAPHSPEC_QUIET)")
	runCmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("GRAPHSPEC_NO_COLOR", false), "Disable colored output (env: GRAPHSPEC_NO_COLOR)")
	runCmd.Flags().StringVarP(&outputFlag, "output", "o", getEnvString("GRAPHSPEC_OUTPUT", ""), "Output format: console, json, junit (env: GRAPHSPEC_OUTPUT)")
	runCmd.Flags().StringVar(&outputFileFlag, "output-file", getEnvString("GRAPHSPEC_OUTPUT_FILE", ""), "Write output to file (default: stdout) (env: GRAPHSPEC_OUTPUT_FILE)")

	// Execution flags
	runCmd.Flags().BoolVar(&bailFlag, "bail", getEnvBool("GRAPHSPEC_BAIL", false), "Stop on first failure (env: GRAPHSPEC_BAIL)")
	runCmd.Flags().StringVar(&timeoutFlag, "timeout", getEnvString("GRAPHSPEC_TIMEOUT", ""), "Query timeout (e.g., 30s, 1m) (env: GRAPHSPEC_TIMEOUT)")
	runCmd.Flags().IntVar(&repeatFlag, "repeat", getEnvInt("GRAPHSPEC_REPEAT", 0), "Run each expectation this many times and report latency percentiles (env: GRAPHSPEC_REPEAT)")
	runCmd.Flags().Float64VarP(&rateFlag, "rate", "r", 0, "Target queries per second when repeating")
	runCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Parse and show what would run without executing")
	runCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch files for changes and re-run expectations")

	// History flags
	runCmd.Flags().BoolVar(&noHistoryFlag, "no-history", false, "Do not record this run in the history database")
	runCmd.Flags().StringVar(&historyFileFlag, "history-file", getEnvString("GRAPHSPEC_HISTORY_FILE", ""), "Path to the history database (env: GRAPHSPEC_HISTORY_FILE)")
}

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func runCommand(cmd *cobra.Command, args []string) error {
	if envFileFlag != "" {
		if _, err := env.LoadAndExportDotEnv(envFileFlag); err != nil {
			return err
		}
	}

	// Load config from file (if present) and apply CLI overrides
	fileConfig, err := config.LoadConfig(configFlag)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	opts, err := buildRunnerOptions(fileConfig)
	if err != nil {
		return err
	}

	format := outputFlag
	if format == "" {
		format = fileConfig.Output
	}
	noColor := noColorFlag || quietFlag || fileConfig.GetNoColor()

	var outWriter *os.File
	if outputFileFlag != "" {
		outWriter, err = os.Create(outputFileFlag)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer outWriter.Close()
	}

	newFormatter := func() (output.Formatter, error) {
		cfg := output.Config{
			Verbose: verboseFlag > 0 || fileConfig.GetVerbose(),
			NoColor: noColor,
		}
		if outWriter != nil {
			cfg.Writer = outWriter
		}
		return output.New(format, cfg)
	}

	formatter, err := newFormatter()
	if err != nil {
		return err
	}
	if !quietFlag {
		formatter.FormatHeader(version)
	}

	files, err := collectFiles(args)
	if err != nil {
		formatter.FormatError(err)
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .yaml expectation files found")
	}

	store := openHistoryStore(fileConfig)
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runFiles := func(ctx context.Context) (failed, parseErrs, runErrs int, duration time.Duration) {
		start := time.Now()
		for _, file := range files {
			if dryRunFlag {
				fmt.Fprintf(cmd.OutOrStdout(), "Would run: %s\n", file)
				continue
			}

			suite, err := parser.ParseFile(file)
			if err != nil {
				formatter.FormatError(err)
				parseErrs++
				if opts.Bail {
					break
				}
				continue
			}

			result, err := runSuite(ctx, suite, opts)
			if err != nil {
				formatter.FormatError(err)
				runErrs++
				if opts.Bail {
					break
				}
				continue
			}

			formatter.FormatResult(result)
			failed += result.Failed

			if store != nil {
				if _, err := store.Record(ctx, result); err != nil {
					fmt.Fprintf(os.Stderr, "warning: failed to record run: %v\n", err)
				}
			}

			if opts.Bail && result.Failed > 0 {
				break
			}
		}
		return failed, parseErrs, runErrs, time.Since(start)
	}

	failed, parseErrs, runErrs, duration := runFiles(ctx)

	// Flush output for formatters that accumulate results
	if flushable, ok := formatter.(output.Flushable); ok {
		if err := flushable.Flush(duration); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}

	// If watch mode is not enabled, exit with the outcome
	if !watchFlag {
		switch {
		case failed > 0:
			os.Exit(ExitFailure)
		case parseErrs > 0:
			os.Exit(ExitParseError)
		case runErrs > 0:
			os.Exit(ExitConnectionError)
		}
		return nil
	}

	// Watch mode: set up file watcher
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watchedDirs := make(map[string]bool)
	for _, file := range files {
		dir := filepath.Dir(file)
		if !watchedDirs[dir] {
			if err := watcher.Add(dir); err != nil {
				formatter.FormatError(fmt.Errorf("failed to watch %s: %w", dir, err))
			}
			watchedDirs[dir] = true
		}
	}

	// Also watch the original args if they're directories
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err == nil && info.IsDir() {
			_ = filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if info.IsDir() && !watchedDirs[path] {
					_ = watcher.Add(path)
					watchedDirs[path] = true
				}
				return nil
			})
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")

	// Debounce timer for rapid file changes
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Only react to write events on expectation files
			if event.Has(fsnotify.Write) && isExpectationFile(event.Name) {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
					fmt.Fprintf(cmd.OutOrStdout(), "\n\nFile changed: %s\nRe-running expectations...\n\n", event.Name)

					// Accumulating formatters need fresh state on each pass
					if f, err := newFormatter(); err == nil {
						formatter = f
					}

					_, _, _, duration := runFiles(ctx)

					if flushable, ok := formatter.(output.Flushable); ok {
						_ = flushable.Flush(duration)
					}

					fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n")
				})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			formatter.FormatError(fmt.Errorf("watcher error: %w", err))
		}
	}
}

// buildRunnerOptions resolves runner options from flags and the config file,
// with flags taking precedence.
func buildRunnerOptions(fileConfig *config.Config) (runner.Options, error) {
	opts := runner.Options{
		Target:   targetFlag,
		Database: databaseFlag,
		Username: usernameFlag,
		Password: passwordFlag,
		Repeat:   repeatFlag,
		Rate:     rateFlag,
		Bail:     bailFlag || fileConfig.GetBail(),
		Tag:      tagFlag,
	}

	if opts.Target == "" {
		opts.Target = fileConfig.Target
	}
	if opts.Database == "" {
		opts.Database = fileConfig.Database
	}
	if opts.Username == "" {
		opts.Username = fileConfig.Username
	}
	if opts.Password == "" {
		opts.Password = fileConfig.Password
	}
	if opts.Repeat == 0 {
		opts.Repeat = fileConfig.Repeat
	}
	if opts.Rate == 0 {
		opts.Rate = fileConfig.Rate
	}
	if opts.Tag == "" {
		opts.Tag = fileConfig.Tag
	}

	if timeoutFlag != "" {
		timeout, err := time.ParseDuration(timeoutFlag)
		if err != nil {
			return opts, fmt.Errorf("invalid timeout value %q: %w (use format like 30s, 1m, 500ms)", timeoutFlag, err)
		}
		opts.Timeout = timeout
	} else {
		timeout, err := fileConfig.GetTimeout()
		if err != nil {
			return opts, err
		}
		opts.Timeout = timeout
	}

	return opts, nil
}

func runSuite(ctx context.Context, suite *parser.Suite, opts runner.Options) (*runner.RunResult, error) {
	r, err := runner.New(ctx, suite, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close(ctx) }()

	return r.RunSuite(ctx, suite)
}

func openHistoryStore(fileConfig *config.Config) *history.Store {
	if noHistoryFlag || !fileConfig.GetHistory() || dryRunFlag {
		return nil
	}

	path := historyFileFlag
	if path == "" {
		path = fileConfig.HistoryFile
	}
	if path == "" {
		var err error
		path, err = history.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
			return nil
		}
	}

	store, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
		return nil
	}
	return store
}

func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if info.IsDir() {
			err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && isExpectationFile(path) && !isConfigFile(path) {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else {
			if isExpectationFile(arg) {
				files = append(files, arg)
			}
		}
	}

	return files, nil
}

func isExpectationFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// isConfigFile reports whether path is a graphspec config file, which lives
// next to expectation files but is not one.
func isConfigFile(path string) bool {
	base := filepath.Base(path)
	for _, name := range config.ConfigFilenames {
		if base == name {
			return true
		}
	}
	return false
}
