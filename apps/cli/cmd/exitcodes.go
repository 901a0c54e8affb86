package cmd

// Exit codes for the graphspec CLI
const (
	// ExitSuccess indicates all expectations passed
	ExitSuccess = 0

	// ExitFailure indicates one or more expectations failed
	ExitFailure = 1

	// ExitParseError indicates an expectation file parsing error
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitConnectionError indicates the target database was not reachable
	ExitConnectionError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
