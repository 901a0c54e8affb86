package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/graphspec/packages/core/parser"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|directory>",
	Short: "Validate expectation files for syntax errors",
	Long: `Validate expectation files for syntax errors without executing them.

Examples:
  graphspec validate movies.yaml
  graphspec validate ./expectations/`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no .yaml expectation files found")
	}

	hasErrors := false
	for _, file := range files {
		_, err := parser.ParseFile(file)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStderr(), "Error in %s: %v\n", file, err)
			hasErrors = true
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s\n", file)
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	return nil
}
