package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/graphspec/packages/core/parser"
)

var listCmd = &cobra.Command{
	Use:   "list <file|directory>",
	Short: "List all expectations in expectation files",
	Long: `List all expectations defined in .yaml expectation files.

Examples:
  graphspec list movies.yaml
  graphspec list ./expectations/`,
	Args: cobra.MinimumNArgs(1),
	RunE: listCommand,
}

func listCommand(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no .yaml expectation files found")
	}

	for _, file := range files {
		suite, err := parser.ParseFile(file)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStderr(), "Error parsing %s: %v\n", file, err)
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s:\n", file)
		for _, exp := range suite.Expectations {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s (%d asserts)\n", exp.Name, len(exp.Asserts))
			if len(exp.Tags) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "    tags: %v\n", exp.Tags)
			}
			if exp.Skip {
				fmt.Fprintf(cmd.OutOrStdout(), "    skipped\n")
			}
		}
	}

	return nil
}
