package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new graphspec project",
	Long: `Initialize a new graphspec project in the current directory.

This creates:
  - graphspec.yaml - Configuration file with connection settings
  - example.yaml   - Example expectation file

Examples:
  graphspec init
  graphspec init --force`,
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite existing files")
}

func initCommand(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	configFile := filepath.Join(cwd, "graphspec.yaml")
	exampleFile := filepath.Join(cwd, "example.yaml")

	if !forceInit {
		for _, f := range []string{configFile, exampleFile} {
			if _, err := os.Stat(f); err == nil {
				return fmt.Errorf("file already exists: %s (use --force to overwrite)", f)
			}
		}
	}

	configContent := map[string]any{
		"target":   "bolt://localhost:7687",
		"database": "neo4j",
		"username": "neo4j",
		"password": "${NEO4J_PASSWORD}",
		"timeout":  "30s",
		"output":   "console",
	}

	configYAML, _ := yaml.Marshal(configContent)
	if err := os.WriteFile(configFile, configYAML, 0o644); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)

	exampleContent := `expectations:
  - name: database is reachable
    tags: [smoke]
    query: RETURN 1 AS one
    asserts:
      - subject: rows
        op: count
        expected: 1
      - subject: value 0.one
        op: equals
        expected: 1

  - name: people have names
    query: MATCH (p:Person) RETURN p LIMIT 5
    asserts:
      - subject: p
        op: has_label
        expected: Person
      - subject: p
        op: has_property_key
        expected: name

  - name: person names are unique
    tags: [schema]
    query: SHOW CONSTRAINTS
    asserts:
      - subject: rows
        op: constraint
        expected:
          name: person_name_unique
          label: Person
          property: name
`

	if err := os.WriteFile(exampleFile, []byte(exampleContent), 0o644); err != nil {
		return fmt.Errorf("failed to create example file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", exampleFile)

	fmt.Fprintf(cmd.OutOrStdout(), "\ngraphspec project initialized!\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Run 'graphspec run example.yaml' to execute the example expectations.\n")

	return nil
}
