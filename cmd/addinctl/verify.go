package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/addin-sdk/go/application/schema"
	"github.com/reglet-dev/addin-sdk/go/infrastructure/parser"
)

// NewVerifyCmd creates the verify subcommand.
func NewVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Compare a committed manifest with the bundled components",
		Long: `verify reads a manifest file (YAML or JSON) and reports every property
or method whose index, name, access or signature no longer matches the
bundled components. Host code that addresses slots by number breaks on any
such change.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read manifest: %w", err)
			}
			committed, err := parser.NewYamlManifestParser().Parse(data)
			if err != nil {
				return err
			}

			names := make([]string, len(committed))
			for i, m := range committed {
				names[i] = m.Name
			}
			current, err := selectManifests(names)
			if err != nil {
				return err
			}

			diffs := schema.DiffManifests(committed, current)
			for _, d := range diffs {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			if len(diffs) > 0 {
				return fmt.Errorf("%d manifest difference(s)", len(diffs))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s matches %d class(es)\n", args[0], len(committed))
			return nil
		},
	}
}
