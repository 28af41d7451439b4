package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/addin-sdk/go/application/template"
)

// NewDocCmd creates the doc subcommand.
func NewDocCmd() *cobra.Command {
	var tmplPath string

	cmd := &cobra.Command{
		Use:   "doc [class...]",
		Short: "Render a markdown reference of the bundled components",
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := selectManifests(args)
			if err != nil {
				return err
			}

			raw := []byte(template.ReferenceTemplate)
			if tmplPath != "" {
				if raw, err = os.ReadFile(tmplPath); err != nil {
					return fmt.Errorf("failed to read template: %w", err)
				}
			}

			out, err := template.NewGoTemplateEngine().Render(raw, map[string]any{"components": ms})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&tmplPath, "template", "t", "", "render with this text/template instead of the built-in one")
	return cmd
}
