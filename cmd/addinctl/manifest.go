package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/addin-sdk/go/application/addin"
	"github.com/reglet-dev/addin-sdk/go/application/registry"
	"github.com/reglet-dev/addin-sdk/go/application/schema"
	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	"github.com/reglet-dev/addin-sdk/go/examples/calculator"
	"github.com/reglet-dev/addin-sdk/go/infrastructure/parser"
)

// bundled registers the components shipped with the SDK.
func bundled() (*registry.Registry, error) {
	r := registry.NewRegistry()
	if err := r.Register("Calculator", addin.Factory(calculator.New)); err != nil {
		return nil, err
	}
	return r, nil
}

// selectManifests returns the bundled manifests, limited to classes when given.
func selectManifests(classes []string) ([]*entities.Manifest, error) {
	r, err := bundled()
	if err != nil {
		return nil, err
	}
	ms := r.Manifests()
	if len(classes) > 0 {
		ms = slices.DeleteFunc(ms, func(m *entities.Manifest) bool {
			return !slices.Contains(classes, m.Name)
		})
	}
	return ms, nil
}

// NewManifestCmd creates the manifest subcommand.
func NewManifestCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "manifest [class...]",
		Short: "Print the manifests of the bundled components",
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := selectManifests(args)
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case "json":
				data, err = schema.RenderManifests(ms)
			case "yaml":
				data, err = parser.NewYamlManifestParser().Render(ms)
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}
