package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for addinctl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addinctl",
		Short: "Inspect 1C add-in libraries built with the Go SDK",
		Long: `addinctl prints the binary layout the host expects from an add-in
object, the JSON schema of component manifests and the manifests of the
components bundled with the SDK. It can also check a committed manifest
against the current build and render reference documentation.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewLayoutCmd())
	cmd.AddCommand(NewSchemaCmd())
	cmd.AddCommand(NewManifestCmd())
	cmd.AddCommand(NewConfigCmd())
	cmd.AddCommand(NewVerifyCmd())
	cmd.AddCommand(NewDocCmd())

	return cmd
}
