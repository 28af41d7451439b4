package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/addin-sdk/go/config"
)

// NewConfigCmd creates the config subcommand.
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config <file>",
		Short: "Validate a library configuration file",
		Long: `Load a YAML configuration file the way an add-in library does on
startup and print the effective settings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "log.level:      %s\n", cfg.Log.Level)
			fmt.Fprintf(cmd.OutOrStdout(), "log.source:     %s\n", cfg.Log.Source)
			fmt.Fprintf(cmd.OutOrStdout(), "log.host:       %t\n", cfg.Log.Host)
			fmt.Fprintf(cmd.OutOrStdout(), "log.add_source: %t\n", cfg.Log.AddSource)
			fmt.Fprintf(cmd.OutOrStdout(), "component.info: %d\n", cfg.Component.Info)
			return nil
		},
	}
}
