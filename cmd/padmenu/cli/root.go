// Package cli implements the padmenu command.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "padmenu",
		Short:         "Run keypad menus described in TOML, YAML or JSON files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newValidateCmd())
	return root
}

func Execute() error {
	return rootCmd.Execute()
}
