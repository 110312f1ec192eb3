package cli

import (
	"fmt"
	"log/slog"

	"github.com/pawndev/padmenu/pkg/padmenu/menufile"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a menu file builds and every menu can be shown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := menufile.Load(args[0])
			if err != nil {
				return err
			}
			set, err := file.Build(nil, builtinHooks(slog.New(slog.DiscardHandler), nil))
			if err != nil {
				return err
			}

			reports, err := set.Validate()
			out := cmd.OutOrStdout()
			for _, r := range reports {
				status := "ok"
				if !r.Visible {
					status = "no visible items"
				}
				fmt.Fprintf(out, "%-20s %3d items  %s\n", r.Name, r.Items, status)
			}
			return err
		},
	}
}
