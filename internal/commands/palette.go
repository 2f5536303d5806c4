package commands

import (
	"github.com/spf13/cobra"
)

func (a *app) paletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Pick a command from a list and run it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, cleanup, err := a.env()
			if err != nil {
				return err
			}
			defer cleanup()

			return a.wait(a.registry.Palette(env))
		},
	}
}
