package commands

import (
	"github.com/spf13/cobra"

	"github.com/simonhull/heron/internal/actions"
)

// pageCmd groups the Razor Page scaffolding commands
func (a *app) pageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page",
		Short: "Razor Page scaffolding",
	}

	cmd.AddCommand(a.pageAddCmd())

	return cmd
}

func (a *app) pageAddCmd() *cobra.Command {
	var name, dir, namespace string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a Razor Page",
		Long: `Runs 'dotnet new page --name <name> -o <dir> -na <namespace>'.

Any flag left out is prompted for.

Example:
  heron page add --name Index --dir Pages/Admin --namespace MyApp.Pages.Admin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := actions.Args{}
			// Only flags the user passed count as given; an explicit empty
			// value is rejected rather than prompted for.
			if cmd.Flags().Changed("name") {
				in[actions.ArgRazorPageName] = name
			}
			if cmd.Flags().Changed("dir") {
				in[actions.ArgRazorPageDir] = dir
			}
			if cmd.Flags().Changed("namespace") {
				in[actions.ArgRazorPageNamespace] = namespace
			}
			return a.runAction(actions.AddRazorPage{}.Name(), in)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Razor Page name")
	cmd.Flags().StringVarP(&dir, "dir", "o", "", "Output directory, relative to the project")
	cmd.Flags().StringVar(&namespace, "namespace", "", "Namespace for the generated page")

	return cmd
}
