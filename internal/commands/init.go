package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/heron/internal/output"
	"github.com/simonhull/heron/internal/prompt"
	"github.com/simonhull/heron/internal/settings"
)

func (a *app) initCmd() *cobra.Command {
	var projectDir string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create heron.yml in the solution root",
		Long: `Creates heron.yml with the location of the ASP.NET Core project,
relative to the solution root.

Example:
  heron init --project-dir src/MyApp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := a.projectRoot
			if root == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("getting working directory: %w", err)
				}
				root = cwd
			}

			if projectDir == "" {
				answer, err := a.prompt().Ask(prompt.TextSpec("ASP.NET Project Directory"))
				if err != nil {
					if errors.Is(err, prompt.ErrCancelled) {
						return errReported
					}
					return err
				}
				projectDir = answer
			}

			path, err := settings.Init(root, projectDir, force)
			if err != nil {
				return err
			}

			output.Success(fmt.Sprintf("Created %s", path))
			output.Info("Next steps:")
			output.Step("heron migrations add InitialCreate")
			output.Step("heron database update")
			return nil
		},
	}

	cmd.Flags().StringVar(&projectDir, "project-dir", "", "ASP.NET Core project directory, relative to the solution root")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing settings file")

	return cmd
}
