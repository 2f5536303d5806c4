package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/heron/internal/actions"
	"github.com/simonhull/heron/internal/output"
)

// migrationsCmd groups the Entity Framework migration commands
func (a *app) migrationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrations",
		Short: "Entity Framework migration commands",
		Long: `Manage Entity Framework migrations with 'dotnet ef migrations'.

Examples:
  heron migrations add InitialCreate   # Add a migration
  heron migrations add                 # Prompt for the migration name
  heron migrations remove              # Remove the last migration
  heron migrations list                # List migrations in Migrations/`,
	}

	cmd.AddCommand(a.migrationsAddCmd())
	cmd.AddCommand(a.migrationsRemoveCmd())
	cmd.AddCommand(a.migrationsListCmd())

	return cmd
}

func (a *app) migrationsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [name]",
		Short: "Add a database migration",
		Long:  "Runs 'dotnet ef migrations add <name>'. Prompts for the name when it is not given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := actions.Args{}
			if len(args) == 1 {
				in[actions.ArgMigrationName] = args[0]
			}
			return a.runAction(actions.AddMigration{}.Name(), in)
		},
	}
}

func (a *app) migrationsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Remove the last database migration",
		Long:  "Runs 'dotnet ef migrations remove'.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAction(actions.RemoveMigration{}.Name(), actions.Args{})
		},
	}
}

func (a *app) migrationsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List migrations",
		Long:  "Lists the migrations found in the project's Migrations directory. Designer files are skipped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, cleanup, err := a.env()
			if err != nil {
				return err
			}
			defer cleanup()

			names, ok := env.ListMigrations()
			if !ok {
				return errReported
			}

			output.Info(fmt.Sprintf("%d migration(s):", len(names)))
			for _, name := range names {
				output.Step(name)
			}
			return nil
		},
	}
}
