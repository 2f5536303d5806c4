package commands

import (
	"github.com/spf13/cobra"

	"github.com/simonhull/heron/internal/actions"
)

// databaseCmd groups the Entity Framework database commands
func (a *app) databaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "database",
		Short: "Entity Framework database commands",
		Long: `Apply migrations to, or drop, the project database with 'dotnet ef database'.

Examples:
  heron database update                       # Apply all migrations
  heron database update 20230101000000_Init   # Update to a specific migration
  heron database update --pick                # Choose the migration from a list
  heron database drop                         # Drop the database`,
	}

	cmd.AddCommand(a.databaseUpdateCmd())
	cmd.AddCommand(a.databaseDropCmd())

	return cmd
}

func (a *app) databaseUpdateCmd() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "update [migration]",
		Short: "Update the database",
		Long: `Runs 'dotnet ef database update', optionally targeting a migration.

With --pick, the migrations in the project's Migrations directory are offered
as a list.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 1:
				return a.runAction(actions.UpdateDatabaseTo{}.Name(), actions.Args{actions.ArgMigration: args[0]})
			case pick:
				return a.runAction(actions.UpdateDatabaseTo{}.Name(), actions.Args{})
			default:
				return a.runAction(actions.UpdateDatabase{}.Name(), actions.Args{})
			}
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "Choose the target migration from a list")

	return cmd
}

func (a *app) databaseDropCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drop",
		Short: "Drop the database",
		Long:  "Runs 'dotnet ef database drop'.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAction(actions.DropDatabase{}.Name(), actions.Args{})
		},
	}
}
