package actions

import (
	"github.com/simonhull/heron/internal/launch"
	"github.com/simonhull/heron/internal/prompt"
)

// Prompt labels.
const (
	LabelMigrationName      = "Migration Name"
	LabelMigration          = "Migration"
	LabelRazorPageName      = "Razor Page Name"
	LabelRazorPageDir       = "Razor Page Directory"
	LabelRazorPageNamespace = "Razor Page Namespace"
)

// AddMigration runs `dotnet ef migrations add <name>`.
type AddMigration struct{}

func (AddMigration) Name() string { return "add-migration" }
func (AddMigration) Description() string { return "Adds a database migration" }

func (AddMigration) Run(env *Env, args Args) (*launch.Task, error) {
	name, err := env.input(args, ArgMigrationName, prompt.TextSpec(LabelMigrationName))
	if err != nil {
		return nil, err
	}
	if err := env.required(name, "name"); err != nil {
		return nil, err
	}

	dir, ok := env.ProjectDir()
	if !ok {
		return nil, env.aborted("no project directory")
	}

	return env.start(dir, "ef", "migrations", "add", name)
}

// RemoveMigration runs `dotnet ef migrations remove`.
type RemoveMigration struct{}

func (RemoveMigration) Name() string { return "remove-migration" }
func (RemoveMigration) Description() string { return "Removes a database migration" }

func (RemoveMigration) Run(env *Env, _ Args) (*launch.Task, error) {
	dir, ok := env.ProjectDir()
	if !ok {
		return nil, env.aborted("no project directory")
	}
	return env.start(dir, "ef", "migrations", "remove")
}

// UpdateDatabase runs `dotnet ef database update`.
type UpdateDatabase struct{}

func (UpdateDatabase) Name() string { return "update-database" }
func (UpdateDatabase) Description() string { return "Updates the database" }

func (UpdateDatabase) Run(env *Env, _ Args) (*launch.Task, error) {
	dir, ok := env.ProjectDir()
	if !ok {
		return nil, env.aborted("no project directory")
	}
	return env.start(dir, "ef", "database", "update")
}

// UpdateDatabaseTo runs `dotnet ef database update <migration>`. Without a
// migration argument the user picks one of the discovered migrations.
type UpdateDatabaseTo struct{}

func (UpdateDatabaseTo) Name() string { return "update-database-to" }
func (UpdateDatabaseTo) Description() string { return "Updates the database to a migration" }

func (UpdateDatabaseTo) Run(env *Env, args Args) (*launch.Task, error) {
	var spec prompt.Spec
	if _, given := args[ArgMigration]; !given {
		names, ok := env.ListMigrations()
		if !ok {
			return nil, env.aborted("no migrations")
		}
		spec = prompt.ListSpec(LabelMigration, names)
	}

	migration, err := env.input(args, ArgMigration, spec)
	if err != nil {
		return nil, err
	}
	if err := env.required(migration, "migration"); err != nil {
		return nil, err
	}

	dir, ok := env.ProjectDir()
	if !ok {
		return nil, env.aborted("no project directory")
	}

	return env.start(dir, "ef", "database", "update", migration)
}

// DropDatabase runs `dotnet ef database drop`.
type DropDatabase struct{}

func (DropDatabase) Name() string { return "drop-database" }
func (DropDatabase) Description() string { return "Drops the database" }

func (DropDatabase) Run(env *Env, _ Args) (*launch.Task, error) {
	dir, ok := env.ProjectDir()
	if !ok {
		return nil, env.aborted("no project directory")
	}
	return env.start(dir, "ef", "database", "drop")
}

// AddRazorPage runs `dotnet new page --name <name> -o <dir> -na <namespace>`.
type AddRazorPage struct{}

func (AddRazorPage) Name() string { return "add-razor-page" }
func (AddRazorPage) Description() string { return "Adds a razor page" }

func (AddRazorPage) Run(env *Env, args Args) (*launch.Task, error) {
	fields := []struct {
		key, label, what string
	}{
		{ArgRazorPageName, LabelRazorPageName, "name"},
		{ArgRazorPageDir, LabelRazorPageDir, "directory"},
		{ArgRazorPageNamespace, LabelRazorPageNamespace, "namespace"},
	}

	values := make([]string, len(fields))
	for i, f := range fields {
		v, err := env.input(args, f.key, prompt.TextSpec(f.label))
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	for i, f := range fields {
		if err := env.required(values[i], f.what); err != nil {
			return nil, err
		}
	}

	dir, ok := env.ProjectDir()
	if !ok {
		return nil, env.aborted("no project directory")
	}

	return env.start(dir, "new", "page",
		"--name", values[0],
		"-o", values[1],
		"-na", values[2],
	)
}

// Builtin returns every palette action.
func Builtin() []Action {
	return []Action{
		AddMigration{},
		RemoveMigration{},
		UpdateDatabase{},
		UpdateDatabaseTo{},
		DropDatabase{},
		AddRazorPage{},
	}
}
