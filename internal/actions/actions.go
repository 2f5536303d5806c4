// Package actions implements heron's palette commands.
//
// Every action follows the same shape: gather inputs (prompting for any
// that were not passed in), validate them, resolve the ASP.NET project
// directory and hand a dotnet Invocation to the launcher. Failures are
// reported through the Env's Notifier where they are detected; Run then
// returns an error wrapping ErrAborted so callers know not to report it
// again.
package actions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/simonhull/heron/internal/launch"
	"github.com/simonhull/heron/internal/migrations"
	"github.com/simonhull/heron/internal/output"
	"github.com/simonhull/heron/internal/project"
	"github.com/simonhull/heron/internal/prompt"
	"github.com/simonhull/heron/internal/settings"
)

// ErrAborted marks an action that stopped after reporting why.
var ErrAborted = errors.New("action aborted")

// Argument keys. A key present in Args is used as-is, even when empty; a
// missing key is prompted for.
const (
	ArgMigrationName      = "migration_name"
	ArgMigration          = "migration"
	ArgRazorPageName      = "razorpage_name"
	ArgRazorPageDir       = "razorpage_dir"
	ArgRazorPageNamespace = "razorpage_namespace"
)

// Args carries inputs supplied up front, by flag or positional argument.
type Args map[string]string

// Launcher starts invocations. *launch.Launcher satisfies it.
type Launcher interface {
	Launch(onExit launch.ExitFunc, inv launch.Invocation) (*launch.Task, error)
}

// Env holds the collaborators every action needs.
type Env struct {
	Workspace project.Workspace
	Settings  settings.Bag
	Notifier  output.Notifier
	Prompter  prompt.Prompter // nil means missing inputs are empty
	Launcher  Launcher
	Fs        afero.Fs // nil means the OS filesystem
}

// Action is a named palette command.
type Action interface {
	// Name returns the command name for registry lookup
	Name() string
	// Description returns the palette caption
	Description() string
	// Run gathers inputs and launches the command. The returned task
	// completes when the child process has exited.
	Run(env *Env, args Args) (*launch.Task, error)
}

// ReportExit returns the completion handler shared by every action. A
// non-zero exit code is reported once, naming the full command.
func ReportExit(n output.Notifier) launch.ExitFunc {
	return func(inv launch.Invocation, exitCode int) {
		if exitCode != 0 {
			n.Error(fmt.Sprintf("'%s' failed!\nView the log for more details", inv.String()))
		}
	}
}

// ProjectDir resolves the ASP.NET project directory for env.
func (env *Env) ProjectDir() (string, bool) {
	return project.AspnetProjectDir(env.Workspace, env.Settings, env.Notifier)
}

// ListMigrations returns the migrations of the resolved project. It reports
// and returns false when the project cannot be resolved or holds none.
func (env *Env) ListMigrations() ([]string, bool) {
	dir, ok := env.ProjectDir()
	if !ok {
		return nil, false
	}

	names, err := migrations.List(env.fs(), dir)
	if err != nil {
		env.Notifier.Error(err.Error())
		return nil, false
	}
	if len(names) == 0 {
		env.Notifier.Error("No migrations found!")
		return nil, false
	}
	return names, true
}

func (env *Env) fs() afero.Fs {
	if env.Fs == nil {
		return afero.NewOsFs()
	}
	return env.Fs
}

func (env *Env) dotnet() string {
	return settings.GetOptional(env.Settings, settings.KeyDotnet, "dotnet")
}

// input returns args[key], prompting with spec when the key is missing.
// Surrounding whitespace is trimmed either way.
func (env *Env) input(args Args, key string, spec prompt.Spec) (string, error) {
	if v, ok := args[key]; ok {
		return strings.TrimSpace(v), nil
	}
	if env.Prompter == nil {
		return "", nil
	}

	v, err := env.Prompter.Ask(spec)
	if err != nil {
		if !errors.Is(err, prompt.ErrCancelled) {
			env.Notifier.Error(err.Error())
		}
		return "", fmt.Errorf("%w: %w", ErrAborted, err)
	}
	return strings.TrimSpace(v), nil
}

// required reports what when value is empty.
func (env *Env) required(value, what string) error {
	if value == "" {
		env.Notifier.Error(what + " cannot be empty")
		return fmt.Errorf("%w: empty %s", ErrAborted, what)
	}
	return nil
}

func (env *Env) aborted(reason string) error {
	return fmt.Errorf("%w: %s", ErrAborted, reason)
}

// start launches dotnet with args in dir.
func (env *Env) start(dir string, args ...string) (*launch.Task, error) {
	inv := launch.NewInvocation(dir, append([]string{env.dotnet()}, args...)...)

	task, err := env.Launcher.Launch(ReportExit(env.Notifier), inv)
	if err != nil {
		// The launcher has already told the user about a busy slot.
		if !errors.Is(err, launch.ErrBusy) {
			env.Notifier.Error(err.Error())
		}
		return nil, fmt.Errorf("%w: %w", ErrAborted, err)
	}
	return task, nil
}
