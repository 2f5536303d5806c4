package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/simonhull/heron"
	"github.com/simonhull/heron/internal/actions"
	"github.com/simonhull/heron/internal/launch"
	"github.com/simonhull/heron/internal/logging"
	"github.com/simonhull/heron/internal/output"
	"github.com/simonhull/heron/internal/project"
	"github.com/simonhull/heron/internal/prompt"
	"github.com/simonhull/heron/internal/settings"
)

// errReported is returned once the user has already been told what went
// wrong; main exits non-zero without printing it again.
var errReported = errors.New("already reported")

// IsReported reports whether err has already been shown to the user.
func IsReported(err error) bool {
	return errors.Is(err, errReported)
}

// app carries state shared by every subcommand of one heron process.
type app struct {
	verbose     bool
	projectRoot string

	gate     *launch.Gate
	registry *actions.Registry

	stderr      io.Writer
	prompter    prompt.Prompter
	newLauncher func(opts *launch.Options) actions.Launcher
}

func newApp() *app {
	return &app{
		gate:     &launch.Gate{},
		registry: actions.NewBuiltinRegistry(),
		stderr:   os.Stderr,
		newLauncher: func(opts *launch.Options) actions.Launcher {
			return launch.NewLauncher(opts)
		},
	}
}

// RootCmd creates and returns the root command for the heron CLI
func RootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heron",
		Short: "Entity Framework and Razor Page commands for ASP.NET Core projects",
		Long: `heron drives the dotnet CLI for the ASP.NET Core project in your solution.

It reads heron.yml from the solution root, prompts for anything missing, and
runs one dotnet command at a time while streaming its output:
• Add, remove and apply Entity Framework migrations
• Update the database to a specific migration, or drop it
• Scaffold Razor Pages

Get started:
  heron init --project-dir src/MyApp`,
		Version:       heron.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(a.verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().StringVarP(&a.projectRoot, "project", "p", "", "Solution root containing heron.yml (default: search upwards from the working directory)")

	cmd.AddCommand(a.migrationsCmd())
	cmd.AddCommand(a.databaseCmd())
	cmd.AddCommand(a.pageCmd())
	cmd.AddCommand(a.paletteCmd())
	cmd.AddCommand(a.initCmd())
	cmd.AddCommand(a.versionCmd())

	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "heron v%s\n", heron.Version)
		},
	}
}

func (a *app) workspace() project.Workspace {
	if a.projectRoot != "" {
		return project.Fixed(a.projectRoot)
	}
	return project.DetectFromWorkingDir()
}

func (a *app) prompt() prompt.Prompter {
	if a.prompter == nil {
		a.prompter = prompt.NewTerminal()
	}
	return a.prompter
}

// env assembles the collaborators for one action. The returned cleanup
// closes the log file.
func (a *app) env() (*actions.Env, func(), error) {
	notifier := output.NewConsole(a.stderr)
	ws := a.workspace()

	var bag *viper.Viper
	root, ok := ws.ProjectPath()
	if ok {
		output.Verbose(fmt.Sprintf("Solution root: %s", root))
		var err error
		bag, err = settings.Load(root)
		if err != nil {
			return nil, nil, err
		}
	} else {
		bag = viper.New()
	}

	logFile := settings.GetOptional(bag, settings.KeyLogFile, "")
	if logFile != "" && !filepath.IsAbs(logFile) && ok {
		logFile = filepath.Join(root, logFile)
	}
	if logFile != "" {
		output.Verbose(fmt.Sprintf("Logging to: %s", logFile))
	}

	logger, closer, err := logging.New(logging.Options{
		Console: a.stderr,
		File:    logFile,
		Verbose: a.verbose,
	})
	if err != nil {
		return nil, nil, err
	}

	env := &actions.Env{
		Workspace: ws,
		Settings:  bag,
		Notifier:  notifier,
		Prompter:  a.prompt(),
		Launcher: a.newLauncher(&launch.Options{
			Gate:     a.gate,
			Logger:   &logger,
			Notifier: notifier,
		}),
	}

	return env, func() { _ = closer.Close() }, nil
}

// runAction runs a registered action and waits for its child process.
func (a *app) runAction(name string, args actions.Args) error {
	env, cleanup, err := a.env()
	if err != nil {
		return err
	}
	defer cleanup()

	task, err := a.registry.Run(env, name, args)
	return a.wait(task, err)
}

func (a *app) wait(task *launch.Task, err error) error {
	if err != nil {
		if errors.Is(err, actions.ErrAborted) {
			return errReported
		}
		return err
	}
	if task == nil {
		return nil
	}

	code := task.Wait()
	if err := task.Err(); err != nil {
		output.Verbose(err.Error())
	}
	if code != 0 {
		// ReportExit has already shown the failure.
		return errReported
	}

	output.Success(fmt.Sprintf("%s finished", task.Invocation().String()))
	return nil
}
