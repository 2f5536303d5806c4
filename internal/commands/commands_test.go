package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/heron/internal/actions"
	"github.com/simonhull/heron/internal/launch"
	"github.com/simonhull/heron/internal/output"
	"github.com/simonhull/heron/internal/prompt"
	"github.com/simonhull/heron/internal/settings"
	"github.com/simonhull/heron/internal/testing/testutil"
)

type fakeLauncher struct {
	mu    sync.Mutex
	calls []launch.Invocation
}

func (f *fakeLauncher) Launch(onExit launch.ExitFunc, inv launch.Invocation) (*launch.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, inv)
	return nil, nil
}

type harness struct {
	app      *app
	launcher *fakeLauncher
	stderr   *bytes.Buffer
	stdout   *bytes.Buffer
	project  *testutil.TestProject
}

func newHarness(t *testing.T, stdin string) *harness {
	t.Helper()

	p := testutil.NewTestProject(t)
	p.WriteSettings("aspnet_extras_project_directory: src/Web\n")

	var stdout, stderr bytes.Buffer
	output.SetOutput(&stdout)
	t.Cleanup(func() { output.SetOutput(nil) })

	fl := &fakeLauncher{}
	a := newApp()
	a.stderr = &stderr
	a.prompter = prompt.NewLineTerminal(strings.NewReader(stdin), &stdout)
	a.newLauncher = func(*launch.Options) actions.Launcher { return fl }

	return &harness{app: a, launcher: fl, stderr: &stderr, stdout: &stdout, project: p}
}

func (h *harness) run(args ...string) error {
	cmd := newRootCmd(h.app)
	cmd.SetArgs(append([]string{"--project", h.project.Root}, args...))
	cmd.SetOut(h.stdout)
	cmd.SetErr(h.stderr)
	return cmd.Execute()
}

func (h *harness) commands() []string {
	h.launcher.mu.Lock()
	defer h.launcher.mu.Unlock()

	var out []string
	for _, inv := range h.launcher.calls {
		out = append(out, inv.String())
	}
	return out
}

func TestMigrationsAdd(t *testing.T) {
	h := newHarness(t, "")

	require.NoError(t, h.run("migrations", "add", "InitialCreate"))

	assert.Equal(t, []string{"dotnet ef migrations add InitialCreate"}, h.commands())
	assert.Equal(t, filepath.Join(h.project.Root, "src", "Web"), h.launcher.calls[0].Dir())
}

func TestMigrationsAdd_Prompted(t *testing.T) {
	h := newHarness(t, "AddUsers\n")

	require.NoError(t, h.run("migrations", "add"))
	assert.Equal(t, []string{"dotnet ef migrations add AddUsers"}, h.commands())
}

func TestMigrationsAdd_EmptyName(t *testing.T) {
	h := newHarness(t, "\n")

	err := h.run("migrations", "add")
	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.Empty(t, h.commands())
	assert.Contains(t, h.stderr.String(), "name cannot be empty")
}

func TestMigrationsAdd_BlankArgument(t *testing.T) {
	h := newHarness(t, "")

	err := h.run("migrations", "add", "  ")
	require.Error(t, err)
	assert.Contains(t, h.stderr.String(), "name cannot be empty")
	assert.Empty(t, h.commands())
}

func TestSimpleCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"migrations", "remove"}, "dotnet ef migrations remove"},
		{[]string{"database", "update"}, "dotnet ef database update"},
		{[]string{"database", "update", "20230101000000_Init"}, "dotnet ef database update 20230101000000_Init"},
		{[]string{"database", "drop"}, "dotnet ef database drop"},
		{[]string{"page", "add", "--name", "Index", "--dir", "Pages", "--namespace", "MyApp.Pages"}, "dotnet new page --name Index -o Pages -na MyApp.Pages"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			h := newHarness(t, "")
			require.NoError(t, h.run(tt.args...))
			assert.Equal(t, []string{tt.want}, h.commands())
		})
	}
}

func TestDatabaseUpdate_Pick(t *testing.T) {
	h := newHarness(t, "1\n")
	h.project.WriteFile("src/Web/Migrations/20230101000000_Init.cs", "")
	h.project.WriteFile("src/Web/Migrations/20230101000000_Init.Designer.cs", "")

	require.NoError(t, h.run("database", "update", "--pick"))
	assert.Equal(t, []string{"dotnet ef database update 20230101000000_Init"}, h.commands())
}

func TestPageAdd_PromptsForMissingFlags(t *testing.T) {
	h := newHarness(t, "Pages/Admin\nMyApp.Pages.Admin\n")

	require.NoError(t, h.run("page", "add", "--name", "Index"))
	assert.Equal(t, []string{"dotnet new page --name Index -o Pages/Admin -na MyApp.Pages.Admin"}, h.commands())
}

func TestPageAdd_ExplicitEmptyFlag(t *testing.T) {
	h := newHarness(t, "")

	err := h.run("page", "add", "--name", "Index", "--dir", "Pages", "--namespace", "")
	require.Error(t, err)
	assert.Contains(t, h.stderr.String(), "namespace cannot be empty")
	assert.Empty(t, h.commands())
}

func TestMigrationsList(t *testing.T) {
	h := newHarness(t, "")
	h.project.WriteFile("src/Web/Migrations/20230101000000_Init.cs", "")
	h.project.WriteFile("src/Web/Migrations/Helper.cs", "")

	require.NoError(t, h.run("migrations", "list"))
	assert.Contains(t, h.stdout.String(), "20230101000000_Init")
	assert.NotContains(t, h.stdout.String(), "Helper")
	assert.Empty(t, h.commands())
}

func TestMigrationsList_None(t *testing.T) {
	h := newHarness(t, "")

	err := h.run("migrations", "list")
	require.Error(t, err)
	assert.Contains(t, h.stderr.String(), "No migrations found!")
}

func TestMissingSetting(t *testing.T) {
	h := newHarness(t, "")
	h.project.WriteSettings("dotnet: dotnet\n")

	err := h.run("database", "drop")
	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.Contains(t, h.stderr.String(), "Please configure 'aspnet_extras_project_directory' in your project settings")
	assert.Empty(t, h.commands())
}

func TestPalette(t *testing.T) {
	h := newHarness(t, "Updates the database\n")

	require.NoError(t, h.run("palette"))
	assert.Equal(t, []string{"dotnet ef database update"}, h.commands())
}

func TestInit(t *testing.T) {
	h := newHarness(t, "")
	root := t.TempDir()
	h.project.Root = root

	require.NoError(t, h.run("init", "--project-dir", "src/Api"))

	v, err := settings.Load(root)
	require.NoError(t, err)
	assert.Equal(t, "src/Api", v.GetString(settings.KeyProjectDirectory))

	err = h.run("init", "--project-dir", "src/Other")
	assert.ErrorContains(t, err, "already exists")
}

func TestVersion(t *testing.T) {
	h := newHarness(t, "")

	require.NoError(t, h.run("version"))
	assert.Contains(t, h.stdout.String(), "heron v")
}

func TestRealLaunch(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX true/false as the dotnet program")
	}

	tests := []struct {
		program string
		wantErr bool
	}{
		{"true", false},
		{"false", true},
	}

	for _, tt := range tests {
		t.Run(tt.program, func(t *testing.T) {
			h := newHarness(t, "")
			h.app.newLauncher = func(opts *launch.Options) actions.Launcher { return launch.NewLauncher(opts) }
			h.project.WriteSettings("aspnet_extras_project_directory: src/Web\ndotnet: " + tt.program + "\nlog_file: logs/heron.log\n")
			require.NoError(t, os.MkdirAll(filepath.Join(h.project.Root, "src", "Web"), 0755))

			err := h.run("database", "drop")

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsReported(err))
				assert.Contains(t, h.stderr.String(), "'false ef database drop' failed!")
			} else {
				require.NoError(t, err)
				assert.NotContains(t, h.stderr.String(), "failed!")
			}

			data, err := os.ReadFile(filepath.Join(h.project.Root, "logs", "heron.log"))
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.program+" ef database drop")
			assert.False(t, h.app.gate.Busy())
		})
	}
}
