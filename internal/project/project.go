package project

import (
	"os"
	"path/filepath"

	"github.com/simonhull/heron/internal/output"
	"github.com/simonhull/heron/internal/settings"
)

// Workspace reports the root of the open project, if any.
type Workspace interface {
	ProjectPath() (string, bool)
}

type workspace struct {
	root string
}

func (w workspace) ProjectPath() (string, bool) {
	return w.root, w.root != ""
}

// Fixed returns a Workspace rooted at path. An empty path means no project
// is open.
func Fixed(path string) Workspace {
	if path != "" {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}
	return workspace{root: path}
}

// None returns a Workspace with no open project.
func None() Workspace {
	return workspace{}
}

// Detect walks from start towards the filesystem root and returns a
// Workspace rooted at the first directory holding a heron settings file.
func Detect(start string) Workspace {
	dir, err := filepath.Abs(start)
	if err != nil {
		return None()
	}

	for {
		if _, ok := settings.FindFile(dir); ok {
			return workspace{root: dir}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return None()
		}
		dir = parent
	}
}

// DetectFromWorkingDir is Detect starting at the process working directory.
func DetectFromWorkingDir() Workspace {
	cwd, err := os.Getwd()
	if err != nil {
		return None()
	}
	return Detect(cwd)
}

// ProjectDir returns the workspace root, reporting an error when no project
// is open.
func ProjectDir(ws Workspace, n output.Notifier) (string, bool) {
	if ws == nil {
		n.Error("Please open a project!")
		return "", false
	}
	root, ok := ws.ProjectPath()
	if !ok {
		n.Error("Please open a project!")
		return "", false
	}
	return root, true
}

// AspnetProjectDir joins the configured project directory onto the
// workspace root.
func AspnetProjectDir(ws Workspace, bag settings.Bag, n output.Notifier) (string, bool) {
	root, ok := ProjectDir(ws, n)
	if !ok {
		return "", false
	}

	rel, ok := settings.GetRequired(bag, settings.KeyProjectDirectory, n)
	if !ok {
		return "", false
	}

	return filepath.Join(root, rel), true
}
