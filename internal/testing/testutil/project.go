// Package testutil provides fixtures shared by heron's package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestProject represents a temporary ASP.NET solution for testing
type TestProject struct {
	Root string
	t    *testing.T
}

// NewTestProject creates a temporary project root
func NewTestProject(t *testing.T) *TestProject {
	t.Helper()

	return &TestProject{
		Root: t.TempDir(),
		t:    t,
	}
}

// WriteSettings writes heron.yml into the project root
func (p *TestProject) WriteSettings(content string) string {
	p.t.Helper()
	return p.WriteFile("heron.yml", content)
}

// WriteFile writes content to a path relative to the project root,
// creating parent directories as needed
func (p *TestProject) WriteFile(rel, content string) string {
	p.t.Helper()

	path := filepath.Join(p.Root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		p.t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		p.t.Fatal(err)
	}
	return path
}

// Mkdir creates a directory relative to the project root
func (p *TestProject) Mkdir(rel string) string {
	p.t.Helper()

	path := filepath.Join(p.Root, rel)
	if err := os.MkdirAll(path, 0755); err != nil {
		p.t.Fatal(err)
	}
	return path
}
