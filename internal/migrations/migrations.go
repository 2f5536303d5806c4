// Package migrations discovers Entity Framework migrations in a project.
package migrations

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Dir is the folder, relative to the project directory, that holds
// migration sources.
const Dir = "Migrations"

// List returns the names of the migrations under projectDir/Migrations.
// A name is a *.cs file's base name without its extension; designer files
// and files without an underscore are skipped. The order follows the
// filesystem and is not sorted.
func List(fs afero.Fs, projectDir string) ([]string, error) {
	pattern := filepath.Join(projectDir, Dir, "*.cs")

	files, err := afero.Glob(fs, pattern)
	if err != nil {
		return nil, fmt.Errorf("listing migrations: %w", err)
	}

	var names []string
	for _, f := range files {
		base := filepath.Base(f)
		if !IsMigrationFile(base) {
			continue
		}
		names = append(names, strings.TrimSuffix(base, filepath.Ext(base)))
	}
	return names, nil
}

// IsMigrationFile reports whether a file name looks like a migration
// source rather than a designer file or model snapshot.
func IsMigrationFile(name string) bool {
	return strings.Contains(name, "_") && !strings.Contains(name, "Designer")
}
