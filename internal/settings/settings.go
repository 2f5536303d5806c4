// Package settings reads heron's project-scoped settings.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/heron/internal/output"
)

// Setting keys understood by heron.
const (
	KeyProjectDirectory = "aspnet_extras_project_directory"
	KeyDotnet           = "dotnet"
	KeyLogFile          = "log_file"
)

// ConfigName is the settings file base name; viper resolves the extension.
const ConfigName = "heron"

// Extensions lists the settings file extensions heron looks for.
var Extensions = []string{"yml", "yaml", "json", "toml"}

// Bag is a read-only key/value view of project settings.
// *viper.Viper satisfies it.
type Bag interface {
	IsSet(key string) bool
	Get(key string) any
}

// GetRequired returns the value stored under key. When the key is missing it
// reports an error through n and returns false.
func GetRequired(bag Bag, key string, n output.Notifier) (string, bool) {
	if bag == nil || !bag.IsSet(key) {
		n.Error(fmt.Sprintf("Please configure '%s' in your project settings", key))
		return "", false
	}

	value, err := cast.ToStringE(bag.Get(key))
	if err != nil {
		n.Error(fmt.Sprintf("Setting '%s' must be a string: %v", key, err))
		return "", false
	}
	return value, true
}

// GetOptional returns the value under key, or fallback when unset or empty.
func GetOptional(bag Bag, key, fallback string) string {
	if bag == nil || !bag.IsSet(key) {
		return fallback
	}
	value := cast.ToString(bag.Get(key))
	if value == "" {
		return fallback
	}
	return value
}

// Load reads the settings file from projectRoot. A missing file yields an
// empty bag; environment variables prefixed with HERON_ override file values.
func Load(projectRoot string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(ConfigName)
	v.AddConfigPath(projectRoot)

	v.SetEnvPrefix("HERON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{KeyProjectDirectory, KeyDotnet, KeyLogFile} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	return v, nil
}

// FindFile returns the settings file in dir, if any.
func FindFile(dir string) (string, bool) {
	for _, ext := range Extensions {
		path := filepath.Join(dir, ConfigName+"."+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Init writes a starter heron.yml into projectRoot.
func Init(projectRoot, projectDir string, force bool) (string, error) {
	if projectDir == "" {
		return "", fmt.Errorf("project directory cannot be empty")
	}

	path := filepath.Join(projectRoot, ConfigName+".yml")
	if existing, ok := FindFile(projectRoot); ok {
		if !force {
			return "", fmt.Errorf("%s already exists (use --force to overwrite)", existing)
		}
		// Another extension would shadow the new file on the next Load.
		if existing != path {
			if err := os.Remove(existing); err != nil {
				return "", fmt.Errorf("removing %s: %w", existing, err)
			}
		}
	}

	doc := struct {
		ProjectDirectory string `yaml:"aspnet_extras_project_directory"`
		Dotnet           string `yaml:"dotnet"`
	}{
		ProjectDirectory: filepath.ToSlash(projectDir),
		Dotnet:           "dotnet",
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return "", fmt.Errorf("encoding settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing settings: %w", err)
	}
	return path, nil
}
