// ABOUTME: Settings loading with global + project config merge, YAML-based
// ABOUTME: Environment variables GOVENV_PYTHON / GOVENV_BASE_DIR win over files

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the merged manager configuration.
type Settings struct {
	Python  string   `yaml:"python,omitempty"`   // base interpreter path
	BaseDir string   `yaml:"base_dir,omitempty"` // root for managed environments
	PipArgs []string `yaml:"pip_args,omitempty"` // extra pip install arguments
	Debug   bool     `yaml:"debug,omitempty"`
}

// GlobalConfigFile returns the user-level config path.
func GlobalConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "govenv", "config.yaml")
}

// ProjectConfigFile returns the project-local config path.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(projectRoot, ".govenv.yaml")
}

// Load reads and merges global and project-local settings, then applies
// environment variable overrides. Project settings override global settings;
// environment variables override both. Missing files are not an error.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	var project *Settings
	if projectRoot != "" {
		project, err = loadFile(ProjectConfigFile(projectRoot))
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading project config: %w", err)
		}
	}

	merged := merge(global, project)
	applyEnv(merged)
	return merged, nil
}

// loadFile reads Settings from a YAML file. The os.IsNotExist error from
// reading passes through so callers can treat a missing file as empty.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings. Non-zero project
// values win.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global
	if project.Python != "" {
		result.Python = project.Python
	}
	if project.BaseDir != "" {
		result.BaseDir = project.BaseDir
	}
	if len(project.PipArgs) > 0 {
		result.PipArgs = project.PipArgs
	}
	if project.Debug {
		result.Debug = true
	}
	return &result
}

// applyEnv applies environment variable overrides in place.
func applyEnv(s *Settings) {
	if python := os.Getenv("GOVENV_PYTHON"); python != "" {
		s.Python = python
	}
	if baseDir := os.Getenv("GOVENV_BASE_DIR"); baseDir != "" {
		s.BaseDir = baseDir
	}
}
