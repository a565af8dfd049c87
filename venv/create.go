// ABOUTME: Environment creation via the base interpreter's venv module
// ABOUTME: Optional requirement install in one pip invocation, fail-fast

package venv

import (
	"context"
	"fmt"
	"os"

	"github.com/mauromedda/govenv/envfile"
)

// CreateVenv materializes a new environment at <baseDir>/<name> and, when
// requirements are given, installs them with a single pip invocation.
// Returns ErrVenvExists if a directory with that name already exists.
//
// Installation is fail-fast: a pip failure surfaces immediately and the
// environment is left on disk in whatever partially-populated state the
// installer produced. There is no rollback.
func (m *Manager) CreateVenv(ctx context.Context, name string, requirements []Requirement) (string, error) {
	path, err := m.venvPath(name)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrVenvExists, path)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("checking %s: %w", path, err)
	}

	m.log.Debug("creating venv", "name", name, "path", path)
	if _, err := runOutput(ctx, m.baseInterpreter, "-m", "venv", path); err != nil {
		return "", fmt.Errorf("creating venv %s: %w", name, err)
	}

	if len(requirements) > 0 {
		if err := m.InstallRequirements(ctx, path, requirements); err != nil {
			return "", err
		}
	}
	return path, nil
}

// GetOrCreateVenv returns the first existing environment whose installed
// packages satisfy every requirement, creating a fresh one under name when
// none matches.
func (m *Manager) GetOrCreateVenv(ctx context.Context, name string, requirements []Requirement) (string, error) {
	if len(requirements) > 0 {
		matches, err := m.FindVenvsByRequirements(ctx, requirements)
		if err != nil {
			return "", err
		}
		if len(matches) > 0 {
			return matches[0], nil
		}
	}
	return m.CreateVenv(ctx, name, requirements)
}

// CreateVenvFromFile creates an environment from a declarative YAML file
// holding the environment name and its requirement list.
func (m *Manager) CreateVenvFromFile(ctx context.Context, path string) (string, error) {
	file, err := envfile.Load(path)
	if err != nil {
		return "", err
	}

	reqs, err := ParseRequirements(file.Requirements)
	if err != nil {
		return "", fmt.Errorf("parsing requirements from %s: %w", path, err)
	}
	return m.CreateVenv(ctx, file.Name, reqs)
}
