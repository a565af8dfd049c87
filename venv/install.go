// ABOUTME: Requirement and wheel installation into an existing environment
// ABOUTME: Single pip invocation per call; output appended to pip-install.log

package venv

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// InstallRequirements installs the given requirements into an existing
// environment with one pip invocation. A non-zero pip exit surfaces as
// ErrInstallFailed with pip's stderr attached.
func (m *Manager) InstallRequirements(ctx context.Context, nameOrPath string, requirements []Requirement) error {
	if len(requirements) == 0 {
		return nil
	}
	path, err := m.resolve(nameOrPath)
	if err != nil {
		return err
	}

	args := append([]string{"-m", "pip", "install"}, m.pipArgs...)
	args = append(args, specifiers(requirements)...)

	m.log.Debug("installing requirements", "venv", path, "count", len(requirements))
	logPath := filepath.Join(path, installLogName)
	if err := runLogged(ctx, logPath, pythonPath(path), args...); err != nil {
		return fmt.Errorf("%w: installing into %s: %v", ErrInstallFailed, path, err)
	}
	return nil
}

// InstallRequirementsFile installs from a requirements.txt-style file.
func (m *Manager) InstallRequirementsFile(ctx context.Context, nameOrPath, reqFile string) error {
	reqs, err := ParseRequirementsFile(reqFile)
	if err != nil {
		return err
	}
	return m.InstallRequirements(ctx, nameOrPath, reqs)
}

// InstallWheels installs every .whl file found under wheelsDir (recursively,
// sorted by path) into the environment with one pip invocation. Returns the
// wheel files that were installed; an empty directory is a no-op.
func (m *Manager) InstallWheels(ctx context.Context, nameOrPath, wheelsDir string) ([]string, error) {
	path, err := m.resolve(nameOrPath)
	if err != nil {
		return nil, err
	}

	var wheels []string
	err = filepath.WalkDir(wheelsDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(p) == ".whl" {
			wheels = append(wheels, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning wheels directory: %w", err)
	}
	if len(wheels) == 0 {
		return nil, nil
	}
	sort.Strings(wheels)

	args := append([]string{"-m", "pip", "install"}, m.pipArgs...)
	args = append(args, wheels...)

	m.log.Debug("installing wheels", "venv", path, "count", len(wheels))
	logPath := filepath.Join(path, installLogName)
	if err := runLogged(ctx, logPath, pythonPath(path), args...); err != nil {
		return nil, fmt.Errorf("%w: installing wheels into %s: %v", ErrInstallFailed, path, err)
	}
	return wheels, nil
}
