// ABOUTME: Manager for Python virtual environments rooted at a base directory
// ABOUTME: Wraps a base interpreter; directory presence is the source of truth

package venv

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mauromedda/govenv/internal/fuzzy"
)

// Config configures a Manager. Zero fields fall back to defaults: the first
// of python3/python found in PATH, and ~/.govenv/venvs for the base
// directory.
type Config struct {
	// BaseInterpreter is the executable used to bootstrap new environments.
	BaseInterpreter string

	// BaseDir is the directory under which all managed environments live.
	// Created if absent.
	BaseDir string

	// PipArgs are extra arguments appended to every pip install invocation
	// (e.g. --index-url).
	PipArgs []string

	// Logger receives debug output. Discarded when nil.
	Logger *slog.Logger
}

// Manager creates, inspects, and deletes virtual environments. Environments
// are direct children of the base directory and their on-disk presence is
// the sole record of their existence: there is no index or metadata store.
//
// All operations are synchronous and unsynchronized. Concurrent calls
// against the same environment name may race; that is an accepted
// limitation, not a guarantee.
type Manager struct {
	baseInterpreter string
	baseDir         string
	pipArgs         []string
	log             *slog.Logger
}

// New validates the base interpreter, creates the base directory if needed,
// and returns a Manager.
func New(cfg *Config) (*Manager, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	interpreter := cfg.BaseInterpreter
	if interpreter == "" {
		found, err := defaultInterpreter()
		if err != nil {
			return nil, err
		}
		interpreter = found
	}
	if info, err := os.Stat(interpreter); err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInterpreterNotFound, interpreter)
	}

	baseDir := cfg.BaseDir
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		baseDir = filepath.Join(home, ".govenv", "venvs")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating base directory: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Manager{
		baseInterpreter: interpreter,
		baseDir:         baseDir,
		pipArgs:         cfg.PipArgs,
		log:             logger,
	}, nil
}

// BaseDir returns the directory under which environments are managed.
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// BaseInterpreter returns the interpreter used to bootstrap environments.
func (m *Manager) BaseInterpreter() string {
	return m.baseInterpreter
}

// Venvs enumerates all managed environments in directory order.
func (m *Manager) Venvs() ([]Venv, error) {
	entries, err := os.ReadDir(m.baseDir)
	if err != nil {
		return nil, fmt.Errorf("reading base directory: %w", err)
	}

	var venvs []Venv
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(m.baseDir, entry.Name())
		if !isVenv(path) {
			continue
		}
		venvs = append(venvs, Venv{Name: entry.Name(), Path: path})
	}
	return venvs, nil
}

// DeleteVenv recursively removes the named environment. Returns
// ErrVenvNotFound if no directory with that name exists. The removal is not
// atomic: a partial directory left behind by a crash is a fresh delete
// target on retry.
func (m *Manager) DeleteVenv(name string) error {
	path, err := m.venvPath(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrVenvNotFound, name)
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}

	m.log.Debug("deleting venv", "name", name, "path", path)
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// ClearAll deletes every managed environment and returns the removed paths.
func (m *Manager) ClearAll() ([]string, error) {
	venvs, err := m.Venvs()
	if err != nil {
		return nil, err
	}

	removed := make([]string, 0, len(venvs))
	for _, v := range venvs {
		if err := os.RemoveAll(v.Path); err != nil {
			return removed, fmt.Errorf("removing %s: %w", v.Path, err)
		}
		removed = append(removed, v.Path)
	}
	return removed, nil
}

// SearchVenvs fuzzy-matches managed environment names against pattern and
// returns them best match first. An empty pattern returns all environments
// in directory order.
func (m *Manager) SearchVenvs(pattern string) ([]Venv, error) {
	venvs, err := m.Venvs()
	if err != nil {
		return nil, err
	}
	if pattern == "" {
		return venvs, nil
	}

	names := make([]string, len(venvs))
	for i, v := range venvs {
		names[i] = v.Name
	}

	matches := fuzzy.Rank(pattern, names)
	ranked := make([]Venv, len(matches))
	for i, match := range matches {
		ranked[i] = venvs[match.Index]
	}
	return ranked, nil
}

// PythonPath returns the interpreter path inside the named or absolute
// environment. Returns ErrVenvNotFound if the environment does not exist.
func (m *Manager) PythonPath(nameOrPath string) (string, error) {
	path, err := m.resolve(nameOrPath)
	if err != nil {
		return "", err
	}
	return pythonPath(path), nil
}

// CopyInstallLog copies the environment's pip install log into destDir.
// Returns the destination path, or "" if the environment has no log yet.
func (m *Manager) CopyInstallLog(nameOrPath, destDir string) (string, error) {
	path, err := m.resolve(nameOrPath)
	if err != nil {
		return "", err
	}

	logPath := filepath.Join(path, installLogName)
	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading install log: %w", err)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("creating destination directory: %w", err)
	}
	dest := filepath.Join(destDir, installLogName)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("writing install log copy: %w", err)
	}
	return dest, nil
}

// venvPath validates a name and returns its directory under the base
// directory. Names must be plain path components: environments exist only as
// direct children of the base directory.
func (m *Manager) venvPath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid environment name %q", name)
	}
	return filepath.Join(m.baseDir, name), nil
}

// resolve maps a name or absolute path to an existing environment directory.
func (m *Manager) resolve(nameOrPath string) (string, error) {
	path := nameOrPath
	if !filepath.IsAbs(path) {
		resolved, err := m.venvPath(nameOrPath)
		if err != nil {
			return "", err
		}
		path = resolved
	}
	if !isVenv(path) {
		return "", fmt.Errorf("%w: %s", ErrVenvNotFound, nameOrPath)
	}
	return path, nil
}

// defaultInterpreter looks up python3, then python, in PATH.
func defaultInterpreter() (string, error) {
	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: no python3 or python in PATH", ErrInterpreterNotFound)
}
