// ABOUTME: Installed-package listing via pip list --format=json
// ABOUTME: Conjunctive requirement matching across all managed environments

package venv

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ListInstalledPackages returns the name->version mapping of packages
// installed in the environment. Names are normalized the same way
// requirement names are, so lookups line up. Returns ErrVenvNotFound if the
// path is not a valid environment.
func (m *Manager) ListInstalledPackages(ctx context.Context, nameOrPath string) (map[string]string, error) {
	path, err := m.resolve(nameOrPath)
	if err != nil {
		return nil, err
	}

	out, err := runOutput(ctx, pythonPath(path), "-m", "pip", "list", "--format=json")
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s: %v", ErrInstallFailed, path, err)
	}

	pkgs, err := parsePipList(out)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", path, err)
	}

	installed := make(map[string]string, len(pkgs))
	for _, pkg := range pkgs {
		installed[NormalizeName(pkg.Name)] = pkg.Version
	}
	return installed, nil
}

// FindVenvsByRequirements returns the paths of all managed environments
// whose installed packages satisfy every given requirement (exact name and
// version; an unpinned requirement matches any installed version). The match
// is conjunctive: ALL requirements must be present. Result order follows
// directory enumeration order.
func (m *Manager) FindVenvsByRequirements(ctx context.Context, requirements []Requirement) ([]string, error) {
	venvs, err := m.Venvs()
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, v := range venvs {
		installed, err := m.ListInstalledPackages(ctx, v.Path)
		if err != nil {
			return nil, err
		}
		if satisfiesAll(installed, requirements) {
			matches = append(matches, v.Path)
		}
	}
	return matches, nil
}

// satisfiesAll reports whether installed covers every requirement.
func satisfiesAll(installed map[string]string, requirements []Requirement) bool {
	for _, req := range requirements {
		if !req.matchedBy(installed) {
			return false
		}
	}
	return true
}

// parsePipList decodes `pip list --format=json` output. The JSON format is
// the only stable machine-readable listing pip offers; everything else about
// pip's output is treated as volatile and kept behind this boundary.
func parsePipList(out string) ([]Package, error) {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, nil
	}

	var pkgs []Package
	if err := json.Unmarshal([]byte(out), &pkgs); err != nil {
		return nil, fmt.Errorf("parsing pip list output: %w", err)
	}
	return pkgs, nil
}
