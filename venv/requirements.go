// ABOUTME: Requirement parsing for pip-style "name==version" specifier strings
// ABOUTME: Normalizes names per pip rules and loads requirements files

package venv

import (
	"fmt"
	"os"
	"strings"
)

// Requirement is a package name with an optional exact version pin.
// Anything beyond "name==version" is kept opaque in Raw and passed through
// to pip unmodified.
type Requirement struct {
	Name    string // normalized distribution name
	Version string // empty when unpinned
	Raw     string // original specifier string
}

// ParseRequirement parses a single requirement line. Comments and surrounding
// whitespace are stripped. Returns an error for empty or comment-only lines.
func ParseRequirement(raw string) (Requirement, error) {
	line := strings.TrimSpace(raw)
	if idx := strings.Index(line, " #"); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
	}
	if line == "" || strings.HasPrefix(line, "#") {
		return Requirement{}, fmt.Errorf("empty requirement %q", raw)
	}

	name, version, _ := strings.Cut(line, "==")
	return Requirement{
		Name:    NormalizeName(name),
		Version: strings.TrimSpace(version),
		Raw:     line,
	}, nil
}

// ParseRequirements parses a list of requirement lines, skipping blanks and
// comments.
func ParseRequirements(lines []string) ([]Requirement, error) {
	reqs := make([]Requirement, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		req, err := ParseRequirement(line)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// ParseRequirementsFile reads a requirements.txt-style file.
func ParseRequirementsFile(path string) ([]Requirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading requirements file: %w", err)
	}
	return ParseRequirements(strings.Split(string(data), "\n"))
}

// NormalizeName lowers a distribution name and folds underscores and dots to
// hyphens, the same canonical form pip reports in its listings.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "-")
	name = strings.ReplaceAll(name, ".", "-")
	return name
}

// matchedBy reports whether the installed name->version mapping satisfies the
// requirement: the package must be present, and if the requirement pins a
// version the installed version must match it exactly.
func (r Requirement) matchedBy(installed map[string]string) bool {
	version, ok := installed[r.Name]
	if !ok {
		return false
	}
	return r.Version == "" || version == r.Version
}

// specifiers renders requirements back to pip command-line arguments.
func specifiers(reqs []Requirement) []string {
	args := make([]string, len(reqs))
	for i, r := range reqs {
		args[i] = r.Raw
	}
	return args
}
