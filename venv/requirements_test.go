// ABOUTME: Tests for requirement parsing, normalization, and matching
// ABOUTME: Table-driven over specifier strings and requirements file content

package venv

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseRequirement(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw         string
		wantName    string
		wantVersion string
	}{
		{"six==1.16.0", "six", "1.16.0"},
		{"pandas", "pandas", ""},
		{"  numpy==1.26.0  ", "numpy", "1.26.0"},
		{"typing_extensions==4.9.0", "typing-extensions", "4.9.0"},
		{"ruamel.yaml==0.18.5", "ruamel-yaml", "0.18.5"},
		{"Django==5.0", "django", "5.0"},
		{"six==1.16.0 # pinned for compat", "six", "1.16.0"},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			req, err := ParseRequirement(tc.raw)
			if err != nil {
				t.Fatalf("ParseRequirement(%q): %v", tc.raw, err)
			}
			if req.Name != tc.wantName {
				t.Errorf("Name = %q; want %q", req.Name, tc.wantName)
			}
			if req.Version != tc.wantVersion {
				t.Errorf("Version = %q; want %q", req.Version, tc.wantVersion)
			}
		})
	}
}

func TestParseRequirement_Invalid(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "# just a comment"} {
		if _, err := ParseRequirement(raw); err == nil {
			t.Errorf("ParseRequirement(%q) succeeded; want error", raw)
		}
	}
}

func TestParseRequirements_SkipsBlanksAndComments(t *testing.T) {
	t.Parallel()

	lines := []string{
		"# dependencies",
		"six==1.16.0",
		"",
		"   ",
		"pandas==2.2.2",
	}

	reqs, err := ParseRequirements(lines)
	if err != nil {
		t.Fatalf("ParseRequirements: %v", err)
	}
	if len(reqs) != 2 {
		t.Fatalf("got %d requirements; want 2", len(reqs))
	}
	if reqs[0].Name != "six" || reqs[1].Name != "pandas" {
		t.Errorf("names = %q, %q; want six, pandas", reqs[0].Name, reqs[1].Name)
	}
}

func TestParseRequirementsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "requirements.txt")
	content := "six==1.16.0\npandas==2.2.2\n# comment\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	reqs, err := ParseRequirementsFile(path)
	if err != nil {
		t.Fatalf("ParseRequirementsFile: %v", err)
	}
	if len(reqs) != 2 {
		t.Errorf("got %d requirements; want 2", len(reqs))
	}
}

func TestParseRequirementsFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := ParseRequirementsFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Django":            "django",
		"typing_extensions": "typing-extensions",
		"ruamel.yaml":       "ruamel-yaml",
		"  six  ":           "six",
	}
	for in, want := range cases {
		if got := NormalizeName(in); got != want {
			t.Errorf("NormalizeName(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestRequirementMatchedBy(t *testing.T) {
	t.Parallel()

	installed := map[string]string{"six": "1.16.0", "pandas": "2.2.2"}

	cases := []struct {
		raw  string
		want bool
	}{
		{"six==1.16.0", true},
		{"six==1.15.0", false},
		{"six", true},
		{"numpy", false},
		{"pandas==2.2.2", true},
	}
	for _, tc := range cases {
		req, err := ParseRequirement(tc.raw)
		if err != nil {
			t.Fatalf("ParseRequirement(%q): %v", tc.raw, err)
		}
		if got := req.matchedBy(installed); got != tc.want {
			t.Errorf("matchedBy(%q) = %v; want %v", tc.raw, got, tc.want)
		}
	}
}
