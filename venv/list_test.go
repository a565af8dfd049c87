// ABOUTME: Tests for pip list output parsing and requirement-set matching
// ABOUTME: Pure unit tests; no process invocation

package venv

import "testing"

func TestParsePipList(t *testing.T) {
	t.Parallel()

	out := `[{"name": "pandas", "version": "2.2.2"}, {"name": "six", "version": "1.16.0"}]`
	pkgs, err := parsePipList(out)
	if err != nil {
		t.Fatalf("parsePipList: %v", err)
	}
	if len(pkgs) != 2 {
		t.Fatalf("got %d packages; want 2", len(pkgs))
	}
	if pkgs[0].Name != "pandas" || pkgs[0].Version != "2.2.2" {
		t.Errorf("pkgs[0] = %+v; want pandas 2.2.2", pkgs[0])
	}
}

func TestParsePipList_Empty(t *testing.T) {
	t.Parallel()

	for _, out := range []string{"", "  \n", "[]"} {
		pkgs, err := parsePipList(out)
		if err != nil {
			t.Fatalf("parsePipList(%q): %v", out, err)
		}
		if len(pkgs) != 0 {
			t.Errorf("parsePipList(%q) = %v; want empty", out, pkgs)
		}
	}
}

func TestParsePipList_Garbage(t *testing.T) {
	t.Parallel()

	if _, err := parsePipList("WARNING: pip is being invoked incorrectly"); err == nil {
		t.Fatal("expected error for non-JSON output")
	}
}

func TestSatisfiesAll(t *testing.T) {
	t.Parallel()

	installed := map[string]string{"pandas": "2.2.2", "six": "1.16.0"}

	both, err := ParseRequirements([]string{"pandas==2.2.2", "six==1.16.0"})
	if err != nil {
		t.Fatal(err)
	}
	if !satisfiesAll(installed, both) {
		t.Error("expected full requirement set to match")
	}

	partial, err := ParseRequirements([]string{"pandas==2.2.2", "numpy==1.26.0"})
	if err != nil {
		t.Fatal(err)
	}
	if satisfiesAll(installed, partial) {
		t.Error("expected missing numpy to fail the conjunctive match")
	}

	if !satisfiesAll(installed, nil) {
		t.Error("empty requirement set matches everything")
	}
}
