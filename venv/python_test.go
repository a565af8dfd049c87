// ABOUTME: Tests for per-OS interpreter layout and environment detection
// ABOUTME: pyvenv.cfg presence distinguishes environments from plain dirs

package venv

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestPythonPathLayout(t *testing.T) {
	t.Parallel()

	got := pythonPath(filepath.Join("base", "env"))
	var want string
	if runtime.GOOS == "windows" {
		want = filepath.Join("base", "env", "Scripts", "python.exe")
	} else {
		want = filepath.Join("base", "env", "bin", "python")
	}
	if got != want {
		t.Errorf("pythonPath = %q; want %q", got, want)
	}
}

func TestIsVenv(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if isVenv(dir) {
		t.Error("plain directory should not be a venv")
	}

	if err := os.WriteFile(filepath.Join(dir, pyvenvConfig), []byte("home = /usr\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !isVenv(dir) {
		t.Error("directory with pyvenv.cfg should be a venv")
	}

	if isVenv(filepath.Join(dir, "missing")) {
		t.Error("nonexistent path should not be a venv")
	}
}
