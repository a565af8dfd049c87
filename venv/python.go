// ABOUTME: Interpreter layout inside a created environment, per operating system
// ABOUTME: pyvenv.cfg presence is the validity marker for an environment

package venv

import (
	"os"
	"path/filepath"
	"runtime"
)

// pyvenvConfig is written by `python -m venv` at the environment root.
const pyvenvConfig = "pyvenv.cfg"

// pythonPath returns the interpreter path inside an environment directory.
func pythonPath(venvDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venvDir, "Scripts", "python.exe")
	}
	return filepath.Join(venvDir, "bin", "python")
}

// isVenv reports whether dir looks like a created environment.
func isVenv(dir string) bool {
	if _, err := os.Stat(filepath.Join(dir, pyvenvConfig)); err != nil {
		return false
	}
	return true
}
