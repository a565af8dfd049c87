// ABOUTME: Core types for managed virtual environments and installed packages
// ABOUTME: Stable records behind the pip output parsing boundary

package venv

// Venv identifies a managed environment: a direct child of the base directory.
type Venv struct {
	Name string
	Path string
}

// Package is one installed distribution inside an environment.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
