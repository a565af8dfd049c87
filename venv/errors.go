// ABOUTME: Package-level error definitions for virtual environment operations
// ABOUTME: Sentinel errors wrapped with context; errors.Is-friendly helpers

package venv

import "errors"

var (
	// ErrInterpreterNotFound indicates the base interpreter executable does not exist.
	ErrInterpreterNotFound = errors.New("base interpreter not found")

	// ErrVenvExists indicates an environment with the same name already exists.
	ErrVenvExists = errors.New("virtual environment already exists")

	// ErrVenvNotFound indicates the requested environment does not exist.
	ErrVenvNotFound = errors.New("virtual environment not found")

	// ErrInstallFailed indicates a pip install or list invocation exited non-zero.
	ErrInstallFailed = errors.New("pip invocation failed")
)

// IsNotFound returns true if the error is ErrVenvNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrVenvNotFound)
}

// IsExists returns true if the error is ErrVenvExists.
func IsExists(err error) bool {
	return errors.Is(err, ErrVenvExists)
}
