// ABOUTME: Process invocation helpers with captured stdout/stderr buffers
// ABOUTME: pip invocations append their combined output to the env install log

package venv

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// installLogName is the per-environment pip output log file.
const installLogName = "pip-install.log"

// runOutput runs a command and returns its stdout. On a non-zero exit the
// captured stderr is folded into the returned error.
func runOutput(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %s: %w", name, msg, err)
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return stdout.String(), nil
}

// runLogged runs a command and appends its combined output to logPath. The
// log write happens whether or not the command succeeds, matching pip's
// behavior of emitting diagnostics on failure.
func runLogged(ctx context.Context, logPath, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if err := appendFile(logPath, stdout.Bytes(), stderr.Bytes()); err != nil {
		if runErr == nil {
			return err
		}
		// Command failure takes precedence over the log write failure.
	}

	if runErr != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w", msg, runErr)
		}
		return runErr
	}
	return nil
}

// appendFile appends chunks to path, creating it if absent.
func appendFile(path string, chunks ...[]byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening install log: %w", err)
	}
	defer f.Close()

	for _, chunk := range chunks {
		if _, err := f.Write(chunk); err != nil {
			return fmt.Errorf("writing install log: %w", err)
		}
	}
	return nil
}
