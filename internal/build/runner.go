// SPDX-License-Identifier: MPL-2.0

// Package build executes per-source build commands (e.g. "forge build") with
// the embedded mvdan/sh interpreter, so generation does not depend on a host
// shell being present.
package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// BuildError reports a build command that exited non-zero.
type BuildError struct {
	// Script is the configured build command.
	Script string
	// ExitCode is the command's exit status.
	ExitCode int
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("build command %q exited with status %d", e.Script, e.ExitCode)
}

// ShellRunner runs build scripts in-process through mvdan/sh.
type ShellRunner struct {
	// Stdout and Stderr receive the script's output; nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

// Run parses and executes script with dir as the working directory, inheriting
// the process environment. A non-zero exit becomes a BuildError; other
// interpreter failures propagate as-is.
func (r *ShellRunner) Run(ctx context.Context, dir, script string) error {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "build")
	if err != nil {
		return fmt.Errorf("failed to parse build command: %w", err)
	}

	stdout, stderr := r.Stdout, r.Stderr
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, stdout, stderr),
	)
	if err != nil {
		return fmt.Errorf("failed to create interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return &BuildError{Script: script, ExitCode: int(status)}
		}
		return fmt.Errorf("build command failed: %w", err)
	}
	return nil
}
