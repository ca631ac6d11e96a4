// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vmws

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"syscall"
)

// signalExitCodeBase is added to the signal number for processes killed by a
// signal, the way shells report them.
const signalExitCodeBase = 128

// Process is a single external program invocation.
type Process struct {
	// Args[0] is the path of the executable.
	Args []string

	// Working directory of the process.
	Dir string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Runner runs external processes to completion.
type Runner interface {
	Run(ctx context.Context, proc Process) error
}

// ExecRunner is a [Runner] backed by [exec.CommandContext].
type ExecRunner struct{}

// Run starts the process and blocks until it exits. It returns an
// [*ExecError] if the process can not be started or exits unsuccessfully.
func (ExecRunner) Run(ctx context.Context, proc Process) error {
	if len(proc.Args) == 0 {
		return &ExecError{Err: ErrNoCommand, ExitCode: -1}
	}

	//nolint:gosec
	cmd := exec.CommandContext(ctx, proc.Args[0], proc.Args[1:]...)
	cmd.Dir = proc.Dir
	cmd.Stdin = proc.Stdin
	cmd.Stdout = proc.Stdout
	cmd.Stderr = proc.Stderr

	err := cmd.Run()
	if err != nil {
		return &ExecError{
			Args:     proc.Args,
			ExitCode: exitCode(err),
			Err:      err,
		}
	}

	return nil
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return -1
	}

	status, ok := exitErr.Sys().(syscall.WaitStatus)
	if ok && status.Signaled() {
		return signalExitCodeBase + int(status.Signal())
	}

	return exitErr.ExitCode()
}

// ExecError is returned if an external process failed.
type ExecError struct {
	Args []string

	// Exit code of the process. -1 if it did not run at all.
	ExitCode int

	Err error
}

// Error implements the [error] interface.
func (e *ExecError) Error() string {
	name := "process"
	if len(e.Args) > 0 {
		name = strings.Join(e.Args, " ")
	}

	return name + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*ExecError) Is(other error) bool {
	_, ok := other.(*ExecError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ExecError) Unwrap() error {
	return e.Err
}
