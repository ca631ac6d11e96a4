// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vmws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aibor/vmws/internal/qemu"
	"github.com/aibor/vmws/internal/sys"
	"github.com/aibor/vmws/internal/workspace"
)

// DefaultDebugger is the command the emulator is run under in debug mode.
var DefaultDebugger = []string{"gdb", "--args"}

// Machine are the options common to [InitOptions] and [RunOptions].
type Machine struct {
	// Emulator executable. Name or path, resolved with the search path. If
	// empty, the architecture's qemu-system binary is used.
	Executable string

	// File name of the disk image in the workspace.
	DiskName string

	// Number of virtual CPUs.
	SMP uint64

	// Memory in bytes.
	Memory int64

	// Host port forwarded to the guest's SSH port.
	SSHPort uint16

	// Arguments appended to the emulator command verbatim.
	ExtraArgs []string

	// Print the emulator command line instead of running it.
	DryRun bool
}

// InitOptions are the options for [Launcher.Init].
type InitOptions struct {
	Machine

	// Size of the disk image in bytes.
	DiskSize int64
}

// RunOptions are the options for [Launcher.Run].
type RunOptions struct {
	Machine

	// Optional kernel image in the workspace. Tried with
	// [workspace.KernelPrefix] if it does not exist as is.
	Kernel string

	// Additional kernel command line arguments.
	KernelBootArgs string

	// Run the emulator under the debugger.
	Debug bool
}

// Launcher runs the install and boot flows for a single invocation.
//
// A Launcher can only be used once. Its zero value is ready to use with the
// default [ExecRunner], the PATH and no standard IO attached.
type Launcher struct {
	// Runner for all external processes. [ExecRunner] if nil.
	Runner Runner

	// List of directories programs are searched in. PATH if empty.
	SearchPath string

	// Debugger command for debug mode. [DefaultDebugger] if empty.
	Debugger []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	state State
}

// State returns the current state of the launcher.
func (l *Launcher) State() State {
	return l.state
}

func (l *Launcher) enter(state State) {
	slog.Debug("Launcher state",
		slog.String("from", l.state.String()),
		slog.String("to", state.String()))

	l.state = state
}

func (l *Launcher) start() error {
	if l.state != StateIdle {
		return ErrLauncherUsed
	}

	l.enter(StateValidating)

	return nil
}

func (l *Launcher) finish(err *error) {
	if *err != nil && !errors.Is(*err, ErrLauncherUsed) {
		l.enter(StateFailed)
	}
}

func (l *Launcher) runner() Runner {
	if l.Runner == nil {
		return ExecRunner{}
	}

	return l.Runner
}

func (l *Launcher) resolve(name string) (string, error) {
	path, err := sys.ResolveProgram(name, l.SearchPath)
	if err != nil {
		return "", err
	}

	slog.Debug("Resolved program",
		slog.String("name", name),
		slog.String("path", path))

	return path, nil
}

func (l *Launcher) resolveEmulator(arch sys.Arch, executable string) (string, error) {
	if executable == "" {
		executable = arch.Emulator()
	}

	return l.resolve(executable)
}

func (l *Launcher) resolveDebugger() ([]string, error) {
	debugger := l.Debugger
	if len(debugger) == 0 {
		debugger = DefaultDebugger
	}

	path, err := l.resolve(debugger[0])
	if err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}

	resolved := append([]string{path}, debugger[1:]...)

	return resolved, nil
}

func (m *Machine) request(arch sys.Arch, executable string) qemu.LaunchRequest {
	return qemu.LaunchRequest{
		Arch:       arch,
		Executable: executable,
		SMP:        m.SMP,
		Memory:     m.Memory,
		DiskPath:   m.DiskName,
		SSHPort:    m.SSHPort,
		ExtraArgs:  m.ExtraArgs,
	}
}

// dispatch builds the emulator command and either runs or prints it.
func (l *Launcher) dispatch(
	ctx context.Context,
	ws *workspace.Workspace,
	req qemu.LaunchRequest,
	dryRun bool,
) error {
	l.enter(StateBuilding)

	args, err := qemu.Build(req)
	if err != nil {
		return fmt.Errorf("build emulator command: %w", err)
	}

	l.enter(StateDispatching)

	if dryRun {
		_, err := fmt.Fprintln(l.Stdout, qemu.Render(args))
		if err != nil {
			return fmt.Errorf("print command: %w", err)
		}

		l.enter(StateRendered)

		return nil
	}

	slog.Info("Starting emulator",
		slog.String("workspace", ws.Dir),
		slog.String("command", qemu.Render(args)))

	err = l.runner().Run(ctx, Process{
		Args:   args,
		Dir:    ws.Dir,
		Stdin:  l.Stdin,
		Stdout: l.Stdout,
		Stderr: l.Stderr,
	})
	if err != nil {
		var execErr *ExecError
		if errors.As(err, &execErr) && execErr.ExitCode > 0 {
			return &qemu.CommandError{
				Err:      err,
				ExitCode: execErr.ExitCode,
			}
		}

		return fmt.Errorf("emulator: %w", err)
	}

	l.enter(StateExecuted)

	return nil
}
