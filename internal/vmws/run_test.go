// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vmws_test

import (
	"slices"
	"testing"

	"github.com/aibor/vmws/internal/qemu"
	"github.com/aibor/vmws/internal/sys"
	"github.com/aibor/vmws/internal/vmws"
	"github.com/aibor/vmws/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLauncher_Run(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		debugger []string
		modify   func(opts *vmws.RunOptions)
		expected func(f *fixture) qemu.LaunchRequest
	}{
		{
			name:  "boot disk",
			files: []string{"disk.img"},
			expected: func(f *fixture) qemu.LaunchRequest {
				return qemu.LaunchRequest{}
			},
		},
		{
			name:  "kernel with prefix",
			files: []string{"disk.img", "Image-foo"},
			modify: func(opts *vmws.RunOptions) {
				opts.Kernel = "foo"
				opts.KernelBootArgs = "nokaslr"
			},
			expected: func(*fixture) qemu.LaunchRequest {
				return qemu.LaunchRequest{
					Kernel:         "Image-foo",
					KernelBootArgs: "nokaslr",
				}
			},
		},
		{
			name:  "kernel with debug",
			files: []string{"disk.img", "Image-foo"},
			modify: func(opts *vmws.RunOptions) {
				opts.Kernel = "foo"
				opts.Debug = true
			},
			expected: func(f *fixture) qemu.LaunchRequest {
				return qemu.LaunchRequest{
					Kernel:   "Image-foo",
					Debug:    true,
					Debugger: []string{f.bin("gdb"), "--args"},
				}
			},
		},
		{
			name:     "custom debugger",
			files:    []string{"disk.img"},
			debugger: []string{"lldb", "--"},
			modify: func(opts *vmws.RunOptions) {
				opts.Debug = true
			},
			expected: func(f *fixture) qemu.LaunchRequest {
				return qemu.LaunchRequest{
					Debug:    true,
					Debugger: []string{f.bin("lldb"), "--"},
				}
			},
		},
		{
			name:  "custom disk and extra args",
			files: []string{"root.qcow2"},
			modify: func(opts *vmws.RunOptions) {
				opts.DiskName = "root.qcow2"
				opts.ExtraArgs = []string{"-snapshot"}
			},
			expected: func(*fixture) qemu.LaunchRequest {
				return qemu.LaunchRequest{
					DiskPath:  "root.qcow2",
					ExtraArgs: []string{"-snapshot"},
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, sys.AArch64, "qemu-system-aarch64", "gdb", "lldb")
			f.addFiles(t, tt.files...)
			f.launcher.Debugger = tt.debugger

			opts := vmws.RunOptions{Machine: defaultMachine()}
			if tt.modify != nil {
				tt.modify(&opts)
			}

			err := f.launcher.Run(t.Context(), f.ws, opts)
			require.NoError(t, err)

			req := tt.expected(f)
			req.Arch = sys.AArch64
			req.Executable = f.bin("qemu-system-aarch64")
			req.SMP = 2
			req.Memory = 4 * gib
			req.SSHPort = 8022

			if req.DiskPath == "" {
				req.DiskPath = "disk.img"
			}

			expected, err := qemu.Build(req)
			require.NoError(t, err)

			assert.Equal(t, [][]string{expected}, f.runner.args())
			assert.Equal(t, f.ws.Dir, f.runner.procs[0].Dir)
			assert.Equal(t, vmws.StateExecuted, f.launcher.State())
		})
	}
}

func TestLauncher_Run_DebugPrefix(t *testing.T) {
	f := newFixture(t, sys.AArch64, "qemu-system-aarch64", "gdb")
	f.addFiles(t, "disk.img", "foo")

	opts := vmws.RunOptions{
		Machine: defaultMachine(),
		Kernel:  "foo",
		Debug:   true,
	}

	err := f.launcher.Run(t.Context(), f.ws, opts)
	require.NoError(t, err)

	args := f.runner.procs[0].Args
	assert.Equal(t, []string{f.bin("gdb"), "--args", f.bin("qemu-system-aarch64")}, args[:3])
	assert.Equal(t, []string{"-kernel", "foo", "-append", "earlycon root=/dev/vda2"},
		args[len(args)-4:])
}

func TestLauncher_Run_DryRun(t *testing.T) {
	f := newFixture(t, sys.AArch64, "qemu-system-aarch64")
	f.addFiles(t, "disk.img")

	machine := defaultMachine()
	machine.DryRun = true

	err := f.launcher.Run(t.Context(), f.ws, vmws.RunOptions{Machine: machine})
	require.NoError(t, err)

	assert.Empty(t, f.runner.procs)
	assert.Equal(t, vmws.StateRendered, f.launcher.State())
	assert.Contains(t, f.stdout.String(), f.bin("qemu-system-aarch64")+" -M virt ")
}

func TestLauncher_Run_Errors(t *testing.T) {
	tests := []struct {
		name        string
		programs    []string
		files       []string
		modify      func(opts *vmws.RunOptions)
		result      func(proc vmws.Process) error
		expectedErr error
		expectedRun int
	}{
		{
			name:        "not initialized",
			programs:    []string{"qemu-system-aarch64"},
			expectedErr: workspace.ErrNotInitialized,
		},
		{
			name:        "emulator missing",
			files:       []string{"disk.img"},
			expectedErr: sys.ErrProgramNotFound,
		},
		{
			name:     "explicit emulator missing",
			programs: []string{"qemu-system-aarch64"},
			files:    []string{"disk.img"},
			modify: func(opts *vmws.RunOptions) {
				opts.Executable = "/nonexistent/qemu-system-aarch64"
			},
			expectedErr: sys.ErrProgramNotFound,
		},
		{
			name:     "debugger missing",
			programs: []string{"qemu-system-aarch64"},
			files:    []string{"disk.img"},
			modify: func(opts *vmws.RunOptions) {
				opts.Debug = true
			},
			expectedErr: sys.ErrProgramNotFound,
		},
		{
			name:     "kernel missing",
			programs: []string{"qemu-system-aarch64"},
			files:    []string{"disk.img"},
			modify: func(opts *vmws.RunOptions) {
				opts.Kernel = "foo"
			},
			expectedErr: workspace.ErrKernelNotFound,
		},
		{
			name:     "boot args without kernel",
			programs: []string{"qemu-system-aarch64"},
			files:    []string{"disk.img"},
			modify: func(opts *vmws.RunOptions) {
				opts.KernelBootArgs = "quiet"
			},
			expectedErr: qemu.ErrInvalidConfiguration,
		},
		{
			name:     "emulator exits non-zero",
			programs: []string{"qemu-system-aarch64"},
			files:    []string{"disk.img"},
			result: func(proc vmws.Process) error {
				return &vmws.ExecError{Args: proc.Args, ExitCode: 3, Err: assert.AnError}
			},
			expectedErr: &qemu.CommandError{ExitCode: 3},
			expectedRun: 1,
		},
		{
			name:     "emulator does not start",
			programs: []string{"qemu-system-aarch64"},
			files:    []string{"disk.img"},
			result: func(proc vmws.Process) error {
				return &vmws.ExecError{Args: proc.Args, ExitCode: -1, Err: assert.AnError}
			},
			expectedErr: &vmws.ExecError{},
			expectedRun: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, sys.AArch64, tt.programs...)
			f.addFiles(t, tt.files...)
			f.runner.result = tt.result

			opts := vmws.RunOptions{Machine: defaultMachine()}
			if tt.modify != nil {
				tt.modify(&opts)
			}

			err := f.launcher.Run(t.Context(), f.ws, opts)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Len(t, f.runner.procs, tt.expectedRun)
			assert.Equal(t, vmws.StateFailed, f.launcher.State())
		})
	}
}

func TestLauncher_Run_ExitCode(t *testing.T) {
	f := newFixture(t, sys.AArch64, "qemu-system-aarch64")
	f.addFiles(t, "disk.img")
	f.runner.result = func(proc vmws.Process) error {
		return &vmws.ExecError{Args: proc.Args, ExitCode: 42, Err: assert.AnError}
	}

	err := f.launcher.Run(t.Context(), f.ws, vmws.RunOptions{Machine: defaultMachine()})

	var cmdErr *qemu.CommandError

	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 42, cmdErr.ExitCode)
}

func TestLauncher_UsedOnce(t *testing.T) {
	f := newFixture(t, sys.AArch64, "qemu-system-aarch64")
	f.addFiles(t, "disk.img")

	opts := vmws.RunOptions{Machine: defaultMachine()}

	require.NoError(t, f.launcher.Run(t.Context(), f.ws, opts))

	err := f.launcher.Run(t.Context(), f.ws, opts)
	require.ErrorIs(t, err, vmws.ErrLauncherUsed)
	assert.Equal(t, vmws.StateExecuted, f.launcher.State())
	assert.Len(t, f.runner.procs, 1)

	err = f.launcher.Init(t.Context(), f.ws, vmws.InitOptions{Machine: defaultMachine()})
	require.ErrorIs(t, err, vmws.ErrLauncherUsed)
}

func TestState_String(t *testing.T) {
	states := []vmws.State{
		vmws.StateIdle,
		vmws.StateValidating,
		vmws.StatePreparing,
		vmws.StateBuilding,
		vmws.StateDispatching,
		vmws.StateExecuted,
		vmws.StateRendered,
		vmws.StateFailed,
	}

	names := make([]string, 0, len(states))
	for _, state := range states {
		names = append(names, state.String())
	}

	assert.Equal(t, []string{
		"idle", "validating", "preparing", "building",
		"dispatching", "executed", "rendered", "failed",
	}, names)
	assert.Equal(t, "unknown", vmws.State(99).String())

	terminal := slices.DeleteFunc(states, func(s vmws.State) bool {
		return !s.Terminal()
	})
	assert.Equal(t, []vmws.State{
		vmws.StateExecuted, vmws.StateRendered, vmws.StateFailed,
	}, terminal)
}
