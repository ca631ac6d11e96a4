// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vmws

import (
	"context"
	"fmt"

	"github.com/aibor/vmws/internal/qemu"
	"github.com/aibor/vmws/internal/workspace"
)

// Run boots the already initialized workspace.
//
// If a kernel is given, it is booted directly with the root file system on
// the disk image. In debug mode the emulator runs under the debugger.
func (l *Launcher) Run(
	ctx context.Context,
	ws *workspace.Workspace,
	opts RunOptions,
) (err error) {
	err = l.start()
	if err != nil {
		return err
	}

	defer l.finish(&err)

	req, err := l.validateRun(ws, opts)
	if err != nil {
		return err
	}

	return l.dispatch(ctx, ws, req, opts.DryRun)
}

func (l *Launcher) validateRun(
	ws *workspace.Workspace,
	opts RunOptions,
) (qemu.LaunchRequest, error) {
	var req qemu.LaunchRequest

	emulator, err := l.resolveEmulator(ws.Arch, opts.Executable)
	if err != nil {
		return req, err
	}

	req = opts.request(ws.Arch, emulator)
	req.KernelBootArgs = opts.KernelBootArgs
	req.Debug = opts.Debug

	if opts.Debug {
		req.Debugger, err = l.resolveDebugger()
		if err != nil {
			return req, err
		}
	}

	err = workspace.ValidateName(opts.DiskName)
	if err != nil {
		return req, fmt.Errorf("disk name: %w", err)
	}

	err = ws.RequireDisk(opts.DiskName)
	if err != nil {
		return req, err
	}

	if opts.Kernel != "" {
		req.Kernel, err = ws.FindKernel(opts.Kernel)
		if err != nil {
			return req, err
		}
	}

	err = req.Validate()
	if err != nil {
		return req, err
	}

	return req, nil
}
