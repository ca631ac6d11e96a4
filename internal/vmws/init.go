// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vmws

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aibor/vmws/internal/qemu"
	"github.com/aibor/vmws/internal/sys"
	"github.com/aibor/vmws/internal/workspace"
)

const diskFormat = "qcow2"

// Programs required for preparing a workspace, besides the emulator.
var prepareTools = []string{"qemu-img", "truncate", "dd"}

type prepareStep struct {
	name string
	args []string
}

// Init prepares the workspace for a first installation and starts the
// emulator with the install media attached.
//
// The firmware and the install media must be present in the workspace and
// the disk image must not exist yet. The disk image and both firmware stores
// are created before the emulator is started, also in dry-run mode. Nothing
// is cleaned up on failure.
func (l *Launcher) Init(
	ctx context.Context,
	ws *workspace.Workspace,
	opts InitOptions,
) (err error) {
	err = l.start()
	if err != nil {
		return err
	}

	defer l.finish(&err)

	steps, req, err := l.validateInit(ws, opts)
	if err != nil {
		return err
	}

	l.enter(StatePreparing)

	for _, step := range steps {
		slog.Info("Preparing workspace",
			slog.String("step", step.name),
			slog.String("workspace", ws.Dir))

		err := l.runner().Run(ctx, Process{
			Args:   step.args,
			Dir:    ws.Dir,
			Stdout: l.Stderr,
			Stderr: l.Stderr,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	return l.dispatch(ctx, ws, req, opts.DryRun)
}

func (l *Launcher) validateInit(
	ws *workspace.Workspace,
	opts InitOptions,
) ([]prepareStep, qemu.LaunchRequest, error) {
	var req qemu.LaunchRequest

	emulator, err := l.resolveEmulator(ws.Arch, opts.Executable)
	if err != nil {
		return nil, req, err
	}

	programs := make(map[string]string, len(prepareTools))

	for _, name := range prepareTools {
		path, err := l.resolve(name)
		if err != nil {
			return nil, req, err
		}

		programs[name] = path
	}

	err = workspace.ValidateName(opts.DiskName)
	if err != nil {
		return nil, req, fmt.Errorf("disk name: %w", err)
	}

	req = opts.request(ws.Arch, emulator)
	req.Install = true

	err = req.Validate()
	if err != nil {
		return nil, req, err
	}

	diskSize, err := sys.FormatSize(opts.DiskSize)
	if err != nil {
		return nil, req, fmt.Errorf("disk size: %w", err)
	}

	storeSizeBytes, err := qemu.FirmwareStoreSize(ws.Arch)
	if err != nil {
		return nil, req, fmt.Errorf("firmware store: %w", err)
	}

	storeSize, err := sys.FormatSize(storeSizeBytes)
	if err != nil {
		return nil, req, fmt.Errorf("firmware store: %w", err)
	}

	err = ws.CheckArtifacts()
	if err != nil {
		return nil, req, err
	}

	err = ws.RequireNoDisk(opts.DiskName)
	if err != nil {
		return nil, req, err
	}

	steps := []prepareStep{
		{
			name: "create disk image",
			args: []string{
				programs["qemu-img"], "create",
				"-f", diskFormat,
				opts.DiskName,
				diskSize,
			},
		},
		{
			name: "create variable store",
			args: []string{
				programs["truncate"], "-s", storeSize, workspace.VarStoreFile,
			},
		},
		{
			name: "create firmware store",
			args: []string{
				programs["truncate"], "-s", storeSize, workspace.EFIStoreFile,
			},
		},
		{
			name: "copy firmware",
			args: []string{
				programs["dd"],
				"if=" + workspace.FirmwareFile,
				"of=" + workspace.EFIStoreFile,
				"conv=notrunc",
			},
		},
	}

	return steps, req, nil
}
