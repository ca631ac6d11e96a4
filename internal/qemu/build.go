// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/aibor/vmws/internal/sys"
	"github.com/aibor/vmws/internal/workspace"
)

// Build compiles the full argument vector for the given [LaunchRequest],
// starting with the executable or the debugger.
//
// The order is fixed: base arguments, then [LaunchRequest.ExtraArgs], then
// either the install media or the kernel arguments. The first pflash drive is
// always the read-only firmware, the second the writable variable store.
func Build(req LaunchRequest) ([]string, error) {
	err := req.Validate()
	if err != nil {
		return nil, err
	}

	plat, err := platformFor(req.Arch)
	if err != nil {
		return nil, fmt.Errorf("platform %s: %w", req.Arch, err)
	}

	base := plat.baseArgs(req)

	var tail []Argument

	if req.Install {
		tail = installArgs()
	} else if req.Kernel != "" {
		tail = kernelArgs(req.Kernel, req.KernelBootArgs)
	}

	baseStrings, err := BuildArgumentStrings(base)
	if err != nil {
		return nil, err
	}

	// Build base and tail together, so collisions between both are caught.
	allStrings, err := BuildArgumentStrings(slices.Concat(base, tail))
	if err != nil {
		return nil, err
	}

	tailStrings := allStrings[len(baseStrings):]

	args := make([]string, 0, len(req.Debugger)+1+len(allStrings)+len(req.ExtraArgs))

	if req.Debug {
		args = append(args, req.Debugger...)
	}

	args = append(args, req.Executable)
	args = append(args, baseStrings...)
	args = append(args, req.ExtraArgs...)
	args = append(args, tailStrings...)

	return args, nil
}

func (p platform) baseArgs(req LaunchRequest) []Argument {
	// Validated by [LaunchRequest.Validate] already.
	memory, _ := sys.FormatSize(req.Memory)

	args := slices.Clone(p.machine)

	return append(args,
		UniqueArg("smp", strconv.FormatUint(req.SMP, 10)),
		UniqueArg("m", memory),
		p.flashDrive(0, workspace.EFIStoreFile, true),
		p.flashDrive(1, workspace.VarStoreFile, false),
		RepeatableArg("drive", "if=virtio", "format=qcow2", "file="+req.DiskPath),
		RepeatableArg("device", "virtio-scsi-pci", "id=scsi0"),
		RepeatableArg("object", "rng-random", "filename=/dev/urandom", "id=rng0"),
		RepeatableArg("device", "virtio-rng-pci", "rng=rng0"),
		RepeatableArg("device", "virtio-net-pci", "netdev=net0"),
		RepeatableArg("netdev", "user", "id=net0", hostForward(req.SSHPort)),
		UniqueArg("nographic"),
	)
}

func hostForward(port uint16) string {
	return fmt.Sprintf("hostfwd=tcp::%d-:%d", port, guestSSHPort)
}

func installArgs() []Argument {
	return []Argument{
		RepeatableArg("drive", "if=none", "id=cd", "file="+workspace.InstallMediaFile),
		RepeatableArg("device", "scsi-cd", "drive=cd"),
	}
}

func kernelArgs(kernel, bootArgs string) []Argument {
	cmdline := baseKernelCmdline
	if bootArgs != "" {
		cmdline += " " + bootArgs
	}

	return []Argument{
		UniqueArg("kernel", kernel),
		UniqueArg("append", cmdline),
	}
}
