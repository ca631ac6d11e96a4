// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"github.com/aibor/vmws/internal/sys"
)

// LaunchRequest defines a single emulator invocation.
type LaunchRequest struct {
	// Guest architecture. Selects the machine specific base arguments.
	Arch sys.Arch

	// Path of the qemu-system binary.
	Executable string

	// Install mode attaches the install media instead of booting the disk
	// only. Kernel and Debug can not be used in install mode.
	Install bool

	// Number of virtual CPUs.
	SMP uint64

	// Memory of the machine in bytes. Must be a multiple of 1MiB.
	Memory int64

	// Path of the primary qcow2 disk image.
	DiskPath string

	// Host port that is forwarded to the guest's SSH port.
	SSHPort uint16

	// Optional kernel image to boot directly instead of using the firmware
	// boot loader.
	Kernel string

	// Optional additional kernel command line arguments. Requires Kernel.
	KernelBootArgs string

	// Run the emulator under a debugger. The Debugger command is prepended to
	// the emulator command.
	Debug bool

	// Debugger command tokens the emulator invocation is appended to, like
	// "gdb --args".
	Debugger []string

	// Extra arguments appended verbatim after the base arguments.
	ExtraArgs []string
}

// Validate checks for missing and conflicting options.
func (r *LaunchRequest) Validate() error {
	switch {
	case r.Executable == "":
		return &ArgumentError{"emulator executable must not be empty"}
	case r.DiskPath == "":
		return &ArgumentError{"disk path must not be empty"}
	case r.SMP == 0:
		return &ArgumentError{"vcpu count must be positive"}
	case r.Memory <= 0:
		return &ArgumentError{"memory size must be positive"}
	case r.SSHPort == 0:
		return &ArgumentError{"ssh port must not be 0"}
	case r.Install && r.Kernel != "":
		return &ArgumentError{"kernel can not be used in install mode"}
	case r.Install && r.Debug:
		return &ArgumentError{"debug can not be used in install mode"}
	case r.KernelBootArgs != "" && r.Kernel == "":
		return &ArgumentError{"boot arguments require a kernel"}
	case r.Debug && len(r.Debugger) == 0:
		return &ArgumentError{"debug requires a debugger command"}
	}

	_, err := sys.FormatSize(r.Memory)
	if err != nil {
		return &ArgumentError{"memory size: " + err.Error()}
	}

	return nil
}
