// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"strconv"

	"github.com/aibor/vmws/internal/sys"
	"github.com/docker/go-units"
)

const (
	machineTypeVirt = "virt"

	// Kernel command line every directly booted kernel gets. The installer
	// puts the root file system on the second partition of the virtio disk.
	baseKernelCmdline = "earlycon root=/dev/vda2"

	// SSH port of the guest forwarded to the host.
	guestSSHPort = 22
)

// platform is the architecture specific part of an emulator invocation.
type platform struct {
	// Machine and CPU arguments in the order they are passed.
	machine []Argument

	// Whether pflash drives need an explicit unit index.
	flashUnits bool

	// Size of each of the two firmware flash images.
	flashSize int64
}

func platformFor(arch sys.Arch) (platform, error) {
	switch arch {
	case sys.AArch64:
		return platform{
			machine: []Argument{
				RepeatableArg("M", machineTypeVirt),
				RepeatableArg("machine", "virtualization=true"),
				RepeatableArg("machine", machineTypeVirt, "gic-version=3"),
				UniqueArg("cpu", "max", "pauth-impdef=on"),
			},
			flashSize: 64 * units.MiB,
		}, nil
	case sys.RISCV64:
		return platform{
			machine: []Argument{
				RepeatableArg("M", machineTypeVirt),
				UniqueArg("cpu", "max"),
			},
			flashUnits: true,
			flashSize:  32 * units.MiB,
		}, nil
	default:
		return platform{}, sys.ErrArchNotSupported
	}
}

// FirmwareStoreSize returns the size both firmware flash images must have
// for the given architecture.
func FirmwareStoreSize(arch sys.Arch) (int64, error) {
	p, err := platformFor(arch)
	if err != nil {
		return 0, err
	}

	return p.flashSize, nil
}

func (p platform) flashDrive(unit int, file string, readonly bool) Argument {
	values := []string{"if=pflash", "format=raw"}

	if p.flashUnits {
		values = append(values, "unit="+strconv.Itoa(unit))
	}

	values = append(values, "file="+file)

	if readonly {
		values = append(values, "readonly=on")
	}

	return RepeatableArg("drive", values...)
}
