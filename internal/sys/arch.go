// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"slices"
	"strings"
)

// Arch is a guest architecture as named by QEMU.
//
// The set of architectures is closed. Each one has its own emulator binary,
// base arguments and firmware conventions.
type Arch string

// Supported guest architectures.
const (
	AArch64 Arch = "aarch64"
	RISCV64 Arch = "riscv64"
)

// Architectures returns all supported architectures in stable order.
func Architectures() []Arch {
	return []Arch{AArch64, RISCV64}
}

// ArchitectureNames returns the names of all supported architectures joined
// by the given separator.
func ArchitectureNames(sep string) string {
	archs := Architectures()
	names := make([]string, 0, len(archs))

	for _, arch := range archs {
		names = append(names, string(arch))
	}

	return strings.Join(names, sep)
}

// String implements [fmt.Stringer].
func (a *Arch) String() string {
	return string(*a)
}

// Type implements [pflag.Value].
func (*Arch) Type() string {
	return "arch"
}

// Set implements [pflag.Value]. It accepts supported architectures only.
func (a *Arch) Set(s string) error {
	arch := Arch(s)
	if !arch.IsSupported() {
		return ErrArchNotSupported
	}

	*a = arch

	return nil
}

// IsSupported returns true if the architecture is one of [Architectures].
func (a *Arch) IsSupported() bool {
	return slices.Contains(Architectures(), *a)
}

// Emulator returns the name of the QEMU system emulator for the architecture.
func (a *Arch) Emulator() string {
	return "qemu-system-" + string(*a)
}
