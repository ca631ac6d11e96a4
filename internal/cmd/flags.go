// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"math"

	"github.com/aibor/vmws/internal/config"
	"github.com/aibor/vmws/internal/sys"
	"github.com/spf13/pflag"
)

// Flag names whose config file counterpart is applied if not given.
const (
	flagStorage  = "storage"
	flagConfig   = "config"
	flagQemuBin  = "qemu-bin"
	flagDiskName = "disk-name"
	flagDiskSize = "disk-size"
	flagSMP      = "smp"
	flagRAM      = "ram"
	flagSSHPort  = "ssh-port"
)

// Legacy flag names mapped to their current name.
var flagAliases = map[string]string{
	"port": flagSSHPort,
}

const smpMax = 512

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetInterspersed(true)
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, exists := flagAliases[name]; exists {
			name = alias
		}

		return pflag.NormalizedName(name)
	})

	return fs
}

// commonFlags are the flags all workspace commands have.
type commonFlags struct {
	Arch       sys.Arch
	Storage    string
	ConfigFile string
	QemuBin    string
	DryRun     bool
	Verbose    bool
}

func (f *commonFlags) register(fs *pflag.FlagSet) {
	fs.VarP(
		&f.Arch,
		"arch",
		"A",
		"guest architecture, one of: "+sys.ArchitectureNames(", ")+" (required)",
	)

	fs.StringVar(
		&f.Storage,
		flagStorage,
		config.DefaultStorage,
		"root directory of the architecture directories",
	)

	fs.StringVar(
		&f.ConfigFile,
		flagConfig,
		"",
		"config file, "+config.EnvFile+" if not given",
	)

	fs.StringVar(
		&f.QemuBin,
		flagQemuBin,
		"",
		"emulator binary, qemu-system-ARCH if not given",
	)

	fs.BoolVarP(
		&f.DryRun,
		"dry-run",
		"n",
		false,
		"print the emulator command instead of running it",
	)

	fs.BoolVarP(
		&f.Verbose,
		"verbose",
		"v",
		false,
		"enable debug output",
	)
}

// machineFlags are the flags shared by the init and run commands.
type machineFlags struct {
	DiskName string
	SMP      uint64
	Memory   int64
	SSHPort  uint64
}

func (f *machineFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(
		&f.DiskName,
		flagDiskName,
		config.DefaultDiskName,
		"file name of the disk image",
	)

	f.SMP = config.DefaultSMP
	fs.Var(
		&LimitedUintValue{Value: &f.SMP, Lower: 1, Upper: smpMax},
		flagSMP,
		"number of virtual CPUs",
	)

	f.Memory = int64(config.DefaultMemory)
	fs.Var(
		&sizeValue{Value: &f.Memory},
		flagRAM,
		"memory size, GiB if no unit is given",
	)

	f.SSHPort = config.DefaultSSHPort
	fs.Var(
		&LimitedUintValue{Value: &f.SSHPort, Lower: 1, Upper: math.MaxUint16},
		flagSSHPort,
		"host port forwarded to the guest's SSH port (alias --port)",
	)
}

// apply sets all values that were not given on the command line from the
// config file machine defaults.
func (f *machineFlags) apply(fs *pflag.FlagSet, machine config.Machine) {
	if !fs.Changed(flagDiskName) {
		f.DiskName = machine.DiskName
	}

	if !fs.Changed(flagSMP) {
		f.SMP = machine.SMP
	}

	if !fs.Changed(flagRAM) {
		f.Memory = int64(machine.Memory)
	}

	if !fs.Changed(flagSSHPort) {
		f.SSHPort = uint64(machine.SSHPort)
	}
}
