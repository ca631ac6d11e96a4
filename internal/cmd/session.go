// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/aibor/vmws/internal/config"
	"github.com/aibor/vmws/internal/vmws"
	"github.com/aibor/vmws/internal/workspace"
	"github.com/spf13/pflag"
)

// session is everything a workspace command needs after the command line,
// the config file and the environment have been merged.
type session struct {
	workspace *workspace.Workspace
	launcher  *vmws.Launcher
	machine   vmws.Machine
	defaults  config.Machine
}

// positionalArgs splits the remaining arguments into the workspace name and
// the raw emulator arguments given after "--".
func positionalArgs(fs *pflag.FlagSet) (string, []string, error) {
	args := fs.Args()

	var extraArgs []string

	if dash := fs.ArgsLenAtDash(); dash >= 0 {
		args, extraArgs = args[:dash], args[dash:]
	}

	if len(args) != 1 {
		return "", nil, &ParseArgsError{
			msg: fmt.Sprintf("exactly one workspace name required, got %d", len(args)),
		}
	}

	return args[0], extraArgs, nil
}

func newSession(
	fs *pflag.FlagSet,
	common *commonFlags,
	machine *machineFlags,
	cfg IO,
) (*session, error) {
	wsName, cliArgs, err := positionalArgs(fs)
	if err != nil {
		return nil, err
	}

	if common.Arch == "" {
		return nil, &ParseArgsError{msg: "flag --arch is required"}
	}

	setupLogging(cfg.Stderr, common.Verbose)

	configFile := common.ConfigFile
	if !fs.Changed(flagConfig) {
		configFile = os.Getenv(config.EnvFile)
	}

	conf, err := config.Load(configFile)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	storage := common.Storage
	if !fs.Changed(flagStorage) {
		storage = conf.Storage
	}

	defaults := conf.Machine(common.Arch)
	machine.apply(fs, defaults)

	executable := common.QemuBin
	if !fs.Changed(flagQemuBin) {
		executable = defaults.Executable
	}

	extraArgs, err := mergedExtraArgs(defaults, cliArgs)
	if err != nil {
		return nil, err
	}

	ws, err := workspace.Locate(storage, common.Arch, wsName)
	if err != nil {
		return nil, fmt.Errorf("workspace: %w", err)
	}

	slog.Debug("Workspace",
		slog.String("arch", string(ws.Arch)),
		slog.String("dir", ws.Dir))

	return &session{
		workspace: ws,
		launcher: &vmws.Launcher{
			SearchPath: conf.SearchPath,
			Debugger:   conf.Debugger,
			Stdin:      cfg.Stdin,
			Stdout:     cfg.Stdout,
			Stderr:     cfg.Stderr,
		},
		machine: vmws.Machine{
			Executable: executable,
			DiskName:   machine.DiskName,
			SMP:        machine.SMP,
			Memory:     machine.Memory,
			SSHPort:    uint16(machine.SSHPort), //nolint:gosec
			ExtraArgs:  extraArgs,
			DryRun:     common.DryRun,
		},
		defaults: defaults,
	}, nil
}

// mergedExtraArgs returns the emulator arguments from the config file, the
// environment and the command line, in this order.
func mergedExtraArgs(defaults config.Machine, cliArgs []string) ([]string, error) {
	configArgs, err := defaults.ExtraArgs()
	if err != nil {
		return nil, fmt.Errorf("config qemu_args: %w", err)
	}

	envArgs, err := envQemuArgs()
	if err != nil {
		return nil, err
	}

	return slices.Concat(configArgs, envArgs, cliArgs), nil
}
