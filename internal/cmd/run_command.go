// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"

	"github.com/aibor/vmws/internal/vmws"
	"github.com/spf13/pflag"
)

func newRunCommand() *Command {
	var (
		common  commonFlags
		machine machineFlags
		boot    struct {
			Kernel   string
			BootArgs string
			Debug    bool
		}
	)

	return &Command{
		Name:    "run",
		Summary: "Boot an initialized workspace",
		Usage:   name + " run --arch ARCH [flags] NAME [-- QEMU_ARGS...]",
		Flags: func() *pflag.FlagSet {
			fs := newFlagSet("run")
			common.register(fs)
			machine.register(fs)

			fs.StringVarP(
				&boot.Kernel,
				"kernel",
				"k",
				"",
				"kernel image in the workspace, prefixed with Image- if not found as is",
			)

			fs.StringVar(
				&boot.BootArgs,
				"bootargs",
				"",
				"additional kernel command line arguments, requires --kernel",
			)

			fs.BoolVarP(
				&boot.Debug,
				"debug",
				"d",
				false,
				"run the emulator under the debugger",
			)

			return fs
		},
		Run: func(ctx context.Context, fs *pflag.FlagSet, cfg IO) error {
			sess, err := newSession(fs, &common, &machine, cfg)
			if err != nil {
				return err
			}

			opts := vmws.RunOptions{
				Machine:        sess.machine,
				Kernel:         boot.Kernel,
				KernelBootArgs: boot.BootArgs,
				Debug:          boot.Debug,
			}

			return sess.launcher.Run(ctx, sess.workspace, opts) //nolint:wrapcheck
		},
	}
}
