// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"

	"github.com/aibor/vmws/internal/config"
	"github.com/aibor/vmws/internal/vmws"
	"github.com/spf13/pflag"
)

func newInitCommand() *Command {
	var (
		common   commonFlags
		machine  machineFlags
		diskSize int64
	)

	return &Command{
		Name:    "init",
		Summary: "Create the disk image and firmware stores and boot the installer",
		Usage:   name + " init --arch ARCH [flags] NAME [-- QEMU_ARGS...]",
		Flags: func() *pflag.FlagSet {
			fs := newFlagSet("init")
			common.register(fs)
			machine.register(fs)

			diskSize = int64(config.DefaultDiskSize)
			fs.Var(
				&sizeValue{Value: &diskSize},
				flagDiskSize,
				"size of the disk image, GiB if no unit is given",
			)

			return fs
		},
		Run: func(ctx context.Context, fs *pflag.FlagSet, cfg IO) error {
			sess, err := newSession(fs, &common, &machine, cfg)
			if err != nil {
				return err
			}

			if !fs.Changed(flagDiskSize) {
				diskSize = int64(sess.defaults.DiskSize)
			}

			opts := vmws.InitOptions{
				Machine:  sess.machine,
				DiskSize: diskSize,
			}

			return sess.launcher.Init(ctx, sess.workspace, opts) //nolint:wrapcheck
		},
	}
}
