// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"os"

	"github.com/aibor/vmws/internal/config"
)

// EnvQemuArgs is the environment variable that may hold additional emulator
// arguments. They are split like a shell would do it.
const EnvQemuArgs = "VMWS_QEMU_ARGS"

func envQemuArgs() ([]string, error) {
	args, err := config.SplitArgs(os.Getenv(EnvQemuArgs))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvQemuArgs, err)
	}

	return args, nil
}
