// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/aibor/vmws/internal/qemu"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func handleRunError(err error, errWriter io.Writer) int {
	if err == nil {
		return 0
	}

	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// Argument errors are printed already, together with a usage hint.
	if errors.Is(err, &ParseArgsError{}) {
		return -1
	}

	// The emulator reported the failure itself, just pass on its exit code.
	var cmdErr *qemu.CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		slog.Debug("Emulator failed", slog.Any("error", err))
		return cmdErr.ExitCode
	}

	fmt.Fprintf(errWriter, "Error [%s]: %v\n", name, err)

	return -1
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	if len(args) == 1 && (args[0] == "--version" || args[0] == "version") {
		return handleRunError(printVersion(cfg.Stdout), cfg.Stderr)
	}

	err := Execute(ctx, args, cfg)

	return handleRunError(err, cfg.Stderr)
}

func printVersion(w io.Writer) error {
	buildInfo, err := getBuildInfo()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Version: %s\n", buildInfo.Main.Version)

	return nil
}

func getBuildInfo() (*debug.BuildInfo, error) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrReadBuildInfo
	}

	return buildInfo, nil
}
