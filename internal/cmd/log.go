// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io"
	"log/slog"

	"golang.org/x/term"
)

// setupLogging installs the default logger writing to writer. Human readable
// text is used for terminals, JSON otherwise.
func setupLogging(writer io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	options := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if isTerminal(writer) {
		handler = slog.NewTextHandler(writer, options)
	} else {
		handler = slog.NewJSONHandler(writer, options)
	}

	slog.SetDefault(slog.New(handler))
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(file.Fd()))
}
