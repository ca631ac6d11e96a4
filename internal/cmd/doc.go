// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for vmws. It handles
// subcommand dispatch, flag parsing, configuration merging and error
// reporting.
package cmd
