// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package vmws provides the install and boot flows for workspace virtual
// machines.
//
// [Launcher.Init] prepares a fresh workspace with a disk image and the
// firmware stores and starts the emulator with the install media attached.
// [Launcher.Run] boots an initialized workspace, optionally with a kernel
// from the workspace and optionally under a debugger. Both either run the
// emulator in the foreground or, in dry-run mode, print the command line.
//
// All external programs are started through a [Runner] with the workspace
// directory as working directory.
package vmws
