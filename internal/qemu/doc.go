// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemu composes QEMU system emulator command lines for workspace
// virtual machines.
//
// [Build] turns a [LaunchRequest] into the full argument vector, including the
// executable and an optional debugger wrapper. The vector only uses workspace
// relative file names for the firmware stores and the install media, so the
// process is supposed to run with the workspace directory as working
// directory. [Render] produces a shell-safe single line of the same vector.
package qemu
