// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package workspace locates the per architecture virtual machine directories
// and the artifacts inside them.
//
// A workspace lives at <storage>/<arch>/<name>. The architecture directories
// are expected to be provisioned already, only the workspace directory itself
// is created on demand. The process working directory is never changed, all
// paths are derived from the [Workspace] value.
package workspace
