// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vmws

import "errors"

var (
	// ErrNoCommand is returned if a [Process] without arguments is run.
	ErrNoCommand = errors.New("no command given")

	// ErrLauncherUsed is returned if a [Launcher] that already ran is used
	// again.
	ErrLauncherUsed = errors.New("launcher can only be used once")
)
