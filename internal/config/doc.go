// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the optional vmws configuration file.
//
// The file is YAML. It sets the storage root, the program search path and the
// debugger command, and it provides machine defaults, globally and per
// architecture:
//
//	storage: /srv/vm
//	search_path: /opt/qemu/bin:/usr/bin
//	debugger: [gdb, -q, --args]
//	defaults:
//	  memory: 8
//	  qemu_args: -display none
//	arch:
//	  riscv64:
//	    smp: 4
//	    memory: 2G
//
// There is no implicit lookup of the file. It is only read if a path is given
// explicitly, either by flag or by the VMWS_CONFIG environment variable.
package config
