// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteExecutable creates a shell script with the given name and body in dir
// and returns its path. It is meant for standing in for external programs in
// tests.
func WriteExecutable(tb testing.TB, dir, name, body string) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	content := "#!/bin/sh\n" + body + "\n"

	//nolint:gosec
	err := os.WriteFile(path, []byte(content), 0o755)
	if err != nil {
		tb.Fatalf("failed to write executable %s: %v", path, err)
	}

	return path
}
