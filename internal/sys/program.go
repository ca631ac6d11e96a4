// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// ResolveProgram returns the path of the executable with the given name.
//
// If name contains a path separator, it is checked as is. Otherwise the
// directories of searchPath are tried in order. An empty searchPath means the
// PATH environment variable is used. A [*ProgramError] is returned if no
// executable regular file is found.
func ResolveProgram(name, searchPath string) (string, error) {
	if name == "" {
		return "", &ProgramError{Name: name}
	}

	if strings.ContainsRune(name, filepath.Separator) {
		if !isExecutable(name) {
			return "", &ProgramError{Name: name}
		}

		return name, nil
	}

	if searchPath == "" {
		searchPath = os.Getenv("PATH")
	}

	for _, dir := range filepath.SplitList(searchPath) {
		// Empty elements would mean the current directory. Never pick up
		// executables from there implicitly.
		if dir == "" {
			continue
		}

		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	return "", &ProgramError{Name: name}
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	return unix.Access(path, unix.X_OK) == nil
}
