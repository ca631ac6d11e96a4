// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aibor/vmws/internal/sys"
)

const dirPerm = 0o755

// Workspace is the directory of a single virtual machine.
type Workspace struct {
	Arch sys.Arch
	Name string

	// Absolute path of the workspace directory.
	Dir string
}

// Locate returns the [Workspace] for the given architecture and name below
// the storage root.
//
// The workspace directory is created if it does not exist yet. Existing
// directories are used as they are. Only the last path element is created, a
// missing architecture directory results in [ErrArchNotProvisioned].
func Locate(root string, arch sys.Arch, name string) (*Workspace, error) {
	if !arch.IsSupported() {
		return nil, fmt.Errorf("%s: %w", arch, sys.ErrArchNotSupported)
	}

	if err := ValidateName(name); err != nil {
		return nil, fmt.Errorf("workspace name: %w", err)
	}

	root, err := sys.AbsolutePath(root)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	archDir := filepath.Join(root, string(arch))
	dir := filepath.Join(archDir, name)

	err = os.Mkdir(dir, dirPerm)

	switch {
	case err == nil:
		slog.Debug("Created workspace", slog.String("dir", dir))
	case errors.Is(err, fs.ErrExist):
		info, statErr := os.Stat(dir)
		if statErr != nil {
			return nil, fmt.Errorf("workspace: %w", statErr)
		}

		if !info.IsDir() {
			return nil, fmt.Errorf("workspace %s: %w", dir, ErrNotDirectory)
		}
	case errors.Is(err, fs.ErrNotExist):
		return nil, &ProvisionError{Dir: archDir, Err: err}
	default:
		return nil, fmt.Errorf("create workspace: %w", err)
	}

	return &Workspace{
		Arch: arch,
		Name: name,
		Dir:  dir,
	}, nil
}

// ValidateName checks that name is a plain file name that stays inside its
// parent directory.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: must not be empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsRune(name, filepath.Separator),
		strings.ContainsRune(name, '/'),
		strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q must not contain path separators", ErrInvalidName, name)
	}

	return nil
}

// Path returns the absolute path of the file with the given name in the
// workspace. Absolute names are returned unchanged.
func (w *Workspace) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(w.Dir, name)
}

// HasFile returns true if a regular file with the given name exists in the
// workspace. Symbolic links are followed.
func (w *Workspace) HasFile(name string) bool {
	info, err := os.Stat(w.Path(name))
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}
