// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package workspace

import (
	"errors"
	"io/fs"
)

var (
	// ErrInvalidName is returned if a workspace or file name is not a plain
	// file name.
	ErrInvalidName = errors.New("invalid name")

	// ErrArchNotProvisioned is returned if the architecture directory in the
	// storage does not exist. It matches [fs.ErrNotExist] as well.
	ErrArchNotProvisioned = errors.New("architecture directory does not exist")

	// ErrNotDirectory is returned if the workspace path exists but is not a
	// directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrMissingArtifact is returned if a file required for installation is
	// not present in the workspace.
	ErrMissingArtifact = errors.New("missing artifact")

	// ErrAlreadyInitialized is returned if the disk image exists already.
	ErrAlreadyInitialized = errors.New("workspace already initialized")

	// ErrNotInitialized is returned if the disk image does not exist.
	ErrNotInitialized = errors.New("disk image not found, please run `init` first")

	// ErrKernelNotFound is returned if a requested kernel image is not
	// present in the workspace.
	ErrKernelNotFound = errors.New("kernel image not found")
)

// ProvisionError is returned if the architecture directory is missing.
type ProvisionError struct {
	Dir string
	Err error
}

// Error implements the [error] interface.
func (e *ProvisionError) Error() string {
	return ErrArchNotProvisioned.Error() + ": " + e.Dir
}

// Is implements the [errors.Is] interface.
func (*ProvisionError) Is(other error) bool {
	return other == ErrArchNotProvisioned || other == fs.ErrNotExist
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ProvisionError) Unwrap() error {
	return e.Err
}

// MissingArtifactError is returned if a required input file is absent. It
// carries instructions on how to provide the file.
type MissingArtifactError struct {
	Artifact    string
	Path        string
	Remediation string
}

// Error implements the [error] interface.
func (e *MissingArtifactError) Error() string {
	msg := ErrMissingArtifact.Error() + " `" + e.Artifact + "` at " + e.Path
	if e.Remediation != "" {
		msg += "\n\n" + e.Remediation
	}

	return msg
}

// Is implements the [errors.Is] interface.
func (*MissingArtifactError) Is(other error) bool {
	if other == ErrMissingArtifact {
		return true
	}

	_, ok := other.(*MissingArtifactError)

	return ok
}

// DiskError is returned if the disk image exists although it must not.
type DiskError struct {
	Name string
}

// Error implements the [error] interface.
func (e *DiskError) Error() string {
	return "disk image `" + e.Name + "` already exists, " +
		"seems like you have already initialized this workspace"
}

// Is implements the [errors.Is] interface.
func (*DiskError) Is(other error) bool {
	return other == ErrAlreadyInitialized
}

// KernelError is returned if a kernel image can not be found.
type KernelError struct {
	Name string
}

// Error implements the [error] interface.
func (e *KernelError) Error() string {
	return "kernel image `" + e.Name + "` not found"
}

// Is implements the [errors.Is] interface.
func (*KernelError) Is(other error) bool {
	return other == ErrKernelNotFound
}
