// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "errors"

var (
	// ErrEmptyPath is returned if an empty path is given.
	ErrEmptyPath = errors.New("path must not be empty")

	// ErrArchNotSupported is returned if the requested architecture is not
	// supported for the requested operation.
	ErrArchNotSupported = errors.New("architecture not supported")

	// ErrProgramNotFound is returned if a required external program can not
	// be found in the search path.
	ErrProgramNotFound = errors.New("program not found")

	// ErrInvalidSize is returned if a size string can not be parsed or is not
	// positive.
	ErrInvalidSize = errors.New("invalid size")

	// ErrSizeNotAligned is returned if a size can not be expressed in whole
	// mebibytes.
	ErrSizeNotAligned = errors.New("size is not a multiple of 1MiB")
)

// ProgramError is returned if a program can not be resolved.
type ProgramError struct {
	Name string
}

// Error implements the [error] interface.
func (e *ProgramError) Error() string {
	return "program `" + e.Name + "` not found, please install it before proceeding"
}

// Is implements the [errors.Is] interface.
func (*ProgramError) Is(other error) bool {
	if other == ErrProgramNotFound {
		return true
	}

	_, ok := other.(*ProgramError)

	return ok
}
