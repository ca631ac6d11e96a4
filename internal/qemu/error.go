// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"errors"
	"strconv"
)

var (
	// ErrArgumentCollision is returned if two [Argument]s collide.
	ErrArgumentCollision = errors.New("colliding args")

	// ErrInvalidConfiguration is returned if a [LaunchRequest] has missing or
	// conflicting options.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// ArgumentError indicates an issue with the options of a [LaunchRequest].
//
// It matches [ErrInvalidConfiguration].
type ArgumentError struct {
	msg string
}

// Error implements the [error] interface.
func (e *ArgumentError) Error() string {
	return ErrInvalidConfiguration.Error() + ": " + e.msg
}

// Is implements the [errors.Is] interface.
func (*ArgumentError) Is(other error) bool {
	if other == ErrInvalidConfiguration {
		return true
	}

	_, ok := other.(*ArgumentError)

	return ok
}

// CommandError is returned if the emulator process exited unsuccessfully.
type CommandError struct {
	Err      error
	ExitCode int
}

// Error implements the [error] interface.
func (e *CommandError) Error() string {
	msg := "emulator exited with code " + strconv.Itoa(e.ExitCode)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Is implements the [errors.Is] interface.
func (*CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CommandError) Unwrap() error {
	return e.Err
}
