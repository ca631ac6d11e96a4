// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/docker/go-units"
)

// ParseSize parses a human readable size.
//
// A bare integer is taken as a number of gibibytes. Anything else is parsed
// with binary unit suffixes, like "512M" or "8GiB".
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n <= 0 || n > (1<<63-1)/units.GiB {
			return 0, fmt.Errorf("%w: %s", ErrInvalidSize, s)
		}

		return n * units.GiB, nil
	}

	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}

	if n <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidSize, s)
	}

	return n, nil
}

// FormatSize renders a size the way QEMU tools accept it: whole gibibytes as
// "<n>G", everything else as "<n>M".
func FormatSize(size int64) (string, error) {
	switch {
	case size <= 0:
		return "", fmt.Errorf("%w: %d", ErrInvalidSize, size)
	case size%units.GiB == 0:
		return strconv.FormatInt(size/units.GiB, 10) + "G", nil
	case size%units.MiB == 0:
		return strconv.FormatInt(size/units.MiB, 10) + "M", nil
	default:
		return "", fmt.Errorf("%w: %d", ErrSizeNotAligned, size)
	}
}
