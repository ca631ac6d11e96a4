// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"strconv"

	"github.com/aibor/vmws/internal/sys"
)

// sizeValue is a [pflag.Value] for sizes in bytes. Values are parsed with
// [sys.ParseSize], so a bare number means gibibytes.
type sizeValue struct {
	Value *int64
}

func (s *sizeValue) String() string {
	if s.Value == nil || *s.Value == 0 {
		return "0"
	}

	formatted, err := sys.FormatSize(*s.Value)
	if err != nil {
		return strconv.FormatInt(*s.Value, 10)
	}

	return formatted
}

func (s *sizeValue) Set(str string) error {
	size, err := sys.ParseSize(str)
	if err != nil {
		return err //nolint:wrapcheck
	}

	*s.Value = size

	return nil
}

func (*sizeValue) Type() string {
	return "size"
}
