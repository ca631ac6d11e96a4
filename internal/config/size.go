// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/aibor/vmws/internal/sys"
	"gopkg.in/yaml.v3"
)

// Size is a size in bytes. In YAML it is given like on the command line: a
// bare number means gibibytes, otherwise a unit suffix is required.
type Size int64

// UnmarshalYAML implements [yaml.Unmarshaler].
func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	var raw string

	err := node.Decode(&raw)
	if err != nil {
		return fmt.Errorf("size: %w", err)
	}

	size, err := sys.ParseSize(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*s = Size(size)

	return nil
}
