// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"strings"
)

// Render joins the argument vector into a single line that a POSIX shell
// splits back into exactly the same vector.
//
// Arguments consisting of safe characters only are kept as is. All others are
// put in single quotes.
func Render(args []string) string {
	var builder strings.Builder

	for idx, arg := range args {
		if idx > 0 {
			builder.WriteByte(' ')
		}

		builder.WriteString(quote(arg))
	}

	return builder.String()
}

func quote(arg string) string {
	if arg == "" {
		return "''"
	}

	if strings.IndexFunc(arg, isUnsafe) == -1 {
		return arg
	}

	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

func isUnsafe(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z',
		'A' <= r && r <= 'Z',
		'0' <= r && r <= '9':
		return false
	}

	return !strings.ContainsRune("-_=,.:/@%+", r)
}
