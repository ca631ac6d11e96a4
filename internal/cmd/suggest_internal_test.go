// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{a: "", b: "", expected: 0},
		{a: "", b: "run", expected: 3},
		{a: "init", b: "", expected: 4},
		{a: "run", b: "run", expected: 0},
		{a: "rnu", b: "run", expected: 2},
		{a: "ini", b: "init", expected: 1},
		{a: "kitten", b: "sitting", expected: 3},
		{a: "sitting", b: "kitten", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, levenshtein(tt.a, tt.b))
		})
	}
}

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "ini", expected: "init"},
		{input: "itni", expected: "init"},
		{input: "rum", expected: "run"},
		{input: "runn", expected: "run"},
		{input: "install", expected: ""},
		{input: "something", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, suggestCommand(tt.input, commands()))
		})
	}
}
