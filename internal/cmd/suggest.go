// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

// maxSuggestDistance is the largest edit distance a suggestion may have.
const maxSuggestDistance = 3

// suggestCommand returns the name of the command closest to unknown, or an
// empty string if none is close enough.
func suggestCommand(unknown string, commands []*Command) string {
	bestName := ""
	bestDistance := maxSuggestDistance + 1

	for _, command := range commands {
		distance := levenshtein(unknown, command.Name)
		if distance < bestDistance {
			bestDistance = distance
			bestName = command.Name
		}
	}

	return bestName
}

// levenshtein computes the edit distance between a and b.
func levenshtein(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	previous := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	current := make([]int, len(a)+1)

	for j := 1; j <= len(b); j++ {
		current[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			current[i] = min(
				previous[i]+1,
				current[i-1]+1,
				previous[i-1]+cost,
			)
		}

		previous, current = current, previous
	}

	return previous[len(a)]
}
