// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vmws

// State is the progress of a [Launcher].
type State int

// Launcher states in the order they are passed. Executed, Rendered and Failed
// are terminal.
const (
	StateIdle State = iota
	StateValidating
	StatePreparing
	StateBuilding
	StateDispatching
	StateExecuted
	StateRendered
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:        "idle",
	StateValidating:  "validating",
	StatePreparing:   "preparing",
	StateBuilding:    "building",
	StateDispatching: "dispatching",
	StateExecuted:    "executed",
	StateRendered:    "rendered",
	StateFailed:      "failed",
}

// String implements [fmt.Stringer].
func (s State) String() string {
	name, exists := stateNames[s]
	if !exists {
		return "unknown"
	}

	return name
}

// Terminal returns true if no further transition is possible.
func (s State) Terminal() bool {
	return s == StateExecuted || s == StateRendered || s == StateFailed
}
