// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vmws_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/vmws/internal/sys"
	"github.com/aibor/vmws/internal/vmws"
	"github.com/aibor/vmws/internal/workspace"
	"github.com/stretchr/testify/require"
)

const (
	mib = 1 << 20
	gib = 1 << 30
)

// recordingRunner records all processes instead of running them. The
// optional result function decides about the outcome of each.
type recordingRunner struct {
	procs  []vmws.Process
	result func(proc vmws.Process) error
}

func (r *recordingRunner) Run(_ context.Context, proc vmws.Process) error {
	r.procs = append(r.procs, proc)

	if r.result != nil {
		return r.result(proc)
	}

	return nil
}

func (r *recordingRunner) args() [][]string {
	args := make([][]string, 0, len(r.procs))
	for _, proc := range r.procs {
		args = append(args, proc.Args)
	}

	return args
}

type fixture struct {
	binDir   string
	ws       *workspace.Workspace
	runner   *recordingRunner
	launcher *vmws.Launcher
	stdout   *bytes.Buffer
}

func (f *fixture) bin(name string) string {
	return filepath.Join(f.binDir, name)
}

func (f *fixture) addFiles(t *testing.T, names ...string) {
	t.Helper()

	for _, name := range names {
		require.NoError(t, os.WriteFile(f.ws.Path(name), []byte(name), 0o600))
	}
}

// newFixture sets up a workspace for arch, a search path with stand-ins for
// the given programs and a launcher with a recording runner.
func newFixture(t *testing.T, arch sys.Arch, programs ...string) *fixture {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, string(arch)), 0o755))

	ws, err := workspace.Locate(root, arch, "ws1")
	require.NoError(t, err)

	binDir := t.TempDir()
	for _, program := range programs {
		sys.WriteExecutable(t, binDir, program, "exit 0")
	}

	runner := &recordingRunner{}
	stdout := &bytes.Buffer{}

	return &fixture{
		binDir: binDir,
		ws:     ws,
		runner: runner,
		stdout: stdout,
		launcher: &vmws.Launcher{
			Runner:     runner,
			SearchPath: binDir,
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
		},
	}
}

func defaultMachine() vmws.Machine {
	return vmws.Machine{
		DiskName: "disk.img",
		SMP:      2,
		Memory:   4 * gib,
		SSHPort:  8022,
	}
}
