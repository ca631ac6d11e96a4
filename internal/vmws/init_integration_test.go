// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build integration

package vmws_test

import (
	"bytes"
	"crypto/rand"
	"os"
	"testing"

	"github.com/aibor/vmws/internal/sys"
	"github.com/aibor/vmws/internal/vmws"
	"github.com/aibor/vmws/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs the preparation with the real qemu-img, truncate and dd and a stand-in
// emulator in dry-run mode.
func TestLauncher_Init_Integration(t *testing.T) {
	for _, program := range []string{"qemu-img", "truncate", "dd"} {
		if _, err := sys.ResolveProgram(program, ""); err != nil {
			t.Skipf("%s not available: %v", program, err)
		}
	}

	f := newFixture(t, sys.AArch64, "qemu-system-aarch64")
	f.launcher.Runner = vmws.ExecRunner{}
	f.launcher.SearchPath = ""

	firmware := make([]byte, 2*mib)
	_, err := rand.Read(firmware)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(f.ws.Path(workspace.FirmwareFile), firmware, 0o600))
	require.NoError(t, os.WriteFile(f.ws.Path(workspace.InstallMediaFile), nil, 0o600))

	machine := defaultMachine()
	machine.Executable = f.bin("qemu-system-aarch64")
	machine.DryRun = true

	err = f.launcher.Init(t.Context(), f.ws, vmws.InitOptions{
		Machine:  machine,
		DiskSize: 8 * gib,
	})
	require.NoError(t, err)
	assert.Equal(t, vmws.StateRendered, f.launcher.State())

	for _, store := range []string{workspace.EFIStoreFile, workspace.VarStoreFile} {
		info, err := os.Stat(f.ws.Path(store))
		require.NoError(t, err)
		assert.Equal(t, int64(64*mib), info.Size(), store)
	}

	efi, err := os.ReadFile(f.ws.Path(workspace.EFIStoreFile))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(firmware, efi[:len(firmware)]), "firmware should be copied")
	assert.True(t, bytes.Equal(make([]byte, 64*mib-len(firmware)), efi[len(firmware):]),
		"rest of the store should be zero")

	assert.FileExists(t, f.ws.Path("disk.img"))
	assert.Contains(t, f.stdout.String(), "file=install-media.iso")
}
