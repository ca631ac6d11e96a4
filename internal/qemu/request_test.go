// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu_test

import (
	"testing"

	"github.com/aibor/vmws/internal/qemu"
	"github.com/stretchr/testify/assert"
)

func TestLaunchRequest_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(r *qemu.LaunchRequest)
		expectedErr string
	}{
		{
			name:   "valid",
			modify: func(*qemu.LaunchRequest) {},
		},
		{
			name: "no executable",
			modify: func(r *qemu.LaunchRequest) {
				r.Executable = ""
			},
			expectedErr: "emulator executable must not be empty",
		},
		{
			name: "no disk",
			modify: func(r *qemu.LaunchRequest) {
				r.DiskPath = ""
			},
			expectedErr: "disk path must not be empty",
		},
		{
			name: "no vcpu",
			modify: func(r *qemu.LaunchRequest) {
				r.SMP = 0
			},
			expectedErr: "vcpu count must be positive",
		},
		{
			name: "no memory",
			modify: func(r *qemu.LaunchRequest) {
				r.Memory = 0
			},
			expectedErr: "memory size must be positive",
		},
		{
			name: "unaligned memory",
			modify: func(r *qemu.LaunchRequest) {
				r.Memory = gib + 1
			},
			expectedErr: "memory size: size is not a multiple of 1MiB: 1073741825",
		},
		{
			name: "no port",
			modify: func(r *qemu.LaunchRequest) {
				r.SSHPort = 0
			},
			expectedErr: "ssh port must not be 0",
		},
		{
			name: "install kernel",
			modify: func(r *qemu.LaunchRequest) {
				r.Install = true
				r.Kernel = "vmlinuz"
			},
			expectedErr: "kernel can not be used in install mode",
		},
		{
			name: "install debug",
			modify: func(r *qemu.LaunchRequest) {
				r.Install = true
				r.Debug = true
			},
			expectedErr: "debug can not be used in install mode",
		},
		{
			name: "boot args without kernel",
			modify: func(r *qemu.LaunchRequest) {
				r.KernelBootArgs = "quiet"
			},
			expectedErr: "boot arguments require a kernel",
		},
		{
			name: "debug without debugger",
			modify: func(r *qemu.LaunchRequest) {
				r.Debug = true
			},
			expectedErr: "debug requires a debugger command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := bootRequest()
			tt.modify(&req)

			err := req.Validate()
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.EqualError(t, err, "invalid configuration: "+tt.expectedErr)
			assert.ErrorIs(t, err, qemu.ErrInvalidConfiguration)
		})
	}
}
