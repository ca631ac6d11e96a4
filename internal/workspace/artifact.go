// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package workspace

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aibor/vmws/internal/sys"
)

// Well-known file names in a workspace.
const (
	// FirmwareFile is the UEFI firmware image the firmware store is seeded
	// from. Provided by the user.
	FirmwareFile = "firmware.bin"

	// InstallMediaFile is the installer image attached as CD-ROM during
	// installation. Provided by the user.
	InstallMediaFile = "install-media.iso"

	// EFIStoreFile is the read-only firmware flash image.
	EFIStoreFile = "efi.img"

	// VarStoreFile is the writable UEFI variable store flash image.
	VarStoreFile = "varstore.img"

	// KernelPrefix is prepended to kernel names that are not found as given.
	KernelPrefix = "Image-"
)

// CheckArtifacts verifies the files required for installation are present.
//
// It returns a [*MissingArtifactError] with instructions for the first file
// that is missing.
func (w *Workspace) CheckArtifacts() error {
	for _, artifact := range []string{FirmwareFile, InstallMediaFile} {
		if w.HasFile(artifact) {
			continue
		}

		return &MissingArtifactError{
			Artifact:    artifact,
			Path:        w.Path(artifact),
			Remediation: remediation(w.Arch, w.Dir),
		}
	}

	return nil
}

// RequireNoDisk returns a [*DiskError] if the disk image exists already.
func (w *Workspace) RequireNoDisk(disk string) error {
	if w.HasFile(disk) {
		return &DiskError{Name: disk}
	}

	return nil
}

// RequireDisk returns [ErrNotInitialized] if the disk image does not exist.
func (w *Workspace) RequireDisk(disk string) error {
	if !w.HasFile(disk) {
		return ErrNotInitialized
	}

	return nil
}

// FindKernel returns the name of the kernel image file for the given name.
//
// The name is tried as is first and with [KernelPrefix] second. The found
// name is returned in the form it was tried in, relative names stay relative
// to the workspace directory.
func (w *Workspace) FindKernel(name string) (string, error) {
	candidates := []string{name}

	if !strings.ContainsRune(name, filepath.Separator) {
		candidates = append(candidates, KernelPrefix+name)
	}

	for _, candidate := range candidates {
		if w.HasFile(candidate) {
			slog.Debug("Found kernel", slog.String("path", w.Path(candidate)))

			return candidate, nil
		}
	}

	return "", &KernelError{Name: name}
}

func remediation(arch sys.Arch, dir string) string {
	var firmwarePackage, firmwareFile, isoArch string

	switch arch {
	case sys.AArch64:
		firmwarePackage = "qemu-efi-aarch64"
		firmwareFile = "/usr/share/qemu-efi-aarch64/QEMU_EFI.fd"
		isoArch = "arm64"
	case sys.RISCV64:
		firmwarePackage = "qemu-efi-riscv64"
		firmwareFile = "/usr/share/qemu-efi-riscv64/RISCV_VIRT_CODE.fd"
		isoArch = "riscv64"
	default:
		return ""
	}

	lines := []string{
		"Both the firmware and the installation media are required to",
		"initialize the workspace:",
		"",
		"  1. Install the firmware package, e.g. on Debian:",
		"       apt-get install " + firmwarePackage,
		"  2. Copy the firmware into the workspace:",
		"       cp " + firmwareFile + " " + filepath.Join(dir, FirmwareFile),
		"  3. Download an installer image, e.g. the Debian netinst image from",
		"       https://cdimage.debian.org/debian-cd/current/" + isoArch + "/iso-cd/",
		"     and save it as " + filepath.Join(dir, InstallMediaFile),
	}

	return strings.Join(lines, "\n")
}
