// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aibor/vmws/internal/sys"
	"github.com/mattn/go-shellwords"
	"gopkg.in/yaml.v3"
)

// EnvFile is the environment variable that may hold the config file path.
const EnvFile = "VMWS_CONFIG"

// Built-in machine defaults.
const (
	DefaultStorage  = "storage"
	DefaultDiskName = "disk.img"
	DefaultDiskSize = Size(16 << 30)
	DefaultSMP      = 2
	DefaultMemory   = Size(4 << 30)
	DefaultSSHPort  = 8022
)

// Config is the content of the config file.
type Config struct {
	// Root directory of the architecture directories.
	Storage string `yaml:"storage"`

	// List of directories programs are searched in. PATH if empty.
	SearchPath string `yaml:"search_path"`

	// Debugger command the emulator command is appended to in debug mode.
	Debugger []string `yaml:"debugger"`

	// Machine defaults for all architectures.
	Defaults Machine `yaml:"defaults"`

	// Per architecture machine defaults. Only set fields override Defaults.
	Arch map[sys.Arch]Machine `yaml:"arch"`
}

// Machine holds defaults for the machine options. Zero values are unset.
type Machine struct {
	Executable string `yaml:"executable"`
	DiskName   string `yaml:"disk_name"`
	DiskSize   Size   `yaml:"disk_size"`
	SMP        uint64 `yaml:"smp"`
	Memory     Size   `yaml:"memory"`
	SSHPort    uint16 `yaml:"ssh_port"`

	// Extra emulator arguments as a single string. It is split like a shell
	// would do it.
	QemuArgs string `yaml:"qemu_args"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Storage:  DefaultStorage,
		Debugger: []string{"gdb", "--args"},
		Defaults: Machine{
			DiskName: DefaultDiskName,
			DiskSize: DefaultDiskSize,
			SMP:      DefaultSMP,
			Memory:   DefaultMemory,
			SSHPort:  DefaultSSHPort,
		},
	}
}

// Load reads the config file at path. An empty path returns [Default].
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes the YAML config data. Unset values keep their built-in
// defaults. Unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	err := cfg.decode(data)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	var file Config

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err := decoder.Decode(&file)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode: %w", err)
	}

	for arch := range file.Arch {
		if !arch.IsSupported() {
			return fmt.Errorf("arch %s: %w", arch, sys.ErrArchNotSupported)
		}
	}

	if file.Storage != "" {
		c.Storage = file.Storage
	}

	if file.SearchPath != "" {
		c.SearchPath = file.SearchPath
	}

	if len(file.Debugger) > 0 {
		c.Debugger = file.Debugger
	}

	c.Defaults = c.Defaults.merge(file.Defaults)
	c.Arch = file.Arch

	_, err = c.Defaults.ExtraArgs()
	if err != nil {
		return fmt.Errorf("defaults: %w", err)
	}

	for arch, machine := range c.Arch {
		_, err = machine.ExtraArgs()
		if err != nil {
			return fmt.Errorf("arch %s: %w", arch, err)
		}
	}

	return nil
}

// Machine returns the machine defaults for the given architecture.
func (c *Config) Machine(arch sys.Arch) Machine {
	return c.Defaults.merge(c.Arch[arch])
}

// merge returns a copy of m with all set fields of other applied.
func (m Machine) merge(other Machine) Machine {
	if other.Executable != "" {
		m.Executable = other.Executable
	}

	if other.DiskName != "" {
		m.DiskName = other.DiskName
	}

	if other.DiskSize != 0 {
		m.DiskSize = other.DiskSize
	}

	if other.SMP != 0 {
		m.SMP = other.SMP
	}

	if other.Memory != 0 {
		m.Memory = other.Memory
	}

	if other.SSHPort != 0 {
		m.SSHPort = other.SSHPort
	}

	if other.QemuArgs != "" {
		m.QemuArgs = other.QemuArgs
	}

	return m
}

// ExtraArgs splits [Machine.QemuArgs] into single arguments.
func (m Machine) ExtraArgs() ([]string, error) {
	return SplitArgs(m.QemuArgs)
}

// SplitArgs splits a string into arguments the way a POSIX shell does,
// without any expansion.
func SplitArgs(s string) ([]string, error) {
	args, err := shellwords.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("split args %q: %w", s, err)
	}

	return args, nil
}
