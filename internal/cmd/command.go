// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

const name = "vmws"

// Command is a vmws subcommand.
type Command struct {
	// Name as typed by the user.
	Name string

	// One-line description shown in the command listing.
	Summary string

	// Usage line shown in the command's help.
	Usage string

	// Flags returns the command's flag set. The flags are bound to the
	// state Run works with.
	Flags func() *pflag.FlagSet

	// Run executes the command after the flags have been parsed.
	Run func(ctx context.Context, fs *pflag.FlagSet, cfg IO) error
}

// commands returns the registry of all subcommands. Each call returns fresh
// commands with unbound flag state.
func commands() []*Command {
	return []*Command{
		newInitCommand(),
		newRunCommand(),
	}
}

func lookupCommand(commands []*Command, name string) *Command {
	for _, command := range commands {
		if command.Name == name {
			return command
		}
	}

	return nil
}

// Execute dispatches args to the matching subcommand.
//
// Argument errors are printed to cfg.Stderr together with a help hint and
// returned as [ParseArgsError]. If help was requested, it is printed and
// [ErrHelp] is returned.
func Execute(ctx context.Context, args []string, cfg IO) error {
	registry := commands()

	if len(args) == 0 {
		printUsage(cfg.Stderr, registry)
		return parseError(cfg.Stderr, name, &ParseArgsError{msg: "command required"})
	}

	if isHelpArg(args[0]) {
		if len(args) > 1 {
			if command := lookupCommand(registry, args[1]); command != nil {
				command.PrintHelp(cfg.Stderr, command.Flags())
				return ErrHelp
			}
		}

		printUsage(cfg.Stderr, registry)

		return ErrHelp
	}

	command := lookupCommand(registry, args[0])
	if command == nil {
		msg := fmt.Sprintf("unknown command %q", args[0])
		if suggestion := suggestCommand(args[0], registry); suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}

		return parseError(cfg.Stderr, name, &ParseArgsError{msg: msg})
	}

	return command.Execute(ctx, args[1:], cfg)
}

// Execute parses the flags and runs the command.
func (c *Command) Execute(ctx context.Context, args []string, cfg IO) error {
	fs := c.Flags()
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		c.PrintHelp(cfg.Stderr, fs)
	}

	err := fs.Parse(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ErrHelp
		}

		return parseError(cfg.Stderr, c.fullName(), &ParseArgsError{
			msg: "parse flags",
			err: err,
		})
	}

	err = c.Run(ctx, fs, cfg)
	if errors.Is(err, &ParseArgsError{}) {
		return parseError(cfg.Stderr, c.fullName(), err)
	}

	return err
}

// PrintHelp writes the command's help to w.
func (c *Command) PrintHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "%s\n\nUsage:\n  %s\n", c.Summary, c.Usage)

	var flagHelp strings.Builder

	fs.SetOutput(&flagHelp)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)

	if flagHelp.Len() > 0 {
		fmt.Fprintf(w, "\nFlags:\n%s", flagHelp.String())
	}
}

func (c *Command) fullName() string {
	return name + " " + c.Name
}

func printUsage(w io.Writer, commands []*Command) {
	fmt.Fprintf(w, "%s manages virtual machine workspaces.\n\n", name)
	fmt.Fprintf(w, "Usage:\n  %s <command> [flags] NAME [-- QEMU_ARGS...]\n\n", name)
	fmt.Fprintf(w, "Commands:\n")

	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	for _, command := range commands {
		fmt.Fprintf(tw, "  %s\t%s\n", command.Name, command.Summary)
	}

	_ = tw.Flush()

	fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", name)
}

// parseError prints the error with a help hint and returns it.
func parseError(w io.Writer, commandName string, err error) error {
	fmt.Fprintf(w, "Error [%s]: %v\n\nRun '%s --help' for usage.\n", name, err, commandName)
	return err
}

func isHelpArg(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
