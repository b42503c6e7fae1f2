// Package cmd implements the arbor CLI commands.
//
// The command structure follows standard Go CLI patterns with a root
// command that dispatches to subcommands (gen, inspect, version).
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "arbor",
	Short: "Arbor - declarative tree construction for Go",
	Long: `Arbor builds typed node trees from declarative configuration blocks.
The CLI generates typed builder functions for element kinds and
inspects trees described in markup documents.

Use "arbor <command> --help" for more information about a command.`,
	Usage: "arbor <command> [flags]",
}

// commands registered with the CLI, in registration order.
var commands []*Command

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands = append(commands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := os.Args[1:]

	var filtered []string
	level := slog.LevelInfo
	for _, arg := range args {
		switch arg {
		case "-v", "--verbose":
			level = slog.LevelDebug
		default:
			filtered = append(filtered, arg)
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if len(filtered) == 0 {
		printHelp(rootCmd)
		return nil
	}

	name := filtered[0]
	rest := filtered[1:]

	switch name {
	case "-h", "--help", "help":
		if len(rest) == 1 {
			if sub := lookup(rest[0]); sub != nil {
				printHelp(sub)
				return nil
			}
		}
		printHelp(rootCmd)
		return nil
	}

	sub := lookup(name)
	if sub == nil {
		fmt.Fprintf(os.Stderr, "arbor: unknown command %q\n\n", name)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command %q", name)
	}

	if len(rest) > 0 && (rest[0] == "-h" || rest[0] == "--help") {
		printHelp(sub)
		return nil
	}

	if err := sub.Run(rest); err != nil {
		fmt.Fprintf(os.Stderr, "arbor %s: %v\n", name, err)
		return err
	}
	return nil
}

func lookup(name string) *Command {
	for _, c := range commands {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func printHelp(cmd *Command) {
	if cmd == rootCmd {
		fmt.Println(cmd.Long)
		fmt.Println()
		fmt.Printf("Usage: %s\n\n", cmd.Usage)
		fmt.Println("Commands:")
		for _, c := range commands {
			fmt.Printf("  %-10s %s\n", c.Name, c.Short)
		}
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  -v, --verbose   enable debug logging")
		return
	}
	long := strings.TrimSpace(cmd.Long)
	if long == "" {
		long = cmd.Short
	}
	fmt.Println(long)
	fmt.Println()
	fmt.Printf("Usage: %s\n", cmd.Usage)
}
