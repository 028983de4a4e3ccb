package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/readinglist/internal/cli"
	"github.com/mrlokans/readinglist/internal/config"
	"github.com/mrlokans/readinglist/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	command := cli.DefaultCommand
	var args []string
	if len(os.Args) >= 2 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	switch command {
	case "-h", "--help", "help":
		cli.PrintUsage(os.Stderr, os.Args[0])
		return
	case "version":
		fmt.Printf("%s (%s)\n", Version, Commit)
		return
	}

	cfg := config.NewConfig()

	cmd, ok := cli.NewCommand(command, cfg)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		cli.PrintUsage(os.Stderr, os.Args[0])
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := entrypoint.Run(cfg, Version, cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
