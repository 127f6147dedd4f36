// Command captable computes cap tables from a ledger of share purchases.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/captable/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// The .env file is optional.
	_ = godotenv.Load()

	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	// Exits when invoked by the shell for completion.
	cmd.Completion(flag.CommandLine, cmd.Commands...).Complete(name)

	flag.Parse()
	if err := cmd.Configure(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	ctx := cmd.WithLogger(context.Background(), os.Stderr)
	os.Exit(int(commander.Execute(ctx)))
}
