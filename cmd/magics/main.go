package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"chess-attacks/cmd/internal/gen"
	"chess-attacks/cmd/internal/load"
	"chess-attacks/cmd/internal/verify"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&gen.Command{}, "")
	subcommands.Register(&verify.Command{}, "")
	subcommands.Register(&load.Command{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
