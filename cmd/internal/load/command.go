package load

import (
	"context"
	"flag"
	"log"

	"github.com/google/subcommands"

	"chess-attacks/cmd/internal/verify"
	"chess-attacks/crosscheck"
	"chess-attacks/magicstore"
	"chess-attacks/movegen"
	"chess-attacks/rkiss"
)

type Command struct {
	db     string
	warmup int
	oracle string
}

func (*Command) Name() string     { return "load" }
func (*Command) Synopsis() string { return "Rebuild attack tables from stored magics and verify them" }
func (*Command) Usage() string {
	return `load -db MAGICS.db [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.db, "db", "", "sqlite database written by gen -db")
	flags.IntVar(&c.warmup, "warmup", rkiss.DefaultWarmup, "warmup the magics were saved under")
	flags.StringVar(&c.oracle, "oracle", "reference", "oracles to compare the rebuilt tables with")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.db == "" {
		log.Println("Must supply a magic database")
		return subcommands.ExitUsageError
	}
	oracles, err := crosscheck.Oracles(c.oracle)
	if err != nil {
		log.Print(err)
		return subcommands.ExitUsageError
	}
	store, err := magicstore.Open(c.db)
	if err != nil {
		log.Printf("open %s: %v", c.db, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	rook, err := store.Rebuild(movegen.PieceTypeRook, c.warmup)
	if err != nil {
		log.Printf("rebuild rook: %v", err)
		return subcommands.ExitFailure
	}
	bishop, err := store.Rebuild(movegen.PieceTypeBishop, c.warmup)
	if err != nil {
		log.Printf("rebuild bishop: %v", err)
		return subcommands.ExitFailure
	}
	tables := movegen.NewTablesWith(rook, bishop)
	log.Printf("loaded magics db=%s warmup=%d rook=%#x bishop=%#x", c.db, c.warmup, tables.Rook.Len(), tables.Bishop.Len())
	if !verify.Tables(tables, oracles, 100, 1, 10) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
