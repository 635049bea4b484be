package verify

import (
	"context"
	"flag"
	"log"

	"github.com/google/subcommands"

	"chess-attacks/crosscheck"
	"chess-attacks/movegen"
	"chess-attacks/rkiss"
)

type Command struct {
	samples int
	seed    uint64
	oracle  string

	warmup   int
	parallel bool
	limit    int
}

func (*Command) Name() string     { return "verify" }
func (*Command) Synopsis() string { return "Check freshly built tables against other move generators" }
func (*Command) Usage() string {
	return `verify [flags]

Builds the attack tables, checks every mask subset against the ray walker
and compares random occupancies with the selected oracles.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.samples, "samples", 1000, "random occupancies per square")
	flags.Uint64Var(&c.seed, "seed", 1, "occupancy sampling seed")
	flags.StringVar(&c.oracle, "oracle", "all", "comma-separated oracles: dragontooth, goose, reference or all")

	flags.IntVar(&c.warmup, "warmup", rkiss.DefaultWarmup, "generator outputs discarded before the search")
	flags.BoolVar(&c.parallel, "parallel", false, "build with the parallel search")
	flags.IntVar(&c.limit, "limit", 10, "mismatches to print per check")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	oracles, err := crosscheck.Oracles(c.oracle)
	if err != nil {
		log.Print(err)
		return subcommands.ExitUsageError
	}
	cfg := movegen.DefaultConfig()
	cfg.Warmup = c.warmup
	cfg.Parallel = c.parallel
	tables, err := movegen.BuildTables(ctx, cfg)
	if err != nil {
		log.Printf("build: %v", err)
		return subcommands.ExitFailure
	}
	if !Tables(tables, oracles, c.samples, c.seed, c.limit) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// Tables runs the exhaustive reference check and every oracle comparison,
// logging up to limit mismatches for each. It reports whether all passed.
func Tables(tables *movegen.Tables, oracles []crosscheck.Oracle, samples int, seed uint64, limit int) bool {
	ok := true
	report := func(what string, ms []crosscheck.Mismatch) {
		log.Printf("verify %s mismatches=%d", what, len(ms))
		for i, m := range ms {
			if i == limit {
				log.Printf("  ... %d more", len(ms)-limit)
				break
			}
			log.Printf("  %v", m)
		}
		ok = ok && len(ms) == 0
	}
	report("rook/reference", crosscheck.CheckReference(tables.Rook))
	report("bishop/reference", crosscheck.CheckReference(tables.Bishop))
	for _, o := range oracles {
		report(o.Name(), crosscheck.Check(tables, o, samples, seed))
	}
	return ok
}
