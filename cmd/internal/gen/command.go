package gen

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/google/subcommands"

	"chess-attacks/geometry"
	"chess-attacks/magicstore"
	"chess-attacks/movegen"
	"chess-attacks/rkiss"
)

type Command struct {
	seed     uint64
	warmup   int
	parallel bool
	workers  int

	db      string
	print   bool
	cpuProf string
}

func (*Command) Name() string     { return "gen" }
func (*Command) Synopsis() string { return "Search magic numbers for rooks and bishops" }
func (*Command) Usage() string {
	return `gen [flags]

Builds both sliding attack tables, logging attempt counts and timing.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.Uint64Var(&c.seed, "seed", rkiss.DefaultSeed, "generator seed")
	flags.IntVar(&c.warmup, "warmup", rkiss.DefaultWarmup, "generator outputs discarded before the search")
	flags.BoolVar(&c.parallel, "parallel", false, "search squares concurrently (changes the magics found)")
	flags.IntVar(&c.workers, "workers", 0, "concurrent square searches with -parallel (0 = NumCPU)")

	flags.StringVar(&c.db, "db", "", "save the magics to this sqlite database")
	flags.BoolVar(&c.print, "print", false, "print every magic number")
	flags.StringVar(&c.cpuProf, "cpuprofile", "", "write a CPU profile to this file")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.cpuProf != "" {
		f, err := os.Create(c.cpuProf)
		if err != nil {
			log.Printf("creating cpuprofile: %v", err)
			return subcommands.ExitFailure
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Printf("start cpu profile: %v", err)
			return subcommands.ExitFailure
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	cfg := movegen.DefaultConfig()
	cfg.Seed = c.seed
	cfg.Warmup = c.warmup
	cfg.Parallel = c.parallel
	cfg.Workers = c.workers
	cfg.Logger = log.Default()

	start := time.Now()
	tables, err := movegen.BuildTables(ctx, cfg)
	if err != nil {
		log.Printf("build: %v", err)
		return subcommands.ExitFailure
	}
	log.Printf("tables built elapsed=%s", time.Since(start))

	if c.print {
		printMagics(tables.Rook)
		printMagics(tables.Bishop)
	}

	if c.db != "" {
		store, err := magicstore.Open(c.db)
		if err != nil {
			log.Printf("open %s: %v", c.db, err)
			return subcommands.ExitFailure
		}
		defer store.Close()
		for _, b := range []*movegen.MagicAttackBoard{tables.Rook, tables.Bishop} {
			if err := store.Save(b, c.warmup); err != nil {
				log.Printf("save %v: %v", b.PieceType(), err)
				return subcommands.ExitFailure
			}
		}
		log.Printf("saved magics db=%s warmup=%d", c.db, c.warmup)
	}
	return subcommands.ExitSuccess
}

func printMagics(b *movegen.MagicAttackBoard) {
	attempts := b.Attempts()
	for sq, e := range b.Entries() {
		fmt.Printf("%-6v %v magic=%#016x shift=%d offset=%#05x attempts=%d\n",
			b.PieceType(), geometry.MustFromIndex(sq), uint64(e.Magic), e.Shift, e.Offset, attempts[sq])
	}
}
