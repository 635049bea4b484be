package movegen

import (
	"context"
	"log"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"chess-attacks/rkiss"
)

// Config controls how magic numbers are searched for.
type Config struct {
	// Seed and Warmup initialise the candidate generator.
	Seed   uint64
	Warmup int
	// Boosters is indexed by the rank of the square being searched.
	Boosters [8]int

	// Parallel searches squares concurrently, each with its own
	// generator seeded from DeriveSeed(Seed, square). The tables are
	// equally valid but the magic numbers differ from a sequential build.
	Parallel bool
	// Workers bounds concurrent square searches; 0 means NumCPU.
	Workers int

	// Logger receives one summary line per table. nil disables logging.
	Logger *log.Logger
}

// DefaultConfig reproduces the canonical sequential build.
func DefaultConfig() Config {
	return Config{
		Seed:     rkiss.DefaultSeed,
		Warmup:   rkiss.DefaultWarmup,
		Boosters: rkiss.DefaultBoosters,
	}
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

func (c *Config) logf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

// BuildMagicAttackBoard searches magic numbers for a rook or a bishop. The
// search itself cannot fail; the returned error is non-nil only when ctx
// is done first. Any piece type other than rook or bishop panics.
func BuildMagicAttackBoard(ctx context.Context, pt PieceType, cfg Config) (*MagicAttackBoard, error) {
	mustSlider("BuildMagicAttackBoard", pt)
	start := time.Now()
	b := newLayout(pt)
	var err error
	if cfg.Parallel {
		err = b.searchParallel(ctx, &cfg)
	} else {
		err = b.searchSequential(ctx, &cfg)
	}
	if err != nil {
		return nil, err
	}
	total := 0
	worst := 0
	for _, a := range b.attempts {
		total += a
		if a > worst {
			worst = a
		}
	}
	cfg.logf("magics piece=%v parallel=%v slots=%#x attempts=%d worst=%d elapsed=%s",
		pt, cfg.Parallel, len(b.attacks), total, worst, time.Since(start))
	return b, nil
}

// searchSequential threads one generator through the squares in index
// order. Reordering squares would change which candidates each sees.
func (b *MagicAttackBoard) searchSequential(ctx context.Context, cfg *Config) error {
	rng := rkiss.NewSeeded(cfg.Seed, cfg.Warmup)
	dirs := Directions(b.pieceType)
	for sq := range b.entries {
		e := &b.entries[sq]
		set := newOccupancySet(sq, e, dirs)
		n, err := set.search(ctx, rng, cfg.Boosters[sq>>3], e, b.region(sq))
		b.attempts[sq] = n
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *MagicAttackBoard) searchParallel(ctx context.Context, cfg *Config) error {
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(cfg.workers())
	dirs := Directions(b.pieceType)
	for sq := range b.entries {
		sq := sq
		grp.Go(func() error {
			// Each square owns its entry, its attempt counter and a
			// disjoint region of the attack array.
			e := &b.entries[sq]
			rng := rkiss.NewSeeded(rkiss.DeriveSeed(cfg.Seed, sq), cfg.Warmup)
			set := newOccupancySet(sq, e, dirs)
			n, err := set.search(ctx, rng, cfg.Boosters[sq>>3], e, b.region(sq))
			b.attempts[sq] = n
			return err
		})
	}
	return grp.Wait()
}
