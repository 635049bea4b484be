package load

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"

	"chess-attacks/cmd/internal/gen"
)

func execute(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	flags := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(flags)
	if err := flags.Parse(args); err != nil {
		t.Fatalf("%s %v: %v", cmd.Name(), args, err)
	}
	return cmd.Execute(context.Background(), flags)
}

func TestGenThenLoad(t *testing.T) {
	db := filepath.Join(t.TempDir(), "magics.db")
	if got := execute(t, &gen.Command{}, "-db", db); got != subcommands.ExitSuccess {
		t.Fatalf("gen: exit %v", got)
	}
	if got := execute(t, &Command{}, "-db", db); got != subcommands.ExitSuccess {
		t.Fatalf("load: exit %v", got)
	}
	if got := execute(t, &Command{}, "-db", db, "-warmup", "7"); got != subcommands.ExitFailure {
		t.Fatalf("load with unknown warmup: exit %v", got)
	}
}

func TestLoadUsage(t *testing.T) {
	if got := execute(t, &Command{}); got != subcommands.ExitUsageError {
		t.Fatalf("load without -db: exit %v", got)
	}
	db := filepath.Join(t.TempDir(), "magics.db")
	if got := execute(t, &Command{}, "-db", db, "-oracle", "nope"); got != subcommands.ExitUsageError {
		t.Fatalf("load with bad oracle: exit %v", got)
	}
}
