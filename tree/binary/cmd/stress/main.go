// Command stress runs randomized insert and delete rounds on many trees
// in parallel and checks every tree after every step.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"

	"go.lepak.sg/ordtree/internal/cliutil"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "stress",
		Usage:   "hammer binary search trees with random operations",
		Version: versioninfo.Short(),
		Action:  runStress,
	}
	app.Flags = []cli.Flag{
		cliutil.LogLevelFlag("info"),
		&cli.Int64Flag{
			Name:    "seed",
			Aliases: []string{"s"},
			Usage:   "seed of the first round, round i uses seed+i (default current unix time in ns)",
			EnvVars: []string{"ORDTREE_SEED"},
		},
		&cli.IntFlag{
			Name:    "rounds",
			Aliases: []string{"r"},
			Usage:   "number of independent trees",
			Value:   100,
			EnvVars: []string{"ORDTREE_ROUNDS"},
		},
		&cli.IntFlag{
			Name:    "ops",
			Usage:   "operations per round",
			Value:   2000,
			EnvVars: []string{"ORDTREE_OPS"},
		},
		&cli.IntFlag{
			Name:    "keys",
			Usage:   "keys are drawn from [0, keys), small values give many duplicates",
			Value:   500,
			EnvVars: []string{"ORDTREE_KEYS"},
		},
		&cli.IntFlag{
			Name:    "insert",
			Usage:   "percentage of operations that insert",
			Value:   60,
			EnvVars: []string{"ORDTREE_INSERT"},
		},
		&cli.IntFlag{
			Name:    "parallel",
			Aliases: []string{"p"},
			Usage:   "rounds running at once",
			Value:   runtime.NumCPU(),
			EnvVars: []string{"ORDTREE_PARALLEL"},
		},
	}
	return app
}

func runStress(cctx *cli.Context) error {
	logger := cliutil.ConfigLogger(cctx, cctx.App.ErrWriter)

	cfg := config{
		Seed:     cctx.Int64("seed"),
		Rounds:   cctx.Int("rounds"),
		Ops:      cctx.Int("ops"),
		KeyRange: cctx.Int("keys"),
		Parallel: cctx.Int("parallel"),
		Insert:   cctx.Int("insert"),
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Info("starting", "seed", cfg.Seed, "rounds", cfg.Rounds, "ops", cfg.Ops,
		"parallel", cfg.Parallel)

	start := time.Now()
	res, err := run(cctx.Context, cfg, logger)
	if err != nil {
		logger.Error("stress failed", "seed", cfg.Seed, "err", err)
		return err
	}

	logger.Info("finished", "took", time.Since(start),
		"inserts", res.Inserts, "deletes", res.Deletes, "misses", res.Misses,
		"max_height", res.MaxHeight)
	fmt.Fprintf(cctx.App.Writer, "ok: %d rounds, %d inserts, %d deletes, %d misses, max height %d\n",
		cfg.Rounds, res.Inserts, res.Deletes, res.Misses, res.MaxHeight)
	return nil
}
