// Command random builds a tree from a random (or sorted) insertion order
// and prints its traversals and shape.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"

	"go.lepak.sg/ordtree/internal/cliutil"
	"go.lepak.sg/ordtree/tree/binary"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "random",
		Usage:   "build a random binary search tree and show it",
		Version: versioninfo.Short(),
		Action:  runRandom,
	}
	app.Flags = []cli.Flag{
		cliutil.LogLevelFlag("info"),
		&cli.Int64Flag{
			Name:    "seed",
			Aliases: []string{"s"},
			Usage:   "seed (default current unix time in ns)",
			EnvVars: []string{"ORDTREE_SEED"},
		},
		&cli.IntFlag{
			Name:    "num",
			Aliases: []string{"n"},
			Usage:   "number of nodes in the tree",
			Value:   10,
			EnvVars: []string{"ORDTREE_NUM"},
		},
		&cli.BoolFlag{
			Name:    "balanced",
			Aliases: []string{"b"},
			Usage:   "keep building the tree until it is balanced",
		},
		&cli.IntFlag{
			Name:  "max-attempts",
			Usage: "give up on --balanced after this many trees, 0 for no limit",
			Value: 100000,
		},
		&cli.BoolFlag{
			Name:  "sorted",
			Usage: "insert keys in ascending order instead, the worst case",
		},
		&cli.StringSliceFlag{
			Name:    "order",
			Aliases: []string{"o"},
			Usage:   "traversals to print (inorder, preorder, postorder)",
			Value:   cli.NewStringSlice("preorder", "inorder"),
		},
		&cli.BoolFlag{
			Name:  "no-tree",
			Usage: "do not draw the tree",
		},
	}
	return app
}

func runRandom(cctx *cli.Context) error {
	logger := cliutil.ConfigLogger(cctx, cctx.App.ErrWriter)
	out := cctx.App.Writer

	num := cctx.Int("num")
	if num < 0 {
		return fmt.Errorf("num must not be negative, got %d", num)
	}
	if cctx.Bool("sorted") && cctx.Bool("balanced") {
		return fmt.Errorf("--sorted and --balanced do not mix")
	}

	var orders []binary.Traversal
	for _, s := range cctx.StringSlice("order") {
		o, err := binary.ParseTraversal(s)
		if err != nil {
			return err
		}
		orders = append(orders, o)
	}
	orders = slices.Compact(orders)

	seed := cctx.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("building tree", "num", num, "seed", seed)

	var tr *binary.Tree[int]
	attempts := 0

	switch {
	case cctx.Bool("sorted"):
		tr = binary.BuildSorted(num)
	case cctx.Bool("balanced"):
		tr, attempts = binary.BuildRandomBalanced(num, seed, cctx.Int("max-attempts"))
		if !tr.Balanced() {
			logger.Warn("gave up before finding a balanced tree", "attempts", attempts)
		}
	default:
		tr = binary.BuildRandom(num, seed)
	}

	for _, o := range orders {
		keys := make([]int, 0, num)
		for k := range tr.Keys(o) {
			keys = append(keys, k)
		}
		fmt.Fprintf(out, "%s: %v\n", o, keys)
	}

	if !cctx.Bool("no-tree") {
		fmt.Fprintln(out, "tree:")
		fmt.Fprintln(out, tr.String())
	}

	actual, ideal := tr.Height()
	fmt.Fprintln(out, "height:", actual, "ideal:", ideal)

	if cctx.Bool("balanced") {
		fmt.Fprintln(out, "attempts:", attempts)
	}

	return checkTree(out, tr)
}

func checkTree(out io.Writer, tr *binary.Tree[int]) error {
	if err := tr.Validate(); err != nil {
		return err
	}
	if tr.Len() == 0 {
		return nil
	}

	min, err := tr.Minimum()
	if err != nil {
		return err
	}
	max, err := tr.Maximum()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "minimum:", min.Key(), "maximum:", max.Key())
	return nil
}
