// Command demo inserts keys into a tree with tracing on, prints it, then
// runs lookups and deletes against it.
//
//	demo                       # the textbook tree 15 6 18 3 7 17 20 2 4 13 9
//	demo -d 6 -d 15 5 3 8 1    # custom keys and deletes
//	echo 5 3 8 | demo -        # keys from stdin
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"

	"go.lepak.sg/ordtree/internal/cliutil"
	"go.lepak.sg/ordtree/tree/binary"
)

var defaultKeys = []int{15, 6, 18, 3, 7, 17, 20, 2, 4, 13, 9}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:      "demo",
		Usage:     "walk through the basic operations of an unbalanced binary search tree",
		ArgsUsage: "[keys... | -]",
		Version:   versioninfo.Short(),
		Action:    runDemo,
	}
	app.Flags = []cli.Flag{
		cliutil.LogLevelFlag("debug"),
		&cli.BoolFlag{
			Name:    "trace",
			Usage:   "log every structural decision the tree takes",
			Value:   true,
			EnvVars: []string{"ORDTREE_TRACE"},
		},
		&cli.IntSliceFlag{
			Name:    "delete",
			Aliases: []string{"d"},
			Usage:   "keys to delete after building, in order",
			Value:   cli.NewIntSlice(6, 15),
			EnvVars: []string{"ORDTREE_DELETE"},
		},
		&cli.IntSliceFlag{
			Name:    "search",
			Aliases: []string{"s"},
			Usage:   "keys to search for after building",
			Value:   cli.NewIntSlice(13, 10),
			EnvVars: []string{"ORDTREE_SEARCH"},
		},
	}
	return app
}

func readKeys(cctx *cli.Context) ([]int, error) {
	args := cctx.Args().Slice()
	if len(args) == 0 {
		return defaultKeys, nil
	}
	if len(args) == 1 && args[0] == "-" {
		return scanKeys(cctx.App.Reader)
	}
	return cliutil.ParseKeys(args)
}

func scanKeys(r io.Reader) ([]int, error) {
	var words []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading keys: %w", err)
	}
	return cliutil.ParseKeys(words)
}

func runDemo(cctx *cli.Context) error {
	logger := cliutil.ConfigLogger(cctx, cctx.App.ErrWriter)
	out := cctx.App.Writer

	keys, err := readKeys(cctx)
	if err != nil {
		return err
	}

	verbosity := binary.TraceOff
	if cctx.Bool("trace") {
		verbosity = binary.TraceOn
	}
	tr := binary.New[int](
		binary.WithTracer(binary.LogTracer(logger)),
		binary.WithVerbosity(verbosity),
	)

	for _, k := range keys {
		tr.Insert(k)
	}
	logger.Info("built tree", "keys", len(keys))

	printTree(out, tr)

	if tr.Len() > 0 {
		min, _ := tr.Minimum()
		max, _ := tr.Maximum()
		fmt.Fprintln(out, "minimum:", min.Key(), "maximum:", max.Key())

		root := tr.Root()
		if s, ok, err := tr.Successor(root); err != nil {
			return err
		} else if ok {
			fmt.Fprintln(out, "successor of root:", s.Key())
		}
		if p, ok, err := tr.Predecessor(root); err != nil {
			return err
		} else if ok {
			fmt.Fprintln(out, "predecessor of root:", p.Key())
		}
	}

	for _, k := range cctx.IntSlice("search") {
		_, ok := tr.Search(k)
		fmt.Fprintf(out, "search %d: %v\n", k, ok)
	}

	deletes := cctx.IntSlice("delete")
	for _, k := range deletes {
		fmt.Fprintf(out, "delete %d: %v\n", k, tr.Delete(k))
	}
	if len(deletes) > 0 {
		printTree(out, tr)
	}

	if err := tr.Validate(); err != nil {
		logger.Error("tree is corrupt", "err", err)
		return err
	}
	slog.Debug("tree validated", "len", tr.Len())
	return nil
}

func printTree(out io.Writer, tr *binary.Tree[int]) {
	fmt.Fprintln(out, "tree:")
	fmt.Fprint(out, tr.String())

	for _, o := range []binary.Traversal{binary.InOrder, binary.PreOrder, binary.PostOrder} {
		var keys []int
		for k := range tr.Keys(o) {
			keys = append(keys, k)
		}
		fmt.Fprintf(out, "%s: %v\n", o, keys)
	}

	actual, ideal := tr.Height()
	fmt.Fprintln(out, "height:", actual, "ideal:", ideal)
}
