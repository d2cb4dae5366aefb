package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"go.lepak.sg/ordtree/tree/binary"
)

type config struct {
	Seed     int64
	Rounds   int
	Ops      int
	KeyRange int
	Parallel int
	// Insert is the percentage of ops that insert, the rest delete.
	Insert int
}

type result struct {
	Inserts   int
	Deletes   int
	Misses    int
	MaxHeight int
}

func (r *result) add(o result) {
	r.Inserts += o.Inserts
	r.Deletes += o.Deletes
	r.Misses += o.Misses
	if o.MaxHeight > r.MaxHeight {
		r.MaxHeight = o.MaxHeight
	}
}

// run runs cfg.Rounds independent rounds, at most cfg.Parallel at a time.
// Every round owns its tree and checks it after each step, so the first
// broken invariant stops all rounds.
func run(ctx context.Context, cfg config, logger *slog.Logger) (result, error) {
	if cfg.KeyRange <= 0 {
		return result{}, fmt.Errorf("key range must be positive, got %d", cfg.KeyRange)
	}

	results := make([]result, cfg.Rounds)

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Parallel > 0 {
		g.SetLimit(cfg.Parallel)
	}

	for i := 0; i < cfg.Rounds; i++ {
		g.Go(func() error {
			res, err := round(ctx, cfg, cfg.Seed+int64(i))
			if err != nil {
				return fmt.Errorf("round %d: %w", i, err)
			}
			results[i] = res
			logger.Debug("round done", "round", i, "inserts", res.Inserts,
				"deletes", res.Deletes, "max_height", res.MaxHeight)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result{}, err
	}

	var total result
	for _, r := range results {
		total.add(r)
	}
	return total, nil
}

func round(ctx context.Context, cfg config, seed int64) (result, error) {
	rd := rand.New(rand.NewSource(seed))
	tr := binary.New[int]()
	var ref []int
	var res result

	for op := 0; op < cfg.Ops; op++ {
		if op%64 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		k := rd.Intn(cfg.KeyRange)
		if rd.Intn(100) < cfg.Insert {
			tr.Insert(k)
			i := 0
			for i < len(ref) && ref[i] <= k {
				i++
			}
			ref = slices.Insert(ref, i, k)
			res.Inserts++
		} else {
			i := slices.Index(ref, k)
			if tr.Delete(k) != (i >= 0) {
				return res, fmt.Errorf("op %d: delete %d disagrees with reference", op, k)
			}
			if i >= 0 {
				ref = slices.Delete(ref, i, i+1)
				res.Deletes++
			} else {
				res.Misses++
			}
		}

		if err := check(tr, ref); err != nil {
			return res, fmt.Errorf("op %d: %w", op, err)
		}
		if h, _ := tr.Height(); h > res.MaxHeight {
			res.MaxHeight = h
		}
	}

	return res, nil
}

// check compares the tree with ref, the sorted keys it should hold.
func check(tr *binary.Tree[int], ref []int) error {
	if err := tr.Validate(); err != nil {
		return err
	}
	if tr.Len() != len(ref) {
		return fmt.Errorf("%w: len %d, want %d", binary.ErrCorrupt, tr.Len(), len(ref))
	}

	i := 0
	var prev binary.Node[int]
	for n := range tr.All(binary.InOrder) {
		if n.Key() != ref[i] {
			return fmt.Errorf("%w: key %d at %d, want %d", binary.ErrCorrupt, n.Key(), i, ref[i])
		}
		if !prev.IsNil() {
			s, ok, err := tr.Successor(prev)
			if err != nil {
				return err
			}
			if !ok || s != n {
				return fmt.Errorf("%w: successor of %d is not the next node", binary.ErrCorrupt, prev.Key())
			}
		}
		prev = n
		i++
	}

	return nil
}
