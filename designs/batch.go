// SPDX-License-Identifier: MIT
// Package: lvdesign/designs
//
// batch.go: ProjectivePlanes: bounded concurrent plane building.

package designs

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvdesign/incidence"
)

// ProjectivePlanes builds ProjectivePlane(n, opts...) for every order in
// orders, at most GOMAXPROCS at a time. Results are returned in input order.
// The first failure cancels the remaining work and is returned wrapped with
// its order; a cancelled ctx returns ctx.Err().
//
// Each plane is independent, so this is plain data parallelism; the single
// plane constructors stay synchronous.
func ProjectivePlanes(ctx context.Context, orders []int, opts ...Option) ([]*incidence.Structure, error) {
	out := make([]*incidence.Structure, len(orders))
	if len(orders) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(runtime.GOMAXPROCS(0), len(orders)))

	for i, n := range orders {
		i, n := i, n // per-iteration copy; go directive predates 1.22 loopvar semantics
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			p, err := ProjectivePlane(n, opts...)
			if err != nil {
				return fmt.Errorf("ProjectivePlanes: order %d: %w", n, err)
			}
			// indices are unique per goroutine, no lock needed
			out[i] = p

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
