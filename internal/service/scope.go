// Package service contains orchestration logic between HTTP handlers and
// repositories.
package service

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// scopedRead runs the primary read and, when check is non-nil, an existence
// check for the read's scoping filter concurrently, joining on both. A filtered
// read alone cannot distinguish "scope exists but matched nothing" from "scope
// does not exist"; the check disambiguates. Any rejection from either side
// propagates, even when the primary read succeeded.
func scopedRead[T any](ctx context.Context, primary func(context.Context) (T, error), check func(context.Context) error) (T, error) {
	var out T
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res, err := primary(gctx)
		if err != nil {
			return err
		}
		out = res
		return nil
	})

	if check != nil {
		g.Go(func() error {
			return check(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
