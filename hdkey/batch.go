package hdkey

import (
	"context"
	"fmt"
	"math"

	"github.com/lightningnetwork/lnd/fn/v2"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the number of parallel derivations used by the range
// functions if no positive worker count is given.
const DefaultWorkers = 4

// DerivePrivateRange derives count private children starting at start in the
// given mode. Children are independent of each other, so they are derived in
// parallel by up to workers goroutines. The result for index start+i is at
// position i. A failure for a single index, for example ErrInvalidIndex, is
// reported in its result and doesn't stop the others. Positions past the end
// of the 64-bit index space fail with ErrIndexOutOfRange. An error is only
// returned if the context is canceled.
func DerivePrivateRange(ctx context.Context, parent *ExtendedPrivateKey,
	mode KeyMode, start uint64, count uint32,
	workers int) ([]fn.Result[*ChildPrivateKey], error) {

	log.DebugS(ctx, "Deriving private child range", "mode", mode,
		"start", start, "count", count)

	return deriveRange(
		ctx, start, count, workers,
		func(index uint64) (*ChildPrivateKey, error) {
			return DerivePrivate(parent, mode, index)
		},
	)
}

// DerivePublicRange derives count public children of the parent starting at
// start. See DerivePrivateRange for the semantics of the results.
func DerivePublicRange(ctx context.Context, parent *ExtendedPublicKey,
	start uint64, count uint32,
	workers int) ([]fn.Result[*ChildPublicKey], error) {

	log.DebugS(ctx, "Deriving public child range", "start", start,
		"count", count)

	return deriveRange(
		ctx, start, count, workers,
		func(index uint64) (*ChildPublicKey, error) {
			return DerivePublic(parent, index)
		},
	)
}

// deriveRange runs derive for every index in [start, start+count) on a
// bounded worker group.
func deriveRange[T any](ctx context.Context, start uint64, count uint32,
	workers int, derive func(uint64) (T, error)) ([]fn.Result[T], error) {

	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]fn.Result[T], count)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := uint32(0); i < count; i++ {
		if egCtx.Err() != nil {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			if uint64(i) > math.MaxUint64-start {
				results[i] = fn.Err[T](fmt.Errorf("%w: index "+
					"%d+%d overflows", ErrIndexOutOfRange,
					start, i))
				return nil
			}

			child, err := derive(start + uint64(i))
			if err != nil {
				results[i] = fn.Err[T](err)
				return nil
			}

			results[i] = fn.Ok(child)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// The loop above might have stopped early without any goroutine
	// noticing the cancellation.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
