package roundtrip

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/avdva/binfloat"
)

const (
	maxSweepBits = 24
	chunkSize    = 1 << 12
)

// Sweep checks, that every encoding of 'narrow' survives a trip through 'wide' unchanged.
// Widening and narrowing back must both be exact, and keep the sign.
func Sweep(ctx context.Context, narrow, wide binfloat.Format, workers int) (Report, error) {
	if bits := narrow.TotalBits(); bits > maxSweepBits {
		return Report{}, fmt.Errorf("sweep over %v: %d bits is more than %d", narrow, bits, maxSweepBits)
	}
	total := uint64(1) << uint(narrow.TotalBits())
	chunks := int((total + chunkSize - 1) / chunkSize)
	reports := make([]Report, chunks)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(workers))
	for i := 0; i < chunks; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := uint64(i) * chunkSize
			end := start + chunkSize
			if end > total {
				end = total
			}
			for x := start; x < end; x++ {
				reports[i].add(sweepOne(x, narrow, wide))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	var result Report
	for _, r := range reports {
		result.Merge(r)
	}
	return result, nil
}

func sweepOne(x uint64, narrow, wide binfloat.Format) Result {
	r := Check(RoundTrip("", x, narrow, wide))
	if !r.Pass {
		return r
	}
	mid, outcome := binfloat.Convert(x, narrow, wide)
	r.Pass = outcome == binfloat.Exact && narrow.Signbit(x) == wide.Signbit(mid)
	if r.Pass && narrow.IsNaN(x) {
		r.Pass = wide.IsNaN(mid)
	}
	if !r.Pass {
		r.Name = "widening"
	}
	return r
}
