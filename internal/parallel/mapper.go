package parallel

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMinBatch is the batch size below which Pool runs inline.
	// Dispatch costs more than formatting a handful of values.
	DefaultMinBatch = 64
	// chunksPerWorker splits the index range finer than the worker count so
	// that uneven items do not leave workers idle.
	chunksPerWorker = 4
	// cancelCheckInterval is how many items run between context checks.
	cancelCheckInterval = 256
)

// Mapper calls fn once for every index in [0, n). fn must only write state
// owned by its index; Mapper gives no ordering guarantee between calls, so
// results are kept in order by writing to results[i], never by appending.
type Mapper interface {
	Map(ctx context.Context, n int, fn func(i int)) error
}

// PanicError reports a panic raised by fn for a given index.
type PanicError struct {
	Index int
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("panic while processing item %d: %v", e.Index, e.Value)
}

// Sequential runs every index inline, in order.
type Sequential struct{}

var _ Mapper = Sequential{}

// Map implements Mapper.
func (Sequential) Map(ctx context.Context, n int, fn func(i int)) error {
	return runRange(ctx, 0, n, fn)
}

// Pool fans indices out over a bounded number of goroutines.
type Pool struct {
	// Workers caps concurrent goroutines; zero or less means GOMAXPROCS.
	Workers int
	// MinBatch is the smallest n dispatched in parallel; zero or less means
	// DefaultMinBatch.
	MinBatch int
}

var _ Mapper = Pool{}

// NewPool returns a Pool with the given limits.
func NewPool(workers, minBatch int) Pool {
	return Pool{Workers: workers, MinBatch: minBatch}
}

func (p Pool) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (p Pool) minBatch() int {
	if p.MinBatch > 0 {
		return p.MinBatch
	}
	return DefaultMinBatch
}

// Map implements Mapper. Contiguous chunks of the index range are handed to
// an errgroup limited to Workers goroutines. The first failure cancels the
// chunks that have not started yet.
func (p Pool) Map(ctx context.Context, n int, fn func(i int)) error {
	workers := p.workers()
	if n < p.minBatch() || workers <= 1 {
		return runRange(ctx, 0, n, fn)
	}

	chunks := workers * chunksPerWorker
	size := (n + chunks - 1) / chunks

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() error {
			return runRange(gctx, lo, hi, fn)
		})
	}
	return g.Wait()
}

// runRange calls fn for [lo, hi), converting a panic into a PanicError.
func runRange(ctx context.Context, lo, hi int, fn func(i int)) (err error) {
	i := lo
	defer func() {
		if r := recover(); r != nil {
			err = PanicError{Index: i, Value: r}
		}
	}()
	for ; i < hi; i++ {
		if (i-lo)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		fn(i)
	}
	return nil
}
