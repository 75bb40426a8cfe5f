// core/sim/generate.go
package sim

import (
	"context"
	"sync"
	"sync/atomic"

	"lrsim/core/errmodel"
)

// Summary aggregates one generation run.
type Summary struct {
	Reads    int64
	Bases    int64
	Chimeras int64
	Junk     int64
	Random   int64
	Glitches int64

	identitySum float64
}

// MeanIdentity is the mean achieved identity across emitted reads.
func (s Summary) MeanIdentity() float64 {
	if s.Reads == 0 {
		return 0
	}
	return s.identitySum / float64(s.Reads)
}

// Generator runs synthesizers until a base quota is met. Reads are
// statistically independent, so workers shard the quota freely; ordering
// across reads is not guaranteed once Threads > 1.
type Generator struct {
	Cfg     Config
	Refs    *Refs
	Model   errmodel.Model
	Seed    uint64
	Threads int // >= 1
}

// Run generates reads until at least quota bases were emitted (the final
// read is never truncated, so the total may overshoot). Each emitted read
// is handed to visit on a single goroutine; progress (when non-nil)
// receives per-read base deltas from workers.
func (g *Generator) Run(ctx context.Context, quota int64, visit func(Read) error, progress func(int64)) (Summary, error) {
	threads := g.Threads
	if threads < 1 {
		threads = 1
	}

	results := make(chan Read, threads*2)
	var emitted atomic.Int64

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg   sync.WaitGroup
		werr error
		wmu  sync.Mutex
	)
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		syn := NewSynthesizer(g.Cfg, g.Refs, g.Model, g.Seed+uint64(w))
		go func() {
			defer wg.Done()
			for emitted.Load() < quota {
				r, err := syn.Next()
				if err != nil {
					wmu.Lock()
					if werr == nil {
						werr = err
					}
					wmu.Unlock()
					cancel()
					return
				}
				// Claim the read's bases before emitting so workers stop
				// as soon as the quota is covered.
				emitted.Add(int64(len(r.Seq)))
				select {
				case results <- r:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	var (
		sum  Summary
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if cerr != nil {
				continue
			}
			sum.Reads++
			sum.Bases += int64(len(r.Seq))
			sum.identitySum += r.Identity
			if r.Chimera {
				sum.Chimeras++
			}
			if r.Junk {
				sum.Junk++
			}
			if r.RandomSeq {
				sum.Random++
			}
			sum.Glitches += int64(r.Glitches)
			if progress != nil {
				progress(int64(len(r.Seq)))
			}
			if err := visit(r); err != nil {
				cerr = err
				cancel()
			}
		}
	}()

	wg.Wait()
	close(results)
	cwg.Wait()

	if werr != nil {
		return sum, werr
	}
	if cerr != nil {
		return sum, cerr
	}
	return sum, ctx.Err()
}
