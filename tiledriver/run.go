package tiledriver

import (
	"sync"

	"github.com/fieldgrid/scattergrid/evaluate"
	"github.com/fieldgrid/scattergrid/gridctx"
	"github.com/fieldgrid/scattergrid/rasterblit"
)

// Run drives Process (spec §4.7): it resolves the thread count, partitions
// window's rows into interleaved stripes (worker k owns rows
// k, k+nthreads, k+2*nthreads, ...), evaluates every cell with gc's chosen
// algorithm, blits each finished row into buf, and reports progress as rows
// complete: after every row when single-threaded, and once per wakeup of
// the coordinating goroutine otherwise, so several rows finished together
// are reported in one call. It returns ErrCancelled if progress ever returns
// false, or the first error an evaluator call returns (spec §7's
// EvaluatorFailure, treated like cancellation).
//
// Complexity: O(NX*NY) evaluator calls, parallelized across nthreads
// stripes.
func Run(gc *gridctx.Context, window Window, buf *rasterblit.Buffer, cfg Config, progress ProgressFunc) error {
	// spec §4.6: for linear, probe the window perimeter before dispatching
	// any worker and retroactively build a quadtree only if the probe finds
	// a cell outside the triangulation's hull. No-op for every other
	// algorithm, and a no-op here too once a quadtree already exists.
	gc.EnsureQuadtreeForLinearFallback(window.XMin, window.XMax, window.YMin, window.YMax, window.NX, window.NY)

	nthreads := ResolveThreads(cfg, window.NY)
	if nthreads <= 1 {
		return runSingleThreaded(gc, window, buf, progress)
	}

	ps := newProgressState()
	var wg sync.WaitGroup
	wg.Add(nthreads)
	for k := 0; k < nthreads; k++ {
		go func(worker int) {
			defer wg.Done()
			runStripe(gc, window, buf, worker, nthreads, ps)
		}(k)
	}

	ps.mu.Lock()
	for ps.counter < window.NY && !ps.stop {
		ps.cond.Wait()
		fraction := float64(ps.counter) / float64(window.NY)
		ps.mu.Unlock()

		if !progress(fraction, "grid") {
			ps.mu.Lock()
			if !ps.stop {
				ps.stop = true
				ps.cond.Broadcast()
			}
			continue
		}
		ps.mu.Lock()
	}
	ps.mu.Unlock()

	// Join every worker only after releasing the mutex, so a worker
	// blocked trying to acquire it to report its own row can proceed.
	wg.Wait()

	if ps.failed != nil {
		return ps.failed
	}
	if ps.stop {
		return ErrCancelled
	}
	return nil
}

// runStripe evaluates every row this worker owns, left-to-right within a
// row, and blits each finished row before checking for cancellation again.
func runStripe(gc *gridctx.Context, window Window, buf *rasterblit.Buffer, worker, nthreads int, ps *progressState) {
	hint := &evaluate.Hint{}
	row := make([]float64, window.NX)

	for j := worker; j < window.NY; j += nthreads {
		if ps.shouldStop() {
			return
		}
		for i := 0; i < window.NX; i++ {
			cx, cy := window.CellCenter(i, j)
			v, err := evaluate.Eval(gc.Algo, gc.Points, gc.Options, cx, cy, gc.Shared(), hint)
			if err != nil {
				ps.setStop(err)
				return
			}
			row[i] = v
		}
		buf.BlitRow(j, row)
		ps.rowDone()
	}
}

// runSingleThreaded is spec §4.7's inline single-thread mode: the same
// per-row loop, calling progress directly after each row and returning
// ErrCancelled immediately on refusal.
func runSingleThreaded(gc *gridctx.Context, window Window, buf *rasterblit.Buffer, progress ProgressFunc) error {
	hint := &evaluate.Hint{}
	row := make([]float64, window.NX)

	for j := 0; j < window.NY; j++ {
		for i := 0; i < window.NX; i++ {
			cx, cy := window.CellCenter(i, j)
			v, err := evaluate.Eval(gc.Algo, gc.Points, gc.Options, cx, cy, gc.Shared(), hint)
			if err != nil {
				return err
			}
			row[i] = v
		}
		buf.BlitRow(j, row)
		fraction := float64(j+1) / float64(window.NY)
		if !progress(fraction, "grid") {
			return ErrCancelled
		}
	}
	return nil
}
