package skymap

import (
	"context"
	"runtime"
	"sync"

	"github.com/litescript/ls-skymap/internal/catalog"
)

// Result pairs one batch request with its outcome.
type Result struct {
	Request     Request
	Scene       *Scene
	Diagnostics Diagnostics
	Err         error
}

// RenderAll renders every request concurrently over a bounded worker
// pool. Requests are independent and the catalog is read-only, so no
// locking is needed; each worker only writes its own result slot.
//
// workers <= 0 selects one worker per CPU. Results are returned in
// request order. A canceled context abandons unstarted requests, marking
// them with the context error.
func RenderAll(ctx context.Context, cat *catalog.Catalog, reqs []Request, workers int) []Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(reqs) {
		workers = len(reqs)
	}

	results := make([]Result, len(reqs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				scene, diag, err := Build(cat, reqs[i])
				results[i] = Result{
					Request:     reqs[i],
					Scene:       scene,
					Diagnostics: diag,
					Err:         err,
				}
			}
		}()
	}

	for i := range reqs {
		if err := ctx.Err(); err != nil {
			results[i] = Result{Request: reqs[i], Err: err}
			continue
		}
		select {
		case <-ctx.Done():
			results[i] = Result{Request: reqs[i], Err: ctx.Err()}
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}
