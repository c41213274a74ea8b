package rawpack

import (
	"fmt"
	"os"
	"runtime"
	"sync"
)

// Batch fans candidates out over a pool of workers.
type Batch struct {
	// Reporter receives every event of the run. Nil discards them.
	Reporter Reporter
	// Workers overrides the pool size. Zero means runtime.GOMAXPROCS(0).
	Workers int
}

// Run makes sure originalsDir exists and then processes every candidate,
// returning one Outcome per candidate in completion order. A failed candidate
// never stops the others. The only error Run returns wraps
// ErrDirectoryCreation, in which case nothing was processed.
func (b Batch) Run(candidates []string, originalsDir string) ([]Outcome, error) {
	r := b.Reporter
	if r == nil {
		r = Discard
	}

	if err := os.MkdirAll(originalsDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDirectoryCreation, originalsDir, err)
	}
	r.Report(Event{Kind: EventRunStarted, Count: len(candidates), Dest: originalsDir})

	workers := b.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(candidates))

	jobs := make(chan string)
	results := make(chan Outcome, workers)
	var wg sync.WaitGroup

	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for c := range jobs {
				results <- Process(c, originalsDir, r)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, c := range candidates {
			jobs <- c
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	outcomes := make([]Outcome, 0, len(candidates))
	for o := range results {
		outcomes = append(outcomes, o)
	}
	return outcomes, nil
}
