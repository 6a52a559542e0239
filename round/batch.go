package round

import (
	"context"
	"sync"
	"time"

	"github.com/Hiviexd/loved-cli/banner"
)

// Outcome classifies one batch entry's result.
type Outcome int

const (
	OutcomeGenerated Outcome = iota
	OutcomeCached
	OutcomeFailed
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGenerated:
		return "generated"
	case OutcomeCached:
		return "cached"
	case OutcomeFailed:
		return "failed"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result is the outcome of one beatmapset in a batch run.
type Result struct {
	Beatmapset Beatmapset
	Outcome    Outcome
	Err        error
	Duration   time.Duration
}

// Summary aggregates a batch run.
type Summary struct {
	Total     int
	Generated int
	Cached    int
	Failed    int
	Skipped   int
}

func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, res := range results {
		switch res.Outcome {
		case OutcomeGenerated:
			s.Generated++
		case OutcomeCached:
			s.Cached++
		case OutcomeFailed:
			s.Failed++
		case OutcomeSkipped:
			s.Skipped++
		}
	}
	return s
}

// Runner fans a round out over a bounded worker pool.
type Runner struct {
	Generator   *banner.Generator
	Concurrency int
	// ContinueOnError keeps the batch going after a failed banner. When
	// false the first failure cancels entries that have not started yet;
	// in-flight entries still finish.
	ContinueOnError bool
	// OnResult, when set, observes each result as it completes. Calls are
	// serialized.
	OnResult func(Result)
}

// Run produces banners for every beatmapset in r. Results come back in
// round order regardless of completion order.
func (rn *Runner) Run(ctx context.Context, r *Round) []Result {
	concurrency := rn.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		index int
		set   Beatmapset
	}

	jobs := make(chan job)
	results := make([]Result, len(r.Beatmapsets))

	var wg sync.WaitGroup
	var callbackMu sync.Mutex

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res := rn.runOne(ctx, r, j.set)
				results[j.index] = res

				if res.Outcome == OutcomeFailed && !rn.ContinueOnError {
					cancel()
				}
				if rn.OnResult != nil {
					callbackMu.Lock()
					rn.OnResult(res)
					callbackMu.Unlock()
				}
			}
		}()
	}

	for i, set := range r.Beatmapsets {
		jobs <- job{index: i, set: set}
	}
	close(jobs)
	wg.Wait()

	return results
}

func (rn *Runner) runOne(ctx context.Context, r *Round, set Beatmapset) Result {
	select {
	case <-ctx.Done():
		return Result{Beatmapset: set, Outcome: OutcomeSkipped}
	default:
	}

	start := time.Now()
	generated, err := rn.Generator.CreateBanner(r.Request(set))
	res := Result{Beatmapset: set, Duration: time.Since(start)}

	switch {
	case err != nil:
		res.Outcome = OutcomeFailed
		res.Err = err
	case generated:
		res.Outcome = OutcomeGenerated
	default:
		res.Outcome = OutcomeCached
	}
	return res
}
