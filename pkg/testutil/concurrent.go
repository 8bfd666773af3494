package testutil

import (
	"sync"
	"sync/atomic"

	dErrors "domainkit/pkg/domain-errors"
)

// ConcurrentResult tracks outcomes of concurrent test operations.
type ConcurrentResult struct {
	Successes int32
	Errors    int32
	Conflicts int32
	Invalid   int32
}

// Total returns the total number of operations executed.
func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.Errors + r.Conflicts + r.Invalid
}

// RunConcurrent executes fn in parallel goroutines and sorts the outcomes by
// domain error code.
func RunConcurrent(goroutines int, fn func(idx int) error) *ConcurrentResult {
	var wg sync.WaitGroup
	var successes, errs, conflicts, invalid atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			err := fn(idx)
			switch {
			case err == nil:
				successes.Add(1)
			case dErrors.HasCode(err, dErrors.CodeConflict):
				conflicts.Add(1)
			case dErrors.HasCode(err, dErrors.CodeInvalidInput), dErrors.HasCode(err, dErrors.CodeValidation):
				invalid.Add(1)
			default:
				errs.Add(1)
			}
		}(i)
	}

	wg.Wait()

	return &ConcurrentResult{
		Successes: successes.Load(),
		Errors:    errs.Load(),
		Conflicts: conflicts.Load(),
		Invalid:   invalid.Load(),
	}
}
