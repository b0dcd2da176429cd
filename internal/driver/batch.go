package driver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/photon-lang/photon/internal/diag"
)

// BatchResult pairs a source path with the Result of compiling it.
type BatchResult struct {
	Path   string
	Result *Result
	Err    error
}

// BatchCompile compiles every path concurrently, one goroutine per file.
// Each goroutine runs Compile independently and reports into its own
// Result.Bag; no diagnostic sink is shared while the goroutines run.
//
// Per-file diagnostics still land in each Result.Bag; the returned shared
// Bag additionally aggregates every diagnostic across the whole batch, in
// submission order once all goroutines complete.
func BatchCompile(ctx context.Context, paths []string, maxDiagnosticsPerFile int) ([]BatchResult, *diag.Bag) {
	results := make([]BatchResult, len(paths))
	shared := diag.NewBag(maxDiagnosticsPerFile * len(paths))

	g, _ := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			result, err := Compile(path, maxDiagnosticsPerFile)
			results[i] = BatchResult{Path: path, Result: result, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range results {
		if r.Result != nil {
			shared.Merge(r.Result.Bag)
		}
	}
	return results, shared
}
