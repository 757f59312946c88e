package images

import (
	"context"
	"runtime"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchResult reports the outcome of ReverseFiles.
type BatchResult struct {
	// Reversed lists the files that were rewritten, in input order.
	Reversed []string
	// Failed maps each failing file to its error.
	Failed map[string]error
}

// ReverseFiles runs ReverseFile over independent files with at most workers running at
// once. A failing file does not stop the others; every failure is returned combined
// with multierr. Cancelling ctx stops new files from being started.
//
// Arguments:
// - ctx: Cancels scheduling of files not yet started.
// - paths: The PGM files to rewrite.
// - workers: The concurrency limit. Values below one use runtime.NumCPU().
// - logger: Receives per-file progress. May be nil.
//
// Returns:
// - The per-file outcome.
// - The combined per-file errors, or ctx.Err() if the batch was cancelled.
func ReverseFiles(ctx context.Context, paths []string, workers int, logger *zap.Logger) (BatchResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	var (
		mu     sync.Mutex
		errs   error
		done   = make([]bool, len(paths))
		result = BatchResult{Failed: make(map[string]error)}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			err := ReverseFile(path, logger)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Warn("reverse failed", zap.String("path", path), zap.Error(err))
				result.Failed[path] = err
				errs = multierr.Append(errs, err)
				return nil
			}
			logger.Info("reversed", zap.String("path", path))
			done[i] = true
			return nil
		})
	}
	cancelled := g.Wait()

	for i, ok := range done {
		if ok {
			result.Reversed = append(result.Reversed, paths[i])
		}
	}
	if cancelled != nil {
		return result, multierr.Append(errs, cancelled)
	}
	if err := ctx.Err(); err != nil {
		return result, multierr.Append(errs, err)
	}
	return result, errs
}
