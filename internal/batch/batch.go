// Package batch runs the screenshot OCR pipeline over many files at once:
// file discovery (directories, include/exclude patterns), a bounded worker
// pool, and aggregate formatting of the per-file results.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/MeKo-Tech/snapocr/internal/ocr"
	"github.com/MeKo-Tech/snapocr/internal/pipeline"
)

// Config holds all configuration for batch processing.
type Config struct {
	// Pipeline settings applied to every file.
	Pipeline pipeline.Config

	// Parallel processing settings.
	Workers int

	// File discovery settings.
	Recursive       bool
	IncludePatterns []string
	ExcludePatterns []string
}

// DefaultConfig returns a batch configuration with one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Pipeline: pipeline.DefaultConfig(),
		Workers:  runtime.NumCPU(),
	}
}

// FileResult is the outcome for a single file. Exactly one of Result and
// Err is set.
type FileResult struct {
	Path   string
	Result *pipeline.RunResult
	Err    error
}

// Result holds the outcome of a whole batch run.
type Result struct {
	Files       []FileResult
	Duration    time.Duration
	WorkerCount int
}

// Failed returns the results of files that could not be processed.
func (r *Result) Failed() []FileResult {
	var failed []FileResult
	for _, fr := range r.Files {
		if fr.Err != nil {
			failed = append(failed, fr)
		}
	}
	return failed
}

// ProcessBatch discovers image files from the given paths and runs the
// pipeline on each using a bounded worker pool. Per-file failures are
// recorded in the result rather than aborting the batch; the returned error
// covers discovery and setup only. Results keep discovery order regardless
// of completion order.
func ProcessBatch(ctx context.Context, eng ocr.Engine, paths []string, cfg Config) (*Result, error) {
	if eng == nil {
		return nil, errors.New("recognition engine is nil")
	}

	files, err := discoverImageFiles(paths, cfg.Recursive, cfg.IncludePatterns, cfg.ExcludePatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to discover image files: %w", err)
	}
	if len(files) == 0 {
		return nil, errors.New("no image files found")
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(files) {
		workers = len(files)
	}

	start := time.Now()
	results := make([]FileResult, len(files))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := pipeline.RunFile(ctx, eng, files[i], cfg.Pipeline)
				results[i] = FileResult{Path: files[i], Result: res, Err: err}
			}
		}()
	}

feed:
	for i := range files {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Result{
		Files:       results,
		Duration:    time.Since(start),
		WorkerCount: workers,
	}, nil
}
