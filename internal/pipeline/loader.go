// Package pipeline evaluates a directory of scenario files as one portfolio.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/config"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
)

// Entry is one evaluated project.
type Entry struct {
	File        DiscoveredFile   `json:"-"`
	Project     string           `json:"project"`
	Name        string           `json:"name"`
	Metrics     evm.Metrics      `json:"metrics"`
	Constraints *evm.Constraints `json:"constraints,omitempty"`
	Results     evm.Results      `json:"results"`
	Assessment  evm.Assessment   `json:"assessment"`
}

// FileError records a scenario file that could not be read or parsed.
type FileError struct {
	Path string `json:"path"`
	Err  string `json:"error"`
}

// LoadResult holds the output of a portfolio load.
type LoadResult struct {
	Entries    []Entry     `json:"entries"`
	TotalFiles int         `json:"totalFiles"`
	Errors     []FileError `json:"errors,omitempty"`
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
// It is called from worker goroutines, possibly concurrently, so
// implementations that keep state must synchronize it.
type ProgressFunc func(current, total int)

// Load discovers and evaluates every scenario file under dir, at most
// workers at a time (GOMAXPROCS when workers < 1). Entries keep discovery
// order. Per-file failures are collected in Errors; a failed directory walk
// or a canceled ctx is returned as an error.
func Load(ctx context.Context, dir string, workers int, progressFn ProgressFunc) (*LoadResult, error) {
	files, err := ScanDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	result := &LoadResult{TotalFiles: len(files)}
	if len(files) == 0 {
		return result, nil
	}

	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	sem := semaphore.NewWeighted(int64(min(workers, len(files))))

	type outcome struct {
		entry Entry
		err   error
	}

	outcomes := make([]outcome, len(files))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range files {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, fmt.Errorf("evaluating %s: %w", dir, err)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			e, err := evaluateFile(files[i])
			outcomes[i] = outcome{entry: e, err: err}
			n := processed.Add(1)
			if progressFn != nil {
				progressFn(int(n), len(files))
			}
		}()
	}
	wg.Wait()

	for i, o := range outcomes {
		if o.err != nil {
			result.Errors = append(result.Errors, FileError{Path: files[i].Path, Err: o.err.Error()})
			continue
		}
		result.Entries = append(result.Entries, o.entry)
	}
	return result, nil
}

func evaluateFile(f DiscoveredFile) (Entry, error) {
	s, err := config.LoadScenario(f.Path)
	if err != nil {
		return Entry{}, err
	}

	m := s.Metrics.EVM()
	r := evm.Evaluate(m)
	return Entry{
		File:        f,
		Project:     f.Project,
		Name:        s.Name,
		Metrics:     m,
		Constraints: s.EVMConstraints(),
		Results:     r,
		Assessment:  evm.Assess(m, r),
	}, nil
}
