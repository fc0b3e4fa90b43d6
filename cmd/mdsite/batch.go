package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
)

// Sentinel errors for page generation.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWritePage    = errors.New("failed to write page")
)

// PageConverter is the interface for the conversion service.
type PageConverter interface {
	Convert(ctx context.Context, input mdsite.Input) (*mdsite.Page, error)
}

// Compile-time interface implementation check.
var _ PageConverter = (*mdsite.Converter)(nil)

// PageResult holds the outcome of a single page.
type PageResult struct {
	SourcePath string
	OutputPath string
	Title      string
	Err        error
	Duration   time.Duration
}

// buildPages converts files concurrently with a fixed number of workers.
// Results keep the order of files.
func buildPages(ctx context.Context, conv PageConverter, files []PageFile, workers int) []PageResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))

	results := make([]PageResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = PageResult{
						SourcePath: files[idx].SourcePath,
						Err:        ctx.Err(),
					}
					continue
				}
				results[idx] = buildPage(ctx, conv, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildPage converts a single file and writes its page.
func buildPage(ctx context.Context, conv PageConverter, f PageFile) PageResult {
	start := time.Now()
	result := PageResult{
		SourcePath: f.SourcePath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.SourcePath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	page, err := conv.Convert(ctx, mdsite.Input{Markdown: string(content)})
	if err != nil {
		result.Err = fmt.Errorf("%w%s", err, contentHint(err))
		result.Duration = time.Since(start)
		return result
	}
	result.Title = page.Title

	if err := fileutil.WriteFile(f.OutputPath, page.HTML); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// contentHint returns a hint for markdown content errors, if any.
func contentHint(err error) string {
	switch {
	case errors.Is(err, mdsite.ErrMissingTitle):
		return hints.ForMissingTitle()
	case errors.Is(err, mdsite.ErrUnclosedDelimiter):
		return hints.ForUnclosedDelimiter()
	}
	return ""
}

// ResultSummary holds the count of succeeded and failed pages.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed pages.
func countResults(results []PageResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// firstError returns the first failed page's error, or nil.
func firstError(results []PageResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printResults outputs page results using the environment writers.
func printResults(results []PageResult, quiet, verbose bool, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.SourcePath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.SourcePath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary
}
