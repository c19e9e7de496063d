package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/osintlab/namesake/internal/model"
)

// Resolver runs one attribute-resolution call. Implemented by the pipeline
// engine.
type Resolver interface {
	Resolve(ctx context.Context, in model.ResolveInput) (*model.ResolutionReport, error)
}

// ResolveJob resolves a single name.
type ResolveJob struct {
	Input    model.ResolveInput
	Resolver Resolver
}

// Execute runs the resolution.
func (j *ResolveJob) Execute(ctx context.Context) Result {
	report, err := j.Resolver.Resolve(ctx, j.Input)
	return &ResolveResult{
		Input:  j.Input,
		Report: report,
		Error:  err,
	}
}

// ResolveResult is the outcome of one batch entry.
type ResolveResult struct {
	Input  model.ResolveInput
	Report *model.ResolutionReport
	Error  error
}

// GetError returns the job error, if any.
func (r *ResolveResult) GetError() error {
	return r.Error
}

// BatchProcessor resolves many names concurrently.
type BatchProcessor struct {
	resolver    Resolver
	concurrency int
	maxSources  int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(resolver Resolver, concurrency, maxSources int) *BatchProcessor {
	return &BatchProcessor{
		resolver:    resolver,
		concurrency: concurrency,
		maxSources:  maxSources,
	}
}

// ProcessNames resolves the given names concurrently and returns the results
// once every job has finished.
func (b *BatchProcessor) ProcessNames(ctx context.Context, names []string) []*ResolveResult {
	if len(names) == 0 {
		return []*ResolveResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()
	stop := context.AfterFunc(ctx, pool.Shutdown)
	defer stop()

	for _, name := range names {
		pool.Submit(&ResolveJob{
			Input: model.ResolveInput{
				Name:       name,
				MaxSources: b.maxSources,
			},
			Resolver: b.resolver,
		})
	}

	results := pool.Wait()
	out := make([]*ResolveResult, len(results))
	for i, result := range results {
		out[i] = result.(*ResolveResult)
	}
	return out
}

// ProcessFile reads names from a file (one per line, # comments allowed) and
// resolves them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*ResolveResult, error) {
	names, err := ReadNamesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read names: %w", err)
	}
	return b.ProcessNames(ctx, names), nil
}

// ReadNamesFromFile reads one name per line, skipping blanks, comments and
// duplicates.
func ReadNamesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var names []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			names = append(names, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return names, nil
}
