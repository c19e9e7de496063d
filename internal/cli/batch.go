package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/osintlab/namesake/internal/pipeline"
	"github.com/osintlab/namesake/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Resolve multiple names from a file in parallel",
	Long: `Batch resolves multiple names concurrently:
- Read names from input file (one per line, # comments allowed)
- Resolve names in parallel with configurable worker count
- Generate an individual JSON report per name

Example:
  namesake batch names.txt
  namesake batch names.txt --concurrency 10 --output-dir ./reports
  namesake batch names.txt --max-sources 10 --timeout 10m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./namesake-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Per-name flags
	batchCmd.Flags().IntVar(&maxSources, "max-sources", 0, "maximum sources per name (3-25, default 5)")
	batchCmd.Flags().StringVar(&userAgent, "ua", "namesake/0.1 (+https://github.com/osintlab/namesake)", "HTTP User-Agent")
	batchCmd.Flags().BoolVar(&noRobots, "no-robots", false, "ignore robots.txt (not recommended)")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM attribute extraction and summaries")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Input file: %s\n", file)
	fmt.Fprintf(os.Stderr, "Workers:    %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "Output dir: %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.BatchWorkers = concurrency

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	engine := pipeline.NewEngine(cfg)
	processor := worker.NewBatchProcessor(engine, concurrency, maxSources)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	renderer := pipeline.NewRenderer(verbose)
	successCount := 0
	failureCount := 0
	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Input.Name, result.Error)
			continue
		}

		jsonPath := filepath.Join(outputDir, sanitizeFilename(result.Input.Name)+".json")
		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Input.Name, err)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s (confidence: %.2f, ambiguous: %v)\n",
			result.Input.Name, result.Report.ResolvedIdentity.Confidence, result.Report.AmbiguityFlag)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Total:    %d names\n", len(results))
	fmt.Fprintf(os.Stderr, "Success:  %d\n", successCount)
	fmt.Fprintf(os.Stderr, "Failures: %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "Output:   %s\n", outputDir)

	return nil
}

// sanitizeFilename sanitizes a name for use as a filename.
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "-",
	)
	s = replacer.Replace(strings.ToLower(strings.TrimSpace(s)))
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "unnamed"
	}
	return s
}
