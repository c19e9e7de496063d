package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/osintlab/namesake/internal/api"
	"github.com/osintlab/namesake/internal/pipeline"
	"github.com/spf13/cobra"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the resolution pipelines over HTTP",
	Long: `Serve exposes the resolution pipelines on a small HTTP API:
  GET  /healthz          health probe
  POST /v1/intelligence  broad intelligence report
  POST /v1/resolve       attribute-qualified resolution

Example:
  namesake serve
  namesake serve --addr :9090 --llm openai`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")

	// HTTP flags
	serveCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "per-request pipeline timeout")
	serveCmd.Flags().StringVar(&userAgent, "ua", "namesake/0.1 (+https://github.com/osintlab/namesake)", "HTTP User-Agent")
	serveCmd.Flags().BoolVar(&noRobots, "no-robots", false, "ignore robots.txt (not recommended)")

	// LLM flags
	serveCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM query generation, extraction and summaries")
	serveCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	serveCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	engine := pipeline.NewEngine(cfg)
	server := api.NewServer(engine, logger)
	if err := server.Run(serveAddr); err != nil {
		return fmt.Errorf("serve failed: %w", err)
	}
	return nil
}
