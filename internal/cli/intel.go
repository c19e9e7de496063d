package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/osintlab/namesake/internal/model"
	"github.com/osintlab/namesake/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	linkedinURL string
	qualifiers  []string
	maxSources  int
	timeout     time.Duration
	userAgent   string
	noRobots    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// intelCmd represents the intel command
var intelCmd = &cobra.Command{
	Use:   "intel <name>",
	Short: "Build an intelligence report for a person from public web evidence",
	Long: `Intel runs the broad resolution pipeline:
- Fan search queries out across providers with automatic fallback
- Score and cluster hits into candidate identities
- Decide between resolved and needs_clarification
- Crawl the strongest sources and aggregate evidence

Example:
  namesake intel "Jane Doe"
  namesake intel "Jane Doe" -q "Acme Corp" -q "Engineer"
  namesake intel "" --linkedin https://linkedin.com/in/jane-doe-99
  namesake intel "Jane Doe" --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIntel,
}

func init() {
	rootCmd.AddCommand(intelCmd)

	// Output flags
	intelCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (default: stdout)")

	// Identity flags
	intelCmd.Flags().StringVar(&linkedinURL, "linkedin", "", "LinkedIn profile URL of the exact person")
	intelCmd.Flags().StringArrayVarP(&qualifiers, "qualifier", "q", nil, "qualifier such as company, role or location (repeatable)")
	intelCmd.Flags().IntVar(&maxSources, "max-sources", 0, "maximum sources to aggregate (3-25, default 5)")

	// HTTP flags
	intelCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout")
	intelCmd.Flags().StringVar(&userAgent, "ua", "namesake/0.1 (+https://github.com/osintlab/namesake)", "HTTP User-Agent")
	intelCmd.Flags().BoolVar(&noRobots, "no-robots", false, "ignore robots.txt (not recommended)")

	// LLM flags
	intelCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM query generation and summaries")
	intelCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	intelCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runIntel(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	if name == "" && linkedinURL == "" {
		return fmt.Errorf("provide a name argument or --linkedin URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Resolving: %s\n", name)
		fmt.Fprintf(os.Stderr, "Qualifiers: %v\n", qualifiers)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintln(os.Stderr)
	}

	engine := pipeline.NewEngine(cfg)
	report, err := engine.Intelligence(ctx, model.IntelligenceInput{
		LinkedInURL: linkedinURL,
		Name:        name,
		Qualifiers:  qualifiers,
		MaxSources:  maxSources,
	})
	if err != nil {
		return fmt.Errorf("intelligence failed: %w", err)
	}

	renderer := pipeline.NewRenderer(verbose)
	if err := renderer.RenderJSON(report, outJSON); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	if outJSON != "" || verbose {
		renderer.RenderIntelligenceSummary(report)
	}
	return nil
}

// buildConfig assembles the runtime configuration from defaults, flags and
// environment.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.RespectRobots = !noRobots
	cfg.Output.Verbose = verbose

	// Search provider credentials come from the environment
	cfg.Search.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
	cfg.Search.GoogleCX = os.Getenv("GOOGLE_CSE_CX")

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}
	return cfg, nil
}
