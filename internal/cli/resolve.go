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
	resolveCompany     string
	resolveDesignation string
	resolveLocation    string
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <name>",
	Short: "Resolve a person's profile using known attributes",
	Long: `Resolve runs attribute-qualified resolution:
- Build quoted query templates from the supplied attributes
- Extract structured attributes from each discovered source
- Weight sources by type and attribute match
- Merge the strongest sources into a single resolved identity

Example:
  namesake resolve "Jane Doe" --company "Acme Corp"
  namesake resolve "Jane Doe" --company Acme --designation CTO --location Berlin
  namesake resolve "" --linkedin https://linkedin.com/in/jane-doe-99`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	// Output flags
	resolveCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (default: stdout)")

	// Identity flags
	resolveCmd.Flags().StringVar(&linkedinURL, "linkedin", "", "LinkedIn profile URL of the exact person")
	resolveCmd.Flags().StringVar(&resolveCompany, "company", "", "current or recent company")
	resolveCmd.Flags().StringVar(&resolveDesignation, "designation", "", "role or title")
	resolveCmd.Flags().StringVar(&resolveLocation, "location", "", "city or region")
	resolveCmd.Flags().IntVar(&maxSources, "max-sources", 0, "maximum sources to aggregate (3-25, default 5)")

	// HTTP flags
	resolveCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout")
	resolveCmd.Flags().StringVar(&userAgent, "ua", "namesake/0.1 (+https://github.com/osintlab/namesake)", "HTTP User-Agent")
	resolveCmd.Flags().BoolVar(&noRobots, "no-robots", false, "ignore robots.txt (not recommended)")

	// LLM flags
	resolveCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM attribute extraction and summaries")
	resolveCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	resolveCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runResolve(cmd *cobra.Command, args []string) error {
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
		fmt.Fprintf(os.Stderr, "Company: %s  Designation: %s  Location: %s\n",
			resolveCompany, resolveDesignation, resolveLocation)
		fmt.Fprintln(os.Stderr)
	}

	engine := pipeline.NewEngine(cfg)
	report, err := engine.Resolve(ctx, model.ResolveInput{
		LinkedInURL: linkedinURL,
		Name:        name,
		Company:     resolveCompany,
		Designation: resolveDesignation,
		Location:    resolveLocation,
		MaxSources:  maxSources,
	})
	if err != nil {
		return fmt.Errorf("resolve failed: %w", err)
	}

	renderer := pipeline.NewRenderer(verbose)
	if err := renderer.RenderJSON(report, outJSON); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	if outJSON != "" || verbose {
		renderer.RenderResolutionSummary(report)
	}
	return nil
}
