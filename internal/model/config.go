package model

import "time"

// Config is the complete runtime configuration. It is constructed once at
// startup and passed into the pipelines; nothing reads configuration from
// global state after that point.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Search      SearchConfig      `yaml:"search"`
	Resolver    ResolverConfig    `yaml:"resolver"`
	LLM         LLMConfig         `yaml:"llm"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig covers outbound page fetching.
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes"`
	MaxPageChars  int           `yaml:"max_page_chars"`
	RespectRobots bool          `yaml:"respect_robots"`
}

// SearchConfig covers the search providers and dispatch caps.
type SearchConfig struct {
	Timeout         time.Duration `yaml:"timeout"`
	GoogleAPIKey    string        `yaml:"google_api_key"`
	GoogleCX        string        `yaml:"google_cx"`
	MaxQueries      int           `yaml:"max_queries"`
	ResultsPerQuery int           `yaml:"results_per_query"`
}

// ResolverConfig holds the disambiguation thresholds. These match the
// calibrated defaults; changing them shifts the resolved/clarify boundary.
type ResolverConfig struct {
	SingleCandidateThreshold float64 `yaml:"single_candidate_threshold"`
	MultiCandidateThreshold  float64 `yaml:"multi_candidate_threshold"`
	AttributeThreshold       float64 `yaml:"attribute_threshold"`
	MarginThreshold          float64 `yaml:"margin_threshold"`
}

// LLMConfig configures the optional generative collaborators. An empty
// Provider disables them; every call site has a deterministic fallback.
type LLMConfig struct {
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// ConcurrencyConfig bounds the fan-out stages.
type ConcurrencyConfig struct {
	FetchWorkers int     `yaml:"fetch_workers"`
	BatchWorkers int     `yaml:"batch_workers"`
	DomainRPS    float64 `yaml:"domain_rps"`
	DomainBurst  int     `yaml:"domain_burst"`
}

// OutputConfig covers report rendering.
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       10 * time.Second,
			UserAgent:     "namesake/0.1 (+https://github.com/osintlab/namesake)",
			MaxBodyBytes:  2_000_000,
			MaxPageChars:  2800,
			RespectRobots: true,
		},
		Search: SearchConfig{
			Timeout:         8 * time.Second,
			MaxQueries:      6,
			ResultsPerQuery: 8,
		},
		Resolver: ResolverConfig{
			SingleCandidateThreshold: 0.55,
			MultiCandidateThreshold:  0.7,
			AttributeThreshold:       0.6,
			MarginThreshold:          0.15,
		},
		LLM: LLMConfig{
			Provider:  "",
			Model:     "",
			Timeout:   30,
			MaxTokens: 1000,
		},
		Concurrency: ConcurrencyConfig{
			FetchWorkers: 8,
			BatchWorkers: 4,
			DomainRPS:    2,
			DomainBurst:  5,
		},
		Output: OutputConfig{},
	}
}
