package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/osintlab/namesake/internal/model"
)

const defaultOllamaBaseURL = "http://localhost:11434"

// OllamaProvider implements Provider against a local Ollama server.
type OllamaProvider struct {
	baseURL    string
	httpClient *http.Client
	config     Config
}

// NewOllamaProvider creates an Ollama provider.
func NewOllamaProvider(config Config) (*OllamaProvider, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}
	timeout := 30 * time.Second
	if config.Timeout > 0 {
		timeout = time.Duration(config.Timeout) * time.Second
	}
	return &OllamaProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		config:     config,
	}, nil
}

// Name returns the provider name.
func (p *OllamaProvider) Name() string { return "ollama" }

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Format  string        `json:"format,omitempty"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func (p *OllamaProvider) generate(ctx context.Context, prompt string, temperature float64, jsonMode bool) (string, error) {
	m := p.config.Model
	if m == "" {
		m = "llama3.2"
	}

	reqBody := ollamaRequest{
		Model:  m,
		Prompt: prompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: temperature,
			NumPredict:  p.config.MaxTokens,
		},
	}
	if jsonMode {
		reqBody.Format = "json"
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4_000_000))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	var out ollamaResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return strings.TrimSpace(out.Response), nil
}

// GenerateQueries proposes search queries via a JSON-format completion.
func (p *OllamaProvider) GenerateQueries(ctx context.Context, req QueryRequest) ([]string, error) {
	content, err := p.generate(ctx, queryPrompt(req), 0.2, true)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Queries []string `json:"queries"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("decode queries: %w", err)
	}
	return payload.Queries, nil
}

// ExtractAttributes extracts structured identity fields.
func (p *OllamaProvider) ExtractAttributes(ctx context.Context, req ExtractRequest) (*model.ExtractedAttributes, error) {
	content, err := p.generate(ctx, extractPrompt(req), 0, true)
	if err != nil {
		return nil, err
	}
	return decodeAttributes(content)
}

// PolishSummary rewrites the deterministic summary seed.
func (p *OllamaProvider) PolishSummary(ctx context.Context, seed string) (string, error) {
	content, err := p.generate(ctx, polishPrompt(seed), 0.2, false)
	if err != nil {
		return "", err
	}
	if content == "" {
		return "", fmt.Errorf("empty summary from ollama")
	}
	return content, nil
}
