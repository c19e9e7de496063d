package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/osintlab/namesake/internal/model"
)

// OpenAIProvider implements Provider on the OpenAI Chat Completions API.
type OpenAIProvider struct {
	client *openai.Client
	config Config
}

// NewOpenAIProvider creates an OpenAI provider.
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string { return "openai" }

func (p *OpenAIProvider) model() string {
	if p.config.Model != "" {
		return p.config.Model
	}
	return openai.GPT4oMini
}

func (p *OpenAIProvider) timeout() time.Duration {
	if p.config.Timeout > 0 {
		return time.Duration(p.config.Timeout) * time.Second
	}
	return 30 * time.Second
}

func (p *OpenAIProvider) complete(ctx context.Context, prompt string, temperature float32, jsonMode bool) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.timeout())
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: p.model(),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
	}
	if p.config.MaxTokens > 0 {
		req.MaxTokens = p.config.MaxTokens
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GenerateQueries proposes search queries via a strict-JSON completion.
func (p *OpenAIProvider) GenerateQueries(ctx context.Context, req QueryRequest) ([]string, error) {
	content, err := p.complete(ctx, queryPrompt(req), 0.2, true)
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

// ExtractAttributes extracts structured identity fields using JSON mode.
func (p *OpenAIProvider) ExtractAttributes(ctx context.Context, req ExtractRequest) (*model.ExtractedAttributes, error) {
	content, err := p.complete(ctx, extractPrompt(req), 0, true)
	if err != nil {
		return nil, err
	}
	return decodeAttributes(content)
}

// PolishSummary rewrites the deterministic summary seed.
func (p *OpenAIProvider) PolishSummary(ctx context.Context, seed string) (string, error) {
	content, err := p.complete(ctx, polishPrompt(seed), 0.2, false)
	if err != nil {
		return "", err
	}
	if content == "" {
		return "", fmt.Errorf("empty summary from OpenAI")
	}
	return content, nil
}

// decodeAttributes parses the strict-JSON extraction payload. Empty strings
// become nil; missing keys stay nil.
func decodeAttributes(content string) (*model.ExtractedAttributes, error) {
	var payload struct {
		Name        *string `json:"name"`
		Company     *string `json:"company"`
		Designation *string `json:"designation"`
		Location    *string `json:"location"`
		Education   *string `json:"education"`
		ShortBio    *string `json:"short_bio"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("decode attributes: %w", err)
	}
	return &model.ExtractedAttributes{
		Name:        nonEmpty(payload.Name),
		Company:     nonEmpty(payload.Company),
		Designation: nonEmpty(payload.Designation),
		Location:    nonEmpty(payload.Location),
		Education:   nonEmpty(payload.Education),
		ShortBio:    nonEmpty(payload.ShortBio),
	}, nil
}

func nonEmpty(p *string) *string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return nil
	}
	return p
}
