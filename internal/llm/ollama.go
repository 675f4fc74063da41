// Package llm wraps the local Ollama text-generation endpoint behind a small
// request/response client. The client knows nothing about the agent workflow:
// it issues one prompt and returns one completion.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	logx "github.com/shrey-c/resume-chatbot/pkg/logger"
)

var (
	// ErrServiceUnavailable reports an unreachable backend or a non-success status.
	ErrServiceUnavailable = errors.New("ollama service unavailable")
	// ErrTimeout reports that a call exceeded its bounded wait.
	ErrTimeout = errors.New("ollama request timed out")
)

// Config describes the Ollama endpoint and the model served from it.
type Config struct {
	BaseURL         string `envconfig:"OLLAMA_BASE_URL" default:"http://localhost:11434"`
	Model           string `envconfig:"OLLAMA_MODEL" default:"llama2"`
	GenerateTimeout int    `envconfig:"OLLAMA_GENERATE_TIMEOUT" default:"30"`
	HealthTimeout   int    `envconfig:"OLLAMA_HEALTH_TIMEOUT" default:"5"`
}

// GenerateOptions are the per-call sampling parameters.
type GenerateOptions struct {
	Temperature float32
	TopP        float32
	MaxTokens   int // 0 means backend default
}

// Client is a stateless HTTP client for a single Ollama instance.
type Client struct {
	baseURL         string
	model           string
	generateTimeout time.Duration
	healthTimeout   time.Duration
	httpClient      *http.Client
}

// NewClient builds a client from configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		model:           cfg.Model,
		generateTimeout: time.Duration(cfg.GenerateTimeout) * time.Second,
		healthTimeout:   time.Duration(cfg.HealthTimeout) * time.Second,
		httpClient:      &http.Client{},
	}
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float32 `json:"temperature"`
	TopP        float32 `json:"top_p"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate issues a single non-streaming completion request.
//
// The call is bounded by the configured generation timeout regardless of the
// caller's context; whichever expires first wins.
func (c *Client) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.generateTimeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: opts.Temperature,
			TopP:        opts.TopP,
			NumPredict:  opts.MaxTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logx.Error().Err(err).Msg("Ollama generate timed out")
			return "", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		logx.Error().Err(err).Msg("Ollama generate request failed")
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logx.Error().Int("status", resp.StatusCode).Msg("Ollama generate returned non-success status")
		return "", fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrServiceUnavailable, err)
	}

	return strings.TrimSpace(out.Response), nil
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// CheckHealth probes the backend's tag listing and reports whether the
// configured model is available. It never returns an error: any failure is
// reported as false.
func (c *Client) CheckHealth(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logx.Warn().Err(err).Msg("Ollama health probe failed")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return false
	}

	for _, m := range tags.Models {
		name := strings.SplitN(m.Name, ":", 2)[0]
		if name == c.model || strings.Contains(m.Name, c.model) {
			return true
		}
	}
	return false
}
