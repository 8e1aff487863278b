// File: client.go
// Title: Comment Augmentation Client
// Description: Client for an Ollama-compatible generate endpoint that adds
//              short comments to translated code. Results are memoized per
//              model, language and code.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package augment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	mdwerror "github.com/Arking-xx/College-Thesis/foundation/core/error"
	"github.com/Arking-xx/College-Thesis/pkg/core/cache"
	"github.com/Arking-xx/College-Thesis/pkg/core/config"
)

const systemPrompt = "Your task is to add short, concise comments to code converted from one programming language to another. " +
	"Keep comments brief, typically 3-5 words, and avoid lengthy explanations. " +
	"Return only the code. Do not change any line of code."

// Client talks to the generate endpoint
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
	cache      *cache.Cache[string]
}

// Config holds client configuration
type Config struct {
	BaseURL   string
	Model     string
	Timeout   time.Duration
	CacheTTL  time.Duration
	CacheSize int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		BaseURL:   "http://localhost:11434",
		Model:     "qwen2.5-coder:7b",
		Timeout:   60 * time.Second,
		CacheTTL:  time.Hour,
		CacheSize: 128,
	}
}

// FromConfig derives a client configuration from the augment section
func FromConfig(ac config.AugmentConfig) Config {
	return Config{
		BaseURL:   ac.BaseURL,
		Model:     ac.Model,
		Timeout:   ac.Timeout.Duration,
		CacheTTL:  ac.CacheTTL.Duration,
		CacheSize: ac.CacheSize,
	}
}

// New creates a new client
func New(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cache: cache.New[string](cache.Config{
			MaxItems: cfg.CacheSize,
			TTL:      cfg.CacheTTL,
		}),
	}
}

// GenerateRequest represents a generate request
type GenerateRequest struct {
	Model   string                 `json:"model"`
	Prompt  string                 `json:"prompt"`
	System  string                 `json:"system,omitempty"`
	Stream  bool                   `json:"stream"`
	Options map[string]interface{} `json:"options,omitempty"`
}

// GenerateResponse represents a generate response
type GenerateResponse struct {
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
	Response  string    `json:"response"`
	Done      bool      `json:"done"`
}

// Comment returns code with short comments added. lang is "python" or
// "c++"; anything else is rejected before any request is made.
func (c *Client) Comment(ctx context.Context, code, lang string) (string, error) {
	name, ok := languageName(lang)
	if !ok {
		return "", mdwerror.Newf("unsupported language for commenting: %q", lang).
			WithCode(mdwerror.CodeUnsupportedLanguage).
			WithOperation("augment.Comment")
	}

	key := cache.Key(c.model, name, code)
	return c.cache.GetOrSet(key, func() (string, error) {
		resp, err := c.Generate(ctx, &GenerateRequest{
			Model:  c.model,
			System: systemPrompt,
			Prompt: fmt.Sprintf("Add short, concise comments (3-5 words max) to this %s code:\n%s", name, code),
			Options: map[string]interface{}{
				"temperature": 0.2,
			},
		})
		if err != nil {
			return "", err
		}
		return stripFences(resp.Response), nil
	})
}

// Generate posts a non-streaming generate request
func (c *Client) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	req.Stream = false

	body, err := json.Marshal(req)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to marshal request").
			WithCode(mdwerror.CodeInternal).
			WithOperation("augment.Generate")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create request").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("augment.Generate")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, requestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, mdwerror.Newf("generate endpoint error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(bodyBytes))).
			WithCode(mdwerror.CodeExternalServiceError).
			WithDetail("status", resp.StatusCode).
			WithOperation("augment.Generate")
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, mdwerror.Wrap(err, "failed to decode response").
			WithCode(mdwerror.CodeExternalServiceError).
			WithOperation("augment.Generate")
	}
	return &result, nil
}

func requestError(ctx context.Context, err error) error {
	code := mdwerror.CodeExternalServiceError
	var netErr interface{ Timeout() bool }
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		code = mdwerror.CodeTimeout
	}
	return mdwerror.Wrap(err, "request failed").
		WithCode(code).
		WithOperation("augment.Generate")
}

func languageName(lang string) (string, bool) {
	switch strings.ToLower(lang) {
	case "python", "py":
		return "Python", true
	case "c++", "cpp":
		return "C++", true
	}
	return "", false
}

// stripFences removes markdown code fences and bare language tag lines
func stripFences(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	kept := lines[:0]
	for _, line := range lines {
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "cpp", "c++", "python":
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n")) + "\n"
}
