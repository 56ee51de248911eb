// Package suggest asks an OpenAI-compatible chat-completions endpoint which
// directories and extensions of a tree are noise for a code snapshot.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"repoextract/pkg/combine"
)

// Environment variables read by FromEnv.
const (
	EnvAPIKey = "OPENAI_API_KEY"
	EnvURL    = "REPOEXTRACT_SUGGEST_URL"
	EnvModel  = "REPOEXTRACT_SUGGEST_MODEL"
)

const (
	defaultURL     = "https://api.openai.com/v1/chat/completions"
	defaultModel   = "gpt-4o-mini"
	requestTimeout = 60 * time.Second
	maxBodyBytes   = 1 << 20
)

const systemPrompt = `You help build a compact text snapshot of a source repository for a language model.
Given the file extensions and directory names found near the top of the repository, reply with ONLY a JSON
array of strings naming extensions (without the dot) and directory names that hold generated files, build
output, dependencies, binary assets or data dumps and should be skipped. Never list source code extensions.
Reply with [] if nothing should be skipped.`

// ErrMalformedResponse is returned when the endpoint answers with something
// that is not a JSON array of strings.
var ErrMalformedResponse = errors.New("malformed suggestion response")

// Client calls the chat-completions endpoint.
type Client struct {
	url        string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

// New returns a Client. Empty url or model select the defaults; a nil
// httpClient gets one with a request timeout.
func New(url, apiKey, model string, httpClient *http.Client, logger *zap.Logger) *Client {
	if url == "" {
		url = defaultURL
	}
	if model == "" {
		model = defaultModel
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{url: url, apiKey: apiKey, model: model, httpClient: httpClient, logger: logger}
}

// FromEnv builds a Client from the environment. ok is false when no API key
// is configured, in which case suggestions are disabled.
func FromEnv(logger *zap.Logger) (client *Client, ok bool) {
	apiKey := strings.TrimSpace(os.Getenv(EnvAPIKey))
	if apiKey == "" {
		return nil, false
	}
	return New(os.Getenv(EnvURL), apiKey, os.Getenv(EnvModel), nil, logger), true
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Suggest sends the inventory and returns the suggested ignore items.
func (c *Client) Suggest(ctx context.Context, inv combine.Inventory) ([]string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(inv)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug("Requesting ignore suggestions",
		zap.String("url", c.url),
		zap.String("model", c.model),
		zap.Int("extensions", len(inv.Extensions)),
		zap.Int("dirs", len(inv.Dirs)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("suggestion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read suggestion response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("suggestion endpoint returned %s", resp.Status)
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}
	return ParseSuggestions(chat.Choices[0].Message.Content)
}

// ParseSuggestions extracts a JSON array of strings from a model reply,
// tolerating surrounding prose and markdown code fences.
func ParseSuggestions(content string) ([]string, error) {
	start := strings.IndexByte(content, '[')
	end := strings.LastIndexByte(content, ']')
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no JSON array in reply", ErrMalformedResponse)
	}

	var items []string
	if err := json.Unmarshal([]byte(content[start:end+1]), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out, nil
}

func userPrompt(inv combine.Inventory) string {
	var b strings.Builder
	b.WriteString("Extensions: ")
	b.WriteString(strings.Join(inv.Extensions, ", "))
	b.WriteString("\nDirectories: ")
	b.WriteString(strings.Join(inv.Dirs, ", "))
	return b.String()
}
