package textgen

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

	"github.com/rs/zerolog"

	"adforge/internal/infra"
)

// ErrMissingAPIKey indicates that the client was configured without credentials.
var ErrMissingAPIKey = errors.New("textgen: api key is required")

// Options configures the hosted text-completion client.
type Options struct {
	APIKey         string
	BaseURL        string
	Model          string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls to an OpenAI-compatible chat-completion router.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *infra.Logger
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) (*Client, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://router.huggingface.co"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "Qwen/Qwen2.5-72B-Instruct"
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Complete sends a single user message and returns the raw completion text.
// The caller is responsible for sanitizing the output.
func (c *Client) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("textgen: prompt is required")
	}
	payload := chatRequest{
		Model:     c.model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: maxTokens,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("textgen: encode request: %w", err)
	}
	endpoint := c.baseURL + "/v1/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("textgen: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("textgen: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("textgen: read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		var detail chatResponse
		if err := json.Unmarshal(raw, &detail); err == nil && detail.Error != nil && detail.Error.Message != "" {
			return "", fmt.Errorf("textgen: %s", detail.Error.Message)
		}
		return "", fmt.Errorf("textgen: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var decoded chatResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("textgen: decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", errors.New("textgen: empty completion")
	}
	text := strings.TrimSpace(decoded.Choices[0].Message.Content)
	c.logger.Debug().
		Str("model", c.model).
		Int("max_tokens", maxTokens).
		Int("completion_len", len(text)).
		Msg("textgen: completion received")
	return text, nil
}
