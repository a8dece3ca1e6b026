package imagegen

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
var ErrMissingAPIKey = errors.New("imagegen: api key is required")

// Options configures the hosted text-to-image client.
type Options struct {
	APIKey         string
	BaseURL        string
	Model          string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls against a hosted diffusion model that returns
// the generated bitmap inline in the response body.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *infra.Logger
}

type generateRequest struct {
	Inputs string `json:"inputs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) (*Client, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 120 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://router.huggingface.co"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "stabilityai/stable-diffusion-xl-base-1.0"
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

// Generate invokes the text-to-image model once and returns the raw bitmap
// bytes as served by the provider. The bitmap is owned by the caller and
// never cached.
func (c *Client) Generate(ctx context.Context, prompt string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, errors.New("imagegen: prompt is required")
	}
	body, err := json.Marshal(generateRequest{Inputs: prompt})
	if err != nil {
		return nil, fmt.Errorf("imagegen: encode request: %w", err)
	}
	endpoint := c.baseURL + "/hf-inference/models/" + c.model
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("imagegen: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "image/jpeg")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("imagegen: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("imagegen: read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		var detail errorResponse
		if err := json.Unmarshal(raw, &detail); err == nil && detail.Error != "" {
			return nil, fmt.Errorf("imagegen: %s", detail.Error)
		}
		return nil, fmt.Errorf("imagegen: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if len(raw) == 0 {
		return nil, errors.New("imagegen: empty image payload")
	}
	c.logger.Debug().
		Str("model", c.model).
		Str("content_type", resp.Header.Get("Content-Type")).
		Int("bytes", len(raw)).
		Msg("imagegen: generated image")
	return raw, nil
}
