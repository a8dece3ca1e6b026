package vision

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

	"adforge/internal/domain"
	"adforge/internal/infra"
)

// ErrMissingAPIKey indicates that the client was configured without credentials.
var ErrMissingAPIKey = errors.New("vision: api key is required")

// Options configures the hosted image-captioning client.
type Options struct {
	APIKey         string
	BaseURL        string
	Model          string
	Attempts       int
	Backoff        time.Duration
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client posts raw image bytes to a hosted captioning model. The model host
// answers 503 while the model is still loading, so the client retries a
// bounded number of times with a flat backoff before giving up.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	attempts   int
	backoff    time.Duration
	httpClient *http.Client
	logger     *infra.Logger
}

type captionResult struct {
	GeneratedText string `json:"generated_text"`
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
		model = "Salesforce/blip-image-captioning-base"
	}
	attempts := opts.Attempts
	if attempts <= 0 {
		attempts = 3
	}
	backoff := opts.Backoff
	if backoff <= 0 {
		backoff = 2 * time.Second
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
		attempts:   attempts,
		backoff:    backoff,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Caption describes the supplied image bytes in natural language.
//
// Retry policy: up to the configured number of attempts. A 503 consumes one
// attempt and sleeps the flat backoff before the next try. Any other
// non-200 status or transport failure aborts immediately. When no usable
// caption is obtained, domain.ErrNoCaption is returned and the caller is
// expected to substitute domain.DefaultCaption.
func (c *Client) Caption(ctx context.Context, imageBytes []byte) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	endpoint := c.baseURL + "/hf-inference/models/" + c.model

	for attempt := 1; attempt <= c.attempts; attempt++ {
		caption, retry, err := c.attempt(ctx, endpoint, imageBytes)
		if err == nil {
			return caption, nil
		}
		if !retry {
			c.logger.Warn().Err(err).Int("attempt", attempt).Msg("vision: caption aborted")
			break
		}
		c.logger.Debug().Int("attempt", attempt).Dur("backoff", c.backoff).Msg("vision: model loading, backing off")
		if attempt < c.attempts {
			select {
			case <-time.After(c.backoff):
			case <-ctx.Done():
				return "", fmt.Errorf("vision: %w", ctx.Err())
			}
		}
	}
	return "", domain.ErrNoCaption
}

// attempt performs one captioning round trip. retry reports whether the
// failure is the transient model-loading case.
func (c *Client) attempt(ctx context.Context, endpoint string, imageBytes []byte) (caption string, retry bool, err error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(imageBytes))
	if err != nil {
		return "", false, fmt.Errorf("vision: build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", false, fmt.Errorf("vision: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, fmt.Errorf("vision: read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		var results []captionResult
		if err := json.Unmarshal(raw, &results); err != nil {
			return "", false, fmt.Errorf("vision: decode response: %w", err)
		}
		if len(results) == 0 {
			return "", false, errors.New("vision: empty result list")
		}
		if text := strings.TrimSpace(results[0].GeneratedText); text != "" {
			return text, false, nil
		}
		// Usable response shape without a caption field.
		return domain.DefaultCaption, false, nil
	case resp.StatusCode == http.StatusServiceUnavailable:
		return "", true, errors.New("vision: model warming up")
	default:
		return "", false, fmt.Errorf("vision: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
}
