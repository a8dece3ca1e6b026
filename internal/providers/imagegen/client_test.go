package imagegen

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

type captureTransport struct {
	status      int
	contentType string
	body        []byte
	lastBody    []byte
	lastURL     string
}

func (c *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	req.Body.Close()
	c.lastBody = body
	c.lastURL = req.URL.String()
	contentType := c.contentType
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return &http.Response{
		StatusCode: c.status,
		Header:     http.Header{"Content-Type": []string{contentType}},
		Body:       io.NopCloser(strings.NewReader(string(c.body))),
	}, nil
}

func TestGenerateReturnsBitmapBytes(t *testing.T) {
	bitmap := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00}
	transport := &captureTransport{status: http.StatusOK, body: bitmap}
	client, err := NewClient(Options{
		APIKey:     "token",
		Model:      "stabilityai/stable-diffusion-xl-base-1.0",
		HTTPClient: &http.Client{Transport: transport},
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	data, err := client.Generate(context.Background(), "a poster")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(data) != string(bitmap) {
		t.Fatalf("data mismatch")
	}
	if !strings.Contains(transport.lastURL, "/hf-inference/models/stabilityai/stable-diffusion-xl-base-1.0") {
		t.Fatalf("url = %q", transport.lastURL)
	}

	var payload map[string]any
	if err := json.Unmarshal(transport.lastBody, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload["inputs"] != "a poster" {
		t.Fatalf("inputs = %v", payload["inputs"])
	}
}

func TestGenerateSurfacesProviderError(t *testing.T) {
	transport := &captureTransport{
		status:      http.StatusInternalServerError,
		contentType: "application/json",
		body:        []byte(`{"error":"cuda out of memory"}`),
	}
	client, _ := NewClient(Options{APIKey: "token", HTTPClient: &http.Client{Transport: transport}})
	if _, err := client.Generate(context.Background(), "a poster"); err == nil {
		t.Fatalf("expected error")
	} else if !strings.Contains(err.Error(), "cuda out of memory") {
		t.Fatalf("err = %v", err)
	}
}

func TestGenerateRejectsEmptyPayload(t *testing.T) {
	transport := &captureTransport{status: http.StatusOK, body: nil}
	client, _ := NewClient(Options{APIKey: "token", HTTPClient: &http.Client{Transport: transport}})
	if _, err := client.Generate(context.Background(), "a poster"); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}
