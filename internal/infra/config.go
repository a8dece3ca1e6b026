package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Credential is a single entry from the startup credential table.
type Credential struct {
	Username string
	Password string
}

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv              string
	Port                string
	HFAPIToken          string
	ProviderBaseURL     string
	TextModel           string
	ImageModel          string
	VisionModel         string
	VisionRetryAttempts int
	VisionRetryBackoff  time.Duration
	ProviderTimeout     time.Duration
	FontPath            string
	Credentials         []Credential
	AllowedOrigins      []string
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPIdleTimeout     time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "5001"),
		HFAPIToken:          os.Getenv("HF_API_TOKEN"),
		ProviderBaseURL:     getEnv("PROVIDER_BASE_URL", "https://router.huggingface.co"),
		TextModel:           getEnv("TEXT_MODEL", "Qwen/Qwen2.5-72B-Instruct"),
		ImageModel:          getEnv("IMAGE_MODEL", "stabilityai/stable-diffusion-xl-base-1.0"),
		VisionModel:         getEnv("VISION_MODEL", "Salesforce/blip-image-captioning-base"),
		VisionRetryAttempts: getEnvInt("VISION_RETRY_ATTEMPTS", 3),
		VisionRetryBackoff:  getEnvDuration("VISION_RETRY_BACKOFF", 2*time.Second),
		ProviderTimeout:     getEnvDuration("PROVIDER_TIMEOUT", 60*time.Second),
		FontPath:            getEnv("FONT_PATH", "assets/font.ttf"),
		Credentials:         parseCredentials(getEnv("AUTH_CREDENTIALS", "admin:admin123")),
		AllowedOrigins:      splitList(getEnv("ALLOWED_ORIGINS", "*")),
		HTTPReadTimeout:     time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:    time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:     time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	if cfg.HFAPIToken == "" {
		return nil, fmt.Errorf("HF_API_TOKEN is required")
	}

	if len(cfg.Credentials) == 0 {
		return nil, fmt.Errorf("AUTH_CREDENTIALS must contain at least one user:password pair")
	}

	if cfg.VisionRetryAttempts <= 0 {
		cfg.VisionRetryAttempts = 3
	}

	return cfg, nil
}

// parseCredentials parses "user:pass,user2:pass2" into the credential table.
// Malformed entries are skipped rather than rejected.
func parseCredentials(raw string) []Credential {
	var creds []Credential
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		user, pass, ok := strings.Cut(pair, ":")
		if !ok || strings.TrimSpace(user) == "" {
			continue
		}
		creds = append(creds, Credential{Username: strings.TrimSpace(user), Password: pass})
	}
	return creds
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
