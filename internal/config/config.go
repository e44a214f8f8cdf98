package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates every setting the service reads at startup.
type Config struct {
	Server   ServerConfig
	AI       AIConfig
	Fallback FallbackConfig
	Log      LogConfig
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	fallback, err := loadFallbackConfig()
	if err != nil {
		return nil, err
	}

	logCfg, err := loadLogConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, Fallback: fallback, Log: logCfg}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8000"
	}

	if strings.Contains(port, ":") {
		// ":8000" and "127.0.0.1:8000" are taken as-is.
		return ServerConfig{Addr: port}, nil
	}

	if _, err := strconv.Atoi(port); err != nil {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the OpenAI-compatible chat completion provider.
type AIConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	Temperature    *float64
	MaxTokens      *int
	Timeout        time.Duration
	StreamResponse bool
}

// Enabled reports whether a key and a model are present. Without them the
// service answers from the fallback core only.
func (c AIConfig) Enabled() bool {
	return c.APIKey != "" && c.Model != ""
}

// NewChatModel builds the chat model client. Retries are disabled so that a
// failing provider hands over to the fallback within one timeout.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("LLM_API_KEY and LLM_MODEL are required to build a chat model")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var maxTokens *int
	if c.MaxTokens != nil {
		val := *c.MaxTokens
		maxTokens = &val
	}

	retries := 0
	timeout := c.Timeout

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		APIKey:      c.APIKey,
		Model:       c.Model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		RetryTimes:  &retries,
		Timeout:     &timeout,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("LLM_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}
	if temperature == nil {
		val := 0.8
		temperature = &val
	}

	maxTokens, err := parseOptionalIntEnv("LLM_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}
	if maxTokens == nil {
		val := 800
		maxTokens = &val
	} else if *maxTokens < 1 {
		return AIConfig{}, fmt.Errorf("invalid LLM_MAX_TOKENS value %d: must be positive", *maxTokens)
	}

	timeout, err := parseDurationEnv("LLM_TIMEOUT", 30*time.Second)
	if err != nil {
		return AIConfig{}, err
	}

	stream, err := parseBoolEnv("LLM_STREAM", true)
	if err != nil {
		return AIConfig{}, err
	}

	apiKey := strings.TrimSpace(os.Getenv("LLM_API_KEY"))
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	}

	return AIConfig{
		APIKey:         apiKey,
		BaseURL:        getEnvOrDefault("LLM_BASE_URL", "https://api.openai.com/v1"),
		Model:          getEnvOrDefault("LLM_MODEL", "gpt-3.5-turbo"),
		Temperature:    temperature,
		MaxTokens:      maxTokens,
		Timeout:        timeout,
		StreamResponse: stream,
	}, nil
}

// FallbackConfig describes the rule-based core.
type FallbackConfig struct {
	// ProfilePath replaces the embedded profile when set.
	ProfilePath string
	// Seed makes phrasing reproducible when set.
	Seed *int64
}

func loadFallbackConfig() (FallbackConfig, error) {
	var seed *int64
	if raw := strings.TrimSpace(os.Getenv("FALLBACK_SEED")); raw != "" {
		val, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return FallbackConfig{}, fmt.Errorf("invalid FALLBACK_SEED value %q: %w", raw, err)
		}
		seed = &val
	}

	return FallbackConfig{
		ProfilePath: strings.TrimSpace(os.Getenv("PROFILE_PATH")),
		Seed:        seed,
	}, nil
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level  string
	Format string
}

func loadLogConfig() (LogConfig, error) {
	format := strings.ToLower(getEnvOrDefault("LOG_FORMAT", "json"))
	if format != "json" && format != "console" {
		return LogConfig{}, fmt.Errorf("invalid LOG_FORMAT value %q: want json or console", format)
	}
	return LogConfig{
		Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
		Format: format,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

// parseDurationEnv accepts Go durations ("30s") or a bare number of seconds.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	if secs, err := strconv.Atoi(raw); err == nil {
		if secs < 1 {
			return 0, fmt.Errorf("invalid %s value %q: must be positive", key, raw)
		}
		return time.Duration(secs) * time.Second, nil
	}

	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	if val <= 0 {
		return 0, fmt.Errorf("invalid %s value %q: must be positive", key, raw)
	}
	return val, nil
}
