package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type DiaryServerConfig struct {
	HTTPAddr           string
	LLMProvider        string
	LLMAPIKey          string
	LLMModel           string
	OpenAIBaseURL      string
	AnthropicBaseURL   string
	GeminiBaseURL      string
	LLMTimeout         time.Duration
	LLMMaxTokens       int
	LogLevel           string
	LogFormat          string
	MQTTBrokerURL      string
	MQTTClientID       string
	MQTTUsername       string
	MQTTPassword       string
	MQTTTopicPrefix    string
	DBDSN              string
	ProbeInterval      time.Duration
	CORSAllowedOrigins []string
}

// LoadDotEnv reads the given files (".env" when none are given) into the
// process environment. Variables already set win, and missing files are
// skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// LoadDiaryServerConfig reads the environment. A missing API key is allowed:
// the server then answers with template diaries only.
func LoadDiaryServerConfig() (DiaryServerConfig, error) {
	provider := strings.ToLower(getenvDefault("LLM_PROVIDER", "openai"))
	cfg := DiaryServerConfig{
		HTTPAddr:           httpAddr(),
		LLMProvider:        provider,
		LLMAPIKey:          apiKey(provider),
		LLMModel:           modelOverride(provider),
		OpenAIBaseURL:      strings.TrimRight(getenvDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"), "/"),
		AnthropicBaseURL:   strings.TrimRight(getenvDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com"), "/"),
		GeminiBaseURL:      strings.TrimRight(getenvDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"), "/"),
		LLMTimeout:         time.Duration(getenvIntDefault("LLM_TIMEOUT_SECONDS", 30)) * time.Second,
		LLMMaxTokens:       getenvIntDefault("LLM_MAX_TOKENS", 500),
		LogLevel:           getenvDefault("LOG_LEVEL", "info"),
		LogFormat:          getenvDefault("LOG_FORMAT", "text"),
		MQTTBrokerURL:      os.Getenv("MQTT_BROKER_URL"),
		MQTTClientID:       getenvDefault("MQTT_CLIENT_ID", "pet-diary"),
		MQTTUsername:       os.Getenv("MQTT_USERNAME"),
		MQTTPassword:       os.Getenv("MQTT_PASSWORD"),
		MQTTTopicPrefix:    getenvDefault("MQTT_TOPIC_PREFIX", "petdiary"),
		DBDSN:              os.Getenv("DB_DSN"),
		ProbeInterval:      time.Duration(getenvIntDefault("PROBE_INTERVAL_SECONDS", 0)) * time.Second,
		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),
	}

	if cfg.LLMTimeout <= 0 {
		return DiaryServerConfig{}, fmt.Errorf("LLM_TIMEOUT_SECONDS must be positive")
	}
	if cfg.LLMMaxTokens <= 0 {
		return DiaryServerConfig{}, fmt.Errorf("LLM_MAX_TOKENS must be positive")
	}
	if cfg.ProbeInterval < 0 {
		return DiaryServerConfig{}, fmt.Errorf("PROBE_INTERVAL_SECONDS must not be negative")
	}
	return cfg, nil
}

func httpAddr() string {
	if v := os.Getenv("DIARY_HTTP_ADDR"); v != "" {
		return v
	}
	if port := os.Getenv("PORT"); port != "" {
		return ":" + strings.TrimPrefix(port, ":")
	}
	return ":5000"
}

func apiKey(provider string) string {
	if v := strings.TrimSpace(os.Getenv("LLM_API_KEY")); v != "" {
		return v
	}
	switch provider {
	case "openai":
		return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	case "claude", "anthropic":
		return strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	case "gemini":
		return strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	default:
		return ""
	}
}

func modelOverride(provider string) string {
	switch provider {
	case "openai":
		return os.Getenv("OPENAI_MODEL")
	case "claude", "anthropic":
		return os.Getenv("CLAUDE_MODEL")
	case "gemini":
		return os.Getenv("GEMINI_MODEL")
	default:
		return ""
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenvDefault(key, val string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return val
}

func getenvIntDefault(key string, val int) int {
	v := os.Getenv(key)
	if v == "" {
		return val
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return val
	}
	return n
}
