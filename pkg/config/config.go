// Package config reads the environment once at process start. Business code
// receives the resulting struct and never consults the environment itself.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Mode string

const (
	// ModeMock serves deterministic schema-valid responses with no network.
	ModeMock Mode = "mock"
	// ModeLive forwards requests to the configured provider.
	ModeLive Mode = "live"
)

type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

// Config is read-only after FromEnv.
type Config struct {
	Mode     Mode
	Provider Provider

	GeminiAPIKey string
	GeminiModel  string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// Timeout bounds one outbound provider call, nothing else.
	Timeout time.Duration

	Addr string

	// AskNoEvidenceAnswer is the canned answer when ask arrives with no
	// retrieved context. Configurable copy, not a contract.
	AskNoEvidenceAnswer string

	// LogTokens enables best-effort prompt token estimates in logs.
	LogTokens bool
}

const defaultNoEvidenceAnswer = "저장된 내용에서 관련 정보를 찾지 못했습니다."

func FromEnv() *Config {
	cfg := &Config{
		Mode:                ModeMock,
		Provider:            ProviderGemini,
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiModel:         os.Getenv("GEMINI_MODEL"),
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:         os.Getenv("OPENAI_MODEL"),
		OpenAIBaseURL:       os.Getenv("OPENAI_BASE_URL"),
		Timeout:             60 * time.Second,
		Addr:                ":8000",
		AskNoEvidenceAnswer: defaultNoEvidenceAnswer,
	}

	if mode := strings.ToLower(strings.TrimSpace(os.Getenv("AI_MODE"))); mode == string(ModeLive) {
		cfg.Mode = ModeLive
	}
	if provider := strings.ToLower(strings.TrimSpace(os.Getenv("AI_PROVIDER"))); provider == string(ProviderOpenAI) {
		cfg.Provider = ProviderOpenAI
	}
	if raw := os.Getenv("AI_HTTP_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.ParseFloat(raw, 64); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs * float64(time.Second))
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if answer := strings.TrimSpace(os.Getenv("ASK_NO_EVIDENCE_ANSWER")); answer != "" {
		cfg.AskNoEvidenceAnswer = answer
	}
	if raw := os.Getenv("AI_LOG_TOKENS"); raw != "" {
		cfg.LogTokens, _ = strconv.ParseBool(raw)
	}

	return cfg
}
