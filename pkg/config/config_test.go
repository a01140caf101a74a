package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"AI_MODE", "AI_PROVIDER", "AI_HTTP_TIMEOUT_SECONDS", "PORT", "ASK_NO_EVIDENCE_ANSWER"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, ModeMock, cfg.Mode)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, ":8000", cfg.Addr)
	assert.NotEmpty(t, cfg.AskNoEvidenceAnswer)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("AI_MODE", "LIVE")
	t.Setenv("AI_PROVIDER", "openai")
	t.Setenv("AI_HTTP_TIMEOUT_SECONDS", "2.5")
	t.Setenv("PORT", "9100")
	t.Setenv("ASK_NO_EVIDENCE_ANSWER", "근거 없음")

	cfg := FromEnv()
	assert.Equal(t, ModeLive, cfg.Mode)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, 2500*time.Millisecond, cfg.Timeout)
	assert.Equal(t, ":9100", cfg.Addr)
	assert.Equal(t, "근거 없음", cfg.AskNoEvidenceAnswer)
}

func TestFromEnvIgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("AI_HTTP_TIMEOUT_SECONDS", "not a number")
	assert.Equal(t, 60*time.Second, FromEnv().Timeout)

	t.Setenv("AI_HTTP_TIMEOUT_SECONDS", "-3")
	assert.Equal(t, 60*time.Second, FromEnv().Timeout)
}
