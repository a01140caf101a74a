package faults

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindMapping(t *testing.T) {
	cases := []struct {
		kind   Kind
		code   string
		status int
	}{
		{KindInvalidRequest, "INVALID_REQUEST", http.StatusBadRequest},
		{KindMissingCredential, "PROVIDER_CONFIG_ERROR", http.StatusBadGateway},
		{KindUpstreamError, "PROVIDER_ERROR", http.StatusBadGateway},
		{KindUpstreamTimeout, "PROVIDER_TIMEOUT", http.StatusGatewayTimeout},
		{KindInvalidPayload, "PROVIDER_ERROR", http.StatusBadGateway},
		{KindSchemaViolation, "PROVIDER_ERROR", http.StatusBadGateway},
		{KindUnknown, "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.code, Code(tc.kind))
			assert.Equal(t, tc.status, Status(tc.kind))
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUpstreamTimeout, KindOf(New(KindUpstreamTimeout, "late")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))

	wrapped := fmt.Errorf("outer: %w", New(KindSchemaViolation, "bad shape"))
	assert.Equal(t, KindSchemaViolation, KindOf(wrapped))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("tcp reset")
	f := Wrap(KindUpstreamError, cause, "gemini request failed")
	assert.ErrorIs(t, f, cause)
	assert.Contains(t, f.Error(), "gemini request failed")
	assert.Contains(t, f.Error(), "tcp reset")
}

func TestPublicMessageHidesProviderDetail(t *testing.T) {
	upstream := New(KindUpstreamError, "gemini returned status 500: internal quota exceeded for project xyz")
	msg := PublicMessage(upstream)
	assert.NotContains(t, msg, "quota")
	assert.NotContains(t, msg, "xyz")
	assert.Equal(t, "AI provider request failed.", msg)

	input := New(KindInvalidRequest, "`question` is required.")
	assert.Equal(t, "`question` is required.", PublicMessage(input))
}

func TestEnvelope(t *testing.T) {
	status, env := Envelope(New(KindUpstreamTimeout, "provider call exceeded timeout"), "req-1")
	require.Equal(t, http.StatusGatewayTimeout, status)
	assert.False(t, env.Success)
	assert.Equal(t, "PROVIDER_TIMEOUT", env.Error.Code)
	assert.Equal(t, "req-1", env.Error.RequestID)
	assert.NotEmpty(t, env.Error.Message)
}
