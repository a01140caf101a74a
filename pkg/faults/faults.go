// Package faults carries the failure taxonomy shared by the feature pipeline
// and the closed mapping from failure kind to client-facing error code and
// HTTP status. Every failure is classified once, at the point of detection,
// and travels unchanged to the HTTP layer.
package faults

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	// KindUnknown covers anything that escaped classification.
	KindUnknown Kind = iota
	// KindInvalidRequest is a caller-input problem; never forwarded upstream.
	KindInvalidRequest
	// KindMissingCredential means the provider credential is absent.
	KindMissingCredential
	// KindUpstreamError is a non-success response from the provider.
	KindUpstreamError
	// KindUpstreamTimeout means the provider did not answer within budget.
	KindUpstreamTimeout
	// KindInvalidPayload means the provider text contained no JSON object.
	KindInvalidPayload
	// KindSchemaViolation means the JSON object failed the feature schema.
	KindSchemaViolation
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindMissingCredential:
		return "missing_credential"
	case KindUpstreamError:
		return "upstream_error"
	case KindUpstreamTimeout:
		return "upstream_timeout"
	case KindInvalidPayload:
		return "invalid_payload"
	case KindSchemaViolation:
		return "schema_violation"
	default:
		return "unknown"
	}
}

// Fault is the error type produced everywhere inside the feature pipeline.
// Message is safe to log; whether it is safe to echo to the caller depends on
// the kind (see PublicMessage).
type Fault struct {
	Kind    Kind
	Message string
	cause   error
}

func New(kind Kind, format string, args ...any) *Fault {
	return &Fault{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, format string, args ...any) *Fault {
	return &Fault{Kind: kind, Message: fmt.Sprintf(format, args...), cause: err}
}

func (f *Fault) Error() string {
	if f.cause != nil {
		return f.Message + ": " + f.cause.Error()
	}
	return f.Message
}

func (f *Fault) Unwrap() error { return f.cause }

// KindOf classifies an arbitrary error. Non-Fault errors are KindUnknown.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindUnknown
}

// Code returns the stable client-facing error code for a kind.
func Code(kind Kind) string {
	switch kind {
	case KindInvalidRequest:
		return "INVALID_REQUEST"
	case KindMissingCredential:
		return "PROVIDER_CONFIG_ERROR"
	case KindUpstreamError, KindInvalidPayload, KindSchemaViolation:
		return "PROVIDER_ERROR"
	case KindUpstreamTimeout:
		return "PROVIDER_TIMEOUT"
	default:
		return "INTERNAL_ERROR"
	}
}

// Status returns the HTTP status paired with a kind.
func Status(kind Kind) int {
	switch kind {
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindMissingCredential, KindUpstreamError, KindInvalidPayload, KindSchemaViolation:
		return http.StatusBadGateway
	case KindUpstreamTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message shown to callers. Caller-input failures
// keep their specific message; provider-origin failures get generic copy so
// upstream diagnostics stay in the server logs.
func PublicMessage(err error) string {
	kind := KindOf(err)
	switch kind {
	case KindInvalidRequest:
		return err.Error()
	case KindMissingCredential:
		return "AI provider is not configured."
	case KindUpstreamTimeout:
		return "AI provider did not respond in time."
	case KindUpstreamError, KindInvalidPayload, KindSchemaViolation:
		return "AI provider request failed."
	default:
		return "Internal server error."
	}
}
