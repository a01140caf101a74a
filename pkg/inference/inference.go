// Package inference is the outbound gateway to the configured text
// generation provider. One implementation is selected at process start;
// requests are never routed per call. The gateway makes exactly one attempt
// per request; it never retries.
package inference

import (
	"context"
	"errors"

	"cowrite/pkg/faults"
)

// Request is one generation call. Model overrides the configured default
// when set. The total-request timeout is owned by the implementation.
type Request struct {
	System      string
	Prompt      string
	Model       string
	Temperature float64
}

// Inferencer runs one generation request and returns the raw model text.
type Inferencer interface {
	Generate(ctx context.Context, req Request) (string, error)
}

const maxDiagnosticBytes = 2048

// capText bounds upstream diagnostic text before it reaches the logs.
func capText(s string) string {
	if len(s) > maxDiagnosticBytes {
		return s[:maxDiagnosticBytes]
	}
	return s
}

// timeoutFault reports whether err is the expiry of the per-call budget.
func timeoutFault(ctx context.Context, err error) *faults.Fault {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		return faults.Wrap(faults.KindUpstreamTimeout, err, "provider call exceeded timeout")
	}
	return nil
}
