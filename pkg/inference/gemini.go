package inference

import (
	"cmp"
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/genai"

	"cowrite/pkg/faults"
)

// Gemini calls the Gemini generateContent endpoint.
type Gemini struct {
	client  *genai.Client
	apiKey  string
	model   string
	timeout time.Duration
}

// NewGemini builds the gateway. An empty apiKey is not an error here: the
// credential check happens per request so a misconfigured deployment fails
// fast with a classified fault instead of a nil-pointer panic.
func NewGemini(apiKey, model string, timeout time.Duration) (*Gemini, error) {
	g := &Gemini{
		apiKey:  apiKey,
		model:   cmp.Or(model, "gemini-2.5-flash"),
		timeout: timeout,
	}
	if apiKey == "" {
		return g, nil
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	g.client = client
	return g, nil
}

func (g *Gemini) Generate(ctx context.Context, req Request) (string, error) {
	if g.apiKey == "" || g.client == nil {
		return "", faults.New(faults.KindMissingCredential, "GEMINI_API_KEY is not set; set it or switch AI_MODE=mock")
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleModel)
	}
	if req.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(req.Temperature))
	}

	result, err := g.client.Models.GenerateContent(
		ctx,
		cmp.Or(req.Model, g.model),
		genai.Text(req.Prompt),
		config,
	)
	if err != nil {
		if f := timeoutFault(ctx, err); f != nil {
			return "", f
		}
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", faults.Wrap(faults.KindUpstreamError, err, "gemini returned status %d: %s", apiErr.Code, capText(apiErr.Message))
		}
		return "", faults.Wrap(faults.KindUpstreamError, err, "gemini request failed")
	}

	text := joinTextParts(result)
	if text == "" {
		return "", faults.New(faults.KindUpstreamError, "gemini returned an empty response")
	}
	return text, nil
}

// joinTextParts walks candidates -> content -> parts and concatenates the
// non-empty text parts in document order, trimming each.
func joinTextParts(result *genai.GenerateContentResponse) string {
	if result == nil {
		return ""
	}
	var chunks []string
	for _, candidate := range result.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			if text := strings.TrimSpace(part.Text); text != "" {
				chunks = append(chunks, text)
			}
		}
	}
	return strings.TrimSpace(strings.Join(chunks, "\n"))
}
