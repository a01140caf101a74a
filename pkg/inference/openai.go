package inference

import (
	"cmp"
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"

	"cowrite/pkg/faults"
)

// OpenAI calls an OpenAI-compatible chat completion endpoint. Useful for
// local OpenAI-compatible servers via a base URL override.
type OpenAI struct {
	client  *openai.Client
	apiKey  string
	model   string
	timeout time.Duration
}

func NewOpenAI(apiKey, model, baseURL string, timeout time.Duration) *OpenAI {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	return &OpenAI{
		client:  &client,
		apiKey:  apiKey,
		model:   cmp.Or(model, "gpt-4o-mini"),
		timeout: timeout,
	}
}

func (o *OpenAI) Generate(ctx context.Context, req Request) (string, error) {
	if o.apiKey == "" {
		return "", faults.New(faults.KindMissingCredential, "OPENAI_API_KEY is not set; set it or switch AI_MODE=mock")
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model: cmp.Or(req.Model, o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Role: "system",
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: param.Opt[string]{Value: req.System},
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Role: "user",
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: param.Opt[string]{Value: req.Prompt},
					},
				},
			},
		},
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		if f := timeoutFault(ctx, err); f != nil {
			return "", f
		}
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", faults.Wrap(faults.KindUpstreamError, err, "openai returned status %d: %s", apiErr.StatusCode, capText(apiErr.Message))
		}
		return "", faults.Wrap(faults.KindUpstreamError, err, "openai request failed")
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", faults.New(faults.KindUpstreamError, "openai returned an empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
