package feature

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"cowrite/pkg/config"
	"cowrite/pkg/extract"
	"cowrite/pkg/faults"
	"cowrite/pkg/inference"
	"cowrite/pkg/mock"
	"cowrite/pkg/schema"
	"cowrite/pkg/utils"
)

// Runner drives one feature request end to end: validate input, assemble the
// prompt, call the provider, recover the JSON object, enforce the feature
// schema. The first failure short-circuits the rest; every request ends in
// exactly one emission and one log line.
type Runner struct {
	cfg *config.Config
	inf inference.Inferencer
}

func NewRunner(cfg *config.Config, inf inference.Inferencer) *Runner {
	return &Runner{cfg: cfg, inf: inf}
}

type trace struct {
	requestID string
	feature   string
	started   time.Time
}

func newTrace(requestID, feature string) trace {
	return trace{requestID: requestID, feature: feature, started: time.Now()}
}

func (t trace) done(outcome string, kv ...any) {
	args := append([]any{
		"request_id", t.requestID,
		"feature", t.feature,
		"outcome", outcome,
		"elapsed", time.Since(t.started).Round(time.Millisecond),
	}, kv...)
	if outcome == "ok" {
		log.Info("ai request", args...)
	} else {
		log.Warn("ai request", args...)
	}
}

func (r *Runner) Autocomplete(ctx context.Context, requestID string, req AutocompleteRequest) (schema.AutocompleteData, error) {
	tr := newTrace(requestID, "autocomplete")
	p, err := buildAutocompletePrompt(req)
	if err != nil {
		tr.done("invalid_request", "error", err)
		return schema.AutocompleteData{}, err
	}
	return runJSON(ctx, r, tr, p, func() schema.AutocompleteData {
		return mock.Autocomplete(req.EpisodeID, req.Context.CursorBlock.BlockID)
	})
}

func (r *Runner) Synonyms(ctx context.Context, requestID string, req SynonymsRequest) (schema.SynonymsData, error) {
	tr := newTrace(requestID, "synonyms")
	p, err := buildSynonymsPrompt(req)
	if err != nil {
		tr.done("invalid_request", "error", err)
		return schema.SynonymsData{}, err
	}
	return runJSON(ctx, r, tr, p, func() schema.SynonymsData {
		return mock.Synonyms(req.EpisodeID, req.Context.TargetBlock.BlockID, req.SelectedWord)
	})
}

func (r *Runner) TransformStyle(ctx context.Context, requestID string, req TransformStyleRequest) (schema.TransformStyleData, error) {
	tr := newTrace(requestID, "transform_style")
	p, err := buildTransformStylePrompt(req)
	if err != nil {
		tr.done("invalid_request", "error", err)
		return schema.TransformStyleData{}, err
	}
	data, err := runJSON(ctx, r, tr, p, func() schema.TransformStyleData {
		return mock.TransformStyle(req.EpisodeID, req.TargetBlock.BlockID, req.StyleTag)
	})
	if err != nil {
		return schema.TransformStyleData{}, err
	}
	logTransformDelta(requestID, req.TargetBlock.Text, data.TransformedBlocks)
	return data, nil
}

func (r *Runner) Ask(ctx context.Context, requestID string, req AskRequest) (schema.AskData, error) {
	tr := newTrace(requestID, "ask")
	p, err := buildAskPrompt(req)
	if err != nil {
		tr.done("invalid_request", "error", err)
		return schema.AskData{}, err
	}

	// Zero grounding context means any model answer would be unverifiable.
	// Declining is a policy decision, not an error path.
	if len(req.RetrievedContexts) == 0 {
		tr.done("ok", "short_circuit", true)
		return schema.AskData{
			Answer:     r.cfg.AskNoEvidenceAnswer,
			References: []schema.Reference{},
		}, nil
	}

	return runJSON(ctx, r, tr, p, func() schema.AskData {
		first := req.RetrievedContexts[0]
		return mock.Ask(req.ProjectID, first.EpisodeID, first.EpisodeTitle, req.Question)
	})
}

// runJSON is the shared tail of every feature: mock short path, or provider
// call followed by JSON recovery and schema enforcement.
func runJSON[T any](ctx context.Context, r *Runner, tr trace, p Prompt, mockFn func() T) (T, error) {
	var zero T

	if r.cfg.Mode == config.ModeMock {
		data := mockFn()
		tr.done("ok", "mode", "mock")
		return data, nil
	}

	if r.cfg.LogTokens {
		log.Debug("prompt assembled",
			"request_id", tr.requestID,
			"feature", tr.feature,
			"prompt_tokens", promptTokens(p.System+p.User),
		)
	}

	out, err := r.inf.Generate(ctx, inference.Request{
		System:      p.System,
		Prompt:      p.User,
		Temperature: p.Temperature,
	})
	if err != nil {
		tr.done(faults.KindOf(err).String(), "error", err)
		return zero, err
	}

	obj, err := extract.Object(out)
	if err != nil {
		f := faults.Wrap(faults.KindInvalidPayload, err, "model output contained no JSON object")
		tr.done(f.Kind.String(), "error", f)
		return zero, f
	}

	data, err := schema.Decode[T](obj)
	if err != nil {
		f := faults.Wrap(faults.KindSchemaViolation, err, "model payload failed schema validation")
		tr.done(f.Kind.String(), "error", f)
		return zero, f
	}

	tr.done("ok")
	return data, nil
}

func logTransformDelta(requestID, original string, blocks []schema.Block) {
	var texts []string
	for _, b := range blocks {
		texts = append(texts, b.Text)
	}
	ratio := utils.ChangeRatio(original, strings.Join(texts, "\n"))
	log.Debug("style transform delta",
		"request_id", requestID,
		"change_ratio", fmt.Sprintf("%.2f", ratio),
	)
}
