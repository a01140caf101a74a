// Package feature holds the request shapes, prompt assembly, and the runner
// that drives one writing-assistance request end to end.
package feature

// ContextBlock is one paragraph-level unit of existing manuscript text.
// Order within a list is narrative order; block ids only need to be unique
// within one request's context set.
type ContextBlock struct {
	BlockID string `json:"block_id"`
	Text    string `json:"text"`
}

// RetrievedContext is a context block annotated with its source episode.
// Retrieval and ranking happen outside this service; lists arrive already
// ordered by relevance.
type RetrievedContext struct {
	BlockID      string `json:"block_id"`
	Text         string `json:"text"`
	EpisodeID    string `json:"episode_id"`
	EpisodeTitle string `json:"episode_title"`
}

type AutocompleteContext struct {
	BeforeBlocks []ContextBlock `json:"before_blocks"`
	CursorBlock  ContextBlock   `json:"cursor_block"`
	AfterBlocks  []ContextBlock `json:"after_blocks"`
}

type AutocompleteRequest struct {
	EpisodeID     string              `json:"-"`
	Context       AutocompleteContext `json:"context"`
	GenerateCount int                 `json:"generate_count"`
}

type SynonymsContext struct {
	TargetBlock       ContextBlock   `json:"target_block"`
	SurroundingBlocks []ContextBlock `json:"surrounding_blocks"`
}

type SynonymsRequest struct {
	EpisodeID      string          `json:"-"`
	SelectedWord   string          `json:"selected_word"`
	RecommendCount int             `json:"recommend_count"`
	Context        SynonymsContext `json:"context"`
}

type TransformStyleRequest struct {
	EpisodeID   string       `json:"-"`
	TargetBlock ContextBlock `json:"target_block"`
	StyleTag    string       `json:"style_tag"`
}

type AskRequest struct {
	ProjectID         string             `json:"-"`
	Question          string             `json:"question"`
	RetrievedContexts []RetrievedContext `json:"retrieved_contexts"`
}
