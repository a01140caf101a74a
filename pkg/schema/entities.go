package schema

// Block is the atomic unit of generated text.
type Block struct {
	Type string `json:"type" jsonschema_description:"Block kind, always \"paragraph\" for generated prose"`
	Text string `json:"text" jsonschema_description:"Generated paragraph text"`
}

// AutocompleteData is the response payload for continuation generation.
type AutocompleteData struct {
	GeneratedBlocks []Block `json:"generated_blocks" jsonschema_description:"Continuation paragraphs in narrative order"`
}

// TransformStyleData is the response payload for style conversion.
type TransformStyleData struct {
	TransformedBlocks []Block `json:"transformed_blocks" jsonschema_description:"Rewritten paragraphs in the requested style"`
}

// Recommendation is one synonym suggestion.
type Recommendation struct {
	Word        string `json:"word" jsonschema_description:"Suggested replacement word"`
	Description string `json:"description" jsonschema_description:"Short note on nuance and fit"`
}

// SynonymsData is the response payload for word recommendations.
type SynonymsData struct {
	Recommendations []Recommendation `json:"recommendations" jsonschema_description:"Context-aware replacement candidates"`
}

// Reference points an answer back at the manuscript text that grounds it.
type Reference struct {
	EpisodeID   string `json:"episode_id" jsonschema_description:"Episode the evidence came from"`
	Title       string `json:"title" jsonschema_description:"Episode title"`
	MatchedText string `json:"matched_text" jsonschema_description:"Excerpt supporting the answer"`
}

// AskData is the response payload for setting Q&A.
type AskData struct {
	Answer     string      `json:"answer" jsonschema_description:"Answer grounded in the retrieved contexts"`
	References []Reference `json:"references" jsonschema_description:"Evidence for the answer; empty when none was supplied"`
}
