package feature

import (
	"fmt"
	"strings"

	"cowrite/pkg/faults"
)

// System prompts are fixed per feature and never carry caller data.
const autocompleteSystemPrompt = `You are a Korean web novel writing assistant.
Always respond in Korean.
Use only the context text provided by the caller.
Keep POV, tone, and pacing consistent with the input.
Return only a JSON object that matches the required schema.`

const askSystemPrompt = `You are a novel setting Q&A assistant.
Always respond in Korean.
Answer using only provided retrieved context blocks.
If no reliable evidence exists, say that the information was not found.
Return only a JSON object that matches the required schema.`

const synonymsSystemPrompt = `You are a Korean wording assistant.
Always respond in Korean.
Infer tone from the target and surrounding context text.
Recommend replacement words that fit the original sentence naturally.
Return only a JSON object that matches the required schema.`

const transformStyleSystemPrompt = `You are a Korean novel style conversion assistant.
Always respond in Korean.
Rewrite only the provided target text while preserving core meaning.
Apply the requested style tag faithfully.
Return only a JSON object that matches the required schema.`

// Every user prompt ends with a literal restatement of the expected
// output shape.
const (
	autocompleteShapeLine   = `Return JSON schema: {"generated_blocks":[{"type":"paragraph","text":"..."}]}`
	askShapeLine            = `Return JSON schema: {"answer":"...","references":[{"episode_id":"...","title":"...","matched_text":"..."}]}`
	synonymsShapeLine       = `Return JSON schema: {"recommendations":[{"word":"...","description":"..."}]}`
	transformStyleShapeLine = `Return JSON schema: {"transformed_blocks":[{"type":"paragraph","text":"..."}]}`
)

// Prompt is one assembled generation request.
type Prompt struct {
	System      string
	User        string
	Temperature float64
}

func requiredText(value, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", faults.New(faults.KindInvalidRequest, "`%s` is required.", field)
	}
	return trimmed, nil
}

// formatBlocks renders context blocks as "- [{id}] {text}" lines in input
// order. Blank-after-trim items carry no signal and are skipped; an empty
// list renders a placeholder so the prompt layout stays order-stable.
func formatBlocks(blocks []ContextBlock) string {
	var rows []string
	for idx, block := range blocks {
		text := strings.TrimSpace(block.Text)
		if text == "" {
			continue
		}
		blockID := strings.TrimSpace(block.BlockID)
		if blockID == "" {
			blockID = fmt.Sprintf("idx-%d", idx+1)
		}
		rows = append(rows, fmt.Sprintf("- [%s] %s", blockID, text))
	}
	if len(rows) == 0 {
		return "- (none)"
	}
	return strings.Join(rows, "\n")
}

func formatRetrievedContexts(items []RetrievedContext) string {
	var rows []string
	for idx, item := range items {
		text := strings.TrimSpace(item.Text)
		if text == "" {
			continue
		}
		episodeID := strings.TrimSpace(item.EpisodeID)
		if episodeID == "" {
			episodeID = fmt.Sprintf("episode-%d", idx+1)
		}
		episodeTitle := strings.TrimSpace(item.EpisodeTitle)
		if episodeTitle == "" {
			episodeTitle = "제목 미상"
		}
		blockID := strings.TrimSpace(item.BlockID)
		if blockID == "" {
			blockID = fmt.Sprintf("block-%d", idx+1)
		}
		rows = append(rows, fmt.Sprintf("- episode_id=%s, episode_title=%s, block_id=%s\n  text: %s", episodeID, episodeTitle, blockID, text))
	}
	if len(rows) == 0 {
		return "- (none)"
	}
	return strings.Join(rows, "\n")
}

func buildAutocompletePrompt(req AutocompleteRequest) (Prompt, error) {
	episodeID, err := requiredText(req.EpisodeID, "episodeId")
	if err != nil {
		return Prompt{}, err
	}
	cursorID, err := requiredText(req.Context.CursorBlock.BlockID, "context.cursor_block.block_id")
	if err != nil {
		return Prompt{}, err
	}
	cursorText, err := requiredText(req.Context.CursorBlock.Text, "context.cursor_block.text")
	if err != nil {
		return Prompt{}, err
	}

	user := strings.Join([]string{
		"Task: Continue the novel text right after cursor_block using provided context.",
		"episode_id: " + episodeID,
		fmt.Sprintf("generate_count: %d", req.GenerateCount),
		"before_blocks:",
		formatBlocks(req.Context.BeforeBlocks),
		"cursor_block:",
		fmt.Sprintf("- [%s] %s", cursorID, cursorText),
		"after_blocks:",
		formatBlocks(req.Context.AfterBlocks),
		autocompleteShapeLine,
	}, "\n")

	return Prompt{System: autocompleteSystemPrompt, User: user, Temperature: 0.7}, nil
}

func buildSynonymsPrompt(req SynonymsRequest) (Prompt, error) {
	episodeID, err := requiredText(req.EpisodeID, "episodeId")
	if err != nil {
		return Prompt{}, err
	}
	selectedWord, err := requiredText(req.SelectedWord, "selected_word")
	if err != nil {
		return Prompt{}, err
	}
	targetID, err := requiredText(req.Context.TargetBlock.BlockID, "context.target_block.block_id")
	if err != nil {
		return Prompt{}, err
	}
	targetText, err := requiredText(req.Context.TargetBlock.Text, "context.target_block.text")
	if err != nil {
		return Prompt{}, err
	}

	user := strings.Join([]string{
		"Task: Recommend context-aware Korean synonyms for selected word.",
		"episode_id: " + episodeID,
		"selected_word: " + selectedWord,
		fmt.Sprintf("recommend_count: %d", req.RecommendCount),
		"target_block:",
		fmt.Sprintf("- [%s] %s", targetID, targetText),
		"surrounding_blocks:",
		formatBlocks(req.Context.SurroundingBlocks),
		synonymsShapeLine,
	}, "\n")

	return Prompt{System: synonymsSystemPrompt, User: user, Temperature: 0.5}, nil
}

func buildTransformStylePrompt(req TransformStyleRequest) (Prompt, error) {
	episodeID, err := requiredText(req.EpisodeID, "episodeId")
	if err != nil {
		return Prompt{}, err
	}
	targetID, err := requiredText(req.TargetBlock.BlockID, "target_block.block_id")
	if err != nil {
		return Prompt{}, err
	}
	targetText, err := requiredText(req.TargetBlock.Text, "target_block.text")
	if err != nil {
		return Prompt{}, err
	}
	styleTag, err := requiredText(req.StyleTag, "style_tag")
	if err != nil {
		return Prompt{}, err
	}

	user := strings.Join([]string{
		"Task: Rewrite target paragraph in requested style while preserving meaning.",
		"episode_id: " + episodeID,
		"target_block_id: " + targetID,
		"style_tag: " + styleTag,
		"target_text: " + targetText,
		transformStyleShapeLine,
	}, "\n")

	return Prompt{System: transformStyleSystemPrompt, User: user, Temperature: 0.65}, nil
}

func buildAskPrompt(req AskRequest) (Prompt, error) {
	projectID, err := requiredText(req.ProjectID, "projectId")
	if err != nil {
		return Prompt{}, err
	}
	question, err := requiredText(req.Question, "question")
	if err != nil {
		return Prompt{}, err
	}

	user := strings.Join([]string{
		"Task: Answer the user question using only retrieved contexts.",
		"project_id: " + projectID,
		"question: " + question,
		"retrieved_contexts:",
		formatRetrievedContexts(req.RetrievedContexts),
		"references must use key `title` (not `episode_title`).",
		askShapeLine,
	}, "\n")

	return Prompt{System: askSystemPrompt, User: user, Temperature: 0.3}, nil
}
