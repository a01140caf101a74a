// Package mock produces deterministic, schema-valid responses for every
// feature. It backs the offline runtime mode so the full request path can be
// exercised without network access or a credential. A short signature
// derived from the request keys makes distinct requests distinguishable in
// the output while staying reproducible.
package mock

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"cowrite/pkg/schema"
)

func sig(parts ...string) string {
	sum := sha1.Sum([]byte(strings.Join(parts, "::")))
	return hex.EncodeToString(sum[:])[:8]
}

func Autocomplete(episodeID, cursorBlockID string) schema.AutocompleteData {
	s := sig("autocomplete", episodeID, cursorBlockID)
	return schema.AutocompleteData{
		GeneratedBlocks: []schema.Block{
			{
				Type: "paragraph",
				Text: fmt.Sprintf("그 순간, 바람이 멎자 공기가 칼날처럼 가늘어졌다. (%s)", s),
			},
			{
				Type: "paragraph",
				Text: "주인공은 숨을 죽인 채 어둠 속 발소리를 세었다. 세 번째 발걸음이 닿는 순간, 그는 망설임 없이 앞으로 뛰어들었다.",
			},
		},
	}
}

func Synonyms(episodeID, blockID, selectedWord string) schema.SynonymsData {
	_ = sig("synonyms", episodeID, blockID, selectedWord)
	return schema.SynonymsData{
		Recommendations: []schema.Recommendation{
			{
				Word:        "적막하다",
				Description: `"소리와 움직임이 거의 없어 고요하다."`,
			},
			{
				Word:        "정적이 흐르다",
				Description: `"잠깐의 침묵이 길게 이어지는 느낌을 준다."`,
			},
		},
	}
}

func TransformStyle(episodeID, blockID, styleTag string) schema.TransformStyleData {
	s := sig("transform_style", episodeID, blockID, styleTag)
	return schema.TransformStyleData{
		TransformedBlocks: []schema.Block{
			{
				Type: "paragraph",
				Text: fmt.Sprintf(`"하늘빛이 검게 잠기니, 칼끝에 맺힌 숨결마저 차디차구나." 그는 빗발을 가르며 천천히 검을 세웠다. (%s/%s)`, styleTag, s),
			},
		},
	}
}

func Ask(projectID, episodeID, episodeTitle, question string) schema.AskData {
	s := sig("ask", projectID, episodeID, question)
	if strings.TrimSpace(episodeTitle) == "" {
		episodeTitle = "2장. 검은 그림자"
	}
	return schema.AskData{
		Answer: "현재 저장된 회차 기록 기준으로 보면, 질문한 설정은 초반부 전투 장면에서 한 번 명시된 것으로 정리됩니다.",
		References: []schema.Reference{
			{
				EpisodeID:   episodeID,
				Title:       episodeTitle,
				MatchedText: fmt.Sprintf("...주인공은 금지된 술식을 다시 떠올렸다. 그 명칭은 전투 직전 짧게 언급되었다... (%s)", s),
			},
		},
	}
}
