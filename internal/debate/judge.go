package debate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// RoundVerdict is the judge's decision for one debate round.
type RoundVerdict struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Judge scores a single argument for an arena round.
type Judge interface {
	ScoreArgument(ctx context.Context, philosopherName, topicName, challenge, argument string) (*RoundVerdict, error)
}

// LLMJudge scores arguments via a chat-completion client.
type LLMJudge struct {
	llm LLMClient
}

func NewJudge(llm LLMClient) *LLMJudge {
	return &LLMJudge{llm: llm}
}

func (j *LLMJudge) ScoreArgument(ctx context.Context, philosopherName, topicName, challenge, argument string) (*RoundVerdict, error) {
	systemPrompt := JudgeSystemPrompt()
	userPrompt := BuildJudgePrompt(philosopherName, topicName, challenge, argument)

	raw, err := j.llm.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("judge completion: %w", err)
	}

	verdict, err := ParseVerdict(raw)
	if err != nil {
		return nil, fmt.Errorf("parse verdict: %w", err)
	}
	return verdict, nil
}

// ParseVerdict extracts the verdict JSON from a model response,
// tolerating markdown fences and surrounding prose. Scores outside
// 0..50 are clamped.
func ParseVerdict(raw string) (*RoundVerdict, error) {
	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var verdict RoundVerdict
	if err := json.Unmarshal([]byte(jsonStr), &verdict); err != nil {
		return nil, fmt.Errorf("decode verdict: %w", err)
	}

	if verdict.Score < 0 {
		verdict.Score = 0
	}
	if verdict.Score > 50 {
		verdict.Score = 50
	}
	return &verdict, nil
}

// extractJSON returns the first balanced top-level JSON object in the
// text, or "" when none exists.
func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && c == '{':
			depth++
		case !inString && c == '}':
			depth--
			if depth == 0 {
				return raw[start : i+1]
			}
		}
	}
	return ""
}
