package exercises

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eduforge/eduforge/internal/llm"
)

// Config holds exercise generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for exercise generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.5,
	}
}

// Service generates exercises.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an exercise generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces an exercise set of the requested kind. The return
// value is one of the *Set types, chosen by req.Type.
func (s *Service) Generate(ctx context.Context, req Request) (any, error) {
	schema, ok := schemaFor(req.Type)
	if !ok {
		return nil, fmt.Errorf("unsupported exercise type: %s", req.Type)
	}

	ctx = llm.WithPurpose(ctx, "exercises")

	llmReq := llm.Request{
		System: exerciseSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExerciseUserMessage(req)},
		},
		Schema:      schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("exercise generation: %w", err)
	}

	set := setFor(req.Type)
	if err := json.Unmarshal(resp.Content, set); err != nil {
		return nil, fmt.Errorf("parse exercise response: %w", err)
	}
	return set, nil
}

func schemaFor(t Type) (*llm.Schema, bool) {
	switch t {
	case TypeMultipleChoice:
		return MultipleChoiceSchema, true
	case TypeFillInTheBlank:
		return FillInTheBlankSchema, true
	case TypeTrueFalse:
		return TrueFalseSchema, true
	case TypeShortAnswer:
		return ShortAnswerSchema, true
	case TypeMatching:
		return MatchingSchema, true
	}
	return nil, false
}

func setFor(t Type) any {
	switch t {
	case TypeFillInTheBlank:
		return &FillInTheBlankSet{}
	case TypeTrueFalse:
		return &TrueFalseSet{}
	case TypeShortAnswer:
		return &ShortAnswerSet{}
	case TypeMatching:
		return &MatchingSet{}
	default:
		return &MultipleChoiceSet{}
	}
}
