// Package flashcards generates study flashcards from document text or
// a bare topic.
package flashcards

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eduforge/eduforge/internal/llm"
)

// Request holds flashcard generation parameters.
type Request struct {
	Content    string
	Count      int
	Difficulty string
	FocusArea  string
}

// DefaultRequest returns a request with default count and style; the
// caller fills in Content.
func DefaultRequest() Request {
	return Request{
		Count:      5,
		Difficulty: "medium",
		FocusArea:  "key concepts",
	}
}

// FlashCard is one question/answer card.
type FlashCard struct {
	Topic       string   `json:"topic"`
	Subtopic    string   `json:"subtopic,omitempty"`
	Question    string   `json:"question"`
	Answer      string   `json:"answer"`
	KeyTerms    []string `json:"key_terms"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
	Tags        []string `json:"tags"`
}

// Config holds flashcard generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for flashcard generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.5,
	}
}

// Service generates flashcards.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a flashcard generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

const flashcardSystemPrompt = `You are an expert educator and instructional designer. Your task is to generate high-quality flashcards from a given document, text or topic.`

func buildFlashcardUserMessage(req Request) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Generate %d flashcards.\n", req.Count))
	b.WriteString(fmt.Sprintf("The difficulty level of the flashcards is %s.\n", req.Difficulty))
	b.WriteString(fmt.Sprintf("The flashcards should focus on %s.\n", req.FocusArea))

	b.WriteString("\nThis is the document content or topic:\n")
	b.WriteString(req.Content)
	return b.String()
}

// FlashCardSetSchema defines the JSON schema for flashcard generation.
var FlashCardSetSchema = &llm.Schema{
	Name:        "flashcard-set",
	Description: "A set of study flashcards",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"flashcards": map[string]any{
				"type":        "array",
				"description": "List of flashcards in this set",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"topic": map[string]any{
							"type":        "string",
							"description": "Main topic or subject this flashcard belongs to",
						},
						"subtopic": map[string]any{
							"type":        "string",
							"description": "Optional subtopic or section of the document",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "Question or prompt for the flashcard",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "Main answer text for the flashcard",
						},
						"key_terms": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Important terms or keywords relevant to the question",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"description": "Difficulty level: easy, medium, or hard",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Expanded explanation or context behind the answer",
						},
						"tags": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Tags or categories to help organize the flashcard",
						},
					},
					"required":             []any{"topic", "question", "answer", "key_terms", "tags"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"flashcards"},
		"additionalProperties": false,
	},
}

type flashcardSet struct {
	Flashcards []FlashCard `json:"flashcards"`
}

// Generate produces flashcards for the given request. An empty result
// is not an error; the caller decides how to treat it.
func (s *Service) Generate(ctx context.Context, req Request) ([]FlashCard, error) {
	ctx = llm.WithPurpose(ctx, "flashcards")

	llmReq := llm.Request{
		System: flashcardSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFlashcardUserMessage(req)},
		},
		Schema:      FlashCardSetSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("flashcard generation: %w", err)
	}

	var out flashcardSet
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse flashcard response: %w", err)
	}
	return out.Flashcards, nil
}
