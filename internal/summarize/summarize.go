// Package summarize generates document summaries with configurable
// tone, length, and optional references, examples, and conclusions.
package summarize

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/eduforge/eduforge/internal/llm"
)

// Options controls the style and extras of a summary.
type Options struct {
	Character          string
	LanguageRegister   string
	Language           string
	Extension          string
	IncludeReferences  bool
	IncludeExamples    bool
	IncludeConclusions bool
}

// DefaultOptions returns the default summary style.
func DefaultOptions() Options {
	return Options{
		Character:        "review",
		LanguageRegister: "formal",
		Language:         "English",
		Extension:        "medium",
	}
}

// Summary is a generated document summary.
type Summary struct {
	Summary     string   `json:"summary"`
	References  []string `json:"references,omitempty"`
	Examples    []string `json:"examples,omitempty"`
	Conclusions string   `json:"conclusions,omitempty"`
}

// ErrEmpty is returned when the model produces no usable summary.
var ErrEmpty = errors.New("no summary could be generated")

// Config holds summary generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for summarization.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.3,
	}
}

// Service generates summaries.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a summarization service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

const summarySystemPrompt = `You are an expert AI assistant specialized in summarizing documents. Given the document content, generate a summary that captures the main points and key information.`

func buildSummaryUserMessage(content string, opts Options) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("The summary should be written in %s with a %s tone and a %s style.\n", opts.Language, opts.LanguageRegister, opts.Character))
	b.WriteString(fmt.Sprintf("The summary should be of %s length.\n", opts.Extension))

	b.WriteString("\nAdditional instructions:\n")
	if opts.IncludeReferences {
		b.WriteString("- Include a list of references used in the summary.\n")
	}
	if opts.IncludeExamples {
		b.WriteString("- Provide relevant examples to illustrate key points.\n")
	}
	if opts.IncludeConclusions {
		b.WriteString("- Add a conclusion section summarizing the overall insights.\n")
	}

	b.WriteString("\nContent:\n")
	b.WriteString(content)
	return b.String()
}

// SummarySchema defines the JSON schema for summary generation.
var SummarySchema = &llm.Schema{
	Name:        "summary",
	Description: "A document summary with optional references, examples, and conclusions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "The text summary",
			},
			"references": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "The list of references",
			},
			"examples": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "The list of examples",
			},
			"conclusions": map[string]any{
				"type":        "string",
				"description": "The summary conclusions",
			},
		},
		"required":             []any{"summary"},
		"additionalProperties": false,
	},
}

// Generate produces a summary of the given content.
func (s *Service) Generate(ctx context.Context, content string, opts Options) (*Summary, error) {
	ctx = llm.WithPurpose(ctx, "summarize")

	req := llm.Request{
		System: summarySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSummaryUserMessage(content, opts)},
		},
		Schema:      SummarySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("summary generation: %w", err)
	}

	var out Summary
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse summary response: %w", err)
	}
	if out.Summary == "" {
		return nil, ErrEmpty
	}
	return &out, nil
}
