// Package games generates educational word puzzles for a topic.
package games

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eduforge/eduforge/internal/llm"
)

// GameType identifies a puzzle kind.
type GameType string

const (
	TypeWordSearch GameType = "word_search"
	TypeCrossword  GameType = "crossword"
)

// Options holds game generation parameters.
type Options struct {
	Topic    string
	GameType GameType
	Language string
}

// DefaultOptions returns the default game request.
func DefaultOptions() Options {
	return Options{
		Topic:    "any topic",
		GameType: TypeWordSearch,
		Language: "Spanish",
	}
}

// WordSearch is a word search puzzle definition.
type WordSearch struct {
	Title    string   `json:"title"`
	Words    []string `json:"words"`
	Category string   `json:"category"`
}

// Word is a crossword entry with its clue.
type Word struct {
	Word string `json:"word"`
	Clue string `json:"clue"`
}

// Crossword is a crossword puzzle definition.
type Crossword struct {
	Title    string `json:"title"`
	Words    []Word `json:"words"`
	Category string `json:"category"`
}

// Config holds game generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for game generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Service generates games.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a game generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

const gameSystemPrompt = `You are an expert AI assistant specialized in creating educational games. Given a topic, your task is to generate a game of the specified type.`

func buildGameUserMessage(opts Options) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("The game should be in %s.\n\n", opts.Language))
	b.WriteString(fmt.Sprintf("Topic: %s\n", opts.Topic))
	b.WriteString(fmt.Sprintf("Game Type: %s\n", opts.GameType))

	b.WriteString(`
Instructions:
- Generate a list of 5-10 words related to the topic.
`)
	if opts.GameType == TypeCrossword {
		b.WriteString("- Each word must have a corresponding clue.\n")
	}
	b.WriteString(`- The words should be in uppercase.
- The title and category should be related to the topic.`)

	return b.String()
}

// WordSearchSchema defines the JSON schema for word search generation.
var WordSearchSchema = &llm.Schema{
	Name:        "word-search",
	Description: "A word search puzzle",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "The title of the word search puzzle",
			},
			"words": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "A list of words to find in the puzzle",
			},
			"category": map[string]any{
				"type":        "string",
				"description": "The category of the words",
			},
		},
		"required":             []any{"title", "words", "category"},
		"additionalProperties": false,
	},
}

// CrosswordSchema defines the JSON schema for crossword generation.
var CrosswordSchema = &llm.Schema{
	Name:        "crossword",
	Description: "A crossword puzzle",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "The title of the crossword puzzle",
			},
			"words": map[string]any{
				"type":        "array",
				"description": "A list of words with their clues",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": map[string]any{"type": "string"},
						"clue": map[string]any{"type": "string"},
					},
					"required":             []any{"word", "clue"},
					"additionalProperties": false,
				},
			},
			"category": map[string]any{
				"type":        "string",
				"description": "The category of the words",
			},
		},
		"required":             []any{"title", "words", "category"},
		"additionalProperties": false,
	},
}

// Generate produces a puzzle of the requested kind. The return value
// is *WordSearch or *Crossword, chosen by opts.GameType.
func (s *Service) Generate(ctx context.Context, opts Options) (any, error) {
	var schema *llm.Schema
	var out any
	switch opts.GameType {
	case TypeWordSearch:
		schema = WordSearchSchema
		out = &WordSearch{}
	case TypeCrossword:
		schema = CrosswordSchema
		out = &Crossword{}
	default:
		return nil, fmt.Errorf("unsupported game type: %s", opts.GameType)
	}

	ctx = llm.WithPurpose(ctx, "games")

	req := llm.Request{
		System: gameSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGameUserMessage(opts)},
		},
		Schema:      schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("game generation: %w", err)
	}

	if err := json.Unmarshal(resp.Content, out); err != nil {
		return nil, fmt.Errorf("parse game response: %w", err)
	}
	return out, nil
}
