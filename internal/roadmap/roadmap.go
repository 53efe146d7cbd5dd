// Package roadmap generates step-by-step study roadmaps for a topic.
package roadmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/eduforge/eduforge/internal/llm"
)

// Options holds roadmap generation parameters.
type Options struct {
	Topic            string
	ComplexityLevel  string
	Duration         string
	IncludeResources bool
}

// DefaultOptions returns the default roadmap request; the caller fills
// in Topic.
func DefaultOptions() Options {
	return Options{
		ComplexityLevel:  "intermediate",
		Duration:         "Recommend a duration",
		IncludeResources: true,
	}
}

// Roadmap is a generated study roadmap.
type Roadmap struct {
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Steps         []string `json:"steps"`
	EstimatedTime string   `json:"estimated_time,omitempty"`
	Resources     []string `json:"resources,omitempty"`
}

// ErrEmpty is returned when the model produces no usable roadmap.
var ErrEmpty = errors.New("no roadmap could be generated")

// Config holds roadmap generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for roadmap generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.4,
	}
}

// Service generates roadmaps.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a roadmap generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

const roadmapSystemPrompt = `You are an expert AI assistant specialized in creating detailed roadmaps for topics. Your task is to generate a comprehensive roadmap based on the provided topic and objective goals. The roadmap should be structured with clear milestones, timelines, and key deliverables.`

func buildRoadmapUserMessage(opts Options) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("The roadmap should cover a duration of %s.\n", opts.Duration))
	b.WriteString(fmt.Sprintf("The roadmap complexity should be %s.\n", opts.ComplexityLevel))
	if opts.IncludeResources {
		b.WriteString("Provide a list of helper resources and tools.\n")
	}

	b.WriteString("\nTopic:\n")
	b.WriteString(opts.Topic)
	return b.String()
}

// RoadmapSchema defines the JSON schema for roadmap generation.
var RoadmapSchema = &llm.Schema{
	Name:        "roadmap",
	Description: "A step-by-step study roadmap",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "The title of the roadmap",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "A brief description of the roadmap",
			},
			"steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "A list of steps in the roadmap",
			},
			"estimated_time": map[string]any{
				"type":        "string",
				"description": "Estimated time to complete the roadmap",
			},
			"resources": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "A list of helper resources and tools",
			},
		},
		"required":             []any{"title", "steps"},
		"additionalProperties": false,
	},
}

// Generate produces a roadmap for the given topic.
func (s *Service) Generate(ctx context.Context, opts Options) (*Roadmap, error) {
	ctx = llm.WithPurpose(ctx, "roadmap")

	req := llm.Request{
		System: roadmapSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRoadmapUserMessage(opts)},
		},
		Schema:      RoadmapSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("roadmap generation: %w", err)
	}

	var out Roadmap
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse roadmap response: %w", err)
	}
	if len(out.Steps) == 0 {
		return nil, ErrEmpty
	}
	return &out, nil
}
