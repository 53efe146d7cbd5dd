package learningpath

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eduforge/eduforge/internal/llm"
)

// Service generates learning paths from document text.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a learning path generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type pathOutput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ModulesJSON string `json:"modules_json"`
}

// Generate runs the full pipeline: compose the prompt, invoke the
// model, normalize the modules JSON, and assemble the final document.
func (s *Service) Generate(ctx context.Context, req PathRequest) (*Document, error) {
	ctx = llm.WithPurpose(ctx, "learning-path")

	out, err := s.invoke(ctx, req)
	if err != nil {
		return nil, err
	}

	modulesJSON := out.ModulesJSON
	if modulesJSON == "" {
		modulesJSON = "[]"
	}

	modules, err := normalizeModules(modulesJSON)
	if err != nil {
		return nil, fmt.Errorf("format learning path: %w", err)
	}

	return assembleDocument(out.Title, out.Description, modules, req), nil
}

// invoke runs one model call. Full-content runs use plain JSON mode
// because structured output chokes on heavily escaped topic content;
// structure-only runs use the schema, which is faster and stricter.
func (s *Service) invoke(ctx context.Context, req PathRequest) (*pathOutput, error) {
	llmReq := llm.Request{
		System: pathSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPathUserMessage(req)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}
	if req.GenerateFullContent {
		llmReq.JSONOnly = true
	} else {
		llmReq.Schema = PathOutputSchema
	}

	resp, err := s.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("learning path generation: %w", err)
	}

	if req.GenerateFullContent {
		return parseFullContentResponse(resp.Content)
	}

	var out pathOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse learning path response: %w", err)
	}
	return &out, nil
}

// parseFullContentResponse adapts a free-form JSON mode response into
// the schema shape: modules come back as a real array and are
// re-encoded so both modes share the normalize step. Missing fields
// get defaults rather than failing the run.
func parseFullContentResponse(content json.RawMessage) (*pathOutput, error) {
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse learning path response: %w", err)
	}

	out := &pathOutput{Title: "Learning Path"}
	if title, ok := data["title"].(string); ok {
		out.Title = title
	}
	if desc, ok := data["description"].(string); ok {
		out.Description = desc
	}

	modules, ok := data["modules"].([]any)
	if !ok {
		modules = []any{}
	}
	encoded, err := json.Marshal(modules)
	if err != nil {
		return nil, fmt.Errorf("parse learning path response: %w", err)
	}
	out.ModulesJSON = string(encoded)
	return out, nil
}
