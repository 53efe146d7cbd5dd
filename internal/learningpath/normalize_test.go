package learningpath

import (
	"testing"
)

func TestNormalizeModules_WellFormed(t *testing.T) {
	modules, err := normalizeModules(`[{"title": "Basics"}, {"title": "Advanced"}]`)
	if err != nil {
		t.Fatal(err)
	}
	if len(modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(modules))
	}
	first, ok := modules[0].(map[string]any)
	if !ok || first["title"] != "Basics" {
		t.Errorf("unexpected first module: %v", modules[0])
	}
}

func TestNormalizeModules_EmptyString(t *testing.T) {
	modules, err := normalizeModules("")
	if err != nil {
		t.Fatal(err)
	}
	if len(modules) != 0 {
		t.Errorf("expected empty slice, got %v", modules)
	}
}

func TestNormalizeModules_MarkdownFences(t *testing.T) {
	raw := "```json\n[{\"title\": \"Fenced\"}]\n```"
	modules, err := normalizeModules(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(modules) != 1 {
		t.Fatalf("expected 1 module, got %d", len(modules))
	}
}

func TestNormalizeModules_TrailingCommentary(t *testing.T) {
	raw := `[{"title": "Core"}]

I hope this learning path is helpful!`
	modules, err := normalizeModules(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(modules) != 1 {
		t.Fatalf("expected 1 module, got %d", len(modules))
	}
}

func TestNormalizeModules_LeadingCommentary(t *testing.T) {
	raw := `Here is the structure: [{"title": "Core"}]`
	modules, err := normalizeModules(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(modules) != 1 {
		t.Fatalf("expected 1 module via bracket extraction, got %d", len(modules))
	}
}

func TestNormalizeModules_ObjectNotArray(t *testing.T) {
	modules, err := normalizeModules(`{"title": "Not a list"}`)
	if err != nil {
		t.Fatal(err)
	}
	if len(modules) != 0 {
		t.Errorf("expected empty slice for non-array value, got %v", modules)
	}
}

func TestNormalizeModules_Unparseable(t *testing.T) {
	if _, err := normalizeModules("this is not json at all"); err == nil {
		t.Error("expected error for unparseable input")
	}
}

func TestRepairProseQuotes_UnescapedQuote(t *testing.T) {
	raw := `[{"title": "The "best" module"}]`
	modules, err := normalizeModules(raw)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := modules[0].(map[string]any)
	if !ok {
		t.Fatalf("expected object module, got %v", modules[0])
	}
	if m["title"] != `The "best" module` {
		t.Errorf("expected repaired title, got %q", m["title"])
	}
}

func TestRepairProseQuotes_AlreadyEscaped(t *testing.T) {
	raw := `[{"question": "What does \"idempotent\" mean?"}]`
	modules, err := normalizeModules(raw)
	if err != nil {
		t.Fatal(err)
	}
	m := modules[0].(map[string]any)
	if m["question"] != `What does "idempotent" mean?` {
		t.Errorf("already-escaped quotes were mangled: %q", m["question"])
	}
}

func TestRepairProseQuotes_NonProseFieldUntouched(t *testing.T) {
	raw := `[{"estimatedDuration": "2 hours", "title": "Ok"}]`
	modules, err := normalizeModules(raw)
	if err != nil {
		t.Fatal(err)
	}
	m := modules[0].(map[string]any)
	if m["estimatedDuration"] != "2 hours" {
		t.Errorf("unexpected duration: %q", m["estimatedDuration"])
	}
}

func TestRepairProseQuotes_MultipleFields(t *testing.T) {
	raw := `[{"title": "A "quoted" title", "content": "He said "yes" twice"}]`
	modules, err := normalizeModules(raw)
	if err != nil {
		t.Fatal(err)
	}
	m := modules[0].(map[string]any)
	if m["title"] != `A "quoted" title` {
		t.Errorf("title not repaired: %q", m["title"])
	}
	if m["content"] != `He said "yes" twice` {
		t.Errorf("content not repaired: %q", m["content"])
	}
}
