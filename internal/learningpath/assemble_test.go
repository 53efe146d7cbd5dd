package learningpath

import (
	"regexp"
	"strings"
	"testing"
)

func nestedModules() []any {
	return []any{
		map[string]any{
			"title": "Module One",
			"sessions": []any{
				map[string]any{
					"title": "Session One",
					"topics": []any{
						map[string]any{"title": "Topic A"},
						map[string]any{"title": "Topic B"},
					},
					"flashcards": []any{
						map[string]any{"question": "Q1", "answer": "A1"},
					},
					"practice": []any{
						map[string]any{"question": "P1"},
						map[string]any{"question": "P2"},
					},
				},
				map[string]any{"title": "Session Two"},
			},
		},
		map[string]any{"title": "Module Two"},
	}
}

func TestInjectIDs_Hierarchical(t *testing.T) {
	modules := nestedModules()
	injectIDs(modules)

	m1 := modules[0].(map[string]any)
	if m1["id"] != "module_1" {
		t.Errorf("expected module_1, got %v", m1["id"])
	}
	m2 := modules[1].(map[string]any)
	if m2["id"] != "module_2" {
		t.Errorf("expected module_2, got %v", m2["id"])
	}

	s1 := m1["sessions"].([]any)[0].(map[string]any)
	if s1["id"] != "module_1_session_1" {
		t.Errorf("expected module_1_session_1, got %v", s1["id"])
	}
	s2 := m1["sessions"].([]any)[1].(map[string]any)
	if s2["id"] != "module_1_session_2" {
		t.Errorf("expected module_1_session_2, got %v", s2["id"])
	}

	topicB := s1["topics"].([]any)[1].(map[string]any)
	if topicB["id"] != "module_1_session_1_topic_2" {
		t.Errorf("unexpected topic id: %v", topicB["id"])
	}
	card := s1["flashcards"].([]any)[0].(map[string]any)
	if card["id"] != "module_1_session_1_flashcard_1" {
		t.Errorf("unexpected flashcard id: %v", card["id"])
	}
	q2 := s1["practice"].([]any)[1].(map[string]any)
	if q2["id"] != "module_1_session_1_question_2" {
		t.Errorf("unexpected question id: %v", q2["id"])
	}
}

func TestInjectIDs_SkipsNonObjectEntries(t *testing.T) {
	modules := []any{
		"just a string",
		map[string]any{
			"title": "Real",
			"sessions": []any{
				42,
				map[string]any{
					"topics":     []any{"loose topic", map[string]any{"title": "T"}},
					"flashcards": []any{nil},
					"practice":   []any{true},
				},
			},
		},
	}
	injectIDs(modules)

	m := modules[1].(map[string]any)
	if m["id"] != "module_2" {
		t.Errorf("expected module_2 (IDs stay positional), got %v", m["id"])
	}
	s := m["sessions"].([]any)[1].(map[string]any)
	if s["id"] != "module_2_session_2" {
		t.Errorf("expected module_2_session_2, got %v", s["id"])
	}
	topic := s["topics"].([]any)[1].(map[string]any)
	if topic["id"] != "module_2_session_2_topic_2" {
		t.Errorf("unexpected topic id: %v", topic["id"])
	}
}

func TestAssembleDocument_Metadata(t *testing.T) {
	req := PathRequest{
		Difficulty:    "advanced",
		TotalDuration: "6 weeks",
	}
	doc := assembleDocument("Go Basics", "Learn Go", []any{}, req)

	if doc.ID == "" {
		t.Error("expected generated path ID")
	}
	if doc.Title != "Go Basics" || doc.Description != "Learn Go" {
		t.Errorf("unexpected title/description: %q %q", doc.Title, doc.Description)
	}
	if doc.Difficulty != "advanced" {
		t.Errorf("expected difficulty passed through, got %q", doc.Difficulty)
	}
	if doc.TotalDuration != "6 weeks" {
		t.Errorf("expected total duration passed through, got %q", doc.TotalDuration)
	}
	if !strings.HasSuffix(doc.CreatedAt, "Z") {
		t.Errorf("expected UTC timestamp with Z suffix, got %q", doc.CreatedAt)
	}
	// Microseconds are fixed-width: zero-valued fractions must not be trimmed.
	createdAtRe := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}Z$`)
	if !createdAtRe.MatchString(doc.CreatedAt) {
		t.Errorf("expected six-digit microsecond timestamp, got %q", doc.CreatedAt)
	}
	if doc.Modules == nil || len(doc.Modules) != 0 {
		t.Errorf("expected empty modules slice, got %v", doc.Modules)
	}
}

func TestAssembleDocument_UniqueIDs(t *testing.T) {
	a := assembleDocument("A", "", nil, PathRequest{})
	b := assembleDocument("B", "", nil, PathRequest{})
	if a.ID == b.ID {
		t.Error("expected distinct path IDs across calls")
	}
}
