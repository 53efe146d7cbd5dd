package server

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/eduforge/eduforge/internal/config"
	"github.com/eduforge/eduforge/internal/llm"
)

func newTestServer(t *testing.T, responses ...llm.MockResponse) (*Server, *llm.MockProvider) {
	t.Helper()
	mock := llm.NewMockProvider(responses...)
	cfg := config.Config{
		Server: config.ServerConfig{Port: "8080", Mode: "test"},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"*"}},
		Limits: config.LimitsConfig{MaxUploadBytes: 32 << 20},
	}
	return New(cfg, zap.NewNop(), NewServices(mock)), mock
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	for name, content := range files {
		fw, err := w.CreateFormFile("files", name)
		if err != nil {
			t.Fatal(err)
		}
		fw.Write([]byte(content))
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

// docxUpload builds a minimal Word document containing one paragraph,
// so extraction yields the given text instead of an unsupported-type
// placeholder.
func docxUpload(t *testing.T, text string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	docXML := fmt.Sprintf(`<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p><w:r><w:t>%s</w:t></w:r></w:p></w:body>
</w:document>`, text)
	if _, err := w.Write([]byte(docXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func doRequest(t *testing.T, s *Server, method, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestWelcome(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Welcome") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestLearningPathHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/learning-path/health", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" || body["service"] != "learning-path" {
		t.Errorf("unexpected health body: %v", body)
	}
}

func TestLearningPathGenerate(t *testing.T) {
	s, mock := newTestServer(t, llm.MockResponse{
		Content: json.RawMessage(`{
			"title": "Intro to Algebra",
			"description": "From variables to equations",
			"modules_json": "[{\"title\": \"Variables\", \"sessions\": [{\"title\": \"Basics\"}]}]"
		}`),
	})

	body, ct := multipartBody(t,
		map[string]string{"modules_count": "3", "language": "English"},
		map[string]string{"notes.docx": docxUpload(t, "algebra notes")},
	)
	rec := doRequest(t, s, http.MethodPost, "/api/learning-path/generate", body, ct)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		LearningPath struct {
			ID         string `json:"id"`
			Title      string `json:"title"`
			Difficulty string `json:"difficulty"`
			CreatedAt  string `json:"createdAt"`
			Modules    []any  `json:"modules"`
		} `json:"learning_path"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.LearningPath.ID == "" {
		t.Error("expected generated path ID")
	}
	if resp.LearningPath.Title != "Intro to Algebra" {
		t.Errorf("unexpected title: %q", resp.LearningPath.Title)
	}
	if resp.LearningPath.Difficulty != "intermediate" {
		t.Errorf("expected default difficulty, got %q", resp.LearningPath.Difficulty)
	}
	if len(resp.LearningPath.Modules) != 1 {
		t.Fatalf("expected 1 module, got %d", len(resp.LearningPath.Modules))
	}
	module := resp.LearningPath.Modules[0].(map[string]any)
	if module["id"] != "module_1" {
		t.Errorf("expected injected module ID, got %v", module["id"])
	}

	prompt := mock.LastCall().Messages[0].Content
	if !strings.Contains(prompt, "3 modules") {
		t.Error("prompt missing requested module count")
	}
	if !strings.Contains(prompt, "algebra notes") {
		t.Error("prompt missing extracted file content")
	}
}

func TestLearningPathBoundsRejected(t *testing.T) {
	s, mock := newTestServer(t)

	body, ct := multipartBody(t,
		map[string]string{"modules_count": "11"},
		map[string]string{"notes.txt": "x"},
	)
	rec := doRequest(t, s, http.MethodPost, "/api/learning-path/generate", body, ct)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if mock.CallCount() != 0 {
		t.Error("expected no provider call for out-of-bounds request")
	}
}

func TestLearningPathProviderFailure(t *testing.T) {
	s, _ := newTestServer(t, llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})

	body, ct := multipartBody(t, nil, map[string]string{"notes.txt": "x"})
	rec := doRequest(t, s, http.MethodPost, "/api/learning-path/generate", body, ct)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "detail") {
		t.Errorf("expected detail field in error body: %s", rec.Body.String())
	}
}

func TestSummarize(t *testing.T) {
	s, mock := newTestServer(t, llm.MockResponse{
		Content: json.RawMessage(`{"summary": "Short and sweet."}`),
	})

	body, ct := multipartBody(t,
		map[string]string{"language": "Spanish", "include_examples": "true"},
		map[string]string{"doc.txt": "full document text"},
	)
	rec := doRequest(t, s, http.MethodPost, "/api/summarize", body, ct)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Summary struct {
			Summary string `json:"summary"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Summary.Summary != "Short and sweet." {
		t.Errorf("unexpected summary: %+v", resp)
	}

	prompt := mock.LastCall().Messages[0].Content
	if !strings.Contains(prompt, "written in Spanish") {
		t.Error("prompt missing language override")
	}
}

func TestFlashcardsByTopic(t *testing.T) {
	s, mock := newTestServer(t, llm.MockResponse{
		Content: json.RawMessage(`{"flashcards": [
			{"topic": "Cells", "question": "Q", "answer": "A", "key_terms": [], "tags": []}
		]}`),
	})

	body := bytes.NewBufferString(`{"topic": "cell biology", "flashcards_count": 7}`)
	rec := doRequest(t, s, http.MethodPost, "/api/flashcard/by_topic", body, "application/json")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Flashcards []map[string]any `json:"flashcards"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Flashcards) != 1 {
		t.Fatalf("expected 1 flashcard, got %d", len(resp.Flashcards))
	}

	prompt := mock.LastCall().Messages[0].Content
	if !strings.Contains(prompt, "7 flashcards") {
		t.Error("prompt missing overridden count")
	}
	if !strings.Contains(prompt, "cell biology") {
		t.Error("prompt missing topic")
	}
}

func TestFlashcardsByTopicRequiresTopic(t *testing.T) {
	s, _ := newTestServer(t)
	body := bytes.NewBufferString(`{"flashcards_count": 3}`)
	rec := doRequest(t, s, http.MethodPost, "/api/flashcard/by_topic", body, "application/json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestExercisesByTopic(t *testing.T) {
	s, _ := newTestServer(t, llm.MockResponse{
		Content: json.RawMessage(`{"exercises": [
			{"statement": "The mitochondria is the powerhouse of the cell.", "is_true": true}
		]}`),
	})

	body := bytes.NewBufferString(`{"topic": "cells", "exercises_types": "true_false"}`)
	rec := doRequest(t, s, http.MethodPost, "/api/generate-exercises/by_topic", body, "application/json")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Exercises struct {
			Exercises []map[string]any `json:"exercises"`
		} `json:"exercises"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Exercises.Exercises) != 1 {
		t.Fatalf("unexpected exercises: %s", rec.Body.String())
	}
}

func TestExercisesUnsupportedType(t *testing.T) {
	s, mock := newTestServer(t)
	body := bytes.NewBufferString(`{"topic": "cells", "exercises_types": "essay"}`)
	rec := doRequest(t, s, http.MethodPost, "/api/generate-exercises/by_topic", body, "application/json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if mock.CallCount() != 0 {
		t.Error("expected no provider call for unsupported type")
	}
}

func TestGames(t *testing.T) {
	s, _ := newTestServer(t, llm.MockResponse{
		Content: json.RawMessage(`{"title": "T", "words": ["ATOM"], "category": "Chemistry"}`),
	})

	body := bytes.NewBufferString(`{"topic": "chemistry"}`)
	rec := doRequest(t, s, http.MethodPost, "/api/games", body, "application/json")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["category"] != "Chemistry" {
		t.Errorf("unexpected game body: %v", resp)
	}
}

func TestGamesUnsupportedType(t *testing.T) {
	s, _ := newTestServer(t)
	body := bytes.NewBufferString(`{"topic": "chemistry", "game_type": "sudoku"}`)
	rec := doRequest(t, s, http.MethodPost, "/api/games", body, "application/json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRoadmap(t *testing.T) {
	s, _ := newTestServer(t, llm.MockResponse{
		Content: json.RawMessage(`{"title": "Plan", "steps": ["one", "two"]}`),
	})

	body := bytes.NewBufferString(`{"topic": "databases", "complexity_level": "beginner", "duration": "2 weeks", "include_resources": false}`)
	rec := doRequest(t, s, http.MethodPost, "/api/roadmap", body, "application/json")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Roadmap struct {
			Steps []string `json:"steps"`
		} `json:"roadmap"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Roadmap.Steps) != 2 {
		t.Errorf("unexpected roadmap: %s", rec.Body.String())
	}
}

func TestRoadmapRequiresTopic(t *testing.T) {
	s, _ := newTestServer(t)
	body := bytes.NewBufferString(`{"duration": "2 weeks"}`)
	rec := doRequest(t, s, http.MethodPost, "/api/roadmap", body, "application/json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
