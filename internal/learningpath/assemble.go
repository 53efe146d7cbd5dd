package learningpath

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// assembleDocument stamps a fresh path ID, creation timestamp, and
// request metadata onto the parsed output, then injects hierarchical
// IDs into every module, session, topic, flashcard, and question.
func assembleDocument(title, description string, modules []any, req PathRequest) *Document {
	injectIDs(modules)

	return &Document{
		ID:            uuid.NewString(),
		Title:         title,
		Description:   description,
		TotalDuration: req.TotalDuration,
		Difficulty:    req.Difficulty,
		CreatedAt:     time.Now().UTC().Format("2006-01-02T15:04:05.000000") + "Z",
		Modules:       modules,
	}
}

// injectIDs assigns 1-based positional IDs through the module tree:
// module_1, module_1_session_2, module_1_session_2_topic_3, and so on.
// Entries that are not objects are left untouched.
func injectIDs(modules []any) {
	for mi, m := range modules {
		module, ok := m.(map[string]any)
		if !ok {
			continue
		}
		moduleID := fmt.Sprintf("module_%d", mi+1)
		module["id"] = moduleID

		for si, s := range asSlice(module["sessions"]) {
			session, ok := s.(map[string]any)
			if !ok {
				continue
			}
			sessionID := fmt.Sprintf("%s_session_%d", moduleID, si+1)
			session["id"] = sessionID

			for ti, t := range asSlice(session["topics"]) {
				if topic, ok := t.(map[string]any); ok {
					topic["id"] = fmt.Sprintf("%s_topic_%d", sessionID, ti+1)
				}
			}
			for fi, f := range asSlice(session["flashcards"]) {
				if card, ok := f.(map[string]any); ok {
					card["id"] = fmt.Sprintf("%s_flashcard_%d", sessionID, fi+1)
				}
			}
			for qi, q := range asSlice(session["practice"]) {
				if question, ok := q.(map[string]any); ok {
					question["id"] = fmt.Sprintf("%s_question_%d", sessionID, qi+1)
				}
			}
		}
	}
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}
