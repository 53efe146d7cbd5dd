// Package exercises generates practice exercises of several kinds from
// document text or a topic.
package exercises

// Type identifies an exercise kind.
type Type string

const (
	TypeMultipleChoice Type = "multiple_choice"
	TypeFillInTheBlank Type = "fill_in_the_blank"
	TypeTrueFalse      Type = "true_false"
	TypeShortAnswer    Type = "short_answer"
	TypeMatching       Type = "matching"
)

// Valid reports whether t names a supported exercise kind.
func (t Type) Valid() bool {
	switch t {
	case TypeMultipleChoice, TypeFillInTheBlank, TypeTrueFalse, TypeShortAnswer, TypeMatching:
		return true
	}
	return false
}

// Request holds exercise generation parameters.
type Request struct {
	Content    string
	Count      int
	Difficulty string
	Type       Type
}

// DefaultRequest returns a request with default count, difficulty, and
// kind; the caller fills in Content.
func DefaultRequest() Request {
	return Request{
		Count:      5,
		Difficulty: "medium",
		Type:       TypeMultipleChoice,
	}
}

// Choice is an answer option for a multiple-choice exercise.
type Choice struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// MultipleChoiceExercise is a question with several answer options.
type MultipleChoiceExercise struct {
	Topic             string   `json:"topic,omitempty"`
	Difficulty        string   `json:"difficulty,omitempty"`
	Question          string   `json:"question"`
	Choices           []Choice `json:"choices"`
	Explanation       string   `json:"explanation,omitempty"`
	LearningObjective string   `json:"learning_objective,omitempty"`
}

// FillInTheBlankExercise is a sentence with a blank to complete.
type FillInTheBlankExercise struct {
	Topic             string `json:"topic,omitempty"`
	Difficulty        string `json:"difficulty,omitempty"`
	Question          string `json:"question"`
	Answer            string `json:"answer"`
	Explanation       string `json:"explanation,omitempty"`
	LearningObjective string `json:"learning_objective,omitempty"`
}

// TrueFalseExercise is a statement to evaluate.
type TrueFalseExercise struct {
	Topic             string `json:"topic,omitempty"`
	Difficulty        string `json:"difficulty,omitempty"`
	Statement         string `json:"statement"`
	IsTrue            bool   `json:"is_true"`
	Explanation       string `json:"explanation,omitempty"`
	LearningObjective string `json:"learning_objective,omitempty"`
}

// ShortAnswerExercise is an open question with an ideal answer.
type ShortAnswerExercise struct {
	Topic             string `json:"topic,omitempty"`
	Difficulty        string `json:"difficulty,omitempty"`
	Question          string `json:"question"`
	Answer            string `json:"answer"`
	Explanation       string `json:"explanation,omitempty"`
	LearningObjective string `json:"learning_objective,omitempty"`
}

// MatchingExercise pairs items from two columns.
type MatchingExercise struct {
	Topic             string            `json:"topic,omitempty"`
	Difficulty        string            `json:"difficulty,omitempty"`
	Instructions      string            `json:"instructions"`
	Premises          []string          `json:"premises"`
	Responses         []string          `json:"responses"`
	CorrectMatches    map[string]string `json:"correct_matches"`
	Explanation       string            `json:"explanation,omitempty"`
	LearningObjective string            `json:"learning_objective,omitempty"`
}

// Per-kind set containers. The API returns whichever set matches the
// requested kind, always under an "exercises" key.

type MultipleChoiceSet struct {
	Exercises []MultipleChoiceExercise `json:"exercises"`
}

type FillInTheBlankSet struct {
	Exercises []FillInTheBlankExercise `json:"exercises"`
}

type TrueFalseSet struct {
	Exercises []TrueFalseExercise `json:"exercises"`
}

type ShortAnswerSet struct {
	Exercises []ShortAnswerExercise `json:"exercises"`
}

type MatchingSet struct {
	Exercises []MatchingExercise `json:"exercises"`
}
