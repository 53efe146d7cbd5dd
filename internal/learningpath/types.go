// Package learningpath turns document text into a structured learning
// path: modules containing sessions, each with topics, flashcards, and
// practice questions. The heavy lifting is a single LLM call; the rest
// of the package normalizes the model's JSON and stamps IDs onto it.
package learningpath

// PathRequest holds all generation parameters for one learning path.
type PathRequest struct {
	Content            string
	Difficulty         string
	TotalDuration      string
	ModulesCount       int
	SessionsPerModule  int
	TopicsPerSession   int
	FlashcardsPerTopic int
	QuestionsPerTopic  int
	Language           string

	// AutoStructure lets the model decide module/session/topic counts
	// instead of using the exact counts above.
	AutoStructure bool

	// LearningApproach is one of theoretical, practical, balanced,
	// project-based, fast.
	LearningApproach string

	// LanguageRegister is one of formal, neutral, informal, technical,
	// beginner, advanced.
	LanguageRegister string

	// DetailLevel is one of basic, intermediate, advanced, expert, master.
	DetailLevel string

	// GenerateFullContent switches the invocation to JSON mode and asks
	// for complete topic content instead of a brief outline.
	GenerateFullContent bool
}

// Document is the assembled learning path returned to clients. Modules
// carry whatever structure the model produced, with IDs injected; the
// shape inside is intentionally loose.
type Document struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	TotalDuration string `json:"totalDuration"`
	Difficulty    string `json:"difficulty"`
	CreatedAt     string `json:"createdAt"`
	Modules       []any  `json:"modules"`
}
