package exercises

import (
	"fmt"
	"strings"
)

const exerciseSystemPrompt = `You are an expert educational assistant. Given a document content or topic, your task is to create well-structured exercises to help students learn the material.`

// kindInstructions holds the per-kind bullet lists appended after the
// shared preamble.
var kindInstructions = map[Type]string{
	TypeMultipleChoice: `- You must only generate multiple choice exercises.
- For each exercise, provide:
  - A clear question.
  - 3-5 answer choices (mark which one is correct).
  - A brief explanation for why that answer is correct.
  - If possible, the learning objective (what concept the question tests).`,
	TypeFillInTheBlank: `- You must only generate fill in the blank exercises.
- For each exercise, provide:
  - A clear question with a blank space.
  - The correct answer text.
  - A brief explanation for why that answer is correct.`,
	TypeTrueFalse: `- You must only generate true/false exercises.
- For each exercise, provide:
  - A clear statement.
  - Indicate if it's True or False.
  - A brief explanation for why that answer is correct.`,
	TypeShortAnswer: `- You must only generate short answer exercises.
- For each exercise, provide:
  - A clear question.
  - The correct answer text.
  - A brief explanation for why that answer is correct.`,
	TypeMatching: `- You must only generate matching exercises.
- For each exercise, provide:
  - A list of items in Column A.
  - A list of items in Column B.
  - The correct matches between Column A and Column B.
  - A brief explanation for why those matches are correct.`,
}

func buildExerciseUserMessage(req Request) string {
	var b strings.Builder

	b.WriteString("Instructions:\n")
	b.WriteString("- Read the provided topic or document content carefully.\n")
	b.WriteString(fmt.Sprintf("- Generate %d exercises related to the main ideas.\n", req.Count))
	b.WriteString(fmt.Sprintf("- Assign a difficulty level %s.\n", req.Difficulty))
	b.WriteString(kindInstructions[req.Type])

	b.WriteString("\n\nThis is the document content:\n")
	b.WriteString(req.Content)
	return b.String()
}
