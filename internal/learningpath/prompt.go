package learningpath

import (
	"fmt"
	"strings"
)

const pathSystemPrompt = `You are an expert educational content creator. Create a complete structured learning path from the document content.`

func buildPathUserMessage(req PathRequest) string {
	var b strings.Builder

	autoStructure := "NO - Use specified counts"
	if req.AutoStructure {
		autoStructure = "YES - Analyze and decide optimal structure"
	}
	fullContent := "NO - Generate structure only"
	contentField := "Brief description"
	if req.GenerateFullContent {
		fullContent = "YES - Generate complete content"
		contentField = "Complete detailed content with examples and explanations"
	}

	b.WriteString("CONFIGURATION:\n")
	b.WriteString(fmt.Sprintf("- Language: %s\n", req.Language))
	b.WriteString(fmt.Sprintf("- Difficulty: %s\n", req.Difficulty))
	b.WriteString(fmt.Sprintf("- Learning Approach: %s (theoretical/practical/balanced/project-based/fast)\n", req.LearningApproach))
	b.WriteString(fmt.Sprintf("- Language Register: %s (formal/neutral/informal/technical/beginner/advanced)\n", req.LanguageRegister))
	b.WriteString(fmt.Sprintf("- Detail Level: %s (basic/intermediate/advanced/expert/master)\n", req.DetailLevel))
	b.WriteString(fmt.Sprintf("- Auto Structure: %s\n", autoStructure))
	b.WriteString(fmt.Sprintf("- Generate Full Content: %s\n", fullContent))

	b.WriteString("\nSTRUCTURE REQUIREMENTS:\n")
	b.WriteString(structureInstructions(req))

	b.WriteString("\nCONTENT GENERATION:\n")
	b.WriteString(contentInstructions(req))

	b.WriteString("\nOUTPUT FORMAT:\n")
	b.WriteString(outputFormat(req.GenerateFullContent))
	b.WriteString("\n")

	b.WriteString(promptGuidelines)
	b.WriteString(fmt.Sprintf(promptStructureExample, contentField))
	b.WriteString(promptFormatNotes)

	b.WriteString("\nContent to analyze:\n")
	b.WriteString(req.Content)
	return b.String()
}

const promptGuidelines = `
LEARNING APPROACH GUIDELINES:
- theoretical: Focus on concepts, definitions, and explanations
- practical: Focus on exercises, examples, and hands-on activities
- balanced: Mix theory and practice equally
- project-based: Organize around building real projects
- fast: Essential concepts only, minimal examples

LANGUAGE REGISTER:
- formal: Academic and professional tone
- neutral: Clear and balanced
- informal: Conversational and friendly
- technical: Specialized terminology
- beginner: Simple explanations, avoid jargon
- advanced: Concise, assumes background knowledge

CRITICAL JSON FORMATTING RULES:
1. The "modules_json" field MUST be a VALID JSON array
2. ALL string values MUST escape special characters:
   - Use \n for newlines (not actual line breaks)
   - Use \" for quotes inside strings
   - Use \\ for backslashes
3. Do NOT include actual line breaks inside string values
4. Do NOT use single quotes - only double quotes
`

const promptStructureExample = `
EXACT structure required:
[
  {
    "title": "Module Title",
    "description": "Brief overview in a single line",
    "estimatedDuration": "2 hours",
    "sessions": [
      {
        "title": "Session Title",
        "description": "Brief overview in a single line",
        "estimatedDuration": "30 min",
        "topics": [
          {
            "title": "Topic Title",
            "content": "%s"
          }
        ],
        "flashcards": [
          {"question": "Question about ANY topic in this session?", "answer": "Answer without newlines"}
        ],
        "practice": [
          {"question": "Question about ANY topic in this session?", "options": ["Option A", "Option B", "Option C", "Option D"], "correctAnswer": 0}
        ]
      }
    ]
  }
]
`

const promptFormatNotes = `
IMPORTANT NOTES:
- Topics: Only contain title and content (theory with optional code examples)
- Flashcards & Practice: Are at SESSION level, covering ALL topics in that session
- Content can include code blocks using: ` + "```language\\ncode\\n```" + `
- Code in topics is OPTIONAL, only include if relevant to the subject

CONTENT FIELD FORMAT:
- If brief content: "Brief description in one line"
- If full content: "Paragraph 1.\n\nParagraph 2.\n\nCode: ` + "```python\\ncode here\\n```" + `"
- ALWAYS use \n for line breaks, NEVER actual newlines
`

func structureInstructions(req PathRequest) string {
	if req.AutoStructure {
		return `ANALYZE the content and DECIDE the optimal structure:
- Number of modules (1-5): Based on major topics
- Sessions per module (1-10): Based on subtopic complexity
- Topics per session (1-5): Based on concept grouping
- Flashcards per topic (2-10): Based on key concepts
- Practice questions per topic (2-10): Based on learning objectives

Your goal: Create the MOST EFFECTIVE structure for learning this content.
`
	}
	return fmt.Sprintf(`Generate EXACTLY:
- %d modules
- %d sessions per module
- %d topics per session
- %d flashcards per topic
- %d practice questions per topic
`, req.ModulesCount, req.SessionsPerModule, req.TopicsPerSession, req.FlashcardsPerTopic, req.QuestionsPerTopic)
}

func contentInstructions(req PathRequest) string {
	if req.GenerateFullContent {
		return fmt.Sprintf(`GENERATE COMPLETE CONTENT for each topic including:
1. Detailed theoretical explanation (adapt to %s approach)
2. Code examples with comments (OPTIONAL - only if relevant to the subject)
3. Step-by-step breakdowns
4. Common pitfalls and best practices
5. Real-world applications

Content depth: %s
- basic: High-level overview, simple examples
- intermediate: Balanced depth, practical examples
- advanced: In-depth analysis, complex scenarios
- expert: Comprehensive coverage, edge cases
- master: Research-level depth, cutting-edge topics

CRITICAL FOR CONTENT FIELD:
- Use \n for line breaks (NOT actual newlines)
- Escape all quotes: use \" inside strings
- Format code blocks as: `+"```language\\ncode\\n```"+` (ONLY if code is relevant)
- Keep content as a SINGLE JSON string value

FLASHCARDS & PRACTICE at SESSION level:
- Generate flashcards covering ALL topics in the session
- Generate practice questions covering ALL topics in the session
- Questions should test understanding of the entire session content
`, req.LearningApproach, req.DetailLevel)
	}
	return `Generate ESSENTIAL content only:
- Topic title and brief description (single line, no special characters)
- Key concepts list
- Estimated duration
- Code is OPTIONAL, only include if relevant

FLASHCARDS & PRACTICE at SESSION level:
- Generate flashcards covering ALL topics in the session
- Generate practice questions covering ALL topics in the session

Full content can be generated later per session.
`
}

func outputFormat(fullContent bool) string {
	if fullContent {
		return `Respond with a JSON object: {"title": "...", "description": "...", "modules": [...]}`
	}
	return `Respond with: {"title": "...", "description": "...", "modules_json": "[...]"}`
}
