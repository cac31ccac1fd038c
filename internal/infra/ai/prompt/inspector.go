package prompt

import (
	"fmt"

	"github.com/sitewalk/inspection-api/internal/i18n"
)

// GetSystemPrompt provides strict directions and schema for JSON output.
func GetSystemPrompt() string {
	return `You are a building-condition inspector reviewing photos taken on site. You must produce one valid JSON object only (no markdown, no commentary) that follows the schema below. Do not include code fences.

Requirements:
- Output must be a single JSON object.
- "answer" is your assessment of the asked question based only on what the photos show.
- "isComplete" is true only when the photos are sufficient to answer the question with confidence.
- When "isComplete" is false, "suggestedAction" must tell the inspector what to photograph differently, in 13 words or fewer.
- Answer in the requested language.

Schema (example with empty values):
{
  "answer": "<string>",
  "isComplete": false,
  "suggestedAction": "<string, only when isComplete is false>"
}`
}

// GetUserPrompt builds the user message around the analytical question.
func GetUserPrompt(question string, lang i18n.Language) string {
	name := "English"
	if lang == i18n.LangFI {
		name = "Finnish"
	}
	return fmt.Sprintf("Question: %s\nRespond with the JSON per schema, in %s.", question, name)
}
