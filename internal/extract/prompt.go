package extract

import (
	"fmt"
	"time"
)

const structurePrompt = `You are an assistant for structuring thoughts. Reply ONLY with valid JSON, no explanations or markdown.

Type: %s
Text: %s
Today: %s

If type = "tasks":
Extract ALL tasks from the text. Return JSON array:
[{"title": "task description", "priority": "low/medium/high/urgent", "due_date": "YYYY-MM-DD or null"}]

Date rules:
- "tomorrow" -> tomorrow's date
- "on Monday" -> next Monday
- "next week" -> Monday of next week
- Not specified -> null

Priority rules:
- "urgent", "asap", "burning" -> urgent
- "important", "priority" -> high
- Default -> medium
- "someday", "not urgent" -> low

If type = "meeting":
Structure as a meeting. Return JSON object:
{"title": "meeting title", "participants": ["name1", "name2"], "agenda": ["item1", "item2"], "goal": "meeting goal"}

If type = "note":
Clean text from filler words, extract tags. Return JSON object:
{"title": "short title or null", "content": "cleaned text", "tags": ["tag1", "tag2"]}

IMPORTANT: Return ONLY the JSON, no markdown code blocks, no explanations.`

const autoPrompt = `You are an assistant that processes voice transcriptions. Analyze the text and:

1. CLEAN: Remove filler words (um, uh, like, you know), false starts, and off-topic content
2. SUMMARIZE: Create a 1-2 sentence summary of the core content
3. EXTRACT TASKS: Find action items with deadlines/priorities
4. EXTRACT MEETINGS: Find scheduled events with participants/agendas

Text: %s
Today: %s

Reply ONLY with valid JSON:
{
  "summary": "concise 1-2 sentence summary",
  "cleaned_text": "cleaned version without filler words",
  "tasks": [
    {"title": "task description", "priority": "low/medium/high/urgent", "due_date": "YYYY-MM-DD or null"}
  ],
  "meetings": [
    {"title": "meeting title", "participants": ["name1"], "agenda": ["item1"], "goal": "goal or null"}
  ]
}

Priority rules:
- "urgent", "asap", "critical" -> urgent
- "important", "priority" -> high
- Default -> medium
- "someday", "not urgent" -> low

Date rules:
- "tomorrow" -> tomorrow's date
- "Monday" -> next Monday
- "next week" -> Monday of next week
- Not specified -> null

If no tasks found, return empty array. If no meetings found, return empty array.
Return ONLY the JSON, no markdown.`

// BuildPrompt renders the mode-specific prompt with the current date so the
// model can resolve relative dates into absolute ones.
func BuildPrompt(text string, mode Mode, today time.Time) string {
	day := today.Format("2006-01-02")
	if mode == ModeAuto {
		return fmt.Sprintf(autoPrompt, text, day)
	}
	return fmt.Sprintf(structurePrompt, string(mode), text, day)
}
