package bot

import (
	"fmt"
	"strings"

	meetingdomain "github.com/AlexanderModestov/thoughtreader/internal/meeting/domain"
	notedomain "github.com/AlexanderModestov/thoughtreader/internal/note/domain"
	projectusecase "github.com/AlexanderModestov/thoughtreader/internal/project/usecase"
	"github.com/AlexanderModestov/thoughtreader/internal/search"
	taskdomain "github.com/AlexanderModestov/thoughtreader/internal/task/domain"
)

const helpText = "*Hi! I'm Thought Assistant*\n\n" +
	"Send me a voice message or text:\n" +
	"* `/task` - create tasks\n" +
	"* `/meet` - create a meeting\n" +
	"* `/note` - save a note\n\n" +
	"Or just send a message - I'll structure it into a note with tasks and meetings.\n\n" +
	"/projects - your projects\n" +
	"/tasks - your tasks\n" +
	"/search - search"

func formatTasksOverview(pending, doneToday []*taskdomain.Task) string {
	lines := []string{"📋 *Your tasks*", ""}

	var urgent, other []*taskdomain.Task
	for _, t := range pending {
		if t.Priority == taskdomain.PriorityUrgent {
			urgent = append(urgent, t)
		} else {
			other = append(other, t)
		}
	}

	if len(urgent) > 0 {
		lines = append(lines, "*Urgent:*")
		for _, t := range urgent {
			lines = append(lines, "🔴 ☐ "+t.Title+dueSuffix(t))
		}
		lines = append(lines, "")
	}

	if len(other) > 0 {
		for _, t := range other {
			lines = append(lines, "☐ "+t.Title+dueSuffix(t))
		}
		lines = append(lines, "")
	}

	if len(doneToday) > 0 {
		for _, t := range doneToday {
			lines = append(lines, "~"+t.Title+"~")
		}
		lines = append(lines, "", fmt.Sprintf("✅ *Done today:* %d", len(doneToday)))
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func dueSuffix(t *taskdomain.Task) string {
	if t.DueDate == nil {
		return ""
	}
	return " — " + t.DueDate.Format("2006-01-02")
}

func formatMeetingsList(meetings []*meetingdomain.Meeting) string {
	lines := []string{"*Your meetings:*", ""}
	for _, m := range meetings {
		participants := m.Participants
		if participants == "" {
			participants = "Not specified"
		}
		lines = append(lines, "*"+m.Title+"*")
		lines = append(lines, "   Participants: "+participants)
		lines = append(lines, "   Created: "+m.CreatedAt.Format("02.01.2006"))
		lines = append(lines, "")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func formatNotesList(notes []*notedomain.Note) string {
	lines := []string{"*Your notes:*", ""}
	for _, n := range notes {
		lines = append(lines, "*"+n.DisplayTitle()+"*")
		lines = append(lines, "   "+n.CreatedAt.Format("2006-01-02"))
		lines = append(lines, "")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func formatProjectsList(projects []projectusecase.ProjectInfo) string {
	lines := []string{"*Your projects*", ""}
	for _, p := range projects {
		emoji := "📁"
		if p.IsDefault {
			emoji = "📥"
		}
		lines = append(lines, fmt.Sprintf("%s *%s* (%d tasks)", emoji, p.Name, p.OpenTasks))
		if p.Keywords != "" {
			lines = append(lines, "   Keywords: "+p.Keywords)
		}
		lines = append(lines, "")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

var searchKindEmoji = map[string]string{
	"task":    "✅",
	"note":    "📝",
	"meeting": "📋",
}

func formatSearchResults(query string, results []search.Result) string {
	lines := []string{fmt.Sprintf("*Found: %d*", len(results)), ""}
	for _, r := range results {
		emoji := searchKindEmoji[r.Kind]
		if emoji == "" {
			emoji = "📄"
		}
		status := ""
		if r.Kind == "task" && r.IsDone {
			status = " ✓"
		}
		lines = append(lines, fmt.Sprintf("%s %s%s (%s, %s)",
			emoji, r.Title, status, r.Kind, r.CreatedAt.Format("2006-01-02")))
	}
	lines = append(lines, "", "Send another query or use /search <query>")
	return strings.Join(lines, "\n")
}
