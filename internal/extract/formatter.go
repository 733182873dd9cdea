package extract

import (
	"fmt"
	"strings"

	taskdomain "github.com/AlexanderModestov/thoughtreader/internal/task/domain"
)

var priorityEmoji = map[taskdomain.Priority]string{
	taskdomain.PriorityUrgent: "🔴",
	taskdomain.PriorityHigh:   "🟠",
	taskdomain.PriorityMedium: "🟡",
	taskdomain.PriorityLow:    "🟢",
}

// FormatAutoResult renders an auto-extraction result for the user. Pure
// function, no failure modes; empty sections are omitted entirely.
func FormatAutoResult(result *AutoResult, compact bool) string {
	if compact {
		return formatCompact(result)
	}
	return formatDetailed(result)
}

func formatCompact(result *AutoResult) string {
	lines := []string{"📝 " + result.Summary}

	if len(result.Tasks) > 0 {
		lines = append(lines, "")
		for _, task := range result.Tasks {
			due := ""
			if task.DueDate != nil {
				due = fmt.Sprintf(" (%s)", task.DueDate.Format("2006-01-02"))
			}
			lines = append(lines, "✅ "+task.Title+due)
		}
	}

	if len(result.Meetings) > 0 {
		lines = append(lines, "")
		for _, meeting := range result.Meetings {
			with := ""
			if len(meeting.Participants) > 0 {
				with = " with " + strings.Join(meeting.Participants, ", ")
			}
			lines = append(lines, "📅 "+meeting.Title+with)
		}
	}

	return strings.Join(lines, "\n")
}

func formatDetailed(result *AutoResult) string {
	lines := []string{"📝 *Summary saved*", "", result.Summary}

	if len(result.Tasks) > 0 {
		lines = append(lines, "", "*Tasks extracted:*")
		for _, task := range result.Tasks {
			due := ""
			if task.DueDate != nil {
				due = " — due " + task.DueDate.Format("2006-01-02")
			}
			emoji := priorityEmoji[task.Priority]
			if emoji == "" {
				emoji = "🟡"
			}
			lines = append(lines, fmt.Sprintf("• %s %s%s", emoji, task.Title, due))
		}
	}

	if len(result.Meetings) > 0 {
		lines = append(lines, "", "*Meetings extracted:*")
		for _, meeting := range result.Meetings {
			lines = append(lines, "• "+meeting.Title)
			if len(meeting.Participants) > 0 {
				lines = append(lines, "  Participants: "+strings.Join(meeting.Participants, ", "))
			}
			if len(meeting.Agenda) > 0 {
				lines = append(lines, "  Agenda: "+strings.Join(meeting.Agenda, "; "))
			}
		}
	}

	return strings.Join(lines, "\n")
}
