package resolver

import (
	"fmt"
	"strings"

	"github.com/AlexanderModestov/thoughtreader/internal/extract"
	taskdomain "github.com/AlexanderModestov/thoughtreader/internal/task/domain"
)

var priorityEmoji = map[taskdomain.Priority]string{
	taskdomain.PriorityUrgent: "🔴",
	taskdomain.PriorityHigh:   "🟠",
	taskdomain.PriorityMedium: "🟡",
	taskdomain.PriorityLow:    "🟢",
}

func formatTaskDrafts(tasks []extract.TaskDraft) string {
	lines := []string{fmt.Sprintf("✅ *Found %d tasks:*", len(tasks)), ""}

	for i, task := range tasks {
		emoji := priorityEmoji[task.Priority]
		if emoji == "" {
			emoji = "🟡"
		}
		due := ""
		if task.DueDate != nil {
			due = " · 📅 " + task.DueDate.Format("2006-01-02")
		}
		lines = append(lines, fmt.Sprintf("%d. ☐ %s", i+1, task.Title))
		lines = append(lines, fmt.Sprintf("   📁 %s · %s%s", task.ProjectName, emoji, due))
		lines = append(lines, "")
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func formatMeetingDraft(meeting *extract.MeetingDraft) string {
	participants := strings.Join(meeting.Participants, ", ")
	if participants == "" {
		participants = "Not specified"
	}

	agenda := "Not specified"
	if len(meeting.Agenda) > 0 {
		items := make([]string, 0, len(meeting.Agenda))
		for i, item := range meeting.Agenda {
			items = append(items, fmt.Sprintf("%d. %s", i+1, item))
		}
		agenda = strings.Join(items, "\n")
	}

	goal := meeting.Goal
	if goal == "" {
		goal = "Not specified"
	}

	return fmt.Sprintf(
		"📋 *%s*\n\n👥 *Participants:* %s\n\n📝 *Agenda:*\n%s\n\n🎯 *Goal:* %s",
		meeting.Title, participants, agenda, goal,
	)
}

func formatSavedNote(note *extract.NoteDraft, projectName string) string {
	tags := "No tags"
	if len(note.Tags) > 0 {
		hashed := make([]string, 0, len(note.Tags))
		for _, tag := range note.Tags {
			hashed = append(hashed, "#"+tag)
		}
		tags = strings.Join(hashed, " ")
	}

	return fmt.Sprintf(
		"*Note saved*\n\n%s\n\nTags: %s\nProject: %s",
		note.Content, tags, projectName,
	)
}
