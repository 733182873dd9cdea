package extract

import (
	"testing"
	"time"

	taskdomain "github.com/AlexanderModestov/thoughtreader/internal/task/domain"

	"github.com/stretchr/testify/assert"
)

func TestFormatAutoResultDetailed(t *testing.T) {
	due := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	result := &AutoResult{
		Summary: "Renovation plans",
		Tasks: []TaskDraft{
			{Title: "Buy paint", Priority: taskdomain.PriorityHigh, DueDate: &due},
		},
		Meetings: []MeetingDraft{
			{Title: "Contractor meeting", Participants: []string{"Igor"}, Agenda: []string{"Budget"}},
		},
	}

	out := FormatAutoResult(result, false)
	assert.Contains(t, out, "📝 *Summary saved*")
	assert.Contains(t, out, "Renovation plans")
	assert.Contains(t, out, "*Tasks extracted:*")
	assert.Contains(t, out, "Buy paint")
	assert.Contains(t, out, "2024-06-14")
	assert.Contains(t, out, "*Meetings extracted:*")
	assert.Contains(t, out, "Participants: Igor")
	assert.Contains(t, out, "Agenda: Budget")
}

func TestFormatAutoResultOmitsEmptySections(t *testing.T) {
	result := &AutoResult{
		Summary:  "Just a thought",
		Tasks:    []TaskDraft{},
		Meetings: []MeetingDraft{},
	}

	out := FormatAutoResult(result, false)
	assert.Contains(t, out, "Just a thought")
	assert.NotContains(t, out, "Tasks extracted")
	assert.NotContains(t, out, "Meetings extracted")
}

func TestFormatAutoResultCompact(t *testing.T) {
	due := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)
	result := &AutoResult{
		Summary: "Call people",
		Tasks: []TaskDraft{
			{Title: "Call the plumber", Priority: taskdomain.PriorityMedium, DueDate: &due},
			{Title: "Call mom", Priority: taskdomain.PriorityLow},
		},
		Meetings: []MeetingDraft{
			{Title: "Team sync", Participants: []string{"Anna", "Boris"}},
		},
	}

	out := FormatAutoResult(result, true)
	assert.Contains(t, out, "📝 Call people")
	assert.Contains(t, out, "✅ Call the plumber (2024-06-11)")
	assert.Contains(t, out, "✅ Call mom")
	assert.Contains(t, out, "📅 Team sync with Anna, Boris")
	assert.NotContains(t, out, "*Summary saved*")
}
