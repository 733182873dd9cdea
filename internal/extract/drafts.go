package extract

import (
	"strings"
	"time"

	taskdomain "github.com/AlexanderModestov/thoughtreader/internal/task/domain"
)

// Mode selects the shape the extractor asks the model for.
type Mode string

const (
	ModeTasks   Mode = "tasks"
	ModeMeeting Mode = "meeting"
	ModeNote    Mode = "note"
	ModeAuto    Mode = "auto"
)

// TaskDraft is a validated task candidate awaiting confirmation.
type TaskDraft struct {
	Title    string              `json:"title"`
	Priority taskdomain.Priority `json:"priority"`
	DueDate  *time.Time          `json:"due_date,omitempty"`

	// Filled in by project routing before the draft is shown to the user.
	ProjectID   *uint  `json:"project_id,omitempty"`
	ProjectName string `json:"project_name,omitempty"`
}

// NewTaskDraft validates raw model output into a TaskDraft. A missing title
// is a hard error; an unrecognized priority normalizes to medium.
func NewTaskDraft(title, priority, dueDate string, today time.Time) (TaskDraft, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return TaskDraft{}, invalidPayload("task without title", title)
	}
	return TaskDraft{
		Title:    title,
		Priority: taskdomain.ParsePriority(priority),
		DueDate:  ResolveDueDate(dueDate, today),
	}, nil
}

// MeetingDraft is a validated meeting candidate awaiting confirmation.
type MeetingDraft struct {
	Title        string   `json:"title"`
	Participants []string `json:"participants"`
	Agenda       []string `json:"agenda"`
	Goal         string   `json:"goal,omitempty"`
}

// NewMeetingDraft validates raw model output into a MeetingDraft.
func NewMeetingDraft(title string, participants, agenda []string, goal string) (MeetingDraft, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return MeetingDraft{}, invalidPayload("meeting without title", title)
	}
	if participants == nil {
		participants = []string{}
	}
	if agenda == nil {
		agenda = []string{}
	}
	return MeetingDraft{
		Title:        title,
		Participants: participants,
		Agenda:       agenda,
		Goal:         strings.TrimSpace(goal),
	}, nil
}

// AgendaBlock renders the agenda as the stored bulleted form.
func (m MeetingDraft) AgendaBlock() string {
	lines := make([]string, 0, len(m.Agenda))
	for _, item := range m.Agenda {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}

// NoteDraft is a validated note. Notes persist without confirmation.
type NoteDraft struct {
	Title   string   `json:"title,omitempty"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// NewNoteDraft validates raw model output into a NoteDraft. Missing content
// falls back to the original input text.
func NewNoteDraft(title, content, fallback string, tags []string) NoteDraft {
	content = strings.TrimSpace(content)
	if content == "" {
		content = fallback
	}
	if tags == nil {
		tags = []string{}
	}
	return NoteDraft{
		Title:   strings.TrimSpace(title),
		Content: content,
		Tags:    tags,
	}
}

// AutoResult is the combined payload produced by auto-extraction.
type AutoResult struct {
	Summary     string         `json:"summary"`
	CleanedText string         `json:"cleaned_text"`
	Tasks       []TaskDraft    `json:"tasks"`
	Meetings    []MeetingDraft `json:"meetings"`
}

// Payload is the tagged result of an extraction; exactly one field matching
// Mode is set.
type Payload struct {
	Mode    Mode
	Tasks   []TaskDraft
	Meeting *MeetingDraft
	Note    *NoteDraft
	Auto    *AutoResult
}
