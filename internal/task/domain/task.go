package domain

import "time"

// Priority represents task priority level
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ParsePriority normalizes a raw priority string; anything outside the
// four-value set becomes medium.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return Priority(s)
	default:
		return PriorityMedium
	}
}

// Task is an action item extracted from a voice or text message.
type Task struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       uint       `json:"user_id" gorm:"index;not null"`
	ProjectID    *uint      `json:"project_id,omitempty" gorm:"index"`
	SourceNoteID *uint      `json:"source_note_id,omitempty" gorm:"index"` // set when auto-extracted from a note
	Title        string     `json:"title" gorm:"size:500;not null"`
	Priority     Priority   `json:"priority" gorm:"size:20;default:medium"`
	DueDate      *time.Time `json:"due_date,omitempty"` // calendar date, no time component
	IsDone       bool       `json:"is_done" gorm:"default:false"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"` // set when IsDone flips to true

	// Provenance
	RawText     string `json:"raw_text,omitempty" gorm:"type:text"`
	VoiceFileID string `json:"voice_file_id,omitempty" gorm:"size:200"`

	CreatedAt time.Time `json:"created_at"`
}
