package domain

import "time"

// Meeting is a structured meeting record built from an utterance.
type Meeting struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       uint       `json:"user_id" gorm:"index;not null"`
	SourceNoteID *uint      `json:"source_note_id,omitempty" gorm:"index"`
	Title        string     `json:"title" gorm:"size:500;not null"`
	Participants string     `json:"participants"`              // comma-separated
	Agenda       string     `json:"agenda" gorm:"type:text"`   // bulleted block, one "- item" per line
	Goal         string     `json:"goal,omitempty" gorm:"type:text"`
	ScheduledAt  *time.Time `json:"scheduled_at,omitempty"`

	// Provenance
	RawTranscript string `json:"raw_transcript,omitempty" gorm:"type:text"`
	VoiceFileID   string `json:"voice_file_id,omitempty" gorm:"size:200"`
	VoiceDuration int    `json:"voice_duration,omitempty"` // seconds

	CreatedAt time.Time `json:"created_at"`
}
