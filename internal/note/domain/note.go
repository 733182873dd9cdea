package domain

import "time"

// Note is a free-form record. Auto-extraction always creates one as the
// anchor that extracted tasks and meetings link back to.
type Note struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	ProjectID *uint  `json:"project_id,omitempty" gorm:"index"`
	Title     string `json:"title,omitempty" gorm:"size:500"`
	Content   string `json:"content" gorm:"type:text;not null"`
	Tags      string `json:"tags"` // comma-separated

	// Provenance
	RawTranscript string `json:"raw_transcript,omitempty" gorm:"type:text"`
	VoiceFileID   string `json:"voice_file_id,omitempty" gorm:"size:200"`
	VoiceDuration int    `json:"voice_duration,omitempty"` // seconds

	CreatedAt time.Time `json:"created_at"`
}

// DisplayTitle returns the note title, falling back to a content prefix.
func (n *Note) DisplayTitle() string {
	if n.Title != "" {
		return n.Title
	}
	runes := []rune(n.Content)
	if len(runes) > 50 {
		return string(runes[:50]) + "..."
	}
	return n.Content
}
