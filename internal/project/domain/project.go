package domain

import "time"

// Project is a named bucket for tasks and notes. Every user owns exactly
// one default project ("Inbox") created together with the user row.
type Project struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"size:200;not null"`
	Keywords  string    `json:"keywords"` // comma-separated
	IsDefault bool      `json:"is_default" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}
