package repository

import (
	"gorm.io/gorm"

	"github.com/AlexanderModestov/thoughtreader/internal/meeting/domain"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting
	Create(meeting *domain.Meeting) error

	// FindByID finds a meeting by its ID.
	// Returns (nil, nil) when the meeting does not exist.
	FindByID(id uint) (*domain.Meeting, error)

	// FindByUser returns the user's meetings, most recent first
	FindByUser(userID uint, limit int) ([]*domain.Meeting, error)

	// Delete deletes a meeting by ID. Returns false when nothing was deleted.
	Delete(id uint) (bool, error)

	// Search finds meetings whose title or agenda contains the query,
	// case-insensitive, most recent first
	Search(userID uint, query string, limit int) ([]*domain.Meeting, error)

	// WithTx returns a repository bound to the given transaction
	WithTx(tx *gorm.DB) MeetingRepository
}
