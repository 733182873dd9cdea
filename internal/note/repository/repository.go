package repository

import (
	"gorm.io/gorm"

	"github.com/AlexanderModestov/thoughtreader/internal/note/domain"
)

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	// Create creates a new note
	Create(note *domain.Note) error

	// FindByID finds a note by its ID.
	// Returns (nil, nil) when the note does not exist.
	FindByID(id uint) (*domain.Note, error)

	// FindByUser returns the user's notes, most recent first
	FindByUser(userID uint, limit int) ([]*domain.Note, error)

	// Delete deletes a note by ID. Returns false when nothing was deleted.
	Delete(id uint) (bool, error)

	// Search finds notes whose title or content contains the query,
	// case-insensitive, most recent first
	Search(userID uint, query string, limit int) ([]*domain.Note, error)

	// WithTx returns a repository bound to the given transaction
	WithTx(tx *gorm.DB) NoteRepository
}
