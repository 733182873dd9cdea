package usecase

import (
	"github.com/AlexanderModestov/thoughtreader/internal/note/domain"
	"github.com/AlexanderModestov/thoughtreader/internal/note/repository"
)

// NoteUsecase manages stored notes
type NoteUsecase interface {
	// List returns the user's notes, most recent first
	List(userID uint, limit int) ([]*domain.Note, error)

	// Get returns a note by ID, or (nil, nil) when missing
	Get(noteID uint) (*domain.Note, error)

	// Delete removes a note. Returns false when it does not exist or
	// belongs to another user.
	Delete(userID, noteID uint) (bool, error)
}

type noteUsecase struct {
	noteRepo repository.NoteRepository
}

// NewNoteUsecase creates a new instance of noteUsecase
func NewNoteUsecase(noteRepo repository.NoteRepository) NoteUsecase {
	return &noteUsecase{noteRepo: noteRepo}
}

func (u *noteUsecase) List(userID uint, limit int) ([]*domain.Note, error) {
	if limit <= 0 {
		limit = 20
	}
	return u.noteRepo.FindByUser(userID, limit)
}

func (u *noteUsecase) Get(noteID uint) (*domain.Note, error) {
	return u.noteRepo.FindByID(noteID)
}

func (u *noteUsecase) Delete(userID, noteID uint) (bool, error) {
	note, err := u.noteRepo.FindByID(noteID)
	if err != nil {
		return false, err
	}
	if note == nil || note.UserID != userID {
		return false, nil
	}
	return u.noteRepo.Delete(noteID)
}
