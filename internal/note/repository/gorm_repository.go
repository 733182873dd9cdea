package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/AlexanderModestov/thoughtreader/internal/note/domain"
)

// gormNoteRepository implements NoteRepository using GORM
type gormNoteRepository struct {
	db *gorm.DB
}

// NewGormNoteRepository creates a new GORM-based NoteRepository
func NewGormNoteRepository(db *gorm.DB) NoteRepository {
	return &gormNoteRepository{db: db}
}

func (r *gormNoteRepository) Create(note *domain.Note) error {
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	return r.db.Create(note).Error
}

func (r *gormNoteRepository) FindByID(id uint) (*domain.Note, error) {
	var note domain.Note
	err := r.db.First(&note, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (r *gormNoteRepository) FindByUser(userID uint, limit int) ([]*domain.Note, error) {
	var notes []*domain.Note
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Find(&notes).Error
	return notes, err
}

func (r *gormNoteRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&domain.Note{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *gormNoteRepository) Search(userID uint, query string, limit int) ([]*domain.Note, error) {
	var notes []*domain.Note
	pattern := "%" + query + "%"
	err := r.db.Where("user_id = ? AND (lower(title) LIKE lower(?) OR lower(content) LIKE lower(?))",
		userID, pattern, pattern).
		Order("created_at DESC").Limit(limit).Find(&notes).Error
	return notes, err
}

func (r *gormNoteRepository) WithTx(tx *gorm.DB) NoteRepository {
	return &gormNoteRepository{db: tx}
}
