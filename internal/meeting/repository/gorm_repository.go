package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/AlexanderModestov/thoughtreader/internal/meeting/domain"
)

// gormMeetingRepository implements MeetingRepository using GORM
type gormMeetingRepository struct {
	db *gorm.DB
}

// NewGormMeetingRepository creates a new GORM-based MeetingRepository
func NewGormMeetingRepository(db *gorm.DB) MeetingRepository {
	return &gormMeetingRepository{db: db}
}

func (r *gormMeetingRepository) Create(meeting *domain.Meeting) error {
	if meeting.CreatedAt.IsZero() {
		meeting.CreatedAt = time.Now()
	}
	return r.db.Create(meeting).Error
}

func (r *gormMeetingRepository) FindByID(id uint) (*domain.Meeting, error) {
	var meeting domain.Meeting
	err := r.db.First(&meeting, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}

func (r *gormMeetingRepository) FindByUser(userID uint, limit int) ([]*domain.Meeting, error) {
	var meetings []*domain.Meeting
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Find(&meetings).Error
	return meetings, err
}

func (r *gormMeetingRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&domain.Meeting{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *gormMeetingRepository) Search(userID uint, query string, limit int) ([]*domain.Meeting, error) {
	var meetings []*domain.Meeting
	pattern := "%" + query + "%"
	err := r.db.Where("user_id = ? AND (lower(title) LIKE lower(?) OR lower(agenda) LIKE lower(?))",
		userID, pattern, pattern).
		Order("created_at DESC").Limit(limit).Find(&meetings).Error
	return meetings, err
}

func (r *gormMeetingRepository) WithTx(tx *gorm.DB) MeetingRepository {
	return &gormMeetingRepository{db: tx}
}
