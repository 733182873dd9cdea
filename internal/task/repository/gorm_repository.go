package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/AlexanderModestov/thoughtreader/internal/task/domain"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByID(id uint) (*domain.Task, error) {
	var task domain.Task
	err := r.db.First(&task, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindPending(userID uint, limit int) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("user_id = ? AND is_done = ?", userID, false).
		Order("CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC, created_at DESC").
		Limit(limit).Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) FindCompletedSince(userID uint, since time.Time) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("user_id = ? AND is_done = ? AND completed_at >= ?", userID, true, since).
		Order("completed_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	return r.db.Save(task).Error
}

func (r *gormTaskRepository) CountOpenByProject(projectID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Task{}).
		Where("project_id = ? AND is_done = ?", projectID, false).
		Count(&count).Error
	return count, err
}

func (r *gormTaskRepository) Search(userID uint, query string, limit int) ([]*domain.Task, error) {
	var tasks []*domain.Task
	pattern := "%" + query + "%"
	err := r.db.Where("user_id = ? AND lower(title) LIKE lower(?)", userID, pattern).
		Order("created_at DESC").Limit(limit).Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) WithTx(tx *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: tx}
}
