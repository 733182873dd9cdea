package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/AlexanderModestov/thoughtreader/internal/project/domain"
)

// gormProjectRepository implements ProjectRepository using GORM
type gormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GORM-based ProjectRepository
func NewGormProjectRepository(db *gorm.DB) ProjectRepository {
	return &gormProjectRepository{db: db}
}

func (r *gormProjectRepository) Create(project *domain.Project) error {
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now()
	}
	return r.db.Create(project).Error
}

func (r *gormProjectRepository) FindByUser(userID uint) ([]*domain.Project, error) {
	var projects []*domain.Project
	err := r.db.Where("user_id = ?", userID).
		Order("is_default ASC, name ASC").
		Find(&projects).Error
	return projects, err
}

func (r *gormProjectRepository) FindDefault(userID uint) (*domain.Project, error) {
	var project domain.Project
	err := r.db.Where("user_id = ? AND is_default = ?", userID, true).First(&project).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *gormProjectRepository) WithTx(tx *gorm.DB) ProjectRepository {
	return &gormProjectRepository{db: tx}
}
