package repository

import (
	"gorm.io/gorm"

	"github.com/AlexanderModestov/thoughtreader/internal/project/domain"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *domain.Project) error

	// FindByUser returns all projects for a user, non-default projects
	// ordered by name, the default project last
	FindByUser(userID uint) ([]*domain.Project, error)

	// FindDefault returns the user's default "Inbox" project.
	// Returns (nil, nil) when it does not exist.
	FindDefault(userID uint) (*domain.Project, error)

	// WithTx returns a repository bound to the given transaction
	WithTx(tx *gorm.DB) ProjectRepository
}
