package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/AlexanderModestov/thoughtreader/internal/task/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID.
	// Returns (nil, nil) when the task does not exist.
	FindByID(id uint) (*domain.Task, error)

	// FindPending returns open tasks for a user ordered by due date
	// (nulls last), then by recency
	FindPending(userID uint, limit int) ([]*domain.Task, error)

	// FindCompletedSince returns tasks completed no earlier than since
	FindCompletedSince(userID uint, since time.Time) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// CountOpenByProject counts open tasks assigned to a project
	CountOpenByProject(projectID uint) (int64, error)

	// Search finds tasks whose title contains the query, case-insensitive,
	// most recent first
	Search(userID uint, query string, limit int) ([]*domain.Task, error)

	// WithTx returns a repository bound to the given transaction
	WithTx(tx *gorm.DB) TaskRepository
}
