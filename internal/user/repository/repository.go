package repository

import (
	"gorm.io/gorm"

	"github.com/AlexanderModestov/thoughtreader/internal/user/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *domain.User) error

	// FindByTelegramID finds a user by their Telegram identity.
	// Returns (nil, nil) when the user is not registered.
	FindByTelegramID(telegramID int64) (*domain.User, error)

	// WithTx returns a repository bound to the given transaction
	WithTx(tx *gorm.DB) UserRepository
}
