package usecase

import (
	"log"

	"gorm.io/gorm"

	projectdomain "github.com/AlexanderModestov/thoughtreader/internal/project/domain"
	projectrepo "github.com/AlexanderModestov/thoughtreader/internal/project/repository"
	"github.com/AlexanderModestov/thoughtreader/internal/user/domain"
	"github.com/AlexanderModestov/thoughtreader/internal/user/repository"
)

// UserUsecase manages lazy user registration
type UserUsecase interface {
	// EnsureRegistered finds or creates the user for a Telegram identity.
	// A new user gets their default "Inbox" project in the same
	// transaction, so every registered user always has exactly one.
	EnsureRegistered(telegramID int64, username string) (*domain.User, bool, error)

	// FindByTelegramID returns the user, or (nil, nil) if unregistered
	FindByTelegramID(telegramID int64) (*domain.User, error)
}

type userUsecase struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	projectRepo projectrepo.ProjectRepository
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(db *gorm.DB, userRepo repository.UserRepository, projectRepo projectrepo.ProjectRepository) UserUsecase {
	return &userUsecase{db: db, userRepo: userRepo, projectRepo: projectRepo}
}

func (u *userUsecase) EnsureRegistered(telegramID int64, username string) (*domain.User, bool, error) {
	existing, err := u.userRepo.FindByTelegramID(telegramID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	user := &domain.User{TelegramID: telegramID, Username: username}
	err = u.db.Transaction(func(tx *gorm.DB) error {
		if err := u.userRepo.WithTx(tx).Create(user); err != nil {
			return err
		}
		inbox := &projectdomain.Project{
			UserID:    user.ID,
			Name:      "Inbox",
			IsDefault: true,
		}
		return u.projectRepo.WithTx(tx).Create(inbox)
	})
	if err != nil {
		return nil, false, err
	}

	log.Printf("[UserUsecase] registered user telegram_id=%d", telegramID)
	return user, true, nil
}

func (u *userUsecase) FindByTelegramID(telegramID int64) (*domain.User, error) {
	return u.userRepo.FindByTelegramID(telegramID)
}
