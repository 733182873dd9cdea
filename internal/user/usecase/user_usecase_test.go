package usecase

import (
	"path/filepath"
	"testing"

	projectdomain "github.com/AlexanderModestov/thoughtreader/internal/project/domain"
	projectrepo "github.com/AlexanderModestov/thoughtreader/internal/project/repository"
	"github.com/AlexanderModestov/thoughtreader/internal/user/domain"
	"github.com/AlexanderModestov/thoughtreader/internal/user/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newUserUsecase(t *testing.T) (UserUsecase, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &projectdomain.Project{}))

	uc := NewUserUsecase(db, repository.NewGormUserRepository(db), projectrepo.NewGormProjectRepository(db))
	return uc, db
}

func TestEnsureRegisteredCreatesUserWithInbox(t *testing.T) {
	uc, db := newUserUsecase(t)

	user, created, err := uc.EnsureRegistered(42, "tester")
	require.NoError(t, err)
	assert.True(t, created)
	require.NotZero(t, user.ID)
	assert.Equal(t, int64(42), user.TelegramID)

	var inbox projectdomain.Project
	require.NoError(t, db.Where("user_id = ? AND is_default = ?", user.ID, true).First(&inbox).Error)
	assert.Equal(t, "Inbox", inbox.Name)
}

func TestEnsureRegisteredIdempotent(t *testing.T) {
	uc, db := newUserUsecase(t)

	first, created, err := uc.EnsureRegistered(42, "tester")
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := uc.EnsureRegistered(42, "tester")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	// still exactly one default project
	var count int64
	require.NoError(t, db.Model(&projectdomain.Project{}).
		Where("user_id = ? AND is_default = ?", first.ID, true).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFindByTelegramIDUnregistered(t *testing.T) {
	uc, _ := newUserUsecase(t)

	user, err := uc.FindByTelegramID(777)
	require.NoError(t, err)
	assert.Nil(t, user)
}
