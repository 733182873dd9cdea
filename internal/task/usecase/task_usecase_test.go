package usecase

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/AlexanderModestov/thoughtreader/internal/task/domain"
	"github.com/AlexanderModestov/thoughtreader/internal/task/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTaskUsecase(t *testing.T) (TaskUsecase, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Task{}))

	return NewTaskUsecase(repository.NewGormTaskRepository(db)), db
}

func TestOverviewOrdersDueDatesFirst(t *testing.T) {
	uc, db := newTaskUsecase(t)

	soon := time.Now().AddDate(0, 0, 1)
	later := time.Now().AddDate(0, 0, 5)
	require.NoError(t, db.Create(&domain.Task{UserID: 1, Title: "No deadline"}).Error)
	require.NoError(t, db.Create(&domain.Task{UserID: 1, Title: "Later", DueDate: &later}).Error)
	require.NoError(t, db.Create(&domain.Task{UserID: 1, Title: "Soon", DueDate: &soon}).Error)

	pending, doneToday, err := uc.Overview(1)
	require.NoError(t, err)
	assert.Empty(t, doneToday)
	require.Len(t, pending, 3)
	assert.Equal(t, "Soon", pending[0].Title)
	assert.Equal(t, "Later", pending[1].Title)
	assert.Equal(t, "No deadline", pending[2].Title)
}

func TestOverviewSplitsDoneToday(t *testing.T) {
	uc, db := newTaskUsecase(t)

	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	require.NoError(t, db.Create(&domain.Task{UserID: 1, Title: "Open"}).Error)
	require.NoError(t, db.Create(&domain.Task{UserID: 1, Title: "Done today", IsDone: true, CompletedAt: &now}).Error)
	require.NoError(t, db.Create(&domain.Task{UserID: 1, Title: "Done yesterday", IsDone: true, CompletedAt: &yesterday}).Error)

	pending, doneToday, err := uc.Overview(1)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Open", pending[0].Title)
	require.Len(t, doneToday, 1)
	assert.Equal(t, "Done today", doneToday[0].Title)
}

func TestToggle(t *testing.T) {
	uc, db := newTaskUsecase(t)

	task := &domain.Task{UserID: 1, Title: "Flip me"}
	require.NoError(t, db.Create(task).Error)

	done, found, err := uc.Toggle(1, task.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, done)

	var stored domain.Task
	require.NoError(t, db.First(&stored, task.ID).Error)
	assert.True(t, stored.IsDone)
	require.NotNil(t, stored.CompletedAt)

	// toggling back clears the completion timestamp
	done, found, err = uc.Toggle(1, task.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, done)

	require.NoError(t, db.First(&stored, task.ID).Error)
	assert.False(t, stored.IsDone)
	assert.Nil(t, stored.CompletedAt)
}

func TestToggleMissingTask(t *testing.T) {
	uc, _ := newTaskUsecase(t)

	_, found, err := uc.Toggle(1, 9999)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestToggleOtherUsersTask(t *testing.T) {
	uc, db := newTaskUsecase(t)

	task := &domain.Task{UserID: 2, Title: "Not yours"}
	require.NoError(t, db.Create(task).Error)

	_, found, err := uc.Toggle(1, task.ID)
	require.NoError(t, err)
	assert.False(t, found)

	var stored domain.Task
	require.NoError(t, db.First(&stored, task.ID).Error)
	assert.False(t, stored.IsDone)
}
