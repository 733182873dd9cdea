package usecase

import (
	"time"

	"github.com/AlexanderModestov/thoughtreader/internal/task/domain"
	"github.com/AlexanderModestov/thoughtreader/internal/task/repository"
)

// TaskUsecase manages stored tasks
type TaskUsecase interface {
	// Overview returns open tasks and tasks completed today
	Overview(userID uint) (pending []*domain.Task, doneToday []*domain.Task, err error)

	// Toggle flips a task's done flag and returns the new value.
	// The second result is false when the task does not exist or belongs
	// to another user.
	Toggle(userID, taskID uint) (bool, bool, error)

	// Get returns a task by ID, or (nil, nil) when missing
	Get(taskID uint) (*domain.Task, error)
}

type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{taskRepo: taskRepo}
}

func (u *taskUsecase) Overview(userID uint) ([]*domain.Task, []*domain.Task, error) {
	pending, err := u.taskRepo.FindPending(userID, 20)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	doneToday, err := u.taskRepo.FindCompletedSince(userID, startOfDay)
	if err != nil {
		return nil, nil, err
	}
	return pending, doneToday, nil
}

func (u *taskUsecase) Toggle(userID, taskID uint) (bool, bool, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return false, false, err
	}
	if task == nil || task.UserID != userID {
		return false, false, nil
	}
	task.IsDone = !task.IsDone
	if task.IsDone {
		now := time.Now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}
	if err := u.taskRepo.Update(task); err != nil {
		return false, false, err
	}
	return task.IsDone, true, nil
}

func (u *taskUsecase) Get(taskID uint) (*domain.Task, error) {
	return u.taskRepo.FindByID(taskID)
}
