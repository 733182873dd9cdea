package usecase

import (
	"github.com/AlexanderModestov/thoughtreader/internal/meeting/domain"
	"github.com/AlexanderModestov/thoughtreader/internal/meeting/repository"
)

// MeetingUsecase manages stored meetings
type MeetingUsecase interface {
	// List returns the user's meetings, most recent first
	List(userID uint, limit int) ([]*domain.Meeting, error)

	// Get returns a meeting by ID, or (nil, nil) when missing
	Get(meetingID uint) (*domain.Meeting, error)

	// Delete removes a meeting. Returns false when it did not exist.
	Delete(meetingID uint) (bool, error)
}

type meetingUsecase struct {
	meetingRepo repository.MeetingRepository
}

// NewMeetingUsecase creates a new instance of meetingUsecase
func NewMeetingUsecase(meetingRepo repository.MeetingRepository) MeetingUsecase {
	return &meetingUsecase{meetingRepo: meetingRepo}
}

func (u *meetingUsecase) List(userID uint, limit int) ([]*domain.Meeting, error) {
	if limit <= 0 {
		limit = 20
	}
	return u.meetingRepo.FindByUser(userID, limit)
}

func (u *meetingUsecase) Get(meetingID uint) (*domain.Meeting, error) {
	return u.meetingRepo.FindByID(meetingID)
}

func (u *meetingUsecase) Delete(meetingID uint) (bool, error) {
	return u.meetingRepo.Delete(meetingID)
}
