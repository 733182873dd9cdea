// Package search implements the cross-entity substring search: plain
// case-insensitive matching ordered by recency, not full-text ranking.
package search

import (
	"sort"
	"time"

	meetingrepo "github.com/AlexanderModestov/thoughtreader/internal/meeting/repository"
	noterepo "github.com/AlexanderModestov/thoughtreader/internal/note/repository"
	taskrepo "github.com/AlexanderModestov/thoughtreader/internal/task/repository"
)

const maxResults = 10

// Result is one search hit across tasks, notes, and meetings.
type Result struct {
	Kind      string    `json:"kind"` // "task", "note" or "meeting"
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	IsDone    bool      `json:"is_done,omitempty"` // tasks only
}

// Service queries all three record kinds and merges the hits.
type Service struct {
	taskRepo    taskrepo.TaskRepository
	noteRepo    noterepo.NoteRepository
	meetingRepo meetingrepo.MeetingRepository
}

// NewService creates a search Service
func NewService(taskRepo taskrepo.TaskRepository, noteRepo noterepo.NoteRepository, meetingRepo meetingrepo.MeetingRepository) *Service {
	return &Service{taskRepo: taskRepo, noteRepo: noteRepo, meetingRepo: meetingRepo}
}

// Search returns up to 10 hits for the query, newest first.
func (s *Service) Search(userID uint, query string) ([]Result, error) {
	var results []Result

	tasks, err := s.taskRepo.Search(userID, query, maxResults)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		results = append(results, Result{
			Kind:      "task",
			ID:        t.ID,
			Title:     t.Title,
			CreatedAt: t.CreatedAt,
			IsDone:    t.IsDone,
		})
	}

	notes, err := s.noteRepo.Search(userID, query, maxResults)
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		results = append(results, Result{
			Kind:      "note",
			ID:        n.ID,
			Title:     n.DisplayTitle(),
			CreatedAt: n.CreatedAt,
		})
	}

	meetings, err := s.meetingRepo.Search(userID, query, maxResults)
	if err != nil {
		return nil, err
	}
	for _, m := range meetings {
		results = append(results, Result{
			Kind:      "meeting",
			ID:        m.ID,
			Title:     m.Title,
			CreatedAt: m.CreatedAt,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}
