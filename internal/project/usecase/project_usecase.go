package usecase

import (
	"errors"
	"strings"

	"github.com/AlexanderModestov/thoughtreader/internal/project/domain"
	"github.com/AlexanderModestov/thoughtreader/internal/project/repository"
	taskrepo "github.com/AlexanderModestov/thoughtreader/internal/task/repository"
)

// ProjectInfo is a project together with its open-task count, for listings.
type ProjectInfo struct {
	*domain.Project
	OpenTasks int64 `json:"open_tasks"`
}

// ProjectUsecase manages projects and keyword routing
type ProjectUsecase interface {
	// Create creates a non-default project with an optional keyword list
	Create(userID uint, name, keywords string) (*domain.Project, error)

	// List returns the user's projects, default project last
	List(userID uint) ([]*domain.Project, error)

	// ListWithCounts returns the user's projects with open-task counts
	ListWithCounts(userID uint) ([]ProjectInfo, error)

	// Default returns the user's "Inbox" project
	Default(userID uint) (*domain.Project, error)
}

type projectUsecase struct {
	projectRepo repository.ProjectRepository
	taskRepo    taskrepo.TaskRepository
}

// NewProjectUsecase creates a new instance of projectUsecase
func NewProjectUsecase(projectRepo repository.ProjectRepository, taskRepo taskrepo.TaskRepository) ProjectUsecase {
	return &projectUsecase{projectRepo: projectRepo, taskRepo: taskRepo}
}

func (u *projectUsecase) Create(userID uint, name, keywords string) (*domain.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("project name is required")
	}
	project := &domain.Project{
		UserID:   userID,
		Name:     name,
		Keywords: strings.TrimSpace(keywords),
	}
	if err := u.projectRepo.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *projectUsecase) List(userID uint) ([]*domain.Project, error) {
	return u.projectRepo.FindByUser(userID)
}

func (u *projectUsecase) ListWithCounts(userID uint) ([]ProjectInfo, error) {
	projects, err := u.projectRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	infos := make([]ProjectInfo, 0, len(projects))
	for _, p := range projects {
		count, err := u.taskRepo.CountOpenByProject(p.ID)
		if err != nil {
			return nil, err
		}
		infos = append(infos, ProjectInfo{Project: p, OpenTasks: count})
	}
	return infos, nil
}

func (u *projectUsecase) Default(userID uint) (*domain.Project, error) {
	return u.projectRepo.FindDefault(userID)
}

// Route assigns text to a project by keyword match. Non-default projects are
// scanned in the given order (alphabetical per repository ordering, default
// last); the first project with any case-insensitive substring match wins.
// Returns nil when nothing matches so the caller falls back to the default
// project. Deliberately a flat first-match heuristic, not a ranking.
func Route(text string, projects []*domain.Project) *domain.Project {
	lower := strings.ToLower(text)

	for _, project := range projects {
		if project.IsDefault || project.Keywords == "" {
			continue
		}
		for _, keyword := range strings.Split(project.Keywords, ",") {
			keyword = strings.ToLower(strings.TrimSpace(keyword))
			if keyword != "" && strings.Contains(lower, keyword) {
				return project
			}
		}
	}
	return nil
}
