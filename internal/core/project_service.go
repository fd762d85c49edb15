package core

import (
	"context"
	"errors"

	"timeclock.service/internal/core/model"
	"timeclock.service/internal/ports/repository"
)

// ErrProjectNameRequired rejects a project without a name.
var ErrProjectNameRequired = errors.New("project name required")

// ProjectService is plain CRUD plumbing over the repository; there is no
// derived logic on projects.
type ProjectService struct {
	repo repository.Repository
}

func NewProjectService(repo repository.Repository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) CreateProject(ctx context.Context, project model.Project) (model.Project, error) {
	if project.Name == "" {
		return model.Project{}, ErrProjectNameRequired
	}
	if project.State == "" {
		project.State = model.ProjectActive
	}
	return s.repo.CreateProject(ctx, project)
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (*model.Project, error) {
	return s.repo.GetProject(ctx, id)
}

func (s *ProjectService) ListProjects(ctx context.Context, userID string) ([]model.Project, error) {
	return s.repo.ListProjects(ctx, userID)
}

func (s *ProjectService) UpdateProject(ctx context.Context, project model.Project) error {
	if project.Name == "" {
		return ErrProjectNameRequired
	}
	return s.repo.UpdateProject(ctx, project)
}

func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	return s.repo.DeleteProject(ctx, id)
}
