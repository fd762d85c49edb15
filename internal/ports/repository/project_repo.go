package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"timeclock.service/internal/core/model"
)

// CreateProject inserts a project and returns it with its assigned id.
func (r *TimeRecordRepository) CreateProject(ctx context.Context, project model.Project) (model.Project, error) {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}

	query := `INSERT INTO projects (id, user_id, name, description, state)
              VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.DB.ExecContext(ctx, query, project.ID, project.UserID, project.Name, project.Description, project.State); err != nil {
		return model.Project{}, fmt.Errorf("%w: insert project: %v", ErrStoreUnavailable, err)
	}
	return project, nil
}

// GetProject fetches one project by id.
func (r *TimeRecordRepository) GetProject(ctx context.Context, id string) (*model.Project, error) {
	query := `SELECT id, user_id, name, description, state FROM projects WHERE id = $1`

	p := &model.Project{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.State)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read project: %v", ErrStoreUnavailable, err)
	}
	return p, nil
}

// ListProjects returns all projects of a user.
func (r *TimeRecordRepository) ListProjects(ctx context.Context, userID string) ([]model.Project, error) {
	query := `SELECT id, user_id, name, description, state FROM projects WHERE user_id = $1 ORDER BY name ASC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list projects: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	projects := make([]model.Project, 0)
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.State); err != nil {
			return nil, fmt.Errorf("%w: scan project: %v", ErrStoreUnavailable, err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate projects: %v", ErrStoreUnavailable, err)
	}
	return projects, nil
}

// UpdateProject overwrites the mutable fields of a project.
func (r *TimeRecordRepository) UpdateProject(ctx context.Context, project model.Project) error {
	query := `UPDATE projects SET name = $1, description = $2, state = $3 WHERE id = $4`

	res, err := r.DB.ExecContext(ctx, query, project.Name, project.Description, project.State, project.ID)
	if err != nil {
		return fmt.Errorf("%w: update project: %v", ErrStoreUnavailable, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProject removes a project by id.
func (r *TimeRecordRepository) DeleteProject(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: delete project: %v", ErrStoreUnavailable, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
