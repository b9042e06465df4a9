package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Bossax/creagy-project-tracker/internal/model"
	"github.com/Bossax/creagy-project-tracker/pkg/metrics"
)

type ProjectRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProjectRepository(db *pgxpool.Pool, logger *zap.Logger) *ProjectRepository {
	return &ProjectRepository{db: db, logger: logger}
}

func (r *ProjectRepository) Insert(ctx context.Context, p *model.Project) (int64, error) {
	r.logger.Debug("Inserting project",
		zap.String("name", p.Name),
		zap.Int64("project_manager_id", p.ProjectManagerID),
	)

	start := time.Now()
	query := `
        INSERT INTO projects (name, client_id, project_manager_id, team_id, budget, start_date, end_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	var id int64
	err := r.db.QueryRow(ctx, query,
		p.Name,
		p.ClientID,
		p.ProjectManagerID,
		p.TeamID,
		p.Budget,
		p.StartDate,
		p.EndDate,
	).Scan(&id)
	metrics.RecordDBQueryDuration("insert", "projects", time.Since(start))

	if err != nil {
		r.logger.Error("Failed to insert project", zap.Error(err), zap.String("name", p.Name))
		return 0, err
	}

	r.logger.Info("Project inserted successfully",
		zap.Int64("id", id),
		zap.String("name", p.Name),
	)
	return id, nil
}

func (r *ProjectRepository) GetProject(ctx context.Context, id int64) (model.Project, error) {
	start := time.Now()
	query := `
        SELECT id, name, client_id, project_manager_id, team_id, budget, start_date, end_date, created_at
        FROM projects
        WHERE id = $1
    `
	var p model.Project
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.ClientID,
		&p.ProjectManagerID,
		&p.TeamID,
		&p.Budget,
		&p.StartDate,
		&p.EndDate,
		&p.CreatedAt,
	)
	metrics.RecordDBQueryDuration("select", "projects", time.Since(start))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Project{}, fmt.Errorf("project %d: %w", id, ErrNotFound)
		}
		r.logger.Error("Failed to get project", zap.Error(err), zap.Int64("id", id))
		return model.Project{}, err
	}
	return p, nil
}

// ListProjects returns all projects ordered by start date, the order
// the dashboard renders them in.
func (r *ProjectRepository) ListProjects(ctx context.Context) ([]model.Project, error) {
	start := time.Now()
	query := `
        SELECT id, name, client_id, project_manager_id, team_id, budget, start_date, end_date, created_at
        FROM projects
        ORDER BY start_date, id
    `
	rows, err := r.db.Query(ctx, query)
	metrics.RecordDBQueryDuration("select", "projects", time.Since(start))
	if err != nil {
		r.logger.Error("Failed to query projects", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.ClientID,
			&p.ProjectManagerID,
			&p.TeamID,
			&p.Budget,
			&p.StartDate,
			&p.EndDate,
			&p.CreatedAt,
		); err != nil {
			r.logger.Error("Failed to scan project row", zap.Error(err))
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}
