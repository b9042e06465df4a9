package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Bossax/creagy-project-tracker/internal/model"
	"github.com/Bossax/creagy-project-tracker/pkg/metrics"
)

type TaskRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTaskRepository(db *pgxpool.Pool, logger *zap.Logger) *TaskRepository {
	return &TaskRepository{db: db, logger: logger}
}

// AssignmentPair is one (month, activity type) scheduling entry for a
// new task. The handler deduplicates pairs before calling Insert.
type AssignmentPair struct {
	MonthID        int64
	ActivityTypeID int64
}

// Insert creates a task together with its activity assignments in one
// transaction, so a task never exists without its schedule.
func (r *TaskRepository) Insert(ctx context.Context, t *model.Task, pairs []AssignmentPair) (int64, error) {
	r.logger.Debug("Inserting task",
		zap.Int64("project_id", t.ProjectID),
		zap.String("name", t.Name),
		zap.Int("assignments", len(pairs)),
	)

	start := time.Now()
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.Error("Failed to begin task transaction", zap.Error(err))
		return 0, err
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `
        INSERT INTO tasks (project_id, name, assignee_id, manday, budget, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `,
		t.ProjectID,
		t.Name,
		t.AssigneeID,
		t.Manday,
		t.Budget,
		t.Status,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to insert task",
			zap.Error(err),
			zap.Int64("project_id", t.ProjectID),
			zap.String("name", t.Name),
		)
		return 0, err
	}

	for _, pair := range pairs {
		if _, err := tx.Exec(ctx, `
            INSERT INTO task_activities (task_id, month_id, activity_type_id)
            VALUES ($1, $2, $3)
        `, id, pair.MonthID, pair.ActivityTypeID); err != nil {
			r.logger.Error("Failed to insert task assignment",
				zap.Error(err),
				zap.Int64("task_id", id),
				zap.Int64("month_id", pair.MonthID),
			)
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("Failed to commit task transaction", zap.Error(err))
		return 0, err
	}
	metrics.RecordDBQueryDuration("insert", "tasks", time.Since(start))

	r.logger.Info("Task inserted successfully",
		zap.Int64("task_id", id),
		zap.Int64("project_id", t.ProjectID),
		zap.Int("assignments", len(pairs)),
	)
	return id, nil
}

// ListTasks returns every task across all projects, for the portfolio
// report.
func (r *TaskRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	start := time.Now()
	query := `
        SELECT id, project_id, name, assignee_id, manday, budget, status, created_at
        FROM tasks
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	metrics.RecordDBQueryDuration("select", "tasks", time.Since(start))
	if err != nil {
		r.logger.Error("Failed to query all tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID,
			&t.ProjectID,
			&t.Name,
			&t.AssigneeID,
			&t.Manday,
			&t.Budget,
			&t.Status,
			&t.CreatedAt,
		); err != nil {
			r.logger.Error("Failed to scan task row", zap.Error(err))
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) ListTasksByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	start := time.Now()
	query := `
        SELECT id, project_id, name, assignee_id, manday, budget, status, created_at
        FROM tasks
        WHERE project_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, projectID)
	metrics.RecordDBQueryDuration("select", "tasks", time.Since(start))
	if err != nil {
		r.logger.Error("Failed to query tasks",
			zap.Error(err),
			zap.Int64("project_id", projectID),
		)
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID,
			&t.ProjectID,
			&t.Name,
			&t.AssigneeID,
			&t.Manday,
			&t.Budget,
			&t.Status,
			&t.CreatedAt,
		); err != nil {
			r.logger.Error("Failed to scan task row",
				zap.Error(err),
				zap.Int64("project_id", projectID),
			)
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
