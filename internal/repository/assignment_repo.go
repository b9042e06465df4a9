package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Bossax/creagy-project-tracker/internal/model"
	"github.com/Bossax/creagy-project-tracker/pkg/metrics"
)

type AssignmentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAssignmentRepository(db *pgxpool.Pool, logger *zap.Logger) *AssignmentRepository {
	return &AssignmentRepository{db: db, logger: logger}
}

// ListAssignmentsByProject returns every activity assignment of the
// project's tasks, in stable id order.
func (r *AssignmentRepository) ListAssignmentsByProject(ctx context.Context, projectID int64) ([]model.TaskActivityAssignment, error) {
	start := time.Now()
	query := `
        SELECT ta.id, ta.task_id, ta.month_id, ta.activity_type_id
        FROM task_activities ta
        JOIN tasks t ON t.id = ta.task_id
        WHERE t.project_id = $1
        ORDER BY ta.id
    `
	rows, err := r.db.Query(ctx, query, projectID)
	metrics.RecordDBQueryDuration("select", "task_activities", time.Since(start))
	if err != nil {
		r.logger.Error("Failed to query task assignments",
			zap.Error(err),
			zap.Int64("project_id", projectID),
		)
		return nil, err
	}
	defer rows.Close()

	assignments := []model.TaskActivityAssignment{}
	for rows.Next() {
		var a model.TaskActivityAssignment
		if err := rows.Scan(&a.ID, &a.TaskID, &a.MonthID, &a.ActivityTypeID); err != nil {
			r.logger.Error("Failed to scan assignment row",
				zap.Error(err),
				zap.Int64("project_id", projectID),
			)
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
