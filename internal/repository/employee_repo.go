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

type EmployeeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewEmployeeRepository(db *pgxpool.Pool, logger *zap.Logger) *EmployeeRepository {
	return &EmployeeRepository{db: db, logger: logger}
}

func (r *EmployeeRepository) Insert(ctx context.Context, e *model.Employee) (int64, error) {
	r.logger.Debug("Inserting employee", zap.String("name", e.Name))

	start := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO employees (name, team_id)
        VALUES ($1, $2)
        RETURNING id
    `, e.Name, e.TeamID).Scan(&id)
	metrics.RecordDBQueryDuration("insert", "employees", time.Since(start))

	if err != nil {
		r.logger.Error("Failed to insert employee", zap.Error(err), zap.String("name", e.Name))
		return 0, err
	}

	r.logger.Info("Employee inserted successfully", zap.Int64("id", id), zap.String("name", e.Name))
	return id, nil
}

func (r *EmployeeRepository) GetEmployee(ctx context.Context, id int64) (model.Employee, error) {
	start := time.Now()
	var e model.Employee
	err := r.db.QueryRow(ctx, `
        SELECT id, name, team_id
        FROM employees
        WHERE id = $1
    `, id).Scan(&e.ID, &e.Name, &e.TeamID)
	metrics.RecordDBQueryDuration("select", "employees", time.Since(start))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Employee{}, fmt.Errorf("employee %d: %w", id, ErrNotFound)
		}
		r.logger.Error("Failed to get employee", zap.Error(err), zap.Int64("id", id))
		return model.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeRepository) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	start := time.Now()
	rows, err := r.db.Query(ctx, `
        SELECT id, name, team_id
        FROM employees
        ORDER BY name
    `)
	metrics.RecordDBQueryDuration("select", "employees", time.Since(start))
	if err != nil {
		r.logger.Error("Failed to query employees", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	employees := []model.Employee{}
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.TeamID); err != nil {
			r.logger.Error("Failed to scan employee row", zap.Error(err))
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
