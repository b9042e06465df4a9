package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Bossax/creagy-project-tracker/internal/model"
	"github.com/Bossax/creagy-project-tracker/pkg/metrics"
)

// ReferenceRepository reads the immutable catalogs: months, activity
// types, teams and clients.
type ReferenceRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewReferenceRepository(db *pgxpool.Pool, logger *zap.Logger) *ReferenceRepository {
	return &ReferenceRepository{db: db, logger: logger}
}

func (r *ReferenceRepository) ListMonths(ctx context.Context) ([]model.Month, error) {
	start := time.Now()
	rows, err := r.db.Query(ctx, `
        SELECT id, label, sort_key
        FROM months
        ORDER BY sort_key, id
    `)
	metrics.RecordDBQueryDuration("select", "months", time.Since(start))
	if err != nil {
		r.logger.Error("Failed to query months", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	months := []model.Month{}
	for rows.Next() {
		var m model.Month
		if err := rows.Scan(&m.ID, &m.Label, &m.SortKey); err != nil {
			r.logger.Error("Failed to scan month row", zap.Error(err))
			return nil, err
		}
		months = append(months, m)
	}
	return months, rows.Err()
}

func (r *ReferenceRepository) ListActivityTypes(ctx context.Context) ([]model.ActivityType, error) {
	start := time.Now()
	rows, err := r.db.Query(ctx, `
        SELECT id, type
        FROM activity_types
        ORDER BY type
    `)
	metrics.RecordDBQueryDuration("select", "activity_types", time.Since(start))
	if err != nil {
		r.logger.Error("Failed to query activity types", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	types := []model.ActivityType{}
	for rows.Next() {
		var a model.ActivityType
		if err := rows.Scan(&a.ID, &a.Type); err != nil {
			r.logger.Error("Failed to scan activity type row", zap.Error(err))
			return nil, err
		}
		types = append(types, a)
	}
	return types, rows.Err()
}

func (r *ReferenceRepository) ListTeams(ctx context.Context) ([]model.Team, error) {
	start := time.Now()
	rows, err := r.db.Query(ctx, `
        SELECT id, name
        FROM teams
        ORDER BY name
    `)
	metrics.RecordDBQueryDuration("select", "teams", time.Since(start))
	if err != nil {
		r.logger.Error("Failed to query teams", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	teams := []model.Team{}
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			r.logger.Error("Failed to scan team row", zap.Error(err))
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *ReferenceRepository) ListClients(ctx context.Context) ([]model.Client, error) {
	start := time.Now()
	rows, err := r.db.Query(ctx, `
        SELECT id, name
        FROM clients
        ORDER BY name
    `)
	metrics.RecordDBQueryDuration("select", "clients", time.Since(start))
	if err != nil {
		r.logger.Error("Failed to query clients", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	clients := []model.Client{}
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			r.logger.Error("Failed to scan client row", zap.Error(err))
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// CreateClient inserts a client entered ad hoc on the project form.
func (r *ReferenceRepository) CreateClient(ctx context.Context, name string) (int64, error) {
	start := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO clients (name)
        VALUES ($1)
        ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
        RETURNING id
    `, name).Scan(&id)
	metrics.RecordDBQueryDuration("insert", "clients", time.Since(start))

	if err != nil {
		r.logger.Error("Failed to insert client", zap.Error(err), zap.String("name", name))
		return 0, err
	}
	return id, nil
}
