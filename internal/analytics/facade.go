package analytics

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Bossax/creagy-project-tracker/internal/model"
	"github.com/Bossax/creagy-project-tracker/pkg/metrics"
)

// Store interfaces are satisfied by the pgx repositories. The facade
// only ever reads.
type ProjectStore interface {
	GetProject(ctx context.Context, id int64) (model.Project, error)
}

type TaskStore interface {
	ListTasksByProject(ctx context.Context, projectID int64) ([]model.Task, error)
}

type AssignmentStore interface {
	ListAssignmentsByProject(ctx context.Context, projectID int64) ([]model.TaskActivityAssignment, error)
}

type MonthStore interface {
	ListMonths(ctx context.Context) ([]model.Month, error)
}

// MandayPoint is one bar of the monthly manday chart.
type MandayPoint struct {
	MonthLabel string  `json:"month_label"`
	TotalShare float64 `json:"total_share"`
}

// ProjectAnalytics is the complete payload the presentation layer
// fetches for one project. ManagerID never crosses the HTTP boundary;
// it lets the caching layer recompute CanManageTasks per requester.
type ProjectAnalytics struct {
	Gantt          []GanttEntry  `json:"gantt"`
	MandayChart    []MandayPoint `json:"manday_chart"`
	Summary        Summary       `json:"summary"`
	CanManageTasks bool          `json:"can_manage_tasks"`
	ManagerID      int64         `json:"-"`
}

type Service struct {
	projects    ProjectStore
	tasks       TaskStore
	assignments AssignmentStore
	months      MonthStore
	logger      *zap.Logger
}

func NewService(projects ProjectStore, tasks TaskStore, assignments AssignmentStore, months MonthStore, logger *zap.Logger) *Service {
	return &Service{
		projects:    projects,
		tasks:       tasks,
		assignments: assignments,
		months:      months,
		logger:      logger,
	}
}

// ProjectAnalytics derives all three views for a project. The four
// reads are independent and fetched concurrently; any failed read or
// derivation aborts the whole call, never a partial payload.
func (s *Service) ProjectAnalytics(ctx context.Context, projectID, requesterID int64) (ProjectAnalytics, error) {
	var (
		project     model.Project
		tasks       []model.Task
		assignments []model.TaskActivityAssignment
		months      []model.Month
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		project, err = s.projects.GetProject(gctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.tasks.ListTasksByProject(gctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		assignments, err = s.assignments.ListAssignmentsByProject(gctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		months, err = s.months.ListMonths(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return ProjectAnalytics{}, err
	}

	start := time.Now()
	payload, err := Derive(NewMonthRegistry(months), project, tasks, assignments, requesterID, s.logger)
	if err != nil {
		return ProjectAnalytics{}, err
	}
	metrics.RecordAnalyticsBuild(time.Since(start))

	return payload, nil
}

// Derive is the pure composition of the three engines over in-memory
// inputs. Split out from ProjectAnalytics so it can be exercised
// without a store.
func Derive(reg *MonthRegistry, project model.Project, tasks []model.Task, assignments []model.TaskActivityAssignment, requesterID int64, logger *zap.Logger) (ProjectAnalytics, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if dups := reg.DuplicateSortKeys(); len(dups) > 0 {
		logger.Warn("Month catalog has duplicate sort keys; ordering by lower id",
			zap.Int64("project_id", project.ID),
			zap.Ints("sort_keys", dups),
		)
	}

	taskIDs := make(map[int64]struct{}, len(tasks))
	for _, t := range tasks {
		taskIDs[t.ID] = struct{}{}
	}

	// Group rows by task; rows referencing a task outside the project
	// reflect upstream data quality, so they are reported and skipped
	// rather than aborting the derivation.
	byTask := make(map[int64][]model.TaskActivityAssignment, len(tasks))
	for _, a := range assignments {
		if _, ok := taskIDs[a.TaskID]; !ok {
			logger.Warn("Assignment references a task outside the project; skipping",
				zap.Int64("project_id", project.ID),
				zap.Int64("assignment_id", a.ID),
				zap.Int64("task_id", a.TaskID),
			)
			continue
		}
		byTask[a.TaskID] = append(byTask[a.TaskID], a)
	}

	gantt, err := BuildTimeline(reg, project, tasks, byTask)
	if err != nil {
		return ProjectAnalytics{}, err
	}

	chart, err := buildMandayChart(reg, tasks, byTask)
	if err != nil {
		return ProjectAnalytics{}, err
	}

	summary, err := BuildSummary(project, tasks)
	if err != nil {
		return ProjectAnalytics{}, err
	}

	return ProjectAnalytics{
		Gantt:          gantt,
		MandayChart:    chart,
		Summary:        summary,
		CanManageTasks: requesterID == project.ProjectManagerID,
		ManagerID:      project.ProjectManagerID,
	}, nil
}

// buildMandayChart runs the distributor per task and merges the shares
// into the project-level monthly series, ordered by the catalog's
// SortKey.
func buildMandayChart(reg *MonthRegistry, tasks []model.Task, byTask map[int64][]model.TaskActivityAssignment) ([]MandayPoint, error) {
	totals := make(map[int64]float64)
	for _, task := range tasks {
		rows := byTask[task.ID]
		if len(rows) == 0 {
			continue
		}
		monthIDs := make([]int64, 0, len(rows))
		for _, row := range rows {
			if _, err := reg.Lookup(row.MonthID); err != nil {
				return nil, fmt.Errorf("task %d assignment %d: %w", task.ID, row.ID, err)
			}
			monthIDs = append(monthIDs, row.MonthID)
		}
		for id, share := range DistributeManday(task.Manday, monthIDs) {
			totals[id] += share
		}
	}

	points := make([]MandayPoint, 0, len(totals))
	for _, m := range reg.Ordered() {
		if total, ok := totals[m.ID]; ok {
			points = append(points, MandayPoint{MonthLabel: m.Label, TotalShare: total})
		}
	}
	return points, nil
}
