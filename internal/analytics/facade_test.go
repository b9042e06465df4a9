package analytics

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Bossax/creagy-project-tracker/internal/model"
)

type fakeStore struct {
	project     model.Project
	projectErr  error
	tasks       []model.Task
	assignments []model.TaskActivityAssignment
	months      []model.Month
}

func (f *fakeStore) GetProject(ctx context.Context, id int64) (model.Project, error) {
	if f.projectErr != nil {
		return model.Project{}, f.projectErr
	}
	return f.project, nil
}

func (f *fakeStore) ListTasksByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	return f.tasks, nil
}

func (f *fakeStore) ListAssignmentsByProject(ctx context.Context, projectID int64) ([]model.TaskActivityAssignment, error) {
	return f.assignments, nil
}

func (f *fakeStore) ListMonths(ctx context.Context) ([]model.Month, error) {
	return f.months, nil
}

func newTestService(f *fakeStore) *Service {
	return NewService(f, f, f, f, zap.NewNop())
}

func TestProjectAnalytics_emptyProject(t *testing.T) {
	t.Parallel()

	// Project with no tasks: one Gantt entry, empty series, summary
	// reduces to the project's own figures.
	f := &fakeStore{
		project: model.Project{
			ID:               1,
			Name:             "Brand refresh",
			ProjectManagerID: 7,
			Budget:           20000,
			StartDate:        date(2024, time.January, 1),
			EndDate:          date(2024, time.June, 30),
		},
		months: testMonths(),
	}

	got, err := newTestService(f).ProjectAnalytics(context.Background(), 1, 7)
	if err != nil {
		t.Fatal(err)
	}

	if len(got.Gantt) != 1 || got.Gantt[0].Kind != KindProject {
		t.Errorf("Gantt = %+v, want single project entry", got.Gantt)
	}
	if len(got.MandayChart) != 0 {
		t.Errorf("MandayChart = %+v, want empty series", got.MandayChart)
	}
	if got.Summary.DurationMonths != 6 || got.Summary.TotalManday != 0 || got.Summary.TotalBudget != 20000 {
		t.Errorf("Summary = %+v", got.Summary)
	}
	if !got.CanManageTasks {
		t.Error("requester is the project manager, CanManageTasks should be true")
	}
}

func TestProjectAnalytics_singleTaskDistribution(t *testing.T) {
	t.Parallel()

	f := &fakeStore{
		project: model.Project{
			ID:               1,
			ProjectManagerID: 7,
			StartDate:        date(2024, time.January, 1),
			EndDate:          date(2024, time.March, 31),
		},
		tasks:  []model.Task{{ID: 10, ProjectID: 1, Name: "Build", Manday: 10}},
		months: testMonths(),
		assignments: []model.TaskActivityAssignment{
			// Two activity types in January: the month still counts once.
			{ID: 1, TaskID: 10, MonthID: 1, ActivityTypeID: 1},
			{ID: 2, TaskID: 10, MonthID: 1, ActivityTypeID: 2},
			{ID: 3, TaskID: 10, MonthID: 2, ActivityTypeID: 1},
			{ID: 4, TaskID: 10, MonthID: 3, ActivityTypeID: 1},
		},
	}

	got, err := newTestService(f).ProjectAnalytics(context.Background(), 1, 99)
	if err != nil {
		t.Fatal(err)
	}

	if got.CanManageTasks {
		t.Error("requester 99 is not the manager")
	}

	wantLabels := []string{"2024-01", "2024-02", "2024-03"}
	if len(got.MandayChart) != len(wantLabels) {
		t.Fatalf("chart has %d points, want %d", len(got.MandayChart), len(wantLabels))
	}
	var sum float64
	for i, p := range got.MandayChart {
		if p.MonthLabel != wantLabels[i] {
			t.Errorf("point %d label = %q, want %q", i, p.MonthLabel, wantLabels[i])
		}
		if math.Abs(p.TotalShare-10.0/3.0) > 1e-9 {
			t.Errorf("point %d share = %v, want %v", i, p.TotalShare, 10.0/3.0)
		}
		sum += p.TotalShare
	}
	if math.Abs(sum-10) > 1e-9 {
		t.Errorf("series sums to %v, want 10", sum)
	}

	// Gantt task entry spans Jan 1 through the last day of March.
	if got.Gantt[1].Start != "2024-01-01" || got.Gantt[1].End != "2024-03-31" {
		t.Errorf("task window = [%s, %s]", got.Gantt[1].Start, got.Gantt[1].End)
	}
}

func TestProjectAnalytics_mergesTasksPerMonth(t *testing.T) {
	t.Parallel()

	f := &fakeStore{
		project: model.Project{
			ID:               1,
			ProjectManagerID: 7,
			StartDate:        date(2024, time.January, 1),
			EndDate:          date(2024, time.March, 31),
		},
		tasks: []model.Task{
			{ID: 10, ProjectID: 1, Name: "Design", Manday: 5},
			{ID: 11, ProjectID: 1, Name: "Build", Manday: 7},
		},
		months: testMonths(),
		assignments: []model.TaskActivityAssignment{
			{ID: 1, TaskID: 10, MonthID: 2, ActivityTypeID: 1},
			{ID: 2, TaskID: 11, MonthID: 2, ActivityTypeID: 2},
		},
	}

	got, err := newTestService(f).ProjectAnalytics(context.Background(), 1, 7)
	if err != nil {
		t.Fatal(err)
	}

	if len(got.MandayChart) != 1 {
		t.Fatalf("chart = %+v, want one February point", got.MandayChart)
	}
	if got.MandayChart[0].MonthLabel != "2024-02" || math.Abs(got.MandayChart[0].TotalShare-12) > 1e-9 {
		t.Errorf("February total = %+v, want 12", got.MandayChart[0])
	}
}

func TestProjectAnalytics_propagatesStoreError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("project not found")
	f := &fakeStore{projectErr: wantErr, months: testMonths()}

	_, err := newTestService(f).ProjectAnalytics(context.Background(), 1, 7)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected store error to surface unmodified, got %v", err)
	}
}

func TestDerive_invalidRangeAborts(t *testing.T) {
	t.Parallel()

	project := model.Project{
		ID:        1,
		StartDate: date(2024, time.June, 1),
		EndDate:   date(2024, time.January, 1),
	}

	_, err := Derive(NewMonthRegistry(testMonths()), project, nil, nil, 0, nil)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestDerive_skipsForeignAssignments(t *testing.T) {
	t.Parallel()

	project := model.Project{
		ID:               1,
		ProjectManagerID: 7,
		StartDate:        date(2024, time.January, 1),
		EndDate:          date(2024, time.March, 31),
	}
	tasks := []model.Task{{ID: 10, ProjectID: 1, Name: "Design", Manday: 6}}
	assignments := []model.TaskActivityAssignment{
		{ID: 1, TaskID: 10, MonthID: 1, ActivityTypeID: 1},
		// Row for a task that is not part of this project.
		{ID: 2, TaskID: 999, MonthID: 2, ActivityTypeID: 1},
	}

	got, err := Derive(NewMonthRegistry(testMonths()), project, tasks, assignments, 7, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.MandayChart) != 1 || got.MandayChart[0].MonthLabel != "2024-01" {
		t.Errorf("foreign assignment leaked into chart: %+v", got.MandayChart)
	}
	if math.Abs(got.MandayChart[0].TotalShare-6) > 1e-9 {
		t.Errorf("January total = %v, want 6", got.MandayChart[0].TotalShare)
	}
}
