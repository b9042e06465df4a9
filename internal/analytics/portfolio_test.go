package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/Bossax/creagy-project-tracker/internal/model"
)

func TestBuildPortfolioReport(t *testing.T) {
	t.Parallel()

	projects := []model.Project{
		{ID: 1, Budget: 10000, StartDate: date(2024, time.January, 1), EndDate: date(2024, time.June, 30)},
		{ID: 2, Budget: 5000, StartDate: date(2024, time.September, 1), EndDate: date(2024, time.December, 31)},
	}
	tasks := []model.Task{
		{ID: 1, ProjectID: 1, Manday: 10, Budget: 1000, Status: model.StatusInProgress},
		{ID: 2, ProjectID: 1, Manday: 5, Budget: 500, Status: model.StatusPlanned},
		{ID: 3, ProjectID: 2, Manday: 2.5, Budget: 0, Status: ""},
	}

	report := BuildPortfolioReport(projects, tasks, date(2024, time.March, 15))

	if report.ProjectCount != 2 {
		t.Errorf("ProjectCount = %d, want 2", report.ProjectCount)
	}
	if report.ActiveProjects != 1 {
		t.Errorf("ActiveProjects = %d, want 1 (only project 1 spans March)", report.ActiveProjects)
	}
	if report.TaskCount != 3 {
		t.Errorf("TaskCount = %d, want 3", report.TaskCount)
	}
	if math.Abs(report.TotalManday-17.5) > 1e-9 {
		t.Errorf("TotalManday = %v, want 17.5", report.TotalManday)
	}
	if math.Abs(report.TotalBudget-16500) > 1e-9 {
		t.Errorf("TotalBudget = %v, want 16500", report.TotalBudget)
	}
	if report.TaskStatusCounts[model.StatusInProgress] != 1 ||
		report.TaskStatusCounts[model.StatusPlanned] != 1 ||
		report.TaskStatusCounts["Unknown"] != 1 {
		t.Errorf("TaskStatusCounts = %v", report.TaskStatusCounts)
	}
}

func TestBuildPortfolioReport_empty(t *testing.T) {
	t.Parallel()

	report := BuildPortfolioReport(nil, nil, time.Now())
	if report.ProjectCount != 0 || report.TaskCount != 0 || report.TotalBudget != 0 {
		t.Errorf("empty portfolio report = %+v", report)
	}
}
