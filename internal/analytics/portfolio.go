package analytics

import (
	"time"

	"github.com/Bossax/creagy-project-tracker/internal/model"
)

// PortfolioReport is the cross-project aggregate used by the reports
// page.
type PortfolioReport struct {
	ProjectCount     int            `json:"project_count"`
	ActiveProjects   int            `json:"active_projects"`
	TaskCount        int            `json:"task_count"`
	TaskStatusCounts map[string]int `json:"task_status_counts"`
	TotalManday      float64        `json:"total_manday"`
	TotalBudget      float64        `json:"total_budget"`
}

// BuildPortfolioReport aggregates across all projects. A project is
// active when the reference day falls inside its date range. Tasks
// with an empty status are counted as "Unknown" rather than dropped.
func BuildPortfolioReport(projects []model.Project, tasks []model.Task, now time.Time) PortfolioReport {
	report := PortfolioReport{
		TaskStatusCounts: map[string]int{},
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for _, p := range projects {
		report.ProjectCount++
		report.TotalBudget += p.Budget
		if !today.Before(p.StartDate) && !today.After(p.EndDate) {
			report.ActiveProjects++
		}
	}

	for _, t := range tasks {
		report.TaskCount++
		report.TotalManday += t.Manday
		report.TotalBudget += t.Budget

		status := t.Status
		if status == "" {
			status = "Unknown"
		}
		report.TaskStatusCounts[status]++
	}

	return report
}
