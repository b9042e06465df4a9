package analytics

import (
	"github.com/Bossax/creagy-project-tracker/internal/model"
)

// Summary holds the headline figures shown in the project summary box.
type Summary struct {
	DurationMonths int     `json:"duration_months"`
	TotalManday    float64 `json:"total_manday"`
	TotalBudget    float64 `json:"total_budget"`
}

// BuildSummary computes the project's aggregate statistics.
//
// DurationMonths is the inclusive whole-month span of the project
// dates. TotalManday sums every task's manday regardless of month
// assignments; a task with zero assigned months still counts here even
// though it never appears on the timeline or the monthly chart.
// TotalBudget is additive: project budget plus all task budgets.
func BuildSummary(project model.Project, tasks []model.Task) (Summary, error) {
	if project.EndDate.Before(project.StartDate) {
		return Summary{}, ErrInvalidRange
	}

	startYear, startMonth, _ := project.StartDate.Date()
	endYear, endMonth, _ := project.EndDate.Date()
	duration := (endYear-startYear)*12 + int(endMonth) - int(startMonth) + 1

	s := Summary{DurationMonths: duration}
	for _, task := range tasks {
		s.TotalManday += task.Manday
		s.TotalBudget += task.Budget
	}
	s.TotalBudget += project.Budget

	return s, nil
}
