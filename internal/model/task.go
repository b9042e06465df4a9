package model

import "time"

// Task statuses as entered by the project manager.
const (
	StatusPlanned    = "Planned"
	StatusInProgress = "InProgress"
	StatusCompleted  = "Completed"
)

type Task struct {
	ID         int64     `json:"id"`
	ProjectID  int64     `json:"project_id"`
	Name       string    `json:"name"`
	AssigneeID int64     `json:"assignee_id"`
	Manday     float64   `json:"manday"`
	Budget     float64   `json:"budget"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// TaskActivityAssignment links a task to a month and an activity type:
// "this task has activity of this type scheduled in this month".
type TaskActivityAssignment struct {
	ID             int64 `json:"id"`
	TaskID         int64 `json:"task_id"`
	MonthID        int64 `json:"month_id"`
	ActivityTypeID int64 `json:"activity_type_id"`
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}
