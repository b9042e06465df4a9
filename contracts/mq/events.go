package mq

// Routing keys for tracker domain events.
const (
	ProjectCreatedKey = "project.created"
	TaskCreatedKey    = "task.created"
)

type ProjectCreatedEvent struct {
	ProjectID        int64  `json:"project_id"`
	Name             string `json:"name"`
	ClientID         int64  `json:"client_id"`
	ProjectManagerID int64  `json:"project_manager_id"`
	TeamID           int64  `json:"team_id"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
}

type TaskCreatedEvent struct {
	TaskID     int64   `json:"task_id"`
	ProjectID  int64   `json:"project_id"`
	Name       string  `json:"name"`
	AssigneeID int64   `json:"assignee_id"`
	Manday     float64 `json:"manday"`
	Status     string  `json:"status"`
	MonthIDs   []int64 `json:"month_ids"`
}
