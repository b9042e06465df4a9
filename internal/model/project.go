package model

import "time"

type Project struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	ClientID         int64     `json:"client_id"`
	ProjectManagerID int64     `json:"project_manager_id"`
	TeamID           int64     `json:"team_id"`
	Budget           float64   `json:"budget"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	CreatedAt        time.Time `json:"created_at"`
}
