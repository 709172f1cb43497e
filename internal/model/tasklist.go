package model

import (
	"time"
)

// TaskList is a kanban column within a project, e.g. "Todo" or "Done".
// Position orders lists left-to-right among the lists of one project; it is a
// sort key, not a unique index, and ties are broken by creation time and id.
type TaskList struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ProjectID   string `json:"projectId"`
	Position    int    `json:"position"`
	Color       string `json:"color"`
	IsDefault   bool   `json:"isDefault"`

	// TaskCount caches the number of tasks in this list.
	TaskCount int `json:"taskCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
