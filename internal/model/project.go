package model

import (
	"time"
)

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectCancelled ProjectStatus = "cancelled"
)

// ProjectPriority represents project priority level.
type ProjectPriority string

const (
	ProjectPriorityLow    ProjectPriority = "low"
	ProjectPriorityMedium ProjectPriority = "medium"
	ProjectPriorityHigh   ProjectPriority = "high"
)

// Project is a unit of work belonging to exactly one folder. Its tasks are
// organized into kanban task lists.
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	FolderID    string          `json:"folderId"`
	Status      ProjectStatus   `json:"status"`
	Priority    ProjectPriority `json:"priority"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	StartDate   *time.Time      `json:"startDate,omitempty"`

	// TaskCount and CompletedTaskCount cache the true counts derivable from
	// the task collection; every task mutation recomputes them.
	TaskCount          int `json:"taskCount"`
	CompletedTaskCount int `json:"completedTaskCount"`

	// XPEarned accumulates reward currency from completed tasks and focus
	// sessions attributed to this project.
	XPEarned int `json:"xpEarned"`

	LastModified time.Time `json:"lastModified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsClosed returns true if the project no longer accepts normal work.
func (p *Project) IsClosed() bool {
	return p.Status == ProjectCompleted || p.Status == ProjectCancelled
}
