package model

import (
	"time"
)

// TaskStatus represents the current board state of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusReview     TaskStatus = "review"
	StatusTesting    TaskStatus = "testing"
	StatusDone       TaskStatus = "done"
	StatusBlocked    TaskStatus = "blocked"
)

// IsTerminal returns true for the normal-flow terminal status.
func (s TaskStatus) IsTerminal() bool {
	return s == StatusDone
}

// TaskPriority represents task priority level.
type TaskPriority string

const (
	PriorityLowest  TaskPriority = "lowest"
	PriorityLow     TaskPriority = "low"
	PriorityMedium  TaskPriority = "medium"
	PriorityHigh    TaskPriority = "high"
	PriorityHighest TaskPriority = "highest"
)

// TaskType categorizes a task on the board.
type TaskType string

const (
	TypeTask    TaskType = "task"
	TypeStory   TaskType = "story"
	TypeBug     TaskType = "bug"
	TypeEpic    TaskType = "epic"
	TypeSubtask TaskType = "subtask"
)

// Defaults applied to tasks created without explicit values.
const (
	DefaultXPValue            = 25
	DefaultEstimatedPomodoros = 1
)

// Task is an individual work item. ListID names the owning task list;
// ProjectID always equals that list's project and is rewritten on moves.
// Position orders tasks within their list and follows the same sort-key
// semantics as TaskList.Position.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	ProjectID   string       `json:"projectId"`
	ListID      string       `json:"listId"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	Type        TaskType     `json:"type"`

	// Time tracking in hours. TimeSpent is monotonically non-decreasing
	// under normal operation.
	OriginalEstimate  float64 `json:"originalEstimate,omitempty"`
	TimeSpent         float64 `json:"timeSpent"`
	RemainingEstimate float64 `json:"remainingEstimate,omitempty"`

	DueDate     *time.Time `json:"dueDate,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	AssigneeID string   `json:"assigneeId,omitempty"`
	ReporterID string   `json:"reporterId,omitempty"`
	Labels     []string `json:"labels"`

	StoryPoints *int `json:"storyPoints,omitempty"`
	XPValue     int  `json:"xpValue"`

	EstimatedPomodoros int `json:"estimatedPomodoros"`
	ActualPomodoros    int `json:"actualPomodoros"`

	Position int `json:"position"`

	// BlockedFrom records the status a blocked task was in, so unblocking
	// can return it there.
	BlockedFrom *TaskStatus `json:"blockedFrom,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsOverdue returns true if the task is past its due date and not done.
func (t *Task) IsOverdue() bool {
	if t.DueDate == nil || t.Status == StatusDone {
		return false
	}
	return time.Now().After(*t.DueDate)
}

// HasLabel reports whether the task carries the given label.
func (t *Task) HasLabel(label string) bool {
	for _, l := range t.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// PriorityWeight returns a numeric weight for sorting by priority.
func (t *Task) PriorityWeight() int {
	switch t.Priority {
	case PriorityHighest:
		return 5
	case PriorityHigh:
		return 4
	case PriorityMedium:
		return 3
	case PriorityLow:
		return 2
	case PriorityLowest:
		return 1
	default:
		return 3
	}
}
