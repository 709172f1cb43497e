package model

import (
	"time"
)

// TaskComment is a comment on a task. AuthorName is a denormalized snapshot
// taken when the comment is written; it is never re-resolved.
type TaskComment struct {
	ID         string    `json:"id"`
	TaskID     string    `json:"taskId"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
