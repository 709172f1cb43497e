package model

import (
	"time"
)

// EntityType names the kind of entity an activity entry refers to.
type EntityType string

const (
	EntityFolder  EntityType = "folder"
	EntityProject EntityType = "project"
	EntityList    EntityType = "list"
	EntityTask    EntityType = "task"
)

// ActivityAction names the mutation recorded by an activity entry.
type ActivityAction string

const (
	ActionCreated   ActivityAction = "created"
	ActionUpdated   ActivityAction = "updated"
	ActionDeleted   ActivityAction = "deleted"
	ActionMoved     ActivityAction = "moved"
	ActionCommented ActivityAction = "commented"
)

// ActivityEntry is a single record in the append-only activity log.
type ActivityEntry struct {
	ID          string            `json:"id"`
	EntityType  EntityType        `json:"entityType"`
	EntityID    string            `json:"entityId"`
	Action      ActivityAction    `json:"action"`
	Description string            `json:"description"`
	UserID      string            `json:"userId"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}
