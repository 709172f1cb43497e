package notify

import (
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/RJD02/life-quest/internal/model"
)

// Urgency levels for notifications
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification represents a desktop notification
type Notification struct {
	Title   string
	Body    string
	Urgency Urgency
	Timeout time.Duration
	Icon    string // Optional icon name
}

// Notifier handles sending desktop notifications
type Notifier struct {
	enabled bool
}

// NewNotifier creates a new notifier
func NewNotifier() *Notifier {
	return &Notifier{
		enabled: true,
	}
}

// SetEnabled enables or disables notifications
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// IsEnabled returns whether notifications are enabled
func (n *Notifier) IsEnabled() bool {
	return n.enabled
}

// Send sends a desktop notification using notify-send
func (n *Notifier) Send(notification Notification) error {
	if !n.enabled {
		return nil
	}

	args := []string{}

	switch notification.Urgency {
	case UrgencyLow:
		args = append(args, "-u", "low")
	case UrgencyCritical:
		args = append(args, "-u", "critical")
	default:
		args = append(args, "-u", "normal")
	}

	// Timeout is in milliseconds
	if notification.Timeout > 0 {
		args = append(args, "-t", strconv.Itoa(int(notification.Timeout.Milliseconds())))
	}

	if notification.Icon != "" {
		args = append(args, "-i", notification.Icon)
	}

	args = append(args, "-a", "lifequest")

	args = append(args, notification.Title)
	if notification.Body != "" {
		args = append(args, notification.Body)
	}

	cmd := exec.Command("notify-send", args...)
	return cmd.Run()
}

// SendSimple sends a simple notification with title and body
func (n *Notifier) SendSimple(title, body string) error {
	return n.Send(Notification{
		Title:   title,
		Body:    body,
		Urgency: UrgencyNormal,
		Timeout: 5 * time.Second,
	})
}

// SendTaskComplete announces a completed task and the XP it was worth.
func (n *Notifier) SendTaskComplete(taskTitle string, xp int) error {
	return n.Send(Notification{
		Title:   "Task Complete!",
		Body:    fmt.Sprintf("%s (+%d XP)", taskTitle, xp),
		Urgency: UrgencyNormal,
		Timeout: 10 * time.Second,
		Icon:    "object-select-symbolic",
	})
}

// SendSessionComplete announces a finished focus session.
func (n *Notifier) SendSessionComplete(taskTitle string) error {
	body := "Focus session complete"
	if taskTitle != "" {
		body = taskTitle
	}
	return n.Send(Notification{
		Title:   "Session Complete!",
		Body:    body,
		Urgency: UrgencyNormal,
		Timeout: 10 * time.Second,
		Icon:    "alarm-symbolic",
	})
}

// SendDueReminder sends a task due reminder
func (n *Notifier) SendDueReminder(taskTitle string, dueIn time.Duration) error {
	var body string
	if dueIn <= 0 {
		body = "Task is now overdue!"
	} else if dueIn < time.Hour {
		body = "Task due in less than an hour"
	} else {
		body = "Task due soon"
	}

	urgency := UrgencyNormal
	if dueIn <= 0 {
		urgency = UrgencyCritical
	}

	return n.Send(Notification{
		Title:   taskTitle,
		Body:    body,
		Urgency: urgency,
		Timeout: 15 * time.Second,
		Icon:    "emblem-important-symbolic",
	})
}

// ActivityHandler returns a callback for the board's activity feed that
// raises a notification whenever a task is completed. Errors from notify-send
// are dropped; notifications are best effort.
func (n *Notifier) ActivityHandler() func(model.ActivityEntry) {
	return func(e model.ActivityEntry) {
		if e.EntityType != model.EntityTask || e.Metadata["status"] != string(model.StatusDone) {
			return
		}
		xp, _ := strconv.Atoi(e.Metadata["xp"])
		title := e.Description
		if title == "" {
			title = "Task"
		}
		_ = n.SendTaskComplete(title, xp)
	}
}
