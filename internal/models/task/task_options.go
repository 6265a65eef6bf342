package task

import (
	"strings"
	"time"
)

// Option mutates a single field during an update. Only options built from
// fields actually present in the request are applied, so absent fields stay
// untouched.
type Option func(*Task)

func WithTitle(title string) Option {
	return func(task *Task) {
		task.Title = strings.TrimSpace(title)
	}
}

func WithDescription(description string) Option {
	return func(task *Task) {
		task.Description = strings.TrimSpace(description)
	}
}

func WithStatus(status Status) Option {
	return func(task *Task) {
		task.Status = status
	}
}

func WithPriority(priority Priority) Option {
	return func(task *Task) {
		task.Priority = priority
	}
}

// WithDueDate accepts nil to clear the due date.
func WithDueDate(dueDate *time.Time) Option {
	return func(task *Task) {
		task.DueDate = dueDate
	}
}
