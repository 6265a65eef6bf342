package task

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Status string
type Priority string

const StatusTodo Status = "todo"
const StatusProgress Status = "progress"
const StatusDone Status = "done"

const PriorityLow Priority = "low"
const PriorityMedium Priority = "medium"
const PriorityHigh Priority = "high"

func (s Status) Valid() bool {
	return s == StatusTodo || s == StatusProgress || s == StatusDone
}

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

// Clone returns an independent copy, safe to hand outside the store.
func (t *Task) Clone() *Task {
	clone := *t
	if t.DueDate != nil {
		due := *t.DueDate
		clone.DueDate = &due
	}
	return &clone
}

type Stats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Active     int `json:"active"`
}
