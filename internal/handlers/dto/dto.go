package dto

import (
	"bytes"
	"time"
)

type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateTaskRequest is a partial update: nil pointers mean "leave the field
// alone". DueDate needs NullableTime because an explicit null clears the due
// date while an absent field keeps it.
type UpdateTaskRequest struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Status      *string      `json:"status"`
	Priority    *string      `json:"priority"`
	DueDate     NullableTime `json:"dueDate"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// NullableTime distinguishes a JSON null from an absent field: Set is true
// only when the field appeared in the payload.
type NullableTime struct {
	Set   bool
	Value *time.Time
}

func (n *NullableTime) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}

	var t time.Time
	if err := t.UnmarshalJSON(data); err != nil {
		return err
	}
	n.Value = &t
	return nil
}
