package handlers

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
	"unicode/utf8"

	"taskboard/internal/handlers/dto"
	"taskboard/internal/models/task"
)

const maxTitleLen = 100
const maxDescriptionLen = 500

func checkContentType(r *http.Request, target string) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == target
}

func validateTitle(title string, required bool) []string {
	var problems []string
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		if required {
			problems = append(problems, "title is required")
		} else {
			problems = append(problems, "title must not be empty")
		}
		return problems
	}
	if utf8.RuneCountInString(trimmed) > maxTitleLen {
		problems = append(problems, fmt.Sprintf("title must be between 1 and %d characters", maxTitleLen))
	}
	return problems
}

func validateDescription(description string) []string {
	if utf8.RuneCountInString(strings.TrimSpace(description)) > maxDescriptionLen {
		return []string{fmt.Sprintf("description must not exceed %d characters", maxDescriptionLen)}
	}
	return nil
}

func validateStatus(status string) []string {
	if !task.Status(status).Valid() {
		return []string{"status must be todo, progress or done"}
	}
	return nil
}

func validatePriority(priority string) []string {
	if !task.Priority(priority).Valid() {
		return []string{"priority must be low, medium or high"}
	}
	return nil
}

func validateCreateTask(req dto.CreateTaskRequest) []string {
	problems := validateTitle(req.Title, true)
	problems = append(problems, validateDescription(req.Description)...)
	if req.Status != "" {
		problems = append(problems, validateStatus(req.Status)...)
	}
	if req.Priority != "" {
		problems = append(problems, validatePriority(req.Priority)...)
	}
	return problems
}

func validateUpdateTask(req dto.UpdateTaskRequest) []string {
	var problems []string
	if req.Title != nil {
		problems = append(problems, validateTitle(*req.Title, false)...)
	}
	if req.Description != nil {
		problems = append(problems, validateDescription(*req.Description)...)
	}
	if req.Status != nil {
		problems = append(problems, validateStatus(*req.Status)...)
	}
	if req.Priority != nil {
		problems = append(problems, validatePriority(*req.Priority)...)
	}
	return problems
}

// updateOptions converts the fields present in the request into store
// options. Absent fields produce no option and stay untouched.
func updateOptions(req dto.UpdateTaskRequest) []task.Option {
	var options []task.Option
	if req.Title != nil {
		options = append(options, task.WithTitle(*req.Title))
	}
	if req.Description != nil {
		options = append(options, task.WithDescription(*req.Description))
	}
	if req.Status != nil {
		options = append(options, task.WithStatus(task.Status(*req.Status)))
	}
	if req.Priority != nil {
		options = append(options, task.WithPriority(task.Priority(*req.Priority)))
	}
	if req.DueDate.Set {
		options = append(options, task.WithDueDate(req.DueDate.Value))
	}
	return options
}
