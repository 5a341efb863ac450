// Package validate checks untrusted query parameters and request payloads
// against the task schemas. Each parse function evaluates its field rules in a
// fixed order and reports the first failure; callers decode JSON themselves so
// malformed bodies stay a separate error class from semantic failures.
package validate

import (
	"fmt"
	"net/url"
	"time"

	"threadbare/internal/domain"
)

// FieldError is a semantic validation failure on a single field. Message is
// safe to surface to API callers verbatim.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func fieldErr(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// TaskQuery is a validated list filter. Empty fields mean "no filter".
type TaskQuery struct {
	Status     domain.Status
	CategoryID string
}

// ParseTaskQuery validates list-endpoint query parameters. Absent and empty
// values are both treated as "no filter"; any other status value must be a
// member of the status enum, and categoryId is passed through opaquely
// (existence is the store's concern).
func ParseTaskQuery(values url.Values) (TaskQuery, *FieldError) {
	var q TaskQuery

	if s := values.Get("status"); s != "" {
		status := domain.Status(s)
		if !status.Valid() {
			return TaskQuery{}, fieldErr("status", "Invalid status filter")
		}
		q.Status = status
	}
	q.CategoryID = values.Get("categoryId")
	return q, nil
}

// ParseTaskQueryLenient applies the same rules as ParseTaskQuery but degrades
// any failure to the unfiltered query. List pages meant for display use this;
// the JSON API does not.
func ParseTaskQueryLenient(values url.Values) TaskQuery {
	q, err := ParseTaskQuery(values)
	if err != nil {
		return TaskQuery{}
	}
	return q
}

// CreateTaskInput is a raw create payload as decoded from JSON, before
// validation. Optional fields are pointers so absent and empty can be told
// apart.
type CreateTaskInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	CategoryID  string  `json:"categoryId"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate"`
	Status      *string `json:"status"`
}

// CreateTask is a validated, normalized create payload.
type CreateTask struct {
	Title       string
	Description *string
	CategoryID  string
	Priority    domain.Priority
	DueDate     *time.Time
	Status      domain.Status
}

// ValidateCreateTask checks a decoded create payload. Field rules run in
// declaration order (title, description, categoryId, priority, dueDate,
// status) and the first failure wins. Status defaults to todo when absent.
func ValidateCreateTask(in CreateTaskInput) (CreateTask, *FieldError) {
	out := CreateTask{Status: domain.StatusTodo}

	if in.Title == "" {
		return CreateTask{}, fieldErr("title", "Title is required")
	}
	out.Title = in.Title

	if in.Description != nil && *in.Description != "" {
		out.Description = in.Description
	}

	if in.CategoryID == "" {
		return CreateTask{}, fieldErr("categoryId", "Category is required")
	}
	out.CategoryID = in.CategoryID

	priority := domain.Priority(in.Priority)
	if !priority.Valid() {
		return CreateTask{}, fieldErr("priority", "Invalid priority")
	}
	out.Priority = priority

	if in.DueDate != nil {
		due, err := domain.ParseInstant(*in.DueDate)
		if err != nil {
			return CreateTask{}, fieldErr("dueDate", "Invalid date format")
		}
		out.DueDate = &due
	}

	if in.Status != nil {
		status := domain.Status(*in.Status)
		if !status.Valid() {
			return CreateTask{}, fieldErr("status", "Invalid status")
		}
		out.Status = status
	}

	return out, nil
}

// UpdateTaskInput is a raw update payload. A nil DueDate covers both an
// absent key and an explicit JSON null; both clear the stored due date.
type UpdateTaskInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	CategoryID  string  `json:"categoryId"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate"`
	Status      *string `json:"status"`
}

// UpdateTask is a validated update payload. A nil DueDate clears the field.
type UpdateTask struct {
	Title       string
	Description *string
	CategoryID  string
	Priority    domain.Priority
	DueDate     *time.Time
	Status      domain.Status
}

// ValidateUpdateTask checks a decoded update payload. Same rules as create
// except status is required (updates replace the whole mutable record) and a
// missing or null dueDate clears the stored value.
func ValidateUpdateTask(in UpdateTaskInput) (UpdateTask, *FieldError) {
	var out UpdateTask

	if in.Title == "" {
		return UpdateTask{}, fieldErr("title", "Title is required")
	}
	out.Title = in.Title

	if in.Description != nil && *in.Description != "" {
		out.Description = in.Description
	}

	if in.CategoryID == "" {
		return UpdateTask{}, fieldErr("categoryId", "Category is required")
	}
	out.CategoryID = in.CategoryID

	priority := domain.Priority(in.Priority)
	if !priority.Valid() {
		return UpdateTask{}, fieldErr("priority", "Invalid priority")
	}
	out.Priority = priority

	if in.DueDate != nil {
		due, err := domain.ParseInstant(*in.DueDate)
		if err != nil {
			return UpdateTask{}, fieldErr("dueDate", "Invalid date format")
		}
		out.DueDate = &due
	}

	if in.Status == nil {
		return UpdateTask{}, fieldErr("status", "Status is required")
	}
	status := domain.Status(*in.Status)
	if !status.Valid() {
		return UpdateTask{}, fieldErr("status", "Invalid status")
	}
	out.Status = status

	return out, nil
}
