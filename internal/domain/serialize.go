package domain

import "time"

// isoMillis matches the wire format used for every timestamp the API emits:
// UTC, millisecond precision, trailing Z.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// FormatInstant renders t as an ISO-8601 UTC string.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(isoMillis)
}

// ParseInstant is the inverse of FormatInstant. It accepts any RFC 3339
// date-time with an explicit offset.
func ParseInstant(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// TaskPayload is the JSON shape of a task on the API. Description and DueDate
// serialize as explicit nulls when unset, never as omitted keys.
type TaskPayload struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Status      Status          `json:"status"`
	Priority    Priority        `json:"priority"`
	DueDate     *string         `json:"dueDate"`
	CategoryID  string          `json:"categoryId"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
	Category    CategorySummary `json:"category"`
}

// SerializeTask converts a stored task (with joined category) into its API
// payload.
func SerializeTask(t *Task) TaskPayload {
	p := TaskPayload{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		CategoryID:  t.CategoryID,
		CreatedAt:   FormatInstant(t.CreatedAt),
		UpdatedAt:   FormatInstant(t.UpdatedAt),
		Category:    t.Category,
	}
	if t.DueDate != nil {
		s := FormatInstant(*t.DueDate)
		p.DueDate = &s
	}
	return p
}
