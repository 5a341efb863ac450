package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"threadbare/internal/domain"
	"threadbare/internal/duedate"
	"threadbare/internal/repository"
	"threadbare/internal/validate"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

var statusLabels = map[domain.Status]string{
	domain.StatusTodo:       "To Do",
	domain.StatusInProgress: "In Progress",
	domain.StatusDone:       "Done",
}

var priorityLabels = map[domain.Priority]string{
	domain.PriorityLow:    "Low",
	domain.PriorityMedium: "Medium",
	domain.PriorityHigh:   "High",
	domain.PriorityUrgent: "Urgent",
}

type taskView struct {
	Title         string
	Description   string
	StatusLabel   string
	PriorityLabel string
	Category      domain.CategorySummary
	HasDue        bool
	DueLabel      string
	DueSeverity   string
}

// TasksPage renders the task list as HTML. Unlike the JSON API, an invalid
// filter degrades to the unfiltered list instead of failing the request, and
// the due-date indicator is precomputed per task.
func (h *Handler) TasksPage(c *gin.Context) {
	query := validate.ParseTaskQueryLenient(c.Request.URL.Query())

	ctx := c.Request.Context()
	filter := repository.TaskFilter{Status: query.Status, CategoryID: query.CategoryID}

	tasks, err := h.Tasks.List(ctx, filter)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}
	categories, err := h.Categories.ListSummaries(ctx)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}

	now := time.Now()
	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		v := taskView{
			Title:         t.Title,
			StatusLabel:   statusLabels[t.Status],
			PriorityLabel: priorityLabels[t.Priority],
			Category:      t.Category,
		}
		if t.Description != nil {
			v.Description = *t.Description
		}
		if t.DueDate != nil {
			v.HasDue = true
			v.DueLabel = duedate.Label(*t.DueDate, now)
			v.DueSeverity = string(duedate.Classify(*t.DueDate, now))
		}
		views = append(views, v)
	}

	c.HTML(http.StatusOK, "tasks.html", gin.H{
		"Title":      "Tasks | Threadbare",
		"Tasks":      views,
		"Categories": categories,
		"HasFilters": query.Status != "" || query.CategoryID != "",
	})
}
