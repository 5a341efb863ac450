package handlers

import (
	"errors"
	"net/http"

	"threadbare/internal/domain"
	"threadbare/internal/repository"
	"threadbare/internal/validate"

	"github.com/gin-gonic/gin"
)

// ListTasks returns tasks matching the query filter plus all categories.
// Invalid filter parameters are a hard 400 here; the HTML page is the lenient
// caller.
func (h *Handler) ListTasks(c *gin.Context) {
	query, ferr := validate.ParseTaskQuery(c.Request.URL.Query())
	if ferr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	ctx := c.Request.Context()
	filter := repository.TaskFilter{Status: query.Status, CategoryID: query.CategoryID}

	tasks, err := h.Tasks.List(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}
	categories, err := h.Categories.ListSummaries(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	payloads := make([]domain.TaskPayload, 0, len(tasks))
	for _, t := range tasks {
		payloads = append(payloads, domain.SerializeTask(t))
	}
	if categories == nil {
		categories = []domain.CategorySummary{}
	}

	c.JSON(http.StatusOK, gin.H{"tasks": payloads, "categories": categories})
}

// CreateTask creates a task from a JSON payload and returns it with 201.
func (h *Handler) CreateTask(c *gin.Context) {
	var in validate.CreateTaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	input, ferr := validate.ValidateCreateTask(in)
	if ferr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ferr.Message})
		return
	}

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		CategoryID:  input.CategoryID,
	}
	if err := h.Tasks.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": domain.SerializeTask(task)})
}

// GetTask returns a single task by id.
func (h *Handler) GetTask(c *gin.Context) {
	task, err := h.Tasks.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": domain.SerializeTask(task)})
}

// UpdateTask replaces every mutable field of an existing task. Existence is
// checked before the update; a delete racing between the check and the write
// is not guarded against.
func (h *Handler) UpdateTask(c *gin.Context) {
	var in validate.UpdateTaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	input, ferr := validate.ValidateUpdateTask(in)
	if ferr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ferr.Message})
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	if _, err := h.Tasks.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	task := &domain.Task{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		CategoryID:  input.CategoryID,
	}
	if err := h.Tasks.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": domain.SerializeTask(task)})
}
