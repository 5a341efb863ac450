package handlers

import (
	"context"

	"threadbare/internal/domain"
	"threadbare/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskStore is the persistence surface the task handlers need. Satisfied by
// repository.TaskRepository; tests substitute fakes.
type TaskStore interface {
	List(ctx context.Context, filter repository.TaskFilter) ([]*domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) error
	Update(ctx context.Context, t *domain.Task) error
}

// CategoryStore lists category summaries for responses and the filter UI.
type CategoryStore interface {
	ListSummaries(ctx context.Context) ([]domain.CategorySummary, error)
}

type Handler struct {
	Tasks      TaskStore
	Categories CategoryStore
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		Tasks:      repository.NewTaskRepository(db),
		Categories: repository.NewCategoryRepository(db),
	}
}
