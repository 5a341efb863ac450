package repository

import (
	"context"
	"errors"

	"threadbare/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrTaskNotFound is returned when a task id does not resolve.
var ErrTaskNotFound = errors.New("task not found")

const taskColumns = `t.id, t.title, t.description, t.status, t.priority, t.due_date,
	t.category_id, t.created_at, t.updated_at, c.id, c.name, c.color, c.icon`

const taskFrom = ` FROM tasks t JOIN categories c ON c.id = t.category_id`

// Tasks sort by soonest due date first (undated tasks last), then priority
// high to low, then newest first. Priority order comes from the task_priority
// enum definition.
const taskOrder = ` ORDER BY t.due_date ASC NULLS LAST, t.priority DESC, t.created_at DESC`

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	var status, priority string
	err := row.Scan(&t.ID, &t.Title, &t.Description, &status, &priority, &t.DueDate,
		&t.CategoryID, &t.CreatedAt, &t.UpdatedAt,
		&t.Category.ID, &t.Category.Name, &t.Category.Color, &t.Category.Icon)
	if err != nil {
		return nil, err
	}
	t.Status = domain.Status(status)
	t.Priority = domain.Priority(priority)
	return &t, nil
}

// List returns tasks matching the filter, with their category joined, in the
// default ordering.
func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error) {
	where, args := filter.whereClause()
	rows, err := r.db.Query(ctx, `SELECT `+taskColumns+taskFrom+where+taskOrder, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

// GetByID returns a task with its category, or ErrTaskNotFound.
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRow(ctx, `SELECT `+taskColumns+taskFrom+` WHERE t.id = $1`, id)
	t, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create inserts a task and fills its generated id and timestamps, plus the
// joined category summary. A dangling category reference surfaces as a
// constraint error from the store.
func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO tasks (title, description, status, priority, due_date, category_id)
		 VALUES ($1, $2, $3::task_status, $4::task_priority, $5, $6)
		 RETURNING id, created_at, updated_at`,
		t.Title, t.Description, string(t.Status), string(t.Priority), t.DueDate, t.CategoryID,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return err
	}
	return r.db.QueryRow(ctx,
		`SELECT id, name, color, icon FROM categories WHERE id = $1`, t.CategoryID,
	).Scan(&t.Category.ID, &t.Category.Name, &t.Category.Color, &t.Category.Icon)
}

// Update replaces every mutable field of the task and bumps updated_at. The
// task keeps its id; all other fields are taken from t as-is, including a nil
// DueDate, which clears the stored value.
func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	err := r.db.QueryRow(ctx,
		`UPDATE tasks
		 SET title = $1, description = $2, status = $3::task_status,
		     priority = $4::task_priority, due_date = $5, category_id = $6,
		     updated_at = now()
		 WHERE id = $7
		 RETURNING created_at, updated_at`,
		t.Title, t.Description, string(t.Status), string(t.Priority), t.DueDate, t.CategoryID, t.ID,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrTaskNotFound
	}
	if err != nil {
		return err
	}
	return r.db.QueryRow(ctx,
		`SELECT id, name, color, icon FROM categories WHERE id = $1`, t.CategoryID,
	).Scan(&t.Category.ID, &t.Category.Name, &t.Category.Color, &t.Category.Icon)
}
