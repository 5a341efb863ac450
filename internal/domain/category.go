package domain

import "time"

// Category groups tasks. Deleting a category deletes its tasks (the store
// enforces the cascade).
type Category struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Color     string    `db:"color"`
	Icon      string    `db:"icon"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CategorySummary is the slim category shape embedded in task payloads and
// returned by the list endpoint for the filter UI.
type CategorySummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

func (c *Category) Summary() CategorySummary {
	return CategorySummary{ID: c.ID, Name: c.Name, Color: c.Color, Icon: c.Icon}
}
