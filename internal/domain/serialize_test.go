package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestInstantRoundTrip(t *testing.T) {
	in := time.Date(2026, time.April, 1, 14, 30, 15, 250_000_000, time.UTC)

	s := FormatInstant(in)
	if s != "2026-04-01T14:30:15.250Z" {
		t.Fatalf("FormatInstant = %q", s)
	}

	back, err := ParseInstant(s)
	if err != nil {
		t.Fatalf("ParseInstant: %v", err)
	}
	if !back.Equal(in) {
		t.Fatalf("round trip changed the instant: %v != %v", back, in)
	}
}

func TestFormatInstantNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2026, time.April, 1, 3, 0, 0, 0, loc)

	if got := FormatInstant(in); got != "2026-04-01T00:00:00.000Z" {
		t.Fatalf("FormatInstant = %q; want UTC rendering", got)
	}
}

func TestSerializeTask(t *testing.T) {
	due := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	desc := "Spring theme"
	task := &Task{
		ID:          "task-1",
		Title:       "Update display window",
		Description: &desc,
		Status:      StatusInProgress,
		Priority:    PriorityMedium,
		DueDate:     &due,
		CategoryID:  "cat-2",
		CreatedAt:   time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC),
		Category:    CategorySummary{ID: "cat-2", Name: "Display", Color: "#8b5cf6", Icon: "layout"},
	}

	p := SerializeTask(task)
	if p.DueDate == nil || *p.DueDate != "2026-04-01T00:00:00.000Z" {
		t.Fatalf("dueDate = %v", p.DueDate)
	}
	if p.CreatedAt != "2026-01-02T00:00:00.000Z" || p.UpdatedAt != "2026-01-03T00:00:00.000Z" {
		t.Fatalf("timestamps = %q / %q", p.CreatedAt, p.UpdatedAt)
	}
	if p.Category.Name != "Display" {
		t.Fatalf("category = %+v", p.Category)
	}
}

func TestSerializeTaskNullFields(t *testing.T) {
	task := &Task{
		ID:         "task-1",
		Title:      "Restock winter coats",
		Status:     StatusTodo,
		Priority:   PriorityHigh,
		CategoryID: "cat-1",
		CreatedAt:  time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	b, err := json.Marshal(SerializeTask(task))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(b)

	// Unset nullable fields serialize as explicit nulls, never omitted keys.
	if !strings.Contains(out, `"dueDate":null`) {
		t.Fatalf("dueDate not null in %s", out)
	}
	if !strings.Contains(out, `"description":null`) {
		t.Fatalf("description not null in %s", out)
	}
}
