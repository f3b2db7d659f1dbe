package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the canonical task date layout (unambiguous, sortable).
const DateFormat = "2006-01-02"

// Category is a closed set of task categories.
type Category int

const (
	CategoryWork Category = iota
	CategoryPersonal
	CategoryUrgent
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryWork, CategoryPersonal, CategoryUrgent}

// String returns the canonical (persisted) category name.
func (c Category) String() string {
	switch c {
	case CategoryPersonal:
		return "Personal"
	case CategoryUrgent:
		return "Urgent"
	default:
		return "Work"
	}
}

// Label returns the localized display name shown in the UI.
func (c Category) Label() string {
	switch c {
	case CategoryPersonal:
		return "Personale"
	case CategoryUrgent:
		return "Urgente"
	default:
		return "Lavoro"
	}
}

// ParseCategory accepts canonical names and the localized labels that older
// stores persisted. Unknown values fall back to CategoryWork.
func ParseCategory(s string) Category {
	switch strings.TrimSpace(s) {
	case "Personal", "Personale":
		return CategoryPersonal
	case "Urgent", "Urgente":
		return CategoryUrgent
	default:
		return CategoryWork
	}
}

// MarshalJSON persists the canonical category name.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON reads canonical or localized category names.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("category: %w", err)
	}
	*c = ParseCategory(s)
	return nil
}

// Task represents a single todo item belonging to one owner.
type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Category  Category `json:"category"`
	Completed bool     `json:"completed"`
	Owner     string   `json:"owner"`
}

// NewTask creates a task with defaults: not completed, owned by owner.
func NewTask(id, owner, title, date string, category Category) Task {
	return Task{
		ID:       id,
		Title:    title,
		Date:     date,
		Category: category,
		Owner:    owner,
	}
}

// Day parses the task date. The zero time is returned for malformed dates.
func (t Task) Day() time.Time {
	day, err := time.Parse(DateFormat, t.Date)
	if err != nil {
		return time.Time{}
	}
	return day
}
