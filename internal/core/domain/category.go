package domain

import (
	"errors"
	"time"
)

var ErrCategoryNotFound = errors.New("category not found")

// Category is a simple admin-owned lookup entity.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
