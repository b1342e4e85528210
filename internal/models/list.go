package models

import (
	"time"

	"github.com/google/uuid"
)

// List is a named collection of words.
type List struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewList builds a list with a fresh identifier.
func NewList(name string, now time.Time) List {
	return List{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ListProgress summarizes the maturity of a list's words.
type ListProgress struct {
	Total    int `json:"total"`
	New      int `json:"new"`
	Learning int `json:"learning"`
	Review   int `json:"review"`
	Mastered int `json:"mastered"`
}

// ListDetail is a list together with its words and progress counts.
type ListDetail struct {
	List
	Words    []Word       `json:"words"`
	Progress ListProgress `json:"progress"`
}
