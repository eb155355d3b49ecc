package domain

import "time"

// Project is a portfolio entry. Tag order is significant and preserved
// as entered.
type Project struct {
	ID          int       `json:"id"`
	Name        string    `json:"name" validate:"required,min=3,max=500"`
	Date        string    `json:"date" validate:"required"`
	Link        string    `json:"link" validate:"omitempty,url"`
	Tags        []string  `json:"tags" validate:"required,min=1"`
	Description string    `json:"desc" validate:"required,min=10,max=5000"`
	Image       string    `json:"image" validate:"omitempty,url"`
	Category    string    `json:"category" validate:"required,oneof=web mobile desktop other"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProjectCreateRequest struct {
	Name        string   `json:"name" validate:"required,min=3,max=500"`
	Date        string   `json:"date" validate:"required"`
	Link        string   `json:"link" validate:"omitempty,url"`
	Tags        []string `json:"tags" validate:"required,min=1"`
	Description string   `json:"desc" validate:"required,min=10,max=5000"`
	Image       string   `json:"image" validate:"omitempty,url"`
	Category    string   `json:"category" validate:"required,oneof=web mobile desktop other"`
}

type ProjectUpdateRequest = ProjectCreateRequest
