package domain

import "time"

type Experience struct {
	ID           string    `json:"id"`
	Company      string    `json:"company" validate:"required,min=2,max=500"`
	Position     string    `json:"position" validate:"required,min=2,max=500"`
	StartDate    string    `json:"start_date" validate:"required"`
	EndDate      string    `json:"end_date" validate:"required"`
	Description  string    `json:"description" validate:"required,min=10,max=5000"`
	Technologies []string  `json:"technologies" validate:"required,min=1"`
	Location     string    `json:"location,omitempty" validate:"omitempty,max=255"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ExperienceCreateRequest struct {
	Company      string   `json:"company" validate:"required,min=2,max=500"`
	Position     string   `json:"position" validate:"required,min=2,max=500"`
	StartDate    string   `json:"start_date" validate:"required"`
	EndDate      string   `json:"end_date" validate:"required"`
	Description  string   `json:"description" validate:"required,min=10,max=5000"`
	Technologies []string `json:"technologies" validate:"required,min=1"`
	Location     string   `json:"location,omitempty" validate:"omitempty,max=255"`
}

type ExperienceUpdateRequest = ExperienceCreateRequest
