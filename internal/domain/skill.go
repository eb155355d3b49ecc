package domain

import "time"

type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,min=2,max=255"`
	Icon      string    `json:"icon" validate:"required"`
	Category  string    `json:"category,omitempty" validate:"omitempty,max=255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SkillCreateRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Icon     string `json:"icon" validate:"required"`
	Category string `json:"category,omitempty" validate:"omitempty,max=255"`
}

type SkillUpdateRequest = SkillCreateRequest
