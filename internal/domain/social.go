package domain

import "time"

type Social struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,min=2,max=255"`
	URL       string    `json:"url" validate:"required,url"`
	Icon      string    `json:"icon" validate:"required"`
	Platform  string    `json:"platform" validate:"required,oneof=github linkedin twitter tiktok email other"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SocialCreateRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	URL      string `json:"url" validate:"required,url"`
	Icon     string `json:"icon" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=github linkedin twitter tiktok email other"`
}

type SocialUpdateRequest = SocialCreateRequest
