package domain

import (
	"time"

	"portfolio-admin/internal/blocks"
)

// Blog is a published post. Blocks carry the ordered body content and
// must round-trip through create/update exactly as stored.
type Blog struct {
	ID      string `json:"id"`
	Title   string `json:"title" validate:"required,min=3,max=500"`
	Excerpt string `json:"excerpt" validate:"required,min=10,max=1000"`
	Date    string `json:"date" validate:"required"`
	Slug    string `json:"slug" validate:"required,min=3,max=500,slug"`

	// SEO metadata, optional.
	MetaTitle       string   `json:"meta_title,omitempty" validate:"omitempty,max=255"`
	MetaDescription string   `json:"meta_description,omitempty" validate:"omitempty,max=1000"`
	MetaImage       string   `json:"meta_image,omitempty" validate:"omitempty,url"`
	MetaKeywords    []string `json:"meta_keywords,omitempty"`

	Blocks    []blocks.Block `json:"blocks"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type BlogCreateRequest struct {
	Title           string         `json:"title" validate:"required,min=3,max=500"`
	Excerpt         string         `json:"excerpt" validate:"required,min=10,max=1000"`
	Date            string         `json:"date" validate:"required"`
	Slug            string         `json:"slug" validate:"required,min=3,max=500,slug"`
	MetaTitle       string         `json:"meta_title,omitempty" validate:"omitempty,max=255"`
	MetaDescription string         `json:"meta_description,omitempty" validate:"omitempty,max=1000"`
	MetaImage       string         `json:"meta_image,omitempty" validate:"omitempty,url"`
	MetaKeywords    []string       `json:"meta_keywords,omitempty"`
	Blocks          []blocks.Block `json:"blocks"`
}

type BlogUpdateRequest = BlogCreateRequest
