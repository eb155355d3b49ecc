package admin

import (
	"time"

	"portfolio-admin/internal/blocks"
	"portfolio-admin/internal/domain"
	"portfolio-admin/internal/slug"
)

// BlogEditor is the draft state of one post being created or edited.
// It owns the block editing workflow; nothing is sent to the server
// until the draft is handed to a manager's Save.
type BlogEditor struct {
	id     string // empty for a new post until the server assigns one
	draft  domain.BlogCreateRequest
	blocks *blocks.Editor
}

// NewBlogEditor starts a draft from an existing post, or a fresh one
// when post is nil (dated today, identified by a placeholder until
// saved).
func NewBlogEditor(post *domain.Blog) *BlogEditor {
	if post == nil {
		return &BlogEditor{
			id: domain.PlaceholderID("blog"),
			draft: domain.BlogCreateRequest{
				Date: time.Now().Format("2006-01-02"),
			},
			blocks: blocks.NewEditor(nil),
		}
	}

	return &BlogEditor{
		id: post.ID,
		draft: domain.BlogCreateRequest{
			Title:           post.Title,
			Excerpt:         post.Excerpt,
			Date:            post.Date,
			Slug:            post.Slug,
			MetaTitle:       post.MetaTitle,
			MetaDescription: post.MetaDescription,
			MetaImage:       post.MetaImage,
			MetaKeywords:    append([]string(nil), post.MetaKeywords...),
		},
		blocks: blocks.NewEditor(post.Blocks),
	}
}

func (e *BlogEditor) ID() string { return e.id }

func (e *BlogEditor) SetTitle(title string)     { e.draft.Title = title }
func (e *BlogEditor) SetExcerpt(excerpt string) { e.draft.Excerpt = excerpt }
func (e *BlogEditor) SetDate(date string)       { e.draft.Date = date }

// SetSlug normalizes at input time, not at render time: lowercase,
// whitespace runs become hyphens.
func (e *BlogEditor) SetSlug(s string) {
	e.draft.Slug = slug.Normalize(s)
}

func (e *BlogEditor) Slug() string { return e.draft.Slug }

func (e *BlogEditor) AddBlock(t blocks.Type) blocks.Block {
	return e.blocks.Add(t)
}

func (e *BlogEditor) UpdateBlock(index int, data blocks.Data) error {
	return e.blocks.Update(index, data)
}

func (e *BlogEditor) DeleteBlock(index int) error {
	return e.blocks.Delete(index)
}

func (e *BlogEditor) MoveBlock(index int, dir blocks.Direction) {
	e.blocks.Move(index, dir)
}

func (e *BlogEditor) Blocks() []blocks.Block {
	return e.blocks.Blocks()
}

// Request assembles the draft for submission.
func (e *BlogEditor) Request() domain.BlogCreateRequest {
	req := e.draft
	req.Blocks = e.blocks.Blocks()
	return req
}
