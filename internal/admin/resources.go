package admin

import (
	"portfolio-admin/internal/api"
	"portfolio-admin/internal/domain"
	"portfolio-admin/internal/store"
)

// Searchable field sets per resource, matching what each manager's
// list view filters on.

func BlogSearchFields(b domain.Blog) []string {
	return []string{b.Title, b.Excerpt}
}

func ProjectSearchFields(p domain.Project) []string {
	return append([]string{p.Name, p.Description}, p.Tags...)
}

func SkillSearchFields(s domain.Skill) []string {
	return []string{s.Name, s.Category}
}

func SocialSearchFields(s domain.Social) []string {
	return []string{s.Name, s.Platform}
}

func ExperienceSearchFields(e domain.Experience) []string {
	return []string{e.Company, e.Position, e.Description}
}

// BlogManager wraps the generic workflow with the blog store's slug
// lookup kept reachable.
type BlogManager struct {
	*Manager[domain.Blog, domain.BlogCreateRequest]
	Blogs *store.BlogStore
}

func NewBlogManager(client *api.Client) *BlogManager {
	blogs := store.NewBlogStore(client)
	return &BlogManager{
		Manager: NewManager[domain.Blog, domain.BlogCreateRequest](blogs.Store, BlogSearchFields),
		Blogs:   blogs,
	}
}

func NewProjectManager(client *api.Client) *Manager[domain.Project, domain.ProjectCreateRequest] {
	return NewManager[domain.Project, domain.ProjectCreateRequest](
		store.NewProjectStore(client), ProjectSearchFields)
}

func NewSkillManager(client *api.Client) *Manager[domain.Skill, domain.SkillCreateRequest] {
	return NewManager[domain.Skill, domain.SkillCreateRequest](
		store.NewSkillStore(client), SkillSearchFields)
}

func NewSocialManager(client *api.Client) *Manager[domain.Social, domain.SocialCreateRequest] {
	return NewManager[domain.Social, domain.SocialCreateRequest](
		store.NewSocialStore(client), SocialSearchFields)
}

func NewExperienceManager(client *api.Client) *Manager[domain.Experience, domain.ExperienceCreateRequest] {
	return NewManager[domain.Experience, domain.ExperienceCreateRequest](
		store.NewExperienceStore(client), ExperienceSearchFields)
}
