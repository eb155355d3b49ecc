package store

import (
	"context"
	"net/http"
	"strconv"

	"portfolio-admin/internal/api"
	"portfolio-admin/internal/domain"
)

// BlogStore adds the slug lookup the public blog pages use.
type BlogStore struct {
	*Store[domain.Blog]
}

func NewBlogStore(client *api.Client) *BlogStore {
	return &BlogStore{Store: New(client, Resource[domain.Blog]{
		Path: "/api/blogs",
		ID:   func(b domain.Blog) string { return b.ID },
	})}
}

// FetchBySlug loads the collection and selects the post with the given
// slug. There is no slug endpoint on the API, so this filters the full
// listing like the public site does.
func (s *BlogStore) FetchBySlug(ctx context.Context, slug string) (domain.Blog, error) {
	s.begin()

	var fetched []domain.Blog
	if err := s.client.Do(ctx, http.MethodGet, s.res.Path, nil, &fetched); err != nil {
		s.fail(err)
		return domain.Blog{}, err
	}

	s.mu.Lock()
	s.items = fetched
	for i := range fetched {
		if fetched[i].Slug == slug {
			blog := fetched[i]
			s.current = &blog
			s.loading = false
			s.mu.Unlock()
			return blog, nil
		}
	}
	s.mu.Unlock()

	return domain.Blog{}, s.failf("Blog not found")
}

func NewProjectStore(client *api.Client) *Store[domain.Project] {
	return New(client, Resource[domain.Project]{
		Path: "/api/projects",
		ID:   func(p domain.Project) string { return strconv.Itoa(p.ID) },
	})
}

func NewSkillStore(client *api.Client) *Store[domain.Skill] {
	return New(client, Resource[domain.Skill]{
		Path: "/api/skills",
		ID:   func(s domain.Skill) string { return s.ID },
	})
}

func NewSocialStore(client *api.Client) *Store[domain.Social] {
	return New(client, Resource[domain.Social]{
		Path: "/api/socials",
		ID:   func(s domain.Social) string { return s.ID },
	})
}

func NewExperienceStore(client *api.Client) *Store[domain.Experience] {
	return New(client, Resource[domain.Experience]{
		Path: "/api/experiences",
		ID:   func(e domain.Experience) string { return e.ID },
	})
}
