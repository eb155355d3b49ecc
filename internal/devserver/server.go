// Package devserver is an in-memory implementation of the portfolio
// REST API the client core consumes. It backs local development and
// the integration tests; nothing is persisted.
package devserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"portfolio-admin/internal/blocks"
	"portfolio-admin/internal/domain"
)

type Server struct {
	Auth *AuthService

	Blogs       *collection[domain.BlogCreateRequest, domain.Blog]
	Projects    *collection[domain.ProjectCreateRequest, domain.Project]
	Skills      *collection[domain.SkillCreateRequest, domain.Skill]
	Socials     *collection[domain.SocialCreateRequest, domain.Social]
	Experiences *collection[domain.ExperienceCreateRequest, domain.Experience]

	validate *validator.Validate
	router   *mux.Router
}

func New(jwtSecret string, accessExp, refreshExp time.Duration) *Server {
	s := &Server{
		Auth:     NewAuthService(jwtSecret, accessExp, refreshExp),
		validate: domain.NewValidator(),
	}

	s.Blogs = &collection[domain.BlogCreateRequest, domain.Blog]{
		build: func(req domain.BlogCreateRequest, _ int) domain.Blog {
			now := time.Now()
			return domain.Blog{
				ID:              uuid.New().String(),
				Title:           req.Title,
				Excerpt:         req.Excerpt,
				Date:            req.Date,
				Slug:            req.Slug,
				MetaTitle:       req.MetaTitle,
				MetaDescription: req.MetaDescription,
				MetaImage:       req.MetaImage,
				MetaKeywords:    req.MetaKeywords,
				Blocks:          req.Blocks,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
		},
		apply: func(existing domain.Blog, req domain.BlogCreateRequest) domain.Blog {
			existing.Title = req.Title
			existing.Excerpt = req.Excerpt
			existing.Date = req.Date
			existing.Slug = req.Slug
			existing.MetaTitle = req.MetaTitle
			existing.MetaDescription = req.MetaDescription
			existing.MetaImage = req.MetaImage
			existing.MetaKeywords = req.MetaKeywords
			existing.Blocks = req.Blocks
			existing.UpdatedAt = time.Now()
			return existing
		},
		idOf: func(b domain.Blog) string { return b.ID },
	}

	s.Projects = &collection[domain.ProjectCreateRequest, domain.Project]{
		build: func(req domain.ProjectCreateRequest, seq int) domain.Project {
			now := time.Now()
			return domain.Project{
				ID:          seq,
				Name:        req.Name,
				Date:        req.Date,
				Link:        req.Link,
				Tags:        req.Tags,
				Description: req.Description,
				Image:       req.Image,
				Category:    req.Category,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
		apply: func(existing domain.Project, req domain.ProjectCreateRequest) domain.Project {
			existing.Name = req.Name
			existing.Date = req.Date
			existing.Link = req.Link
			existing.Tags = req.Tags
			existing.Description = req.Description
			existing.Image = req.Image
			existing.Category = req.Category
			existing.UpdatedAt = time.Now()
			return existing
		},
		idOf: func(p domain.Project) string { return fmt.Sprintf("%d", p.ID) },
	}

	s.Skills = &collection[domain.SkillCreateRequest, domain.Skill]{
		build: func(req domain.SkillCreateRequest, _ int) domain.Skill {
			now := time.Now()
			return domain.Skill{
				ID:        uuid.New().String(),
				Name:      req.Name,
				Icon:      req.Icon,
				Category:  req.Category,
				CreatedAt: now,
				UpdatedAt: now,
			}
		},
		apply: func(existing domain.Skill, req domain.SkillCreateRequest) domain.Skill {
			existing.Name = req.Name
			existing.Icon = req.Icon
			existing.Category = req.Category
			existing.UpdatedAt = time.Now()
			return existing
		},
		idOf: func(sk domain.Skill) string { return sk.ID },
	}

	s.Socials = &collection[domain.SocialCreateRequest, domain.Social]{
		build: func(req domain.SocialCreateRequest, _ int) domain.Social {
			now := time.Now()
			return domain.Social{
				ID:        uuid.New().String(),
				Name:      req.Name,
				URL:       req.URL,
				Icon:      req.Icon,
				Platform:  req.Platform,
				CreatedAt: now,
				UpdatedAt: now,
			}
		},
		apply: func(existing domain.Social, req domain.SocialCreateRequest) domain.Social {
			existing.Name = req.Name
			existing.URL = req.URL
			existing.Icon = req.Icon
			existing.Platform = req.Platform
			existing.UpdatedAt = time.Now()
			return existing
		},
		idOf: func(so domain.Social) string { return so.ID },
	}

	s.Experiences = &collection[domain.ExperienceCreateRequest, domain.Experience]{
		build: func(req domain.ExperienceCreateRequest, _ int) domain.Experience {
			now := time.Now()
			return domain.Experience{
				ID:           uuid.New().String(),
				Company:      req.Company,
				Position:     req.Position,
				StartDate:    req.StartDate,
				EndDate:      req.EndDate,
				Description:  req.Description,
				Technologies: req.Technologies,
				Location:     req.Location,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
		},
		apply: func(existing domain.Experience, req domain.ExperienceCreateRequest) domain.Experience {
			existing.Company = req.Company
			existing.Position = req.Position
			existing.StartDate = req.StartDate
			existing.EndDate = req.EndDate
			existing.Description = req.Description
			existing.Technologies = req.Technologies
			existing.Location = req.Location
			existing.UpdatedAt = time.Now()
			return existing
		},
		idOf: func(e domain.Experience) string { return e.ID },
	}

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/setup", s.handleSetup).Methods("POST")
	api.HandleFunc("/auth/login", s.handleLogin).Methods("POST")
	api.HandleFunc("/auth/refresh", s.handleRefresh).Methods("POST")
	api.HandleFunc("/auth/logout", s.handleLogout).Methods("POST")

	registerResource(api, s, "/blogs", "Blog", s.Blogs, func(req domain.BlogCreateRequest) error {
		return blocks.Validate(req.Blocks)
	})
	registerResource(api, s, "/projects", "Project", s.Projects, nil)
	registerResource(api, s, "/skills", "Skill", s.Skills, nil)
	registerResource(api, s, "/socials", "Social", s.Socials, nil)
	registerResource(api, s, "/experiences", "Experience", s.Experiences, nil)

	s.router = r
	return s
}

// Handler returns the router for mounting in an http.Server or an
// httptest.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// SeedAdmin provisions the admin account, bypassing the setup
// endpoint. The CLI's serve command and the tests use it.
func (s *Server) SeedAdmin(email, password, name string) error {
	_, err := s.Auth.Setup(&domain.SetupRequest{Email: email, Password: password, Name: name})
	return err
}
