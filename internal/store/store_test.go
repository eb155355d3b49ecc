package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"portfolio-admin/internal/api"
	"portfolio-admin/internal/domain"
	"portfolio-admin/internal/session"
	"portfolio-admin/pkg/response"
)

// skillServer is a tiny in-memory CRUD backend for store tests.
type skillServer struct {
	skills []domain.Skill
	nextID int
}

func (s *skillServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/skills", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			response.Success(w, "ok", s.skills)
		case http.MethodPost:
			var req domain.SkillCreateRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Name == "" {
				response.BadRequest(w, "name is required")
				return
			}
			s.nextID++
			skill := domain.Skill{
				ID:       "s" + strconv.Itoa(s.nextID),
				Name:     req.Name,
				Icon:     req.Icon,
				Category: req.Category,
			}
			s.skills = append(s.skills, skill)
			response.Created(w, "created", skill)
		}
	})
	mux.HandleFunc("/api/skills/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/api/skills/"):]
		idx := -1
		for i := range s.skills {
			if s.skills[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			response.NotFound(w, "skill not found")
			return
		}
		switch r.Method {
		case http.MethodGet:
			response.Success(w, "ok", s.skills[idx])
		case http.MethodPut:
			var req domain.SkillUpdateRequest
			json.NewDecoder(r.Body).Decode(&req)
			s.skills[idx].Name = req.Name
			s.skills[idx].Icon = req.Icon
			s.skills[idx].Category = req.Category
			response.Success(w, "updated", s.skills[idx])
		case http.MethodDelete:
			s.skills = append(s.skills[:idx], s.skills[idx+1:]...)
			response.Success(w, "deleted", nil)
		}
	})
	return mux
}

func newSkillStore(t *testing.T, backend *skillServer) *Store[domain.Skill] {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	client := api.New(srv.URL, 5*time.Second, session.NewMemoryStorage())
	return NewSkillStore(client)
}

func TestFetchAllReplacesCollection(t *testing.T) {
	backend := &skillServer{skills: []domain.Skill{
		{ID: "s1", Name: "Go", Icon: "go.svg"},
		{ID: "s2", Name: "Postgres", Icon: "pg.svg"},
	}}
	store := newSkillStore(t, backend)

	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}

	items := store.Items()
	if len(items) != 2 || items[0].ID != "s1" || items[1].ID != "s2" {
		t.Errorf("Items() = %+v, want server order s1, s2", items)
	}
	if store.Loading() {
		t.Error("Loading() = true after fetch finished")
	}

	// A second fetch replaces, not merges.
	backend.skills = backend.skills[1:]
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}
	items = store.Items()
	if len(items) != 1 || items[0].ID != "s2" {
		t.Errorf("Items() after refetch = %+v, want just s2", items)
	}
}

func TestFetchByIDSetsCurrent(t *testing.T) {
	backend := &skillServer{skills: []domain.Skill{
		{ID: "s1", Name: "Go", Icon: "go.svg"},
	}}
	store := newSkillStore(t, backend)

	skill, err := store.FetchByID(context.Background(), "s1")
	if err != nil {
		t.Fatalf("FetchByID() error = %v", err)
	}
	if skill.Name != "Go" {
		t.Errorf("FetchByID() = %+v", skill)
	}
	if current := store.Current(); current == nil || current.ID != "s1" {
		t.Errorf("Current() = %+v, want s1", current)
	}
}

func TestCreatePrepends(t *testing.T) {
	backend := &skillServer{skills: []domain.Skill{
		{ID: "s1", Name: "Go", Icon: "go.svg"},
	}}
	store := newSkillStore(t, backend)
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatal(err)
	}

	created, err := store.Create(context.Background(), domain.SkillCreateRequest{
		Name: "Redis", Icon: "redis.svg",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == "" {
		t.Error("Create() returned entity without server-assigned id")
	}

	items := store.Items()
	if len(items) != 2 {
		t.Fatalf("Items() len = %d, want 2 (created exactly once)", len(items))
	}
	if items[0].ID != created.ID {
		t.Errorf("created entity not at head: %+v", items)
	}
}

func TestCreateFailureLeavesCollectionUntouched(t *testing.T) {
	backend := &skillServer{skills: []domain.Skill{
		{ID: "s1", Name: "Go", Icon: "go.svg"},
	}}
	store := newSkillStore(t, backend)
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatal(err)
	}

	_, err := store.Create(context.Background(), domain.SkillCreateRequest{Icon: "x.svg"})
	if err == nil {
		t.Fatal("Create() with rejected draft expected error")
	}

	if len(store.Items()) != 1 {
		t.Errorf("failed create mutated the collection: %+v", store.Items())
	}
	if store.Loading() {
		t.Error("Loading() = true after failed create")
	}
	if store.Err() != "name is required" {
		t.Errorf("Err() = %q, want the server's error field", store.Err())
	}
}

func TestUpdateInPlace(t *testing.T) {
	backend := &skillServer{skills: []domain.Skill{
		{ID: "s1", Name: "Go", Icon: "go.svg"},
		{ID: "s2", Name: "Postgres", Icon: "pg.svg"},
	}}
	store := newSkillStore(t, backend)
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := store.FetchByID(context.Background(), "s2"); err != nil {
		t.Fatal(err)
	}

	updated, err := store.Update(context.Background(), "s2", domain.SkillUpdateRequest{
		Name: "PostgreSQL", Icon: "pg.svg",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != "PostgreSQL" {
		t.Errorf("Update() = %+v", updated)
	}

	items := store.Items()
	if len(items) != 2 || items[0].ID != "s1" || items[1].Name != "PostgreSQL" {
		t.Errorf("Items() after update = %+v, want s2 updated in place", items)
	}
	if current := store.Current(); current == nil || current.Name != "PostgreSQL" {
		t.Errorf("Current() = %+v, want to follow the update", current)
	}
}

func TestDeleteRemovesAndClearsCurrent(t *testing.T) {
	backend := &skillServer{skills: []domain.Skill{
		{ID: "s1", Name: "Go", Icon: "go.svg"},
		{ID: "s2", Name: "Postgres", Icon: "pg.svg"},
	}}
	store := newSkillStore(t, backend)
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := store.FetchByID(context.Background(), "s1"); err != nil {
		t.Fatal(err)
	}

	if err := store.Delete(context.Background(), "s1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	items := store.Items()
	if len(items) != 1 || items[0].ID != "s2" {
		t.Errorf("Items() after delete = %+v, want just s2", items)
	}
	if store.Current() != nil {
		t.Error("Current() not cleared after deleting the selected entity")
	}
}

func TestDeleteFailureLeavesCollectionUntouched(t *testing.T) {
	backend := &skillServer{skills: []domain.Skill{
		{ID: "s1", Name: "Go", Icon: "go.svg"},
	}}
	store := newSkillStore(t, backend)
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := store.Delete(context.Background(), "missing"); err == nil {
		t.Fatal("Delete() of unknown id expected error")
	}

	if len(store.Items()) != 1 {
		t.Errorf("failed delete mutated the collection: %+v", store.Items())
	}
	if store.Err() == "" {
		t.Error("Err() empty after failed delete")
	}
}

func TestBlogFetchBySlug(t *testing.T) {
	blogs := []domain.Blog{
		{ID: "b1", Title: "First", Slug: "first-post"},
		{ID: "b2", Title: "Second", Slug: "second-post"},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, "ok", blogs)
	}))
	defer srv.Close()

	client := api.New(srv.URL, 5*time.Second, session.NewMemoryStorage())
	store := NewBlogStore(client)

	blog, err := store.FetchBySlug(context.Background(), "second-post")
	if err != nil {
		t.Fatalf("FetchBySlug() error = %v", err)
	}
	if blog.ID != "b2" {
		t.Errorf("FetchBySlug() = %+v, want b2", blog)
	}
	if current := store.Current(); current == nil || current.ID != "b2" {
		t.Errorf("Current() = %+v, want b2", current)
	}
	if len(store.Items()) != 2 {
		t.Errorf("Items() len = %d, want the full listing", len(store.Items()))
	}

	if _, err := store.FetchBySlug(context.Background(), "no-such-post"); err == nil {
		t.Fatal("FetchBySlug() for unknown slug expected error")
	}
	if store.Err() != "Blog not found" {
		t.Errorf("Err() = %q, want %q", store.Err(), "Blog not found")
	}
}
