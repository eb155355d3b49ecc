package devserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"portfolio-admin/internal/domain"
	"portfolio-admin/pkg/jwt"
	"portfolio-admin/pkg/response"
)

func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	var req domain.SetupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	user, err := s.Auth.Setup(&req)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.Created(w, "Admin account created successfully", user)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	loginResp, err := s.Auth.Login(&req)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	response.Success(w, "Login successful", loginResp)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req domain.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	tokenResp, err := s.Auth.Refresh(&req)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	response.Success(w, "Token refreshed successfully", tokenResp)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	var req domain.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	s.Auth.Logout(req.RefreshToken)
	response.Success(w, "Logged out successfully", nil)
}

// requireAuth guards mutating routes with the bearer token check.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Missing authorization header")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		if _, err := jwt.ValidateToken(parts[1], s.Auth.secret); err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		next(w, r)
	}
}

// registerResource wires the uniform CRUD routes for one collection:
// public reads, authenticated mutations.
func registerResource[Req any, T any](
	r *mux.Router,
	s *Server,
	path string,
	label string,
	c *collection[Req, T],
	extraValidate func(Req) error,
) {
	list := func(w http.ResponseWriter, _ *http.Request) {
		items := c.list()
		if items == nil {
			items = make([]T, 0)
		}
		response.Success(w, label+" retrieved successfully", items)
	}

	get := func(w http.ResponseWriter, req *http.Request) {
		item, ok := c.get(mux.Vars(req)["id"])
		if !ok {
			response.NotFound(w, label+" not found")
			return
		}
		response.Success(w, label+" retrieved successfully", item)
	}

	decode := func(w http.ResponseWriter, req *http.Request) (Req, bool) {
		var body Req
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			response.BadRequest(w, "Invalid request body")
			return body, false
		}
		if err := s.validate.Struct(body); err != nil {
			response.BadRequest(w, err.Error())
			return body, false
		}
		if extraValidate != nil {
			if err := extraValidate(body); err != nil {
				response.BadRequest(w, err.Error())
				return body, false
			}
		}
		return body, true
	}

	create := func(w http.ResponseWriter, req *http.Request) {
		body, ok := decode(w, req)
		if !ok {
			return
		}
		response.Created(w, label+" created successfully", c.create(body))
	}

	update := func(w http.ResponseWriter, req *http.Request) {
		body, ok := decode(w, req)
		if !ok {
			return
		}
		item, found := c.update(mux.Vars(req)["id"], body)
		if !found {
			response.NotFound(w, label+" not found")
			return
		}
		response.Success(w, label+" updated successfully", item)
	}

	remove := func(w http.ResponseWriter, req *http.Request) {
		if !c.delete(mux.Vars(req)["id"]) {
			response.NotFound(w, label+" not found")
			return
		}
		response.Success(w, label+" deleted successfully", nil)
	}

	r.HandleFunc(path, list).Methods("GET")
	r.HandleFunc(path+"/{id}", get).Methods("GET")
	r.HandleFunc(path, s.requireAuth(create)).Methods("POST")
	r.HandleFunc(path+"/{id}", s.requireAuth(update)).Methods("PUT")
	r.HandleFunc(path+"/{id}", s.requireAuth(remove)).Methods("DELETE")
}
