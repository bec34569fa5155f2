// Package admintest provides an in-process stand-in for the fairsplit admin
// API. Tests point the gateway at it to exercise the client stack against
// realistic envelopes, pagination, and failure modes without a network.
package admintest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"

	"github.com/fairsplit-admin/internal/models"
)

// Default credentials issued by the fixture's login endpoint.
const (
	AccessToken  = "test-access-token"
	RefreshToken = "test-refresh-token"
)

// Server simulates the remote admin API over configurable fixture data.
// It implements http.Handler; wrap it with httptest.NewServer.
type Server struct {
	mu sync.Mutex

	router *mux.Router

	// Fixture data, mutated by the fake's own handlers.
	Users      []models.User
	Groups     []models.Group
	Categories []models.Category
	Activities []models.Activity
	Usage      models.ProjectUsage
	Admin      models.AdminInfo

	// Token is the bearer token the fake accepts; anything else earns a 401.
	Token string

	// EmbeddedFailure, when set, makes every data endpoint answer HTTP 200
	// with an embedded failure status carrying this message.
	EmbeddedFailure string

	// FailDeleteIDs marks identifiers whose deletion the fake rejects.
	FailDeleteIDs map[string]bool

	// Request recording for assertions.
	LastPath  string
	LastQuery url.Values
	LastBody  []byte
	Requests  int
}

// NewServer creates a fixture with the default token and empty datasets.
func NewServer() *Server {
	s := &Server{
		Token:         AccessToken,
		Admin:         models.AdminInfo{ID: "admin-1", Email: "admin@fairsplit.test", Role: "admin"},
		FailDeleteIDs: map[string]bool{},
	}
	s.router = s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1/admin").Subrouter()

	api.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(s.recordRequest, s.requireToken)
	authed.HandleFunc("/logout", s.handleLogout).Methods(http.MethodPost)
	authed.HandleFunc("/users/", s.handleListUsers).Methods(http.MethodGet)
	authed.HandleFunc("/users/{id}", s.handleGetUser).Methods(http.MethodGet)
	authed.HandleFunc("/users/{id}/status", s.handleUserStatus).Methods(http.MethodPatch)
	authed.HandleFunc("/users/{id}", s.handleDeleteUser).Methods(http.MethodDelete)
	authed.HandleFunc("/groups", s.handleListGroups).Methods(http.MethodGet)
	authed.HandleFunc("/groups/{id}", s.handleGetGroup).Methods(http.MethodGet)
	authed.HandleFunc("/groups/{id}/status", s.handleGroupStatus).Methods(http.MethodPatch)
	authed.HandleFunc("/groups/{id}", s.handleDeleteGroup).Methods(http.MethodDelete)
	authed.HandleFunc("/categories", s.handleListCategories).Methods(http.MethodGet)
	authed.HandleFunc("/categories", s.handleCreateCategory).Methods(http.MethodPost)
	authed.HandleFunc("/categories/bulk", s.handleBulkDeleteCategories).Methods(http.MethodDelete)
	authed.HandleFunc("/categories/{id}", s.handleUpdateCategory).Methods(http.MethodPatch)
	authed.HandleFunc("/project/usage", s.handleUsage).Methods(http.MethodGet)
	authed.HandleFunc("", s.handleActivities).Methods(http.MethodGet)
	return r
}

// recordRequest captures the request for later assertions.
func (s *Server) recordRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body.Close()
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		s.mu.Lock()
		s.LastPath = r.URL.Path
		s.LastQuery = r.URL.Query()
		s.LastBody = body
		s.Requests++
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// requireToken rejects calls without the expected bearer token.
func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+s.Token {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{
				"message": "unauthorized", "status": 401, "data": nil,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// respond writes the standard {message, status, data} envelope with HTTP 200.
func (s *Server) respond(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if s.EmbeddedFailure != "" {
		json.NewEncoder(w).Encode(map[string]any{
			"message": s.EmbeddedFailure, "status": 500, "data": nil,
		})
		return
	}
	json.NewEncoder(w).Encode(map[string]any{
		"message": "success", "status": 200, "data": data,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	json.NewDecoder(r.Body).Decode(&req)
	s.respond(w, map[string]any{
		"accessToken":  AccessToken,
		"refreshToken": RefreshToken,
		"admin":        s.Admin,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.respond(w, nil)
}

// paginate slices [start, end) out of total items for the page/limit query
// and builds a consistent envelope.
func paginate(r *http.Request, total int) (start, end int, p models.Pagination) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	totalPages := (total + limit - 1) / limit
	start = (page - 1) * limit
	if start > total {
		start = total
	}
	end = start + limit
	if end > total {
		end = total
	}

	p = models.Pagination{
		Page:        page,
		Limit:       limit,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
	return start, end, p
}

func matches(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	filtered := make([]models.User, 0, len(s.Users))
	for _, u := range s.Users {
		if matches(search, u.Username, u.Email) {
			filtered = append(filtered, u)
		}
	}
	start, end, p := paginate(r, len(filtered))
	s.respond(w, map[string]any{"users": filtered[start:end], "pagination": p})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	for _, u := range s.Users {
		if u.ID == id {
			s.respond(w, map[string]any{"user": u})
			return
		}
	}
	s.respondFailure(w, "user not found", 404)
}

func (s *Server) handleUserStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req struct {
		Verify string `json:"verify"`
	}
	json.NewDecoder(r.Body).Decode(&req)
	for i := range s.Users {
		if s.Users[i].ID == id {
			s.Users[i].Verify = req.Verify
			s.respond(w, nil)
			return
		}
	}
	s.respondFailure(w, "user not found", 404)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if s.FailDeleteIDs[id] {
		s.respondFailure(w, "cannot delete user "+id, 500)
		return
	}
	for i := range s.Users {
		if s.Users[i].ID == id {
			s.Users = append(s.Users[:i], s.Users[i+1:]...)
			s.respond(w, nil)
			return
		}
	}
	s.respondFailure(w, "user not found", 404)
}

func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	filtered := make([]models.Group, 0, len(s.Groups))
	for _, g := range s.Groups {
		if matches(search, g.Name, g.Description) {
			filtered = append(filtered, g)
		}
	}
	start, end, p := paginate(r, len(filtered))
	s.respond(w, map[string]any{"groups": filtered[start:end], "pagination": p})
}

func (s *Server) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	for _, g := range s.Groups {
		if g.ID == id {
			s.respond(w, map[string]any{"group": g})
			return
		}
	}
	s.respondFailure(w, "group not found", 404)
}

func (s *Server) handleGroupStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req struct {
		Status string `json:"status"`
	}
	json.NewDecoder(r.Body).Decode(&req)
	for i := range s.Groups {
		if s.Groups[i].ID == id {
			s.Groups[i].IsArchived = req.Status == models.GroupArchived
			s.respond(w, nil)
			return
		}
	}
	s.respondFailure(w, "group not found", 404)
}

func (s *Server) handleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if s.FailDeleteIDs[id] {
		s.respondFailure(w, "cannot delete group "+id, 500)
		return
	}
	for i := range s.Groups {
		if s.Groups[i].ID == id {
			s.Groups = append(s.Groups[:i], s.Groups[i+1:]...)
			s.respond(w, nil)
			return
		}
	}
	s.respondFailure(w, "group not found", 404)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	filtered := make([]models.Category, 0, len(s.Categories))
	for _, c := range s.Categories {
		if matches(search, c.Name, c.Description) {
			filtered = append(filtered, c)
		}
	}
	start, end, p := paginate(r, len(filtered))
	s.respond(w, map[string]any{"categories": filtered[start:end], "pagination": p})
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	json.NewDecoder(r.Body).Decode(&req)
	id := "cat-" + strconv.Itoa(len(s.Categories)+1)
	s.Categories = append(s.Categories, models.Category{ID: id, Name: req.Name, Description: req.Description})
	s.respond(w, map[string]any{"_id": id})
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	json.NewDecoder(r.Body).Decode(&req)
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			s.Categories[i].Name = req.Name
			s.Categories[i].Description = req.Description
			s.respond(w, nil)
			return
		}
	}
	s.respondFailure(w, "category not found", 404)
}

func (s *Server) handleBulkDeleteCategories(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CategoryIDs []string `json:"categoryIds"`
	}
	json.NewDecoder(r.Body).Decode(&req)

	result := models.BulkDeleteResult{Failed: []string{}}
	for _, id := range req.CategoryIDs {
		if s.FailDeleteIDs[id] {
			result.FailedCount++
			result.Failed = append(result.Failed, id)
			continue
		}
		for i := range s.Categories {
			if s.Categories[i].ID == id {
				s.Categories = append(s.Categories[:i], s.Categories[i+1:]...)
				break
			}
		}
		result.SuccessCount++
	}
	s.respond(w, result)
}

func (s *Server) handleUsage(w http.ResponseWriter, r *http.Request) {
	s.respond(w, s.Usage)
}

func (s *Server) handleActivities(w http.ResponseWriter, r *http.Request) {
	s.respond(w, map[string]any{"recentActivities": s.Activities})
}

// respondFailure writes an embedded failure inside an HTTP 200, the way the
// real server reports application-level errors.
func (s *Server) respondFailure(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"message": message, "status": status, "data": nil,
	})
}
