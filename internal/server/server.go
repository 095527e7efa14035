package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"chorejar/internal/availability"
	"chorejar/internal/handler"
	"chorejar/internal/middleware"
	"chorejar/internal/photo"
	"chorejar/internal/store"
)

type Server struct {
	db           *sql.DB
	authH        *handler.AuthHandler
	kidH         *handler.KidHandler
	choreH       *handler.ChoreHandler
	taskH        *handler.TaskHandler
	sessionStore *store.SessionStore
	rateLimiter  *middleware.RateLimiter
	logger       *slog.Logger
}

func New(db *sql.DB, photos *photo.Store, logger *slog.Logger) *Server {
	userStore := store.NewUserStore(db)
	sessionStore := store.NewSessionStore(db)
	kidStore := store.NewKidStore(db)
	choreStore := store.NewChoreStore(db)
	taskStore := store.NewTaskStore(db)
	earningStore := store.NewEarningStore(db)

	resolver := availability.NewResolver(choreStore, taskStore)

	return &Server{
		db:           db,
		authH:        handler.NewAuthHandler(userStore, sessionStore, choreStore, logger.With("component", "auth")),
		kidH:         handler.NewKidHandler(kidStore, taskStore, earningStore, logger.With("component", "kid")),
		choreH:       handler.NewChoreHandler(choreStore, kidStore, userStore, resolver, logger.With("component", "chore")),
		taskH:        handler.NewTaskHandler(taskStore, choreStore, kidStore, photos, logger.With("component", "task")),
		sessionStore: sessionStore,
		rateLimiter:  middleware.NewRateLimiter(),
		logger:       logger,
	}
}

// SessionStore returns the session store for cleanup tasks.
func (s *Server) SessionStore() *store.SessionStore {
	return s.sessionStore
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no auth required)
	outerMux.HandleFunc("POST /api/auth/register", s.rateLimitedHandler(s.authH.Register))
	outerMux.HandleFunc("POST /api/auth/login", s.rateLimitedHandler(s.authH.Login))
	outerMux.HandleFunc("GET /health", s.healthHandler)

	// Kid-facing routes. Kids use a shared family device without logging in,
	// so these are public.
	outerMux.HandleFunc("GET /api/kids/{id}/chores", s.choreH.KidChores)
	outerMux.HandleFunc("GET /api/kids/{id}/available-chores", s.choreH.AvailableChores)
	outerMux.HandleFunc("GET /api/kids/{id}/tasks", s.taskH.ListByKid)
	outerMux.HandleFunc("GET /api/kids/{id}/completed-tasks", s.taskH.CompletedByKid)
	outerMux.HandleFunc("GET /api/kids/{id}/earnings", s.kidH.Earnings)
	outerMux.HandleFunc("POST /api/tasks/start", s.taskH.Start)
	outerMux.HandleFunc("POST /api/tasks/{id}/complete", s.taskH.Complete)

	// Protected routes, wrapped with RequireAuth middleware
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireAuth(s.sessionStore)
	outerMux.Handle("/", authMiddleware(protectedMux))

	// Apply request logging middleware
	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/logout", s.authH.Logout)
	mux.HandleFunc("GET /api/auth/me", s.authH.Me)
	mux.HandleFunc("PUT /api/auth/timezone", s.authH.UpdateTimezone)

	// Kid API routes
	mux.HandleFunc("POST /api/kids", s.kidH.Create)
	mux.HandleFunc("GET /api/kids", s.kidH.List)
	mux.HandleFunc("GET /api/kids/{id}", s.kidH.Get)
	mux.HandleFunc("PUT /api/kids/{id}", s.kidH.Update)
	mux.HandleFunc("DELETE /api/kids/{id}", s.kidH.Delete)
	mux.HandleFunc("POST /api/kids/{id}/reset-earnings", s.kidH.ResetEarnings)
	mux.HandleFunc("GET /api/kids/{id}/earning-periods", s.kidH.Periods)

	// Chore API routes
	mux.HandleFunc("POST /api/chores", s.choreH.Create)
	mux.HandleFunc("GET /api/chores", s.choreH.List)
	mux.HandleFunc("GET /api/chores/{id}", s.choreH.Get)
	mux.HandleFunc("PUT /api/chores/{id}", s.choreH.Update)
	mux.HandleFunc("DELETE /api/chores/{id}", s.choreH.Delete)
	mux.HandleFunc("POST /api/chores/{id}/assign", s.choreH.Assign)
	mux.HandleFunc("DELETE /api/assignments/{id}", s.choreH.RemoveAssignment)

	// Task review routes
	mux.HandleFunc("POST /api/tasks/{id}/approve", s.taskH.Approve)
	mux.HandleFunc("POST /api/tasks/{id}/reject", s.taskH.Reject)
}
