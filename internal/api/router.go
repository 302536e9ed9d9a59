package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/noteshq/notesapi/internal/api/handlers"
	"github.com/noteshq/notesapi/internal/api/middleware"
	"github.com/noteshq/notesapi/internal/audit"
	"github.com/noteshq/notesapi/internal/auth"
	"github.com/noteshq/notesapi/internal/cache"
	"github.com/noteshq/notesapi/internal/config"
	"github.com/noteshq/notesapi/internal/notes"
	"github.com/noteshq/notesapi/internal/users"
)

type Router struct {
	mux   *chi.Mux
	db    *pgxpool.Pool
	redis *redis.Client
	cfg   *config.Config

	users  *users.Service
	notes  *notes.Service
	audit  *audit.Service
	tokens *auth.TokenManager
	authn  *auth.Middleware
}

// NewRouter wires stores and services. A nil db selects the in-memory
// stores; a nil redis client runs the note list without a cache.
func NewRouter(db *pgxpool.Pool, rdb *redis.Client, cfg *config.Config) *Router {
	var (
		userStore users.Store
		noteStore notes.Store
		logStore  audit.LogStore
	)
	if db != nil {
		userStore = users.NewPostgresStore(db)
		noteStore = notes.NewPostgresStore(db)
		logStore = audit.NewPostgresLogStore(db)
	} else {
		userStore = users.NewMemoryStore()
		noteStore = notes.NewMemoryStore()
		logStore = audit.NewMemoryLogStore()
	}

	var noteCache *cache.Cache
	if rdb != nil {
		noteCache = cache.NewCache(rdb)
	}

	userSvc := users.NewService(userStore)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authenticator := auth.NewAuthenticator(tokens, userStore)

	return &Router{
		mux:    chi.NewRouter(),
		db:     db,
		redis:  rdb,
		cfg:    cfg,
		users:  userSvc,
		notes:  notes.NewService(noteStore, noteCache, cfg.Redis.NotesTTL),
		audit:  audit.NewService(logStore),
		tokens: tokens,
		authn:  auth.NewMiddleware(authenticator, cfg.Auth.APIKeyHeader),
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	requestLog := middleware.NewRequestLog(rt.audit)

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	// CORS answers preflights itself, and no OPTIONS routes exist, so it has
	// to run before routing rather than inside a route group.
	r.Use(middleware.CORS(rt.cfg.Server.CORSOrigins))

	// Health endpoints sit outside the request log: liveness probes would
	// otherwise drown the audit trail.
	health := handlers.NewHealthHandler(rt.db, rt.redis)
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	authH := handlers.NewAuthHandler(rt.users, rt.tokens)
	notesH := handlers.NewNotesHandler(rt.notes)
	usersH := handlers.NewUsersHandler(rt.users)
	logsH := handlers.NewLogsHandler(rt.audit)

	// The request log wraps Recoverer so even a recovered panic produces a
	// log entry with its 500.
	r.Group(func(r chi.Router) {
		r.Use(requestLog.Handler)
		r.Use(chimiddleware.Recoverer)

		// Public endpoints
		r.Post("/register", authH.Register)
		r.Post("/token", authH.Token)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(rt.authn.Authenticate)

			r.Route("/notes", func(r chi.Router) {
				r.Post("/", notesH.Create)
				r.Get("/", notesH.List)
				r.Put("/{id}", notesH.Update)
				r.Delete("/{id}", notesH.Delete)
			})

			// Admin endpoints: the role gate runs before any handler, so a
			// non-admin sees 403 no matter whether the target exists.
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin)

				r.Get("/logs", logsH.List)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", usersH.List)
					r.Put("/{user}/deactivate", usersH.Deactivate)
					r.Put("/{user}/reset_password", usersH.ResetPassword)
					r.Put("/{user}/update_role", usersH.UpdateRole)
					r.Delete("/{user}", usersH.Delete)
				})
			})
		})
	})

	// Requests matching no route are audited too. chi copies these handlers
	// into the mounted subtrees, whose requests already pass through the
	// group's request log; the middleware records only at its outermost
	// instance, so a miss inside a subtree still yields one entry.
	r.NotFound(requestLog.Handler(http.HandlerFunc(http.NotFound)).ServeHTTP)
	r.MethodNotAllowed(requestLog.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	})).ServeHTTP)

	return r
}
