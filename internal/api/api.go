package api

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/luizgag/fiap-backend-qualidade/internal/auth"
	"github.com/luizgag/fiap-backend-qualidade/internal/config"
	"github.com/luizgag/fiap-backend-qualidade/internal/store"
)

type Api struct {
	Config config.Config
	Store  *store.Store
	Auth   *auth.Service
	Tokens *auth.TokenManager
	Router *chi.Mux
}

// NewApi wires the store, the auth service and the router together. The
// database handle is owned by the caller.
func NewApi(cfg config.Config, db *sql.DB) (*Api, error) {
	if cfg.APIPort == 0 {
		return nil, fmt.Errorf("must have at least a port to start API")
	}

	st := store.New(db, cfg.Database.Type)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret)

	api := &Api{
		Config: cfg,
		Store:  st,
		Auth:   auth.NewService(st, st, tokens, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL),
		Tokens: tokens,
		Router: chi.NewRouter(),
	}

	api.setupRoutes()
	return api, nil
}

func (api *Api) setupRoutes() {
	r := api.Router

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   api.Config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "accessToken"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	r.Get("/heartbeat", api.Heartbeat)

	r.Route("/api", func(r chi.Router) {
		// Public auth routes; these bypass the access guard.
		r.Post("/register", api.RegisterHandler)
		r.Post("/login", api.LoginHandler)
		r.Post("/refresh", api.RefreshHandler)
		r.Post("/logout", api.LogoutHandler)

		// Everything else requires a valid access token.
		r.Group(func(r chi.Router) {
			r.Use(auth.AccessGuard(api.Tokens))

			r.Get("/users/me", api.MeHandler)
			r.Put("/users/{id}", api.UpdateUserHandler)
			r.Get("/users/{id}/likes", api.GetUserLikesHandler)

			r.Get("/posts", api.ListPostsHandler)
			r.Get("/posts/search/{search}", api.SearchPostsHandler)
			r.Get("/posts/{id}", api.GetPostHandler)
			r.Post("/posts", api.CreatePostHandler)
			r.Put("/posts/{id}", api.UpdatePostHandler)
			r.Delete("/posts/{id}", api.DeletePostHandler)

			r.Get("/posts/{id}/comments", api.GetPostCommentsHandler)
			r.Post("/comments", api.CreateCommentHandler)
			r.Put("/comments/{id}", api.UpdateCommentHandler)
			r.Delete("/comments/{id}", api.DeleteCommentHandler)

			r.Post("/posts/{id}/like", api.ToggleLikeHandler)
			r.Get("/posts/{id}/likes", api.GetPostLikesHandler)
			r.Get("/posts/{id}/likes/count", api.GetLikeCountHandler)
		})
	})
}

// Serve starts the HTTP server and blocks until it fails.
func (api *Api) Serve() {
	server := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", api.Config.APIPort),
		Handler:      api.Router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("Starting API server on %s", server.Addr)
	log.Fatal(server.ListenAndServe())
}

func (api *Api) Heartbeat(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
