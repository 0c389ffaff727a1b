package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mara/thread-board-website/internal/api/handlers"
	"github.com/mara/thread-board-website/internal/api/middleware"
	"github.com/mara/thread-board-website/internal/config"
	"github.com/mara/thread-board-website/internal/service"
	"github.com/mara/thread-board-website/internal/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func NewRouter(services *service.Services, hub *websocket.Hub, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)
	r.Use(middleware.Metrics)

	// Health and metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	profileHandler := handlers.NewProfileHandler(services.Profile)
	threadHandler := handlers.NewThreadHandler(services.Thread)
	wsHandler := handlers.NewWebSocketHandler(hub)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Credential endpoints are rate limited per client IP
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.AuthRateRPS, cfg.AuthRateBurst))
			r.Post("/sign-up", authHandler.SignUp)
			r.Post("/sign-in", authHandler.SignIn)
		})
		r.Get("/sign-up/activation/{token}", authHandler.Activate)

		// Profile routes
		r.Route("/profile", func(r chi.Router) {
			r.Get("/search/{namePart}", profileHandler.Search)
			r.Get("/name/{profileName}", profileHandler.GetByName)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", profileHandler.Me)
				r.Put("/{profileId}", profileHandler.Update)
			})

			r.Get("/{profileId}", profileHandler.GetByID)
		})

		// Thread routes
		r.Route("/thread", func(r chi.Router) {
			r.Get("/", threadHandler.GetAll)
			r.Get("/page/{page}", threadHandler.GetPage)
			r.Get("/replies/{threadId}", threadHandler.GetReplies)
			r.Get("/profile-name/{profileName}", threadHandler.GetByProfileName)
			r.Get("/profile/{profileId}", threadHandler.GetByProfileID)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Post("/", threadHandler.Post)
				r.Delete("/{threadId}", threadHandler.Delete)
			})

			r.Get("/{threadId}", threadHandler.GetByID)
		})

		// Protected session routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Post("/sign-out", authHandler.SignOut)
		})

		// Live thread feed
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
