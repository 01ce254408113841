package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/brainstash-be/internal/api/handlers"
	"github.com/isdelr/brainstash-be/internal/auth"
	"github.com/isdelr/brainstash-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(tokens *auth.TokenManager, userService services.UserServiceProvider, contentService services.ContentServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	contentHandler := handlers.NewContentHandler(contentService)
	brainHandler := handlers.NewBrainHandler()

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints
		r.Post("/signup", authHandler.Signup)
		r.Post("/signin", authHandler.Signin)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(tokens.Middleware(auth.RoleUser))

			r.Route("/content", func(r chi.Router) {
				r.Post("/", contentHandler.Create)
				r.Get("/", contentHandler.List)
				r.Delete("/", contentHandler.Delete)
			})

			r.Post("/brain/share", brainHandler.Share)
			r.Get("/brain/{shareLink}", brainHandler.Resolve)
		})
	})

	return r
}
