package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/viettrungIT3/inventory-admin/internal/api/handlers"
	"github.com/viettrungIT3/inventory-admin/internal/inventory"
	"github.com/viettrungIT3/inventory-admin/internal/services"
	"github.com/viettrungIT3/inventory-admin/internal/session"
	"github.com/viettrungIT3/inventory-admin/internal/websocket"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(sessions *session.Store, apiClient *inventory.Client, stats services.StatsServiceProvider, notifications services.NotificationServiceProvider, hub *websocket.Hub) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development tooling hitting the console
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(sessions, apiClient, notifications, hub)
	dashboardHandler := handlers.NewDashboardHandler(sessions, apiClient, stats, notifications)
	wsHandler := handlers.NewWebSocketHandler(hub)

	// Public entry points
	r.Get("/", authHandler.Home)
	r.Get("/login", authHandler.LoginForm)
	r.Post("/login", authHandler.Login)

	// Everything below requires an active session
	r.Group(func(r chi.Router) {
		r.Use(RequireSession(sessions))

		r.Post("/logout", authHandler.Logout)
		r.Get("/ws", wsHandler.Serve)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", dashboardHandler.Overview)
			r.Get("/{resource}", dashboardHandler.Resource)
		})
	})

	return r
}
