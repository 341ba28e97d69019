// Package router wires the HTTP routes and middleware chains for the
// Old Vine API server. Routes split into a public group consumed by the
// website and an authenticated group used by the admin panel.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"oldvine/internal/handlers"
	"oldvine/internal/middleware"
	"oldvine/internal/session"
)

// Deps carries everything the router needs. Keeps New's signature flat
// as handler groups accumulate.
type Deps struct {
	Sessions       *session.Store
	RateLimiter    *middleware.RateLimiter
	FrontendOrigin string
	StaticDataDir  string

	Admin      *handlers.Admin
	Content    *handlers.Content
	Rooms      *handlers.Rooms
	Categories *handlers.Categories
	Blog       *handlers.Blog
	Bookings   *handlers.Bookings
	Settings   *handlers.Settings
	Contact    *handlers.Contact
	Media      *handlers.Media
}

// New creates the configured Chi router.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{d.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if d.RateLimiter != nil {
		r.Use(d.RateLimiter.Middleware)
	}

	r.Get("/health", healthHandler)

	// Mirrored JSON files for the static site build.
	if d.StaticDataDir != "" {
		fs := http.StripPrefix("/static-data/", http.FileServer(http.Dir(d.StaticDataDir)))
		r.Get("/static-data/*", fs.ServeHTTP)
	}

	requireAuth := middleware.RequireAuth(d.Sessions)

	r.Route("/api", func(r chi.Router) {
		// Admin session endpoints.
		r.Post("/admin/login", d.Admin.Login)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/admin/me", d.Admin.Me)
			r.Post("/admin/logout", d.Admin.Logout)
			r.Get("/admin/stats", d.Admin.Stats)
		})

		// Page content.
		r.Get("/content/{page}", d.Content.Get)
		r.With(requireAuth).Put("/content/{page}", d.Content.Update)

		// Rooms.
		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", d.Rooms.List)
			r.Get("/{id}", d.Rooms.Get)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", d.Rooms.Create)
				r.Put("/{id}", d.Rooms.Update)
				r.Delete("/{id}", d.Rooms.Delete)
			})
		})

		// Room categories.
		r.Route("/room-categories", func(r chi.Router) {
			r.Get("/", d.Categories.ListRoomCategories)
			r.Get("/{slug}", d.Categories.GetRoomCategory)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", d.Categories.CreateRoomCategory)
				r.Put("/{slug}", d.Categories.UpdateRoomCategory)
				r.Delete("/{slug}", d.Categories.DeleteRoomCategory)
			})
		})

		// Gallery categories.
		r.Route("/gallery-categories", func(r chi.Router) {
			r.Get("/", d.Categories.ListGalleryCategories)
			r.Get("/{slug}", d.Categories.GetGalleryCategory)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", d.Categories.CreateGalleryCategory)
				r.Put("/{slug}", d.Categories.UpdateGalleryCategory)
				r.Delete("/{slug}", d.Categories.DeleteGalleryCategory)
			})
		})

		// Blog. The admin listing sits under /blog/admin/all so the
		// public slug route never shadows it.
		r.Route("/blog", func(r chi.Router) {
			r.Get("/", d.Blog.ListPublished)
			r.With(requireAuth).Get("/admin/all", d.Blog.ListAll)
			r.Get("/{slug}", d.Blog.GetPublished)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", d.Blog.Create)
				r.Put("/{id}", d.Blog.Update)
				r.Delete("/{id}", d.Blog.Delete)
			})
		})

		// Bookings: public stub creates, admin reads.
		r.Post("/bookings", d.Bookings.Create)
		r.With(requireAuth).Get("/bookings", d.Bookings.List)

		// Settings and contact.
		r.Get("/settings", d.Settings.Get)
		r.With(requireAuth).Put("/settings", d.Settings.Update)
		r.Get("/contact/info", d.Settings.ContactInfo)
		r.Post("/contact", d.Contact.Submit)
		r.With(requireAuth).Get("/contact/messages", d.Contact.List)

		// Media library.
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/upload", d.Media.Upload)
			r.Get("/upload/list", d.Media.List)
			r.Delete("/upload/{filename}", d.Media.Delete)
		})
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
