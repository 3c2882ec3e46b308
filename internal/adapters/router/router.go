package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/AchilleasB/mindease/wellness-service/internal/adapters/handler"
	httpmiddleware "github.com/AchilleasB/mindease/wellness-service/internal/adapters/middleware"
	"github.com/AchilleasB/mindease/wellness-service/internal/observability/metrics"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger  *logging.Logger
	Metrics *metrics.Metrics

	Sessions    *httpmiddleware.SessionMiddleware
	RateLimiter *httpmiddleware.RateLimiter

	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Pages     *handler.PageHandler
	Dashboard *handler.DashboardHandler
	Mood      *handler.MoodHandler
	Booking   *handler.BookingHandler
	Blog      *handler.BlogHandler
	Community *handler.CommunityHandler
	Admin     *handler.AdminHandler

	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a chi router with every page route configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	r.Use(httpmiddleware.RequestLogger(cfg.Logger, cfg.Metrics))

	// Probes and metrics skip session loading
	r.Get("/health", cfg.Health.Health)
	r.Get("/health/ready", cfg.Health.Ready)
	r.Get("/health/live", cfg.Health.Live)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Group(func(app chi.Router) {
		app.Use(cfg.Sessions.Load)

		app.Group(func(public chi.Router) {
			public.Get("/", cfg.Pages.Home)
			public.Get("/login", cfg.Auth.LoginPage)
			public.Get("/register", cfg.Auth.RegisterPage)
			public.Get("/about", cfg.Pages.About)
			public.Get("/contact", cfg.Pages.Contact)

			public.Get("/blog", cfg.Blog.List)
			public.Get("/blog/{id}", cfg.Blog.Get)
			public.Get("/blog/{id}/comments", cfg.Blog.Comments)
			public.Post("/blog/{id}/comments", cfg.Blog.AddComment)
		})

		app.Group(func(limited chi.Router) {
			if cfg.RateLimiter != nil {
				limited.Use(cfg.RateLimiter.Limit)
			}
			limited.Post("/login", cfg.Auth.Login)
			limited.Post("/register", cfg.Auth.Register)
			limited.Post("/forgot-password", cfg.Auth.ForgotPassword)
			limited.Post("/contact", cfg.Pages.SubmitContact)
		})

		app.Group(func(authed chi.Router) {
			authed.Use(cfg.Sessions.RequireAuth)

			authed.Post("/logout", cfg.Auth.Logout)
			authed.Get("/dashboard", cfg.Dashboard.Dashboard)

			authed.Get("/mental-tracker", cfg.Mood.Page)
			authed.Post("/mental-tracker", cfg.Mood.Record)

			authed.Route("/appointments", func(ar chi.Router) {
				ar.Get("/", cfg.Booking.Page)
				ar.Get("/therapists", cfg.Booking.Therapists)
				ar.Get("/therapists/{id}/slots", cfg.Booking.Slots)
				ar.Post("/booking/therapist", cfg.Booking.SelectTherapist)
				ar.Post("/booking/date", cfg.Booking.SelectDate)
				ar.Post("/booking/slot", cfg.Booking.SelectSlot)
				ar.Post("/booking/notes", cfg.Booking.SetNotes)
				ar.Post("/booking/confirm", cfg.Booking.Confirm)
			})

			authed.Route("/community", func(cr chi.Router) {
				cr.Get("/", cfg.Community.Feed)
				cr.Post("/posts", cfg.Community.CreatePost)
				cr.Post("/posts/{id}/like", cfg.Community.Like)
				cr.Post("/posts/{id}/comments", cfg.Community.AddComment)
				cr.Post("/posts/{id}/report", cfg.Community.Report)
			})
		})

		app.Route("/admin", func(admin chi.Router) {
			admin.Use(cfg.Sessions.RequireAdmin)

			admin.Get("/", cfg.Admin.Overview)
			admin.Get("/users", cfg.Admin.Users)
			admin.Post("/users/{id}/activate", cfg.Admin.Activate)
			admin.Post("/users/{id}/deactivate", cfg.Admin.Deactivate)
			admin.Delete("/users/{id}", cfg.Admin.DeleteUser)
			admin.Get("/appointments", cfg.Admin.Appointments)
		})
	})

	return r
}
