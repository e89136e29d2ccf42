package router

import (
	"net/http"
	"time"

	"clinic-cms/internal/handler"
	"clinic-cms/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Health      *handler.HealthHandler
	Admin       *handler.AdminHandler
	Product     *handler.ProductHandler
	Blog        *handler.BlogHandler
	Testimonial *handler.TestimonialHandler
	Appointment *handler.AppointmentHandler
	Gallery     *handler.GalleryHandler
	Contact     *handler.ContactHandler
}

// Options configures cross-cutting router behaviour.
type Options struct {
	// Verifier checks admin tokens on protected routes.
	Verifier middleware.TokenVerifier

	// EnforceAuth guards admin-only routes with AuthGuard.
	EnforceAuth bool

	// RegistrationOpen leaves admin registration unauthenticated.
	RegistrationOpen bool

	AllowedOrigins []string
	RequestTimeout time.Duration
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, opts Options, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Applied in order: RequestID -> Recovery -> Logging -> CORS -> Timeout
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(opts.AllowedOrigins))
	if opts.RequestTimeout > 0 {
		r.Use(chimw.Timeout(opts.RequestTimeout))
	}

	guard := func(next http.Handler) http.Handler { return next }
	if opts.EnforceAuth {
		guard = middleware.AuthGuard(opts.Verifier, logger)
	}

	registerGuard := guard
	if opts.RegistrationOpen {
		registerGuard = func(next http.Handler) http.Handler { return next }
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.Health.Root)
		r.Get("/health", h.Health.Ready)

		r.Route("/admin", func(r chi.Router) {
			r.With(registerGuard).Post("/register", h.Admin.Register)
			r.Post("/login", h.Admin.Login)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Product.List)
			r.Get("/{id}", h.Product.GetByID)
			r.With(guard).Post("/", h.Product.Create)
			r.With(guard).Put("/{id}", h.Product.Replace)
			r.With(guard).Delete("/{id}", h.Product.Delete)
		})

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", h.Blog.List)
			r.Get("/{slug}", h.Blog.GetBySlug)
			r.With(guard).Post("/", h.Blog.Create)
			r.With(guard).Put("/{id}", h.Blog.Replace)
			r.With(guard).Delete("/{id}", h.Blog.Delete)
		})

		r.Route("/testimonials", func(r chi.Router) {
			r.Get("/", h.Testimonial.List)
			r.With(guard).Post("/", h.Testimonial.Create)
			r.With(guard).Put("/{id}", h.Testimonial.Replace)
			r.With(guard).Delete("/{id}", h.Testimonial.Delete)
		})

		r.Route("/appointments", func(r chi.Router) {
			r.Post("/", h.Appointment.Create)
			r.With(guard).Get("/", h.Appointment.List)
			r.With(guard).Put("/{id}/status", h.Appointment.UpdateStatus)
		})

		r.Route("/gallery", func(r chi.Router) {
			r.Get("/", h.Gallery.List)
			r.With(guard).Post("/", h.Gallery.Create)
			r.With(guard).Delete("/{id}", h.Gallery.Delete)
		})

		r.Route("/contact", func(r chi.Router) {
			r.Post("/", h.Contact.Submit)
			r.With(guard).Get("/", h.Contact.List)
		})
	})

	return r
}
