package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/openvoyage/voyage/internal/cms/service"
	"github.com/openvoyage/voyage/internal/cms/store"
	"github.com/openvoyage/voyage/pkg/httpx"
	"github.com/openvoyage/voyage/pkg/jwtx"
	"github.com/openvoyage/voyage/pkg/slogx"
)

const (
	// ProtectedPrefix is the URL subtree the session gate guards. Everything
	// else on the site is public.
	ProtectedPrefix = "/dashboard"

	// LoginPath is where unauthenticated dashboard requests get redirected.
	LoginPath = "/login"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	SessionService     *service.SessionService
	DestinationService *service.DestinationService
	TestimonialService *service.TestimonialService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
	}

	// Global middleware chain. The gate sits here rather than per-route so
	// any future route under the protected prefix is covered automatically.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.SessionGate(r.verifier, ProtectedPrefix, LoginPath),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerDestinations()
	r.registerTestimonials()
	r.registerPages()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{Sessions: r.SessionService}

	// Strict limit on login: it is the only credential-guessing surface.
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.Login),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /api/auth/logout", http.HandlerFunc(h.Logout))
}

func (r *Router) registerDestinations() {
	h := &DestinationsHandler{Destinations: r.DestinationService}

	r.Mux.Handle("GET /api/destinations",
		httpx.Chain(http.HandlerFunc(h.List),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("POST /api/destinations", http.HandlerFunc(h.Create))
	r.Mux.Handle("PUT /api/destinations/{id}", http.HandlerFunc(h.Update))
	r.Mux.Handle("DELETE /api/destinations/{id}", http.HandlerFunc(h.Delete))
}

func (r *Router) registerTestimonials() {
	h := &TestimonialsHandler{Testimonials: r.TestimonialService}

	r.Mux.Handle("GET /api/testimonials",
		httpx.Chain(http.HandlerFunc(h.List),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("POST /api/testimonials", http.HandlerFunc(h.Create))
	r.Mux.Handle("PUT /api/testimonials/{id}", http.HandlerFunc(h.Update))
	r.Mux.Handle("DELETE /api/testimonials/{id}", http.HandlerFunc(h.Delete))
}

func (r *Router) registerPages() {
	h := &PagesHandler{
		Destinations: r.DestinationService,
		Testimonials: r.TestimonialService,
	}

	r.Mux.Handle("GET /{$}", http.HandlerFunc(h.Landing))
	r.Mux.Handle("GET /login", http.HandlerFunc(h.Login))
	r.Mux.Handle("GET /dashboard", http.HandlerFunc(h.Dashboard))
	r.Mux.Handle("GET /dashboard/destinations", http.HandlerFunc(h.DashboardDestinations))
	r.Mux.Handle("GET /dashboard/testimonials", http.HandlerFunc(h.DashboardTestimonials))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
