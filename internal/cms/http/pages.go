package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/openvoyage/voyage/internal/cms/domain"
	"github.com/openvoyage/voyage/internal/cms/service"
	"github.com/openvoyage/voyage/pkg/httpx"
	"github.com/openvoyage/voyage/pkg/slogx"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// PagesHandler renders the public site and the dashboard shells. The
// dashboard pages are server-rendered lists with small inline scripts that
// talk to the JSON API for mutations.
type PagesHandler struct {
	Destinations *service.DestinationService
	Testimonials *service.TestimonialService
}

type landingData struct {
	Destinations []domain.Destination
	Testimonials []domain.Testimonial
}

func (h *PagesHandler) Landing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dests, err := h.Destinations.List(ctx)
	if err != nil {
		renderError(w, r, err)
		return
	}
	tms, err := h.Testimonials.List(ctx)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render(w, r, "landing.html", landingData{Destinations: dests, Testimonials: tms})
}

func (h *PagesHandler) Login(w http.ResponseWriter, r *http.Request) {
	render(w, r, "login.html", nil)
}

type dashboardData struct {
	UserName     string
	Destinations []domain.Destination
	Testimonials []domain.Testimonial
}

func (h *PagesHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := dashboardData{UserName: sessionName(r)}
	render(w, r, "dashboard.html", data)
}

func (h *PagesHandler) DashboardDestinations(w http.ResponseWriter, r *http.Request) {
	dests, err := h.Destinations.List(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}
	render(w, r, "dashboard_destinations.html", dashboardData{
		UserName:     sessionName(r),
		Destinations: dests,
	})
}

func (h *PagesHandler) DashboardTestimonials(w http.ResponseWriter, r *http.Request) {
	tms, err := h.Testimonials.List(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}
	render(w, r, "dashboard_testimonials.html", dashboardData{
		UserName:     sessionName(r),
		Testimonials: tms,
	})
}

func sessionName(r *http.Request) string {
	if claims, ok := httpx.SessionFromContext(r.Context()); ok {
		return claims.Name
	}
	return ""
}

func render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		slogx.FromContext(r.Context()).Error("template render failed", "template", name, "err", err)
	}
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	slogx.FromContext(r.Context()).Error("page data load failed", "err", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
