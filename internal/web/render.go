// Package web holds the HTML templates and the renderer the page
// handlers draw with.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/lib/sl"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page is the data every template renders against.
type Page struct {
	Title  string
	User   *api.User // nil when logged out
	Path   string
	Error  string
	Notice string
	Query  string
	Data   any
}

// Renderer parses the embedded templates once and renders pages against
// the shared layout.
type Renderer struct {
	pages map[string]*template.Template
	log   *slog.Logger
}

var pageNames = []string{
	"home.html",
	"about.html",
	"services.html",
	"training.html",
	"programs.html",
	"program_enroll.html",
	"contact.html",
	"login.html",
	"signup.html",
	"forgot_password.html",
	"reset_password.html",
	"profile.html",
	"change_password.html",
	"admin_users.html",
	"admin_courses.html",
	"admin_programs.html",
	"admin_enrollments.html",
	"error.html",
}

func NewRenderer(log *slog.Logger) (*Renderer, error) {
	const op = "web.NewRenderer"

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", op, name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages, log: log}, nil
}

// HTML renders the named page into the response with the given status.
// Rendering goes through a buffer so a template fault never produces a
// half-written page.
func (r *Renderer) HTML(w http.ResponseWriter, status int, name string, page Page) {
	const op = "web.HTML"

	tmpl, ok := r.pages[name]
	if !ok {
		r.log.Error("unknown template", slog.String("op", op), slog.String("name", name))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		r.log.Error("template execution failed",
			slog.String("op", op), slog.String("name", name), sl.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// NotFound renders the full-page "not found" state.
func (r *Renderer) NotFound(w http.ResponseWriter, page Page) {
	if page.Title == "" {
		page.Title = "Not Found"
	}
	r.HTML(w, http.StatusNotFound, "error.html", page)
}
