// Package enrollact serves the JSON enroll endpoints the catalog pages
// call from their page script. A signed-in click submits the
// enrollment; a signed-out click records a deferred intent and answers
// with a redirect to the login page, carrying the page to come back to.
package enrollact

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/helpers"
	"github.com/TheoNshimyimana/success-frontend/internal/http/middlewarectx"
	"github.com/TheoNshimyimana/success-frontend/internal/http/response"
	"github.com/TheoNshimyimana/success-frontend/internal/lib/sl"
	"github.com/TheoNshimyimana/success-frontend/internal/metrics"
	"github.com/TheoNshimyimana/success-frontend/internal/session"
)

type Service interface {
	EnrollCourse(ctx context.Context, token, courseID string) error
	EnrollProgram(ctx context.Context, token, programID string) error
}

// Request is the body the page script sends: the path of the page the
// click happened on, used as the return target after login.
type Request struct {
	Path string `json:"path"`
}

// Result is the data half of a successful answer. Exactly one field is
// set: Redirect when the caller must go sign in first, Message when the
// enrollment went through and the page should show a toast.
type Result struct {
	Redirect string `json:"redirect,omitempty"`
	Message  string `json:"message,omitempty"`
}

type Handler struct {
	log      *slog.Logger
	service  Service
	sessions *session.Store
}

func New(log *slog.Logger, service Service, sessions *session.Store) *Handler {
	return &Handler{log: log, service: service, sessions: sessions}
}

// EnrollCourse handles POST /enroll/course/{id}.
func (h *Handler) EnrollCourse(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, session.IntentCourse)
}

// EnrollProgram handles POST /enroll/program/{id}.
func (h *Handler) EnrollProgram(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, session.IntentProgram)
}

func (h *Handler) act(w http.ResponseWriter, r *http.Request, kind session.IntentKind) {
	const op = "handlers.catalog.enrollact"
	log := helpers.RequestLogger(h.log, op, r)

	itemID := chi.URLParam(r, "id")

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request"))
		return
	}
	// Only site-local paths: "//host" is scheme-relative and would
	// leave the site after the login round-trip.
	if req.Path == "" || req.Path[0] != '/' || strings.HasPrefix(req.Path, "//") {
		req.Path = "/"
	}

	sess, ok := middlewarectx.SessionFrom(r.Context())
	if !ok {
		sid := middlewarectx.SIDFrom(r.Context())
		if sid == "" {
			sid = h.sessions.IssueCookie(w)
		}
		intent := session.Intent{ItemID: itemID, Kind: kind, Path: req.Path}
		if err := h.sessions.RecordIntent(r.Context(), sid, intent); err != nil {
			log.Error("failed to record enrollment intent", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Something went wrong. Please try again."))
			return
		}
		render.JSON(w, r, response.OKWithData(Result{
			Redirect: "/login?from=" + url.QueryEscape(req.Path),
		}))
		return
	}

	var err error
	switch kind {
	case session.IntentProgram:
		err = h.service.EnrollProgram(r.Context(), sess.Token, itemID)
	default:
		err = h.service.EnrollCourse(r.Context(), sess.Token, itemID)
	}
	if err != nil {
		metrics.EnrollmentsSubmitted.WithLabelValues(string(kind), "error").Inc()
		if api.IsAuth(err) {
			// Expired credential: drop the session and send the script
			// through the login flow like an unauthenticated click.
			sid := middlewarectx.SIDFrom(r.Context())
			if clearErr := h.sessions.Clear(r.Context(), sid); clearErr != nil {
				log.Error("failed to clear session", sl.Err(clearErr))
			}
			h.sessions.ClearCookie(w)
			render.JSON(w, r, response.OKWithData(Result{
				Redirect: "/login?from=" + url.QueryEscape(req.Path),
			}))
			return
		}
		log.Error("enrollment failed", sl.Err(err),
			slog.String("kind", string(kind)), slog.String("item_id", itemID))
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, response.Error(api.UserMessage(err, "Your enrollment could not be submitted. Please try again.")))
		return
	}

	metrics.EnrollmentsSubmitted.WithLabelValues(string(kind), "ok").Inc()
	log.Info("enrollment submitted",
		slog.String("kind", string(kind)), slog.String("item_id", itemID))

	render.JSON(w, r, response.OKWithData(Result{
		Message: "Thank you! Your enrollment has been submitted successfully, and our staff will be in touch with you shortly.",
	}))
}
