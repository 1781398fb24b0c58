package webapp

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/config"
	admincourses "github.com/TheoNshimyimana/success-frontend/internal/http/handlers/admin/courses"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/admin/enrollments"
	adminprograms "github.com/TheoNshimyimana/success-frontend/internal/http/handlers/admin/programs"
	adminusers "github.com/TheoNshimyimana/success-frontend/internal/http/handlers/admin/users"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/auth/changepassword"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/auth/forgotpassword"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/auth/login"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/auth/logout"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/auth/profile"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/auth/resetpassword"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/auth/signup"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/catalog/enrollact"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/catalog/programenroll"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/catalog/programs"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/catalog/training"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/pages"
	"github.com/TheoNshimyimana/success-frontend/internal/http/middlewarectx"
	"github.com/TheoNshimyimana/success-frontend/internal/session"
	"github.com/TheoNshimyimana/success-frontend/internal/web"
)

// RegisterRoutes registers every route of the application.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, client *api.Client, sessions *session.Store, renderer *web.Renderer) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.LoadSession(sessions, logger),
	)

	pagesHandler := pages.New(logger, client, sessions, renderer, cfg.ContactForm)
	loginHandler := login.New(logger, client, sessions, renderer)
	signupHandler := signup.New(logger, client, sessions, renderer)
	forgotHandler := forgotpassword.New(logger, client, renderer)
	resetHandler := resetpassword.New(logger, client, renderer)
	profileHandler := profile.New(logger, client, sessions, renderer)
	passwordHandler := changepassword.New(logger, client, sessions, renderer)
	trainingHandler := training.New(logger, client, sessions, renderer)
	programsHandler := programs.New(logger, client, sessions, renderer)
	enrollHandler := programenroll.New(logger, client, sessions, renderer)
	actHandler := enrollact.New(logger, client, sessions)

	// Marketing and catalog pages, logged-in or not.
	r.Get("/", pagesHandler.Home)
	r.Get("/about", pagesHandler.About)
	r.Get("/services", pagesHandler.Services)
	r.Get("/contact", pagesHandler.Contact)
	r.Get("/training", trainingHandler.ServeHTTP)
	r.Get("/programs", programsHandler.ServeHTTP)

	// Enroll endpoints called by the page script. Signed-out clicks
	// record an intent, so these stay outside the auth group.
	r.Post("/enroll/course/{id}", actHandler.EnrollCourse)
	r.Post("/enroll/program/{id}", actHandler.EnrollProgram)

	// Auth flows. The form posts sit behind a shared rate limit.
	authLimiter := rate.NewLimiter(rate.Limit(5), 10)
	r.Group(func(r chi.Router) {
		r.Get("/login", loginHandler.Show)
		r.Get("/signup", signupHandler.Show)
		r.Get("/forgot-password", forgotHandler.Show)
		r.Get("/reset-password/{token}", resetHandler.Show)

		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimit(logger, authLimiter))
			r.Post("/login", loginHandler.Submit)
			r.Post("/signup", signupHandler.Submit)
			r.Post("/forgot-password", forgotHandler.Submit)
			r.Post("/reset-password/{token}", resetHandler.Submit)
		})
	})
	r.Get("/logout", logout.New(logger, sessions).ServeHTTP)

	// Pages that need an identity.
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RequireAuth)
		r.Get("/profile", profileHandler.Show)
		r.Post("/profile", profileHandler.Submit)
		r.Get("/change-password", passwordHandler.Show)
		r.Post("/change-password", passwordHandler.Submit)
		r.Get("/programs/{id}/enroll", enrollHandler.Show)
		r.Post("/programs/{id}/enroll", enrollHandler.Submit)
	})

	// Back office.
	usersHandler := adminusers.New(logger, client, sessions, renderer)
	coursesHandler := admincourses.New(logger, client, sessions, renderer)
	progAdminHandler := adminprograms.New(logger, client, sessions, renderer)
	courseEnrollments := enrollments.New(logger, enrollments.CourseSource{Client: client}, sessions, renderer)
	programEnrollments := enrollments.New(logger, enrollments.ProgramSource{Client: client}, sessions, renderer)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middlewarectx.RequireAdmin)

		r.Get("/users", usersHandler.List)
		r.Post("/users/{id}", usersHandler.Update)
		r.Post("/users/{id}/delete", usersHandler.Delete)

		r.Get("/courses", coursesHandler.List)
		r.Post("/courses", coursesHandler.Create)
		r.Post("/courses/{id}", coursesHandler.Update)
		r.Post("/courses/{id}/delete", coursesHandler.Delete)

		r.Get("/programs", progAdminHandler.List)
		r.Post("/programs", progAdminHandler.Create)
		r.Post("/programs/{id}", progAdminHandler.Update)
		r.Post("/programs/{id}/delete", progAdminHandler.Delete)

		r.Get("/course-enrollments", courseEnrollments.List)
		r.Post("/course-enrollments/{id}/status", courseEnrollments.UpdateStatus)
		r.Post("/course-enrollments/{id}/delete", courseEnrollments.Delete)

		r.Get("/program-enrollments", programEnrollments.List)
		r.Post("/program-enrollments/{id}/status", programEnrollments.UpdateStatus)
		r.Post("/program-enrollments/{id}/delete", programEnrollments.Delete)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.NotFound(pagesHandler.NotFound)
}
