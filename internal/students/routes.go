package students

import (
	"github.com/CampusCore/ERP-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// SetupRoutes registers the registrar surface. API routes answer 401 on
// a bad session; the dashboard page bounces to its login surface.
func SetupRoutes(r chi.Router, fetcher middleware.SessionFetcher) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(fetcher, "admin", ""))
		r.Get("/api/students", ListStudentsHandler)
		r.Post("/admin/update-marks", UpdateMarksHandler)
	})

	r.With(middleware.RequireRole(fetcher, "student", "/login/student")).
		Get("/dashboard-student", DashboardHandler)
}
