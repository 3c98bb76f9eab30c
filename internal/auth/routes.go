package auth

import (
	"net/http"

	"github.com/CampusCore/ERP-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// SetupRoutes registers the auth surface on the root router. The paths
// are absolute because the login/register pages post to them directly.
func SetupRoutes(r chi.Router, loginLimiter func(http.Handler) http.Handler) {
	r.Post("/register/admin", RegisterAdminHandler)
	r.Post("/register/student", RegisterStudentHandler)

	r.Group(func(r chi.Router) {
		r.Use(loginLimiter)
		r.Post("/admin/login", AdminLoginHandler)
		r.Post("/student/login", StudentLoginHandler)
	})

	r.Get("/logout", LogoutHandler)
	r.With(middleware.SessionMiddleware(sessions)).Get("/me", MeHandler)
}
