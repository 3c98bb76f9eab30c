package main

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/CampusCore/ERP-Backend/internal/auth"
	"github.com/CampusCore/ERP-Backend/internal/config"
	"github.com/CampusCore/ERP-Backend/internal/db"
	"github.com/CampusCore/ERP-Backend/internal/middleware"
	"github.com/CampusCore/ERP-Backend/internal/students"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

// servePage serves one named page from the views directory.
func servePage(viewsDir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(viewsDir, name))
	}
}

func main() {
	_ = godotenv.Load(".env.local")
	cfg := config.Load()
	db.Connect()

	auth.Init(cfg.SessionTTL)
	students.Init()

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.CORSMiddleware)

	loginLimiter := middleware.NewIPRateLimiter(cfg.LoginRatePerMin)
	auth.SetupRoutes(r, loginLimiter.Middleware)
	students.SetupRoutes(r, auth.Sessions())

	// Admin pages are plain static files behind the role gate; the
	// student dashboard route lives in the students module because it
	// serves data, not markup.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.Sessions(), auth.RoleAdmin, "/login/admin"))
		r.Get("/admin-home", servePage(cfg.ViewsDir, "admin-home.html"))
		r.Get("/dashboard/admin", servePage(cfg.ViewsDir, "admin-dashboard.html"))
		r.Get("/dashboard/admin/manage", servePage(cfg.ViewsDir, "admin-dashboard.html"))
	})

	// Everything else falls through to the public pages.
	r.Handle("/*", http.FileServer(http.Dir(cfg.ViewsDir)))

	log.Println("Server listening on port :" + cfg.Port)
	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
